package entity

import "time"

// Tipos de evento del calendario comercial.
const (
	EventManual   = "MANUAL"
	EventAutoTask = "AUTO_TASK" // derivado de una tarea con fecha de entrega
)

// CommercialEvent representa una entrada del calendario comercial.
// Los eventos AUTO_TASK se derivan mecánicamente de tareas con fecha:
// a lo sumo un evento por tarea, identificado por TaskID.
type CommercialEvent struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Time        string // "HH:MM" opcional
	Location    string
	Type        string // MANUAL o AUTO_TASK
	TaskID      string // referencia a la tarea origen; vacío en eventos manuales
	CreatedBy   string // nombre del creador
	CreatedAt   time.Time
}
