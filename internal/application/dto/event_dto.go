package dto

import (
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// EventRequest entrada para crear o actualizar un evento manual del calendario.
// Los eventos AUTO_TASK no se crean por esta vía: se derivan de tareas con fecha.
type EventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Date        string `json:"date" validate:"required,dateformat"`
	Time        string `json:"time" validate:"omitempty,hourminute"`
	Location    string `json:"location" validate:"max=200"`
}

// EventResponse salida de un evento del calendario.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type"`
	TaskID      string    `json:"task_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEventResponse mapea la entidad a su DTO de salida.
func NewEventResponse(e *entity.CommercialEvent) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		Time:        e.Time,
		Location:    e.Location,
		Type:        e.Type,
		TaskID:      e.TaskID,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// NewEventList mapea una colección de eventos.
func NewEventList(list []*entity.CommercialEvent) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEventResponse(e))
	}
	return out
}
