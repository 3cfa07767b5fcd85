package entity

import "time"

// Acciones registradas en el journal de auditoría.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// AuditLog es un registro append-only de una mutación: quién hizo qué sobre
// qué entidad. Solo escritura desde el core; la lectura es el tail reciente.
type AuditLog struct {
	ID         string
	Actor      string // nombre del usuario que ejecutó la acción
	Action     string // CREATE, UPDATE, DELETE
	EntityType string // partner, task, event, inventory, sheet
	EntityID   string
	Details    string // descripción legible, ej. "Parceiro 'Acme' criado"
	CreatedAt  time.Time
}
