package dto

import (
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// AuditLogResponse salida de una entrada del journal de auditoría.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAuditLogList mapea una colección de entradas del journal.
func NewAuditLogList(list []*entity.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, AuditLogResponse{
			ID:         l.ID,
			Actor:      l.Actor,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}

// DashboardResponse snapshot agregado que consume la mayoría de las pantallas:
// todas las colecciones en una sola transición de estado, más el tail de
// auditoría y la versión del commit combinado.
type DashboardResponse struct {
	Partners  []PartnerResponse       `json:"partners"`
	Tasks     []TaskResponse          `json:"tasks"`
	Columns   []entity.KanbanColumn   `json:"columns"`
	Events    []EventResponse         `json:"events"`
	Inventory []InventoryItemResponse `json:"inventory"`
	Sheets    []SheetResponse         `json:"sheets"`
	AuditLogs []AuditLogResponse      `json:"audit_logs"`
	Version   uint64                  `json:"version"`
	Loading   bool                    `json:"loading"`
}
