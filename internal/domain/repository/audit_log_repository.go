package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// AuditLogRepository define el puerto del journal de auditoría (DIP).
type AuditLogRepository interface {
	Insert(ctx context.Context, log *entity.AuditLog) error
	// ListRecent devuelve las entradas más recientes, limitadas por limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
