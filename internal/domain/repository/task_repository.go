package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task (DIP).
type TaskRepository interface {
	List(ctx context.Context, userID string) ([]*entity.Task, error)
	Upsert(ctx context.Context, userID string, task *entity.Task) error
	// UpdateStatus persiste solo el movimiento de columna (drag del kanban).
	UpdateStatus(ctx context.Context, userID, id, status string) error
	Delete(ctx context.Context, userID, id string) error
}
