package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para CommercialEvent (DIP).
// El calendario es compartido: las lecturas no están scoped por usuario y se
// ordenan por fecha ascendente.
type EventRepository interface {
	List(ctx context.Context) ([]*entity.CommercialEvent, error)
	Upsert(ctx context.Context, event *entity.CommercialEvent) error
	// GetByTaskID busca el evento AUTO_TASK derivado de una tarea; (nil, nil) si no existe.
	GetByTaskID(ctx context.Context, taskID string) (*entity.CommercialEvent, error)
	Delete(ctx context.Context, id string) error
	DeleteByTaskID(ctx context.Context, taskID string) error
}
