package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// El stock es compartido entre usuarios; las lecturas se ordenan por nombre.
type InventoryRepository interface {
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Upsert(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}
