package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// SheetRepository define el puerto de persistencia para LinkedSheet (DIP).
type SheetRepository interface {
	List(ctx context.Context, userID string) ([]*entity.LinkedSheet, error)
	Upsert(ctx context.Context, userID string, sheet *entity.LinkedSheet) error
	Delete(ctx context.Context, userID, id string) error
}
