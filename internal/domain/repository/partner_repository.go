package repository

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para Partner (DIP).
// Las lecturas están scoped por el usuario dueño y ordenadas por recencia.
type PartnerRepository interface {
	List(ctx context.Context, userID string) ([]*entity.Partner, error)
	// Upsert actualiza si el partner trae ID; inserta si no. Los contactos se
	// reemplazan por completo en cada escritura.
	Upsert(ctx context.Context, userID string, partner *entity.Partner) error
	Delete(ctx context.Context, userID, id string) error
}
