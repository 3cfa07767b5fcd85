package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// InventoryStore contenedor de estado del stock comercial (compartido entre usuarios).
type InventoryStore struct {
	repo repository.InventoryRepository
	log  *logger.Logger

	mu      sync.RWMutex
	items   []*entity.InventoryItem
	loading bool
}

// NewInventoryStore construye el contenedor.
func NewInventoryStore(repo repository.InventoryRepository, log *logger.Logger) *InventoryStore {
	return &InventoryStore{repo: repo, log: log}
}

func (s *InventoryStore) fetch(ctx context.Context) []*entity.InventoryItem {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("refresh de stock falló")
		return nil
	}
	return list
}

func (s *InventoryStore) commit(list []*entity.InventoryItem) {
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
}

func (s *InventoryStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Refresh refetchea el stock completo.
func (s *InventoryStore) Refresh(ctx context.Context) {
	s.setLoading()
	s.commit(s.fetch(ctx))
}

// Save inserta o actualiza un ítem y refetchea. Contrato fire-and-forget:
// errores de escritura al log, el caller recibe el ítem con id asignado.
func (s *InventoryStore) Save(ctx context.Context, i *entity.InventoryItem) *entity.InventoryItem {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Quantity.IsNegative() {
		i.Quantity = decimal.Zero
	}
	i.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, i); err != nil {
		s.log.Error().Err(err).Str("item_id", i.ID).Msg("save de ítem de stock falló")
	}
	s.Refresh(ctx)
	return i
}

// Adjust aplica un delta (positivo o negativo) sobre la cantidad de un ítem,
// con clamp en cero, y refetchea. Devuelve nil si el ítem no existe.
func (s *InventoryStore) Adjust(ctx context.Context, id string, delta decimal.Decimal) *entity.InventoryItem {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("item_id", id).Msg("lookup de ítem de stock falló")
		return nil
	}
	if item == nil {
		return nil
	}

	item.Adjust(delta)

	if err := s.repo.Upsert(ctx, item); err != nil {
		s.log.Error().Err(err).Str("item_id", id).Msg("ajuste de stock falló")
	}
	s.Refresh(ctx)
	return item
}

// Remove elimina un ítem y refetchea. Best-effort: errores al log.
func (s *InventoryStore) Remove(ctx context.Context, id string) {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("item_id", id).Msg("delete de ítem de stock falló")
	}
	s.Refresh(ctx)
}

// Snapshot devuelve una copia de la colección actual.
func (s *InventoryStore) Snapshot() []*entity.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Critical devuelve los ítems por debajo de su umbral mínimo.
func (s *InventoryStore) Critical() []*entity.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.InventoryItem
	for _, i := range s.items {
		if i.IsCritical() {
			out = append(out, i)
		}
	}
	return out
}

// Loading indica si hay un refresh en curso.
func (s *InventoryStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
