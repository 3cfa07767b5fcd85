// Package store contiene los contenedores de estado de dominio: cada uno
// mantiene en memoria la colección de su familia de entidades, la refresca
// contra el store remoto después de cada mutación y expone snapshots
// consistentes a la capa de vistas. Los errores de lectura nunca bloquean al
// consumidor: la colección queda vacía y el error va al log.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// PartnerStore contenedor de estado para el pipeline de partners de un usuario.
type PartnerStore struct {
	repo repository.PartnerRepository
	log  *logger.Logger

	mu      sync.RWMutex
	items   []*entity.Partner
	loading bool
}

// NewPartnerStore construye el contenedor.
func NewPartnerStore(repo repository.PartnerRepository, log *logger.Logger) *PartnerStore {
	return &PartnerStore{repo: repo, log: log}
}

// fetch lee la colección sin tocar el estado en memoria. Un error de lectura
// se loguea y produce colección vacía (la UI nunca ve un error bloqueante).
func (s *PartnerStore) fetch(ctx context.Context, userID string) []*entity.Partner {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("refresh de partners falló")
		return nil
	}
	return list
}

// commit reemplaza la colección en memoria y limpia el flag de carga.
func (s *PartnerStore) commit(list []*entity.Partner) {
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
}

func (s *PartnerStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Refresh refetchea la colección completa del usuario. No-op sin usuario.
func (s *PartnerStore) Refresh(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	s.setLoading()
	s.commit(s.fetch(ctx, userID))
}

// Save inserta o actualiza un partner y refetchea la colección completa.
// Contrato fire-and-forget: el error de escritura se loguea, el caller recibe
// el partner con su id asignado de todas formas.
func (s *PartnerStore) Save(ctx context.Context, userID string, p *entity.Partner) *entity.Partner {
	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.New().String()
		p.CreatedAt = now
	}
	p.UserID = userID
	p.Status = entity.NormalizePipelineStatus(p.Status)
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, userID, p); err != nil {
		s.log.Error().Err(err).Str("partner_id", p.ID).Msg("save de partner falló")
	}
	s.Refresh(ctx, userID)
	return p
}

// Remove elimina un partner y refetchea. Best-effort: errores al log.
func (s *PartnerStore) Remove(ctx context.Context, userID, id string) {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.log.Error().Err(err).Str("partner_id", id).Msg("delete de partner falló")
	}
	s.Refresh(ctx, userID)
}

// Snapshot devuelve una copia de la colección actual.
func (s *PartnerStore) Snapshot() []*entity.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Partner, len(s.items))
	copy(out, s.items)
	return out
}

// Loading indica si hay un refresh en curso.
func (s *PartnerStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
