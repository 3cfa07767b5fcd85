package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// SheetStore contenedor de estado de las planillas vinculadas de un usuario.
type SheetStore struct {
	repo repository.SheetRepository
	log  *logger.Logger

	mu      sync.RWMutex
	items   []*entity.LinkedSheet
	loading bool
}

// NewSheetStore construye el contenedor.
func NewSheetStore(repo repository.SheetRepository, log *logger.Logger) *SheetStore {
	return &SheetStore{repo: repo, log: log}
}

func (s *SheetStore) fetch(ctx context.Context, userID string) []*entity.LinkedSheet {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("refresh de planillas falló")
		return nil
	}
	return list
}

func (s *SheetStore) commit(list []*entity.LinkedSheet) {
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
}

func (s *SheetStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Refresh refetchea las planillas del usuario. No-op sin usuario.
func (s *SheetStore) Refresh(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	s.setLoading()
	s.commit(s.fetch(ctx, userID))
}

// Save inserta o actualiza una planilla y refetchea. El resultado
// estructurado se devuelve a la vista.
func (s *SheetStore) Save(ctx context.Context, userID string, sh *entity.LinkedSheet) dto.OpResult {
	if sh.ID == "" {
		sh.ID = uuid.New().String()
		sh.CreatedAt = time.Now()
	}
	sh.UserID = userID

	if err := s.repo.Upsert(ctx, userID, sh); err != nil {
		s.log.Error().Err(err).Str("sheet_id", sh.ID).Msg("save de planilla falló")
		return dto.Fail("Não foi possível salvar a planilha.")
	}
	s.Refresh(ctx, userID)
	return dto.OK()
}

// Remove elimina una planilla y refetchea.
func (s *SheetStore) Remove(ctx context.Context, userID, id string) dto.OpResult {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.log.Error().Err(err).Str("sheet_id", id).Msg("delete de planilla falló")
		return dto.Fail("Não foi possível excluir a planilha.")
	}
	s.Refresh(ctx, userID)
	return dto.OK()
}

// Snapshot devuelve una copia de la colección actual.
func (s *SheetStore) Snapshot() []*entity.LinkedSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.LinkedSheet, len(s.items))
	copy(out, s.items)
	return out
}

// Loading indica si hay un refresh en curso.
func (s *SheetStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
