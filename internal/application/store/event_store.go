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

// EventStore contenedor de estado del calendario comercial. El calendario es
// compartido entre usuarios, así que el refresh no lleva scope.
type EventStore struct {
	repo repository.EventRepository
	log  *logger.Logger

	mu      sync.RWMutex
	items   []*entity.CommercialEvent
	loading bool
}

// NewEventStore construye el contenedor.
func NewEventStore(repo repository.EventRepository, log *logger.Logger) *EventStore {
	return &EventStore{repo: repo, log: log}
}

func (s *EventStore) fetch(ctx context.Context) []*entity.CommercialEvent {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("refresh de eventos falló")
		return nil
	}
	return list
}

func (s *EventStore) commit(list []*entity.CommercialEvent) {
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
}

func (s *EventStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Refresh refetchea el calendario completo.
func (s *EventStore) Refresh(ctx context.Context) {
	s.setLoading()
	s.commit(s.fetch(ctx))
}

// Save inserta o actualiza un evento manual y refetchea.
// El resultado estructurado se devuelve a la vista.
func (s *EventStore) Save(ctx context.Context, creator string, e *entity.CommercialEvent) dto.OpResult {
	if e.ID == "" {
		e.ID = uuid.New().String()
		e.CreatedAt = time.Now()
		e.CreatedBy = creator
	}
	if e.Type == "" {
		e.Type = entity.EventManual
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		s.log.Error().Err(err).Str("event_id", e.ID).Msg("save de evento falló")
		return dto.Fail("Não foi possível salvar o evento.")
	}
	s.Refresh(ctx)
	return dto.OK()
}

// SyncTaskEvent mantiene el evento AUTO_TASK derivado de una tarea: a lo sumo
// un evento por tarea, identificado por su task id. Una tarea sin fecha
// elimina el evento derivado si existía. Best-effort: errores al log.
func (s *EventStore) SyncTaskEvent(ctx context.Context, t *entity.Task, creator string) {
	if t.DueDate == nil {
		if err := s.repo.DeleteByTaskID(ctx, t.ID); err != nil {
			s.log.Warn().Err(err).Str("task_id", t.ID).Msg("limpieza de evento derivado falló")
		}
		s.Refresh(ctx)
		return
	}

	ev, err := s.repo.GetByTaskID(ctx, t.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("task_id", t.ID).Msg("lookup de evento derivado falló")
		return
	}
	if ev == nil {
		ev = &entity.CommercialEvent{
			ID:        uuid.New().String(),
			Type:      entity.EventAutoTask,
			TaskID:    t.ID,
			CreatedBy: creator,
			CreatedAt: time.Now(),
		}
	}
	ev.Title = "Entrega: " + t.Title
	ev.Description = t.Description
	ev.Date = *t.DueDate

	if err := s.repo.Upsert(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("task_id", t.ID).Msg("upsert de evento derivado falló")
	}
	s.Refresh(ctx)
}

// RemoveTaskEvent elimina el evento derivado de una tarea borrada.
func (s *EventStore) RemoveTaskEvent(ctx context.Context, taskID string) {
	if err := s.repo.DeleteByTaskID(ctx, taskID); err != nil {
		s.log.Warn().Err(err).Str("task_id", taskID).Msg("delete de evento derivado falló")
	}
	s.Refresh(ctx)
}

// Remove elimina un evento y refetchea.
func (s *EventStore) Remove(ctx context.Context, id string) dto.OpResult {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("event_id", id).Msg("delete de evento falló")
		return dto.Fail("Não foi possível excluir o evento.")
	}
	s.Refresh(ctx)
	return dto.OK()
}

// Snapshot devuelve una copia de la colección actual.
func (s *EventStore) Snapshot() []*entity.CommercialEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.CommercialEvent, len(s.items))
	copy(out, s.items)
	return out
}

// Loading indica si hay un refresh en curso.
func (s *EventStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
