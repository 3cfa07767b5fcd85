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

// TaskStore contenedor de estado del tablero kanban de un usuario.
//
// El movimiento de columna es la única mutación optimista del sistema: el
// status se parchea en memoria antes de persistir, con un marcador de
// operación pendiente por tarea; si la persistencia falla, el parche se
// revierte y el error llega a la vista.
type TaskStore struct {
	repo   repository.TaskRepository
	events *EventStore
	log    *logger.Logger

	mu      sync.RWMutex
	items   []*entity.Task
	loading bool
	pending map[string]string // task id -> status previo del move en vuelo
}

// NewTaskStore construye el contenedor. events mantiene la sincronización
// derivada del calendario (un evento AUTO_TASK por tarea con fecha).
func NewTaskStore(repo repository.TaskRepository, events *EventStore, log *logger.Logger) *TaskStore {
	return &TaskStore{
		repo:    repo,
		events:  events,
		log:     log,
		pending: make(map[string]string),
	}
}

func (s *TaskStore) fetch(ctx context.Context, userID string) []*entity.Task {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("refresh de tareas falló")
		return nil
	}
	return list
}

func (s *TaskStore) commit(list []*entity.Task) {
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
}

func (s *TaskStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Refresh refetchea las tareas del usuario. No-op sin usuario.
func (s *TaskStore) Refresh(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	s.setLoading()
	s.commit(s.fetch(ctx, userID))
}

// Save inserta o actualiza una tarea, sincroniza el evento derivado del
// calendario cuando hay fecha de entrega, y refetchea la colección.
func (s *TaskStore) Save(ctx context.Context, userID, creator string, t *entity.Task) dto.OpResult {
	if t.ID == "" {
		t.ID = uuid.New().String()
		t.CreatedAt = time.Now()
	}
	t.UserID = userID
	t.Status = entity.NormalizeTaskStatus(t.Status)
	t.Priority = entity.NormalizePriority(t.Priority)

	if err := s.repo.Upsert(ctx, userID, t); err != nil {
		s.log.Error().Err(err).Str("task_id", t.ID).Msg("save de tarea falló")
		return dto.Fail("Não foi possível salvar a tarefa.")
	}

	// A lo sumo un evento AUTO_TASK por tarea con fecha; sin fecha, se limpia.
	s.events.SyncTaskEvent(ctx, t, creator)

	s.Refresh(ctx, userID)
	return dto.OK()
}

// MoveTask aplica el parche optimista del drag: el status en memoria cambia
// de inmediato, sin esperar el refetch; la persistencia corre después. Si
// falla, el parche se revierte y la vista recibe el error.
func (s *TaskStore) MoveTask(ctx context.Context, userID, id, newStatus string) dto.OpResult {
	newStatus = entity.NormalizeTaskStatus(newStatus)

	prev, ok := s.patchStatus(id, newStatus)
	if !ok {
		return dto.FailNotFound("Tarefa não encontrada.")
	}

	if err := s.repo.UpdateStatus(ctx, userID, id, newStatus); err != nil {
		s.log.Error().Err(err).Str("task_id", id).Msg("persistencia del move falló, revirtiendo parche")
		s.revertStatus(id, prev)
		return dto.Fail("Não foi possível mover a tarefa.")
	}

	s.clearPending(id)
	return dto.OK()
}

// patchStatus aplica el parche local y registra el status previo como
// operación pendiente. Devuelve false si la tarea no está en memoria.
//
// Copy-on-write: la entrada del slice se reemplaza por una copia con el
// status nuevo en lugar de mutar el puntero compartido. Los snapshots ya
// entregados a lectores concurrentes siguen viendo la tarea previa intacta.
func (s *TaskStore) patchStatus(id, newStatus string) (prev string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			prev = t.Status
			patched := *t
			patched.Status = newStatus
			s.items[i] = &patched
			s.pending[id] = prev
			return prev, true
		}
	}
	return "", false
}

// revertStatus deshace el parche optimista de un move fallido, también por
// reemplazo de la entrada.
func (s *TaskStore) revertStatus(id, prev string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			reverted := *t
			reverted.Status = prev
			s.items[i] = &reverted
			break
		}
	}
	delete(s.pending, id)
}

func (s *TaskStore) clearPending(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// PendingMoves devuelve los ids de tareas con un move aún no confirmado.
func (s *TaskStore) PendingMoves() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.pending))
	for id := range s.pending {
		out = append(out, id)
	}
	return out
}

// Remove elimina una tarea, su evento derivado si existía, y refetchea.
func (s *TaskStore) Remove(ctx context.Context, userID, id string) dto.OpResult {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.log.Error().Err(err).Str("task_id", id).Msg("delete de tarea falló")
		return dto.Fail("Não foi possível excluir a tarefa.")
	}
	s.events.RemoveTaskEvent(ctx, id)
	s.Refresh(ctx, userID)
	return dto.OK()
}

// Snapshot devuelve una copia de la colección actual.
func (s *TaskStore) Snapshot() []*entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Task, len(s.items))
	copy(out, s.items)
	return out
}

// Loading indica si hay un refresh en curso.
func (s *TaskStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
