package store

import (
	"context"
	"sync"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// Manager mantiene un AppStore por usuario autenticado y reparte hacia todos
// la invalidación del canal realtime. La suscripción es una sola por proceso;
// su ciclo de vida va atado a Start/cancelación del contexto.
type Manager struct {
	deps Deps
	log  *logger.Logger

	mu     sync.Mutex
	stores map[string]*managedStore
	ctx    context.Context
}

type managedStore struct {
	app    *AppStore
	cancel context.CancelFunc
}

// NewManager construye el manager con los repositorios compartidos.
func NewManager(deps Deps, log *logger.Logger) *Manager {
	return &Manager{
		deps:   deps,
		log:    log,
		stores: make(map[string]*managedStore),
		ctx:    context.Background(),
	}
}

// Start consume el canal de cambios hasta que ctx se cancele. Cada tick
// invalida todos los contenedores vivos; cada uno refetchea por su cuenta.
// Bloqueante: lanzar en goroutine.
func (m *Manager) Start(ctx context.Context, changes <-chan struct{}) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			m.invalidateAll()
		}
	}
}

// ForUser devuelve el AppStore del usuario, creándolo y haciendo el bootstrap
// (fetch combinado inicial) en el primer acceso.
func (m *Manager) ForUser(ctx context.Context, user *entity.User) *AppStore {
	m.mu.Lock()
	ms, ok := m.stores[user.ID]
	if ok {
		m.mu.Unlock()
		return ms.app
	}

	app := NewAppStore(user, m.deps, m.log)
	runCtx, cancel := context.WithCancel(m.ctx)
	m.stores[user.ID] = &managedStore{app: app, cancel: cancel}
	go app.Run(runCtx)
	m.mu.Unlock()

	app.RefreshAll(ctx)
	return app
}

// Evict descarta el contenedor de un usuario (sesión inválida) y detiene su
// goroutine de refetch; el próximo acceso rehace el bootstrap.
func (m *Manager) Evict(userID string) {
	m.mu.Lock()
	if ms, ok := m.stores[userID]; ok {
		ms.cancel()
		delete(m.stores, userID)
	}
	m.mu.Unlock()
}

func (m *Manager) invalidateAll() {
	m.mu.Lock()
	stores := make([]*AppStore, 0, len(m.stores))
	for _, ms := range m.stores {
		stores = append(stores, ms.app)
	}
	m.mu.Unlock()

	m.log.Debug().Int("stores", len(stores)).Msg("cambio remoto: invalidando contenedores")
	for _, s := range stores {
		s.Invalidate()
	}
}
