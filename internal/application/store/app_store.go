package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// auditTail cantidad máxima de entradas de auditoría en el snapshot agregado.
const auditTail = 100

// auditTimeout límite para la escritura best-effort del journal.
const auditTimeout = 5 * time.Second

// AppStore es el contenedor agregado de un usuario autenticado: compone los
// contenedores de dominio (no duplica su lógica de fetch) y es la fuente única
// que consume la mayoría de las pantallas.
//
// El fetch combinado lanza todas las lecturas en paralelo y publica el estado
// en una sola transición (commit bajo un único lock, versionado), evitando
// lecturas rasgadas entre dominios. Cada mutación escribe además una entrada
// de auditoría best-effort, sin bloquear la respuesta.
type AppStore struct {
	user *entity.User

	Partners  *PartnerStore
	Tasks     *TaskStore
	Events    *EventStore
	Inventory *InventoryStore
	Sheets    *SheetStore

	auditRepo repository.AuditLogRepository
	log       *logger.Logger

	mu      sync.RWMutex
	version uint64
	audits  []*entity.AuditLog

	// dirty colapsa las invalidaciones del canal realtime: un tick pendiente
	// alcanza, el refetch siempre trae todo.
	dirty chan struct{}
}

// Deps repositorios que alimentan un AppStore.
type Deps struct {
	Partners  repository.PartnerRepository
	Tasks     repository.TaskRepository
	Events    repository.EventRepository
	Inventory repository.InventoryRepository
	Sheets    repository.SheetRepository
	AuditLogs repository.AuditLogRepository
}

// NewAppStore construye el contenedor agregado para un usuario.
func NewAppStore(user *entity.User, deps Deps, log *logger.Logger) *AppStore {
	events := NewEventStore(deps.Events, log)
	return &AppStore{
		user:      user,
		Partners:  NewPartnerStore(deps.Partners, log),
		Tasks:     NewTaskStore(deps.Tasks, events, log),
		Events:    events,
		Inventory: NewInventoryStore(deps.Inventory, log),
		Sheets:    NewSheetStore(deps.Sheets, log),
		auditRepo: deps.AuditLogs,
		log:       log,
		dirty:     make(chan struct{}, 1),
	}
}

// User devuelve el usuario dueño del contenedor.
func (a *AppStore) User() *entity.User {
	return a.user
}

// Version devuelve el contador del último commit combinado.
func (a *AppStore) Version() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.version
}

// RefreshAll ejecuta el fetch combinado: todas las colecciones en paralelo,
// luego un único commit versionado. Los errores individuales ya fueron
// degradados a colección vacía por cada fetch.
func (a *AppStore) RefreshAll(ctx context.Context) {
	a.Partners.setLoading()
	a.Tasks.setLoading()
	a.Events.setLoading()
	a.Inventory.setLoading()
	a.Sheets.setLoading()

	partnersCh := make(chan []*entity.Partner, 1)
	tasksCh := make(chan []*entity.Task, 1)
	eventsCh := make(chan []*entity.CommercialEvent, 1)
	itemsCh := make(chan []*entity.InventoryItem, 1)
	sheetsCh := make(chan []*entity.LinkedSheet, 1)
	auditsCh := make(chan []*entity.AuditLog, 1)

	userID := a.user.ID
	go func() { partnersCh <- a.Partners.fetch(ctx, userID) }()
	go func() { tasksCh <- a.Tasks.fetch(ctx, userID) }()
	go func() { eventsCh <- a.Events.fetch(ctx) }()
	go func() { itemsCh <- a.Inventory.fetch(ctx) }()
	go func() { sheetsCh <- a.Sheets.fetch(ctx, userID) }()
	go func() { auditsCh <- a.fetchAudits(ctx) }()

	partners := <-partnersCh
	tasks := <-tasksCh
	events := <-eventsCh
	items := <-itemsCh
	sheets := <-sheetsCh
	audits := <-auditsCh

	a.mu.Lock()
	a.Partners.commit(partners)
	a.Tasks.commit(tasks)
	a.Events.commit(events)
	a.Inventory.commit(items)
	a.Sheets.commit(sheets)
	a.audits = audits
	a.version++
	a.mu.Unlock()
}

func (a *AppStore) fetchAudits(ctx context.Context) []*entity.AuditLog {
	list, err := a.auditRepo.ListRecent(ctx, auditTail)
	if err != nil {
		a.log.Error().Err(err).Msg("refresh de auditoría falló")
		return nil
	}
	return list
}

// AuditLogs devuelve el tail de auditoría del último commit combinado.
func (a *AppStore) AuditLogs() []*entity.AuditLog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*entity.AuditLog, len(a.audits))
	copy(out, a.audits)
	return out
}

// Snapshot arma el DTO agregado bajo el lock de commit: el fetch combinado
// de RefreshAll no puede intercalar su publicación entre dominios mientras se
// lee. Las mutaciones por dominio (save + refresh propio) conmutan con su
// propio lock y pueden intercalarse; la atomicidad cubre el commit combinado.
func (a *AppStore) Snapshot() dto.DashboardResponse {
	a.mu.RLock()
	defer a.mu.RUnlock()
	loading := a.Partners.Loading() || a.Tasks.Loading() || a.Events.Loading() ||
		a.Inventory.Loading() || a.Sheets.Loading()
	return dto.DashboardResponse{
		Partners:  dto.NewPartnerList(a.Partners.Snapshot()),
		Tasks:     dto.NewTaskList(a.Tasks.Snapshot()),
		Columns:   entity.Columns(),
		Events:    dto.NewEventList(a.Events.Snapshot()),
		Inventory: dto.NewInventoryList(a.Inventory.Snapshot()),
		Sheets:    dto.NewSheetList(a.Sheets.Snapshot()),
		AuditLogs: dto.NewAuditLogList(a.audits),
		Version:   a.version,
		Loading:   loading,
	}
}

// Invalidate marca el contenedor para refetch (canal realtime). No bloquea:
// si ya hay un tick pendiente, este se descarta.
func (a *AppStore) Invalidate() {
	select {
	case a.dirty <- struct{}{}:
	default:
	}
}

// Run atiende las invalidaciones hasta que ctx se cancele. Bloqueante:
// lanzar en goroutine (lo hace el Manager).
func (a *AppStore) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.dirty:
			a.RefreshAll(ctx)
		}
	}
}

// ── Superficie de mutación agregada: delega en los contenedores de dominio y
// registra auditoría. ──

// SavePartner guarda un partner y audita.
func (a *AppStore) SavePartner(ctx context.Context, p *entity.Partner) *entity.Partner {
	action := entity.ActionUpdate
	if p.ID == "" {
		action = entity.ActionCreate
	}
	saved := a.Partners.Save(ctx, a.user.ID, p)
	a.recordAudit(action, "partner", saved.ID, "Parceiro '"+saved.Name+"'")
	return saved
}

// RemovePartner elimina un partner y audita.
func (a *AppStore) RemovePartner(ctx context.Context, id string) {
	a.Partners.Remove(ctx, a.user.ID, id)
	a.recordAudit(entity.ActionDelete, "partner", id, "Parceiro removido")
}

// SaveTask guarda una tarea (con su evento derivado) y audita si tuvo éxito.
func (a *AppStore) SaveTask(ctx context.Context, t *entity.Task) dto.OpResult {
	action := entity.ActionUpdate
	if t.ID == "" {
		action = entity.ActionCreate
	}
	res := a.Tasks.Save(ctx, a.user.ID, a.user.Name, t)
	if res.Success {
		a.recordAudit(action, "task", t.ID, "Tarefa '"+t.Title+"'")
	}
	return res
}

// MoveTask mueve una tarea de columna (parche optimista) y audita si tuvo éxito.
func (a *AppStore) MoveTask(ctx context.Context, id, status string) dto.OpResult {
	res := a.Tasks.MoveTask(ctx, a.user.ID, id, status)
	if res.Success {
		a.recordAudit(entity.ActionUpdate, "task", id, "Tarefa movida para "+status)
	}
	return res
}

// RemoveTask elimina una tarea y audita si tuvo éxito.
func (a *AppStore) RemoveTask(ctx context.Context, id string) dto.OpResult {
	res := a.Tasks.Remove(ctx, a.user.ID, id)
	if res.Success {
		a.recordAudit(entity.ActionDelete, "task", id, "Tarefa removida")
	}
	return res
}

// SaveEvent guarda un evento manual y audita si tuvo éxito.
func (a *AppStore) SaveEvent(ctx context.Context, e *entity.CommercialEvent) dto.OpResult {
	action := entity.ActionUpdate
	if e.ID == "" {
		action = entity.ActionCreate
	}
	res := a.Events.Save(ctx, a.user.Name, e)
	if res.Success {
		a.recordAudit(action, "event", e.ID, "Evento '"+e.Title+"'")
	}
	return res
}

// RemoveEvent elimina un evento y audita si tuvo éxito.
func (a *AppStore) RemoveEvent(ctx context.Context, id string) dto.OpResult {
	res := a.Events.Remove(ctx, id)
	if res.Success {
		a.recordAudit(entity.ActionDelete, "event", id, "Evento removido")
	}
	return res
}

// SaveInventoryItem guarda un ítem de stock y audita.
func (a *AppStore) SaveInventoryItem(ctx context.Context, i *entity.InventoryItem) *entity.InventoryItem {
	action := entity.ActionUpdate
	if i.ID == "" {
		action = entity.ActionCreate
	}
	saved := a.Inventory.Save(ctx, i)
	a.recordAudit(action, "inventory", saved.ID, "Item '"+saved.Name+"'")
	return saved
}

// AdjustStock ajusta la cantidad de un ítem (clamp en cero) y audita.
func (a *AppStore) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) *entity.InventoryItem {
	item := a.Inventory.Adjust(ctx, id, delta)
	if item != nil {
		a.recordAudit(entity.ActionUpdate, "inventory", id,
			"Estoque de '"+item.Name+"' ajustado em "+delta.String())
	}
	return item
}

// RemoveInventoryItem elimina un ítem de stock y audita.
func (a *AppStore) RemoveInventoryItem(ctx context.Context, id string) {
	a.Inventory.Remove(ctx, id)
	a.recordAudit(entity.ActionDelete, "inventory", id, "Item removido")
}

// SaveSheet guarda una planilla vinculada y audita si tuvo éxito.
func (a *AppStore) SaveSheet(ctx context.Context, sh *entity.LinkedSheet) dto.OpResult {
	action := entity.ActionUpdate
	if sh.ID == "" {
		action = entity.ActionCreate
	}
	res := a.Sheets.Save(ctx, a.user.ID, sh)
	if res.Success {
		a.recordAudit(action, "sheet", sh.ID, "Planilha '"+sh.Title+"'")
	}
	return res
}

// RemoveSheet elimina una planilla y audita si tuvo éxito.
func (a *AppStore) RemoveSheet(ctx context.Context, id string) dto.OpResult {
	res := a.Sheets.Remove(ctx, a.user.ID, id)
	if res.Success {
		a.recordAudit(entity.ActionDelete, "sheet", id, "Planilha removida")
	}
	return res
}

// recordAudit escribe la entrada de auditoría en background, sin bloquear la
// respuesta; un fallo del journal solo se loguea.
func (a *AppStore) recordAudit(action, entityType, entityID, details string) {
	entry := &entity.AuditLog{
		ID:         uuid.New().String(),
		Actor:      a.user.Name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := a.auditRepo.Insert(ctx, entry); err != nil {
			a.log.Warn().Err(err).Str("action", action).Str("entity", entityType).Msg("escritura de auditoría falló")
		}
	}()
}
