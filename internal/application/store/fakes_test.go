package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Devuelven copias de las
// filas, como haría un fetch real contra el store remoto.

type fakePartnerRepo struct {
	mu      sync.Mutex
	rows    map[string]entity.Partner
	listErr error
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{rows: make(map[string]entity.Partner)}
}

func (f *fakePartnerRepo) List(_ context.Context, userID string) ([]*entity.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Partner
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		p := row
		p.Status = entity.NormalizePipelineStatus(p.Status)
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePartnerRepo) Upsert(_ context.Context, userID string, p *entity.Partner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.rows[p.ID]; ok && existing.UserID != userID {
		return nil // scoped: no toca filas ajenas
	}
	f.rows[p.ID] = *p
	return nil
}

func (f *fakePartnerRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok && row.UserID == userID {
		delete(f.rows, id)
	}
	return nil
}

type fakeTaskRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Task

	updateStatusErr error
	// Sincronización opcional de UpdateStatus para observar el estado
	// intermedio del parche optimista.
	updateStarted chan struct{}
	updateRelease chan struct{}
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{rows: make(map[string]entity.Task)}
}

func (f *fakeTaskRepo) List(_ context.Context, userID string) ([]*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Task
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		t := row
		t.Status = entity.NormalizeTaskStatus(t.Status)
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTaskRepo) Upsert(_ context.Context, userID string, t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[t.ID] = *t
	return nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, userID, id, status string) error {
	if f.updateStarted != nil {
		f.updateStarted <- struct{}{}
		<-f.updateRelease
	}
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return errors.New("tarea no encontrada")
	}
	row.Status = status
	f.rows[id] = row
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeTaskRepo) status(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id].Status
}

type fakeEventRepo struct {
	mu   sync.Mutex
	rows map[string]entity.CommercialEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{rows: make(map[string]entity.CommercialEvent)}
}

func (f *fakeEventRepo) List(_ context.Context) ([]*entity.CommercialEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CommercialEvent
	for _, row := range f.rows {
		e := row
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeEventRepo) Upsert(_ context.Context, e *entity.CommercialEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) GetByTaskID(_ context.Context, taskID string) (*entity.CommercialEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.TaskID == taskID {
			e := row
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeEventRepo) DeleteByTaskID(_ context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, row := range f.rows {
		if row.TaskID == taskID {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeEventRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeInventoryRepo struct {
	mu   sync.Mutex
	rows map[string]entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: make(map[string]entity.InventoryItem)}
}

func (f *fakeInventoryRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.InventoryItem
	for _, row := range f.rows {
		i := row
		out = append(out, &i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	i := row
	return &i, nil
}

func (f *fakeInventoryRepo) Upsert(_ context.Context, i *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[i.ID] = *i
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

type fakeSheetRepo struct {
	mu   sync.Mutex
	rows map[string]entity.LinkedSheet
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{rows: make(map[string]entity.LinkedSheet)}
}

func (f *fakeSheetRepo) List(_ context.Context, userID string) ([]*entity.LinkedSheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.LinkedSheet
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		s := row
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSheetRepo) Upsert(_ context.Context, userID string, s *entity.LinkedSheet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeSheetRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []entity.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (f *fakeAuditRepo) Insert(_ context.Context, l *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *l)
	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]*entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.AuditLog
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		l := f.entries[i]
		out = append(out, &l)
	}
	return out, nil
}

func (f *fakeAuditRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func (f *fakeAuditRepo) last() *entity.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.entries) == 0 {
		return nil
	}
	l := f.entries[len(f.entries)-1]
	return &l
}

func testDeps() (Deps, *fakePartnerRepo, *fakeTaskRepo, *fakeEventRepo, *fakeInventoryRepo, *fakeSheetRepo, *fakeAuditRepo) {
	partners := newFakePartnerRepo()
	tasks := newFakeTaskRepo()
	events := newFakeEventRepo()
	inventory := newFakeInventoryRepo()
	sheets := newFakeSheetRepo()
	audits := newFakeAuditRepo()
	deps := Deps{
		Partners:  partners,
		Tasks:     tasks,
		Events:    events,
		Inventory: inventory,
		Sheets:    sheets,
		AuditLogs: audits,
	}
	return deps, partners, tasks, events, inventory, sheets, audits
}
