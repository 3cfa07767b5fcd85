package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	apphttp "github.com/jhoicas/gtmpro-api/internal/interfaces/http"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// Stubs vacíos de los puertos de persistencia: suficientes para bootstrapear
// un Manager con colecciones vacías en los tests del handler.

type emptyPartnerRepo struct{}

func (emptyPartnerRepo) List(context.Context, string) ([]*entity.Partner, error) { return nil, nil }
func (emptyPartnerRepo) Upsert(context.Context, string, *entity.Partner) error   { return nil }
func (emptyPartnerRepo) Delete(context.Context, string, string) error            { return nil }

type emptyTaskRepo struct{}

func (emptyTaskRepo) List(context.Context, string) ([]*entity.Task, error)       { return nil, nil }
func (emptyTaskRepo) Upsert(context.Context, string, *entity.Task) error         { return nil }
func (emptyTaskRepo) UpdateStatus(context.Context, string, string, string) error { return nil }
func (emptyTaskRepo) Delete(context.Context, string, string) error               { return nil }

type emptyEventRepo struct{}

func (emptyEventRepo) List(context.Context) ([]*entity.CommercialEvent, error) { return nil, nil }
func (emptyEventRepo) Upsert(context.Context, *entity.CommercialEvent) error   { return nil }
func (emptyEventRepo) GetByTaskID(context.Context, string) (*entity.CommercialEvent, error) {
	return nil, nil
}
func (emptyEventRepo) Delete(context.Context, string) error         { return nil }
func (emptyEventRepo) DeleteByTaskID(context.Context, string) error { return nil }

type emptyInventoryRepo struct{}

func (emptyInventoryRepo) List(context.Context) ([]*entity.InventoryItem, error) { return nil, nil }
func (emptyInventoryRepo) GetByID(context.Context, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (emptyInventoryRepo) Upsert(context.Context, *entity.InventoryItem) error { return nil }
func (emptyInventoryRepo) Delete(context.Context, string) error                { return nil }

type emptySheetRepo struct{}

func (emptySheetRepo) List(context.Context, string) ([]*entity.LinkedSheet, error) { return nil, nil }
func (emptySheetRepo) Upsert(context.Context, string, *entity.LinkedSheet) error   { return nil }
func (emptySheetRepo) Delete(context.Context, string, string) error                { return nil }

type emptyAuditRepo struct{}

func (emptyAuditRepo) Insert(context.Context, *entity.AuditLog) error { return nil }
func (emptyAuditRepo) ListRecent(context.Context, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

// buildTaskApp arma la ruta de move con una identidad inyectada por middleware,
// sobre un Manager con colecciones vacías.
func buildTaskApp() *fiber.App {
	manager := store.NewManager(store.Deps{
		Partners:  emptyPartnerRepo{},
		Tasks:     emptyTaskRepo{},
		Events:    emptyEventRepo{},
		Inventory: emptyInventoryRepo{},
		Sheets:    emptySheetRepo{},
		AuditLogs: emptyAuditRepo{},
	}, logger.Nop())
	handler := apphttp.NewTaskHandler(manager, validator.New())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalUserName, testUserName)
		c.Locals(apphttp.LocalRole, entity.RoleUser)
		return c.Next()
	})
	app.Post("/api/tasks/:id/move", handler.Move)
	return app
}

// Mover una tarea inexistente responde 404 con el resultado estructurado,
// no un 500 genérico.
func TestMove_TareaInexistente_Retorna404(t *testing.T) {
	app := buildTaskApp()

	resp := postJSON(t, app, "/api/tasks/no-existe/move", fiber.Map{"status": entity.ColumnDone})
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Equal(t, "Tarefa não encontrada.", out.Error)
}
