package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
)

// DashboardHandler entrega el snapshot agregado y el tail de auditoría.
type DashboardHandler struct {
	manager *store.Manager
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(manager *store.Manager) *DashboardHandler {
	return &DashboardHandler{manager: manager}
}

// Snapshot godoc
// @Summary      Snapshot agregado do dashboard
// @Description  Todas as coleções numa única transição de estado versionada:
// @Description  é a leitura que a maioria das telas consome.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Snapshot(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(app.Snapshot())
}

// Refresh godoc
// @Summary      Forçar refetch combinado
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	app.RefreshAll(c.Context())
	return c.JSON(app.Snapshot())
}

// AuditLogs godoc
// @Summary      Tail do journal de auditoria
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit [get]
func (h *DashboardHandler) AuditLogs(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewAuditLogList(app.AuditLogs()))
}
