package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/auth"
	"github.com/jhoicas/gtmpro-api/internal/application/report"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/application/usecase"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager   *store.Manager
	AuthUC    *auth.AuthUseCase
	AIUC      *usecase.AIUseCase
	ReportUC  *report.PDFUseCase
	Validator *validator.Validator
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Manager, deps.Validator)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Revalidación de sesión (protegido: requiere un token, aunque esté viejo)
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard agregado (protegido)
	dashboardHandler := NewDashboardHandler(deps.Manager)
	protected.Get("/dashboard", dashboardHandler.Snapshot)
	protected.Post("/dashboard/refresh", dashboardHandler.Refresh)

	// Journal de auditoría (solo perfiles de gestión)
	protected.Get("/audit",
		RequireRole(entity.RoleAdmin, entity.RoleManager),
		dashboardHandler.AuditLogs)

	// Partners / pipeline CRM (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.Manager, deps.Validator)
	partners.Get("/", partnerHandler.List)
	partners.Post("/", partnerHandler.Save)
	partners.Delete("/:id", partnerHandler.Delete)

	// Tareas / kanban (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.Manager, deps.Validator)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/columns", taskHandler.Columns)
	tasks.Post("/", taskHandler.Save)
	tasks.Post("/:id/move", taskHandler.Move)
	tasks.Delete("/:id", taskHandler.Delete)

	// Calendario comercial (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.Manager, deps.Validator)
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Save)
	events.Delete("/:id", eventHandler.Delete)

	// Stock (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Manager, deps.Validator)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Save)
	inventory.Post("/:id/adjust", inventoryHandler.Adjust)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Planillas vinculadas (protegido)
	sheets := protected.Group("/sheets")
	sheetHandler := NewSheetHandler(deps.Manager, deps.Validator)
	sheets.Get("/", sheetHandler.List)
	sheets.Post("/", sheetHandler.Save)
	sheets.Delete("/:id", sheetHandler.Delete)

	// Asistente IA (protegido)
	aiHandler := NewAIHandler(deps.AIUC, deps.Validator)
	protected.Post("/ai/report", aiHandler.GenerateReport)

	// Reportes PDF (protegido)
	reportHandler := NewReportHandler(deps.Manager, deps.ReportUC)
	protected.Get("/reports/pipeline", reportHandler.PipelinePDF)
}
