package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gtmpro-api/internal/application/auth"
	"github.com/jhoicas/gtmpro-api/internal/application/report"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/application/usecase"
	infraai "github.com/jhoicas/gtmpro-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/gtmpro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gtmpro-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gtmpro-api/internal/interfaces/http"
	"github.com/jhoicas/gtmpro-api/pkg/config"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(rootCtx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	deps := store.Deps{
		Partners:  postgres.NewPartnerRepository(pool),
		Tasks:     postgres.NewTaskRepository(pool),
		Events:    postgres.NewEventRepository(pool),
		Inventory: postgres.NewInventoryRepository(pool),
		Sheets:    postgres.NewSheetRepository(pool),
		AuditLogs: postgres.NewAuditLogRepository(pool),
	}
	manager := store.NewManager(deps, log)

	// Suscripción realtime: un solo LISTEN por proceso; cada NOTIFY invalida
	// todos los contenedores vivos, que refetchean todo.
	listener := postgres.NewListener(pool, cfg.Realtime.Channel, log)
	go listener.Run(rootCtx)
	go manager.Start(rootCtx, listener.Changes())

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, geminiSvc)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewPDFUseCase(pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GTM PRO API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:   manager,
		AuthUC:    authUC,
		AIUC:      aiUC,
		ReportUC:  reportUC,
		Validator: validator.New(),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel() // detiene listener y manager

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
