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
	"github.com/tu-usuario/portal-socios/internal/application/auth"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/events"
	"github.com/tu-usuario/portal-socios/internal/application/membership"
	"github.com/tu-usuario/portal-socios/internal/domain/period"
	"github.com/tu-usuario/portal-socios/internal/infrastructure/export"
	"github.com/tu-usuario/portal-socios/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/portal-socios/internal/interfaces/http"
	"github.com/tu-usuario/portal-socios/pkg/config"
	"github.com/tu-usuario/portal-socios/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	inscriptionRepo := postgres.NewInscriptionRepository(pool)
	bookRepo := postgres.NewBookRepository(pool)
	committeeRepo := postgres.NewCommitteeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	periodEngine := period.NewEngine(nil, time.Duration(cfg.Membership.SemesterDays)*24*time.Hour)
	membershipUC := membership.NewCoordinator(userRepo, periodEngine, txRunner, log)
	booksUC := catalog.NewBooksUseCase(bookRepo, bookRepo, txRunner)
	committeeUC := catalog.NewCommitteeUseCase(committeeRepo, committeeRepo, txRunner)
	eventsUC := events.NewUseCase(eventRepo, inscriptionRepo, txRunner, nil, log)
	exportUC := events.NewExportUseCase(
		eventRepo, inscriptionRepo,
		export.NewMarotoAttendanceGenerator(),
		export.NewCSVEncoder(),
		export.NewAtomFeedBuilder(),
		nil,
	)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Portal Socios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Membership:  membershipUC,
		BooksUC:     booksUC,
		CommitteeUC: committeeUC,
		EventsUC:    eventsUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
		BaseURL:     cfg.HTTP.BaseURL,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
