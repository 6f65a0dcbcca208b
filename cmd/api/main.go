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

	_ "github.com/jarad-ux/eccocontrol-center/docs"
	"github.com/jarad-ux/eccocontrol-center/internal/application/callcenter"
	appsync "github.com/jarad-ux/eccocontrol-center/internal/application/sync"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/email"
	infrapdf "github.com/jarad-ux/eccocontrol-center/internal/infrastructure/pdf"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/postgres"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/relay"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/retell"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/sheets"
	"github.com/jarad-ux/eccocontrol-center/internal/infrastructure/webhook"
	httpRouter "github.com/jarad-ux/eccocontrol-center/internal/interfaces/http"
	"github.com/jarad-ux/eccocontrol-center/pkg/config"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap")
	}

	repRepo := postgres.NewSalesRepRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	// Outbound integrations for the sync fan-out.
	var sheetTokens sheets.TokenSource
	if cfg.Sheets.AccessToken != "" {
		sheetTokens = &sheets.StaticTokenSource{AccessToken: cfg.Sheets.AccessToken}
	} else if cfg.Sheets.ConnectorURL != "" {
		sheetTokens = sheets.NewConnectorTokenSource(cfg.Sheets.ConnectorURL, cfg.Sheets.ConnectorToken)
	}
	var sheetAppender appsync.SheetAppender
	if sheetTokens != nil {
		sheetAppender = sheets.NewClient(sheetTokens)
	}

	orchestrator := appsync.NewOrchestrator(
		submissionRepo, settingsRepo,
		webhook.NewClient(),
		relay.NewClient(),
		sheetAppender,
		email.NewResendClient(),
		log,
	)

	repUC := usecase.NewRepUseCase(repRepo, log)
	submissionUC := usecase.NewSubmissionUseCase(
		submissionRepo, orchestrator, infrapdf.NewWorkOrderGenerator(cfg.App.Name),
	)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	statsUC := usecase.NewStatsUseCase(submissionRepo)
	callCenterUC := callcenter.NewUseCase(settingsRepo, retell.NewClient(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RepUC:         repUC,
		SubmissionUC:  submissionUC,
		SettingsUC:    settingsUC,
		StatsUC:       statsUC,
		CallCenterUC:  callCenterUC,
		SessionSecret: cfg.Auth.SessionSecret,
		Issuer:        cfg.Auth.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
