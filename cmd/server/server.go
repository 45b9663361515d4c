package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/auth"
	"jan-server/services/image-api/internal/infrastructure/inference"
	"jan-server/services/image-api/internal/infrastructure/logger"
	"jan-server/services/image-api/internal/infrastructure/observability"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
	"jan-server/services/image-api/internal/interfaces/httpserver"
)

// @title Image API
// @version 1.0
// @description Validates image generation requests and forwards them to a text-to-image provider
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	sanitizer := newSanitizer(cfg)
	provider, err := inference.NewProvider(cfg, sanitizer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize image provider")
	}
	log.Info().Str("provider", cfg.ImageProvider).Msg("image provider configured")

	imageService := image.NewService(image.NewValidator(), provider)

	httpServer := httpserver.New(cfg, log, imageService, sanitizer, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newSanitizer(cfg *config.Config) *telemetry.Sanitizer {
	return telemetry.NewSanitizer(telemetry.ParsePIILevel(cfg.TelemetryPIILevel), cfg.ServiceName)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
