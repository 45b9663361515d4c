//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/auth"
	"jan-server/services/image-api/internal/infrastructure/inference"
	"jan-server/services/image-api/internal/infrastructure/logger"
	"jan-server/services/image-api/internal/interfaces/httpserver"
)

var imageSet = wire.NewSet(
	newSanitizer,
	inference.NewProvider,
	image.NewValidator,
	image.NewService,
)

// BuildApplication assembles the image service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newAuthValidator,
		imageSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
