package handlers

import (
	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Image *ImageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(cfg *config.Config, imageService *image.Service, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *Provider {
	return &Provider{
		Image: NewImageHandler(imageService, sanitizer, cfg.ServiceName, log),
	}
}
