package inference

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
)

// NewProvider selects the image provider named by IMAGE_PROVIDER.
func NewProvider(cfg *config.Config, sanitizer *telemetry.Sanitizer, log zerolog.Logger) (image.Provider, error) {
	switch strings.ToLower(cfg.ImageProvider) {
	case config.ProviderOpenAI:
		return NewOpenAIImageProvider(cfg.ImageProviderAPIKey, cfg.ImageProviderBaseURL, cfg.ImageProviderTimeout, sanitizer, log), nil
	case config.ProviderHTTP:
		if cfg.ImageProviderBaseURL == "" {
			return nil, fmt.Errorf("image provider %q requires a base URL", config.ProviderHTTP)
		}
		return NewHTTPImageProvider(cfg.ImageProviderBaseURL, cfg.ImageProviderAPIKey, cfg.ImageProviderTimeout, sanitizer, log), nil
	default:
		return nil, fmt.Errorf("unsupported image provider %q", cfg.ImageProvider)
	}
}
