package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider kinds accepted by IMAGE_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderHTTP   = "http"
)

// Config holds the environment driven configuration for the image service.
type Config struct {
	ServiceName        string        `env:"SERVICE_NAME" envDefault:"image-api"`
	Environment        string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"8186"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"json"`
	EnableTracing      bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint       string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	TraceSampleRatio   float64       `env:"OTEL_TRACES_SAMPLER_ARG" envDefault:"1"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	TelemetryPIILevel  string        `env:"TELEMETRY_PII_LEVEL" envDefault:"hashed"`

	ImageProvider        string        `env:"IMAGE_PROVIDER" envDefault:"openai"`
	ImageProviderBaseURL string        `env:"IMAGE_PROVIDER_BASE_URL"`
	ImageProviderAPIKey  string        `env:"IMAGE_PROVIDER_API_KEY"`
	ImageProviderTimeout time.Duration `env:"IMAGE_PROVIDER_TIMEOUT" envDefault:"120s"`

	AuthEnabled       bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer        string `env:"AUTH_ISSUER"`
	AuthAudience      string `env:"AUTH_AUDIENCE"`
	AuthJWKSURL       string `env:"AUTH_JWKS_URL"`
	AuthRequiredScope string `env:"AUTH_REQUIRED_SCOPE"`
}

// Load parses environment variables into Config.
//
// Environment variables take precedence over .env files, which take
// precedence over the struct tag defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch strings.ToLower(c.ImageProvider) {
	case ProviderOpenAI:
	case ProviderHTTP:
		if strings.TrimSpace(c.ImageProviderBaseURL) == "" {
			return fmt.Errorf("IMAGE_PROVIDER_BASE_URL is required when IMAGE_PROVIDER is %q", ProviderHTTP)
		}
	default:
		return fmt.Errorf("unsupported IMAGE_PROVIDER %q", c.ImageProvider)
	}

	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_ARG must be between 0 and 1")
	}

	if c.ImageProviderTimeout <= 0 {
		return fmt.Errorf("IMAGE_PROVIDER_TIMEOUT must be positive")
	}

	if err := validateOrigins(c.CORSAllowedOrigins); err != nil {
		return err
	}

	if c.AuthEnabled {
		if strings.TrimSpace(c.AuthIssuer) == "" {
			return fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthAudience) == "" {
			return fmt.Errorf("AUTH_AUDIENCE is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthJWKSURL) == "" {
			return fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	return nil
}

// validateOrigins rejects values the CORS middleware would refuse at startup.
func validateOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, origin := range origins {
		if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
			continue
		}
		return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be * or start with http:// or https://", origin)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
