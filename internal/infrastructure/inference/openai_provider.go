package inference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/metrics"
	"jan-server/services/image-api/internal/infrastructure/observability"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ProviderNameOpenAI labels metrics and logs for the OpenAI SDK provider.
const ProviderNameOpenAI = "openai"

// OpenAIImageProvider calls the OpenAI Images API through go-openai.
type OpenAIImageProvider struct {
	client    *openai.Client
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewOpenAIImageProvider creates a provider against baseURL, or the public
// OpenAI endpoint when baseURL is empty.
func NewOpenAIImageProvider(apiKey, baseURL string, timeout time.Duration, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *OpenAIImageProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIImageProvider{
		client:    openai.NewClientWithConfig(cfg),
		sanitizer: sanitizer,
		log:       log.With().Str("component", "openai-image-provider").Logger(),
	}
}

// Call implements image.Provider.
func (p *OpenAIImageProvider) Call(ctx context.Context, prompt string, opts image.GenerationOptions) (*image.GenerationResult, error) {
	request := openai.ImageRequest{
		Prompt:         prompt,
		Model:          opts.Model,
		N:              opts.N,
		Quality:        opts.Quality,
		Size:           sizeOf(opts),
		Style:          opts.Style,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		User:           opts.User,
	}

	p.log.Debug().
		Str("model", request.Model).
		Str("size", request.Size).
		Int("n", request.N).
		Str("prompt", p.sanitizer.SanitizePrompt(prompt)).
		Msg("calling image provider")

	start := time.Now()
	resp, err := p.client.CreateImage(ctx, request)
	metrics.RecordProviderCall(ProviderNameOpenAI, opts.Model, time.Since(start).Seconds())
	observability.RecordProviderCall(ctx, ProviderNameOpenAI, opts, len(resp.Data), err)
	if err != nil {
		metrics.RecordProviderError(ProviderNameOpenAI, string(platformerrors.ErrorTypeExternal))
		p.log.Error().Err(err).Str("model", request.Model).Msg("image provider call failed")

		message := fmt.Sprintf("image provider call failed: %v", err)
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			message = fmt.Sprintf("image provider error: %s", apiErr.Message)
		}
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, message, err, "openai-provider-error",
			map[string]any{"provider": ProviderNameOpenAI})
	}

	result := &image.GenerationResult{Items: make([]image.GenerationItem, 0, len(resp.Data))}
	for _, item := range resp.Data {
		result.Items = append(result.Items, image.GenerationItem{
			URL:           item.URL,
			RevisedPrompt: item.RevisedPrompt,
		})
	}

	p.log.Debug().Int("image_count", len(result.Items)).Msg("image provider response received")
	return result, nil
}

func sizeOf(opts image.GenerationOptions) string {
	return fmt.Sprintf("%dx%d", opts.Width, opts.Height)
}
