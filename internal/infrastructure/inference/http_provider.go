package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/metrics"
	"jan-server/services/image-api/internal/infrastructure/observability"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
	"jan-server/services/image-api/internal/utils/httpclients"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ProviderNameHTTP labels metrics and logs for the generic HTTP provider.
const ProviderNameHTTP = "http"

// HTTPImageProvider calls any OpenAI-compatible /images/generations endpoint.
type HTTPImageProvider struct {
	client    *resty.Client
	endpoint  string
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

type generationRequest struct {
	Prompt         string `json:"prompt"`
	Model          string `json:"model,omitempty"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	Style          string `json:"style,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	User           string `json:"user,omitempty"`
}

type generationResponse struct {
	Created int64              `json:"created"`
	Data    []generationData   `json:"data"`
	Error   *generationErrBody `json:"error,omitempty"`
}

type generationData struct {
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type generationErrBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// NewHTTPImageProvider creates a provider posting to baseURL.
func NewHTTPImageProvider(baseURL, apiKey string, timeout time.Duration, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *HTTPImageProvider {
	client := httpclients.NewClient("image-provider", timeout, log)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &HTTPImageProvider{
		client:    client,
		endpoint:  joinEndpoint(baseURL, "/images/generations"),
		sanitizer: sanitizer,
		log:       log.With().Str("component", "http-image-provider").Logger(),
	}
}

// Call implements image.Provider.
func (p *HTTPImageProvider) Call(ctx context.Context, prompt string, opts image.GenerationOptions) (*image.GenerationResult, error) {
	body := generationRequest{
		Prompt:         prompt,
		Model:          opts.Model,
		N:              opts.N,
		Size:           sizeOf(opts),
		Quality:        opts.Quality,
		Style:          opts.Style,
		ResponseFormat: "url",
		User:           opts.User,
	}

	p.log.Debug().
		Str("endpoint", p.endpoint).
		Str("model", body.Model).
		Str("size", body.Size).
		Int("n", body.N).
		Str("prompt", p.sanitizer.SanitizePrompt(prompt)).
		Msg("calling image provider")

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(p.endpoint)
	metrics.RecordProviderCall(ProviderNameHTTP, opts.Model, time.Since(start).Seconds())
	if err != nil {
		p.log.Error().Err(err).Str("endpoint", p.endpoint).Msg("image provider call failed")
		return nil, p.fail(ctx, opts, fmt.Sprintf("image provider call failed: %v", err), err, "http-provider-error")
	}

	respBytes := resp.Bytes()
	if resp.StatusCode() >= 400 {
		var errResp generationResponse
		if parseErr := json.Unmarshal(respBytes, &errResp); parseErr == nil && errResp.Error != nil {
			return nil, p.fail(ctx, opts, fmt.Sprintf("image provider error: %s", errResp.Error.Message), nil, "http-provider-error")
		}
		return nil, p.fail(ctx, opts,
			fmt.Sprintf("image provider returned status %d: %s", resp.StatusCode(), strings.TrimSpace(string(respBytes))),
			nil, "http-provider-http-error")
	}

	var parsed generationResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		p.log.Error().Err(err).Msg("failed to parse image provider response")
		return nil, p.fail(ctx, opts, "failed to parse image provider response", err, "http-provider-parse-error")
	}

	result := &image.GenerationResult{Items: make([]image.GenerationItem, 0, len(parsed.Data))}
	for _, item := range parsed.Data {
		result.Items = append(result.Items, image.GenerationItem{
			URL:           item.URL,
			RevisedPrompt: item.RevisedPrompt,
		})
	}

	observability.RecordProviderCall(ctx, ProviderNameHTTP, opts, len(result.Items), nil)
	p.log.Debug().Int("image_count", len(result.Items)).Msg("image provider response received")
	return result, nil
}

func (p *HTTPImageProvider) fail(ctx context.Context, opts image.GenerationOptions, message string, cause error, code string) error {
	metrics.RecordProviderError(ProviderNameHTTP, string(platformerrors.ErrorTypeExternal))
	err := platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, message, cause, code,
		map[string]any{"provider": ProviderNameHTTP, "endpoint": p.endpoint})
	observability.RecordProviderCall(ctx, ProviderNameHTTP, opts, 0, err)
	return err
}

// joinEndpoint appends path to baseURL, inserting /v1 when the base lacks it.
func joinEndpoint(baseURL, path string) string {
	trimmedBase := strings.TrimSuffix(baseURL, "/")
	normalizedPath := "/" + strings.TrimPrefix(path, "/")
	if strings.HasSuffix(trimmedBase, "/v1") {
		return trimmedBase + normalizedPath
	}
	return trimmedBase + "/v1" + normalizedPath
}
