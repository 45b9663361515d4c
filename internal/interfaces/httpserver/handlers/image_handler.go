package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"jan-server/services/image-api/internal/domain/image"
	"jan-server/services/image-api/internal/infrastructure/auth"
	"jan-server/services/image-api/internal/infrastructure/metrics"
	"jan-server/services/image-api/internal/infrastructure/observability"
	"jan-server/services/image-api/internal/infrastructure/telemetry"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ImageGenerator is the domain surface the handler depends on.
type ImageGenerator interface {
	Generate(ctx context.Context, req *image.ImageRequest) (*image.ImageResponse, error)
}

// ImageHandler runs image generation with tracing, logging and metrics around the domain call.
type ImageHandler struct {
	generator   ImageGenerator
	sanitizer   *telemetry.Sanitizer
	serviceName string
	log         zerolog.Logger
}

// NewImageHandler creates a new ImageHandler instance.
func NewImageHandler(generator ImageGenerator, sanitizer *telemetry.Sanitizer, serviceName string, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		generator:   generator,
		sanitizer:   sanitizer,
		serviceName: serviceName,
		log:         log.With().Str("component", "image-handler").Logger(),
	}
}

// GenerateImage handles one generation request.
func (h *ImageHandler) GenerateImage(ctx context.Context, req *image.ImageRequest) (*image.ImageResponse, error) {
	ctx, span := observability.StartSpan(ctx, h.serviceName, "ImageHandler.GenerateImage")
	defer span.End()

	startTime := time.Now()

	observability.AddSpanAttributes(ctx, observability.RequestAttributes(req)...)

	event := h.log.Info()
	if principal, ok := auth.PrincipalFromContext(ctx); ok {
		event = event.Str("subject", h.sanitizer.SanitizeUserID(principal.Subject))
	}
	event.
		Str("user_id", h.sanitizer.SanitizeUserID(req.UserID)).
		Str("model", req.Model).
		Int("width", req.Width).
		Int("height", req.Height).
		Str("quality", req.Quality).
		Str("style", req.Style).
		Int("n", req.NumImages).
		Str("prompt", h.sanitizer.SanitizePrompt(req.Prompt)).
		Msg("processing image generation request")

	resp, err := h.generator.Generate(ctx, req)
	if err != nil {
		observability.RecordError(ctx, err)

		outcome := metrics.OutcomeError
		if platformerrors.IsValidationError(err) {
			outcome = metrics.OutcomeInvalid
		}
		metrics.RecordGeneration(req.Model, outcome, 0)

		if perr := platformerrors.GetPlatformError(err); perr != nil {
			platformerrors.LogError(h.log, perr)
		} else {
			h.log.Error().Err(err).Msg("image generation failed")
		}
		return nil, err
	}

	duration := time.Since(startTime)
	metrics.RecordGeneration(req.Model, metrics.OutcomeSuccess, len(resp.ImageURLs))

	h.log.Info().
		Int("image_count", len(resp.ImageURLs)).
		Dur("duration", duration).
		Msg("image generation completed")

	observability.AddSpanAttributes(ctx,
		observability.AttrGenerated.Int(len(resp.ImageURLs)),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	)

	return resp, nil
}
