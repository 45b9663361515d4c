package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"jan-server/services/image-api/internal/domain/image"
)

// Span attribute keys for image generation. Prompt and user never appear on spans.
const (
	AttrModel     = attribute.Key("image.model")
	AttrWidth     = attribute.Key("image.width")
	AttrHeight    = attribute.Key("image.height")
	AttrQuality   = attribute.Key("image.quality")
	AttrStyle     = attribute.Key("image.style")
	AttrRequested = attribute.Key("image.requested")
	AttrGenerated = attribute.Key("image.generated")
	AttrProvider  = attribute.Key("image.provider")
)

const (
	EventProviderOK   = "image.provider.response"
	EventProviderFail = "image.provider.error"
)

// StartSpan starts a span on the named tracer.
func StartSpan(ctx context.Context, tracerName, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, opts...)
}

// RequestAttributes describes req for span attributes.
func RequestAttributes(req *image.ImageRequest) []attribute.KeyValue {
	if req == nil {
		return nil
	}
	return []attribute.KeyValue{
		AttrModel.String(req.Model),
		AttrWidth.Int(req.Width),
		AttrHeight.Int(req.Height),
		AttrQuality.String(req.Quality),
		AttrStyle.String(req.Style),
		AttrRequested.Int(req.NumImages),
	}
}

// AddSpanAttributes sets attributes on the span in ctx, if it is recording.
func AddSpanAttributes(ctx context.Context, attributes ...attribute.KeyValue) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(attributes...)
	}
}

// RecordProviderCall adds a provider round trip event to the span in ctx.
func RecordProviderCall(ctx context.Context, provider string, opts image.GenerationOptions, generated int, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		AttrProvider.String(provider),
		AttrModel.String(opts.Model),
		AttrRequested.Int(opts.N),
	}
	if err != nil {
		span.AddEvent(EventProviderFail, trace.WithAttributes(append(attrs, attribute.String("error", err.Error()))...))
		return
	}
	span.AddEvent(EventProviderOK, trace.WithAttributes(append(attrs, AttrGenerated.Int(generated))...))
}

// RecordError records err on the span in ctx and marks the span failed.
func RecordError(ctx context.Context, err error) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// TraceIDs returns the trace and span IDs carried by ctx, or empty strings.
func TraceIDs(ctx context.Context) (traceID, spanID string) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", ""
	}
	return sc.TraceID().String(), sc.SpanID().String()
}
