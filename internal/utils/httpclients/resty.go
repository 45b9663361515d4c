package httpclients

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"jan-server/services/image-api/internal/utils/platformerrors"
)

const requestIDHeader = "X-Request-Id"

type httpClientStartsAt struct{}

// NewClient builds a resty client that forwards the inbound request ID and
// logs every round trip at debug level.
func NewClient(clientName string, timeout time.Duration, log zerolog.Logger) *resty.Client {
	log = log.With().Str("client", clientName).Logger()

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)

	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		ctx := context.WithValue(r.Context(), httpClientStartsAt{}, time.Now())
		if requestID, ok := ctx.Value(platformerrors.RequestIDKey{}).(string); ok && requestID != "" {
			r.SetHeader(requestIDHeader, requestID)
		}
		r.SetContext(ctx)
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		startTime, _ := r.Request.Context().Value(httpClientStartsAt{}).(time.Time)
		requestID, _ := r.Request.Context().Value(platformerrors.RequestIDKey{}).(string)

		event := log.Debug().
			Str("request_id", requestID).
			Int("status", r.StatusCode()).
			Dur("latency", time.Since(startTime))
		if raw := r.Request.RawRequest; raw != nil {
			event = event.Str("method", raw.Method).Str("path", raw.URL.Path)
		}
		event.Msg("HTTP client request")
		return nil
	})
	return client
}
