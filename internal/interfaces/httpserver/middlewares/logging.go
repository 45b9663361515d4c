package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/infrastructure/observability"
)

// quietPaths are health and scrape endpoints logged at debug level only.
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// LoggingMiddleware writes one access log line per request. The level follows
// the response status: error for 5xx, warn for 4xx, info otherwise.
func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			if _, quiet := quietPaths[c.Request.URL.Path]; quiet {
				event = logger.Debug()
			} else {
				event = logger.Info()
			}
		}

		if traceID, spanID := observability.TraceIDs(c.Request.Context()); traceID != "" {
			event = event.Str("trace_id", traceID).Str("span_id", spanID)
		}
		if requestID := RequestIDFromContext(c); requestID != "" {
			event = event.Str("request_id", requestID)
		}
		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}
		if last := c.Errors.Last(); last != nil {
			event = event.AnErr("error", last.Err)
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}
