package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/image-api/internal/config"
)

var (
	mu           sync.RWMutex
	globalLogger *zerolog.Logger
)

// GetLogger returns the logger installed by New, or an info level console logger
// when New has not been called yet.
func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return build(os.Stdout, "console", zerolog.InfoLevel)
	}
	return *globalLogger
}

// New constructs the service logger from configuration and installs it as the global logger.
// Unknown levels fall back to info and unknown formats to json.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(cfg *config.Config, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log := build(out, cfg.LogFormat, lvl).With().Str("service", cfg.ServiceName).Logger()

	mu.Lock()
	globalLogger = &log
	mu.Unlock()

	return log
}

func build(out io.Writer, format string, lvl zerolog.Level) zerolog.Logger {
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}
