package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"ucsbapi/config"
	"ucsbapi/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process logger and installs it as the slog default.
func New(params Params) (*slog.Logger, error) {
	logger, err := NewWithWriter(params.Config, os.Stdout)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return logger, nil
}

// NewWithWriter builds a text (pretty) or JSON logger tagged with service and env.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.Env.ServiceName),
		slog.String("env", cfg.Env.Env),
	), nil
}

// parseLogLevel converts string log level to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
