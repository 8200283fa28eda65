package logs

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bizdesk/config"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger on stdout. Every record carries the service
// name and environment; debug mode adds the source location.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: env.Debug}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", env.ServiceName),
		slog.String("env", env.Env),
	), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
