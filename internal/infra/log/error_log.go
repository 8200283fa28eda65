package logs

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"bizdesk/config"
	"bizdesk/internal/errors"
)

// ErrorLog is the append-only error sink. Every failed request writes one JSON line to it.
type ErrorLog struct {
	*slog.Logger
}

// ErrorLogParams defines the parameters required for the error sink
type ErrorLogParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewErrorLog opens env.log.errorFile for appending, or falls back to stderr when unset.
// The file is closed when the application stops.
func NewErrorLog(params ErrorLogParams) (*ErrorLog, error) {
	path := params.Config.Env.Log.ErrorFile
	if path == "" {
		return NewErrorLogWriter(os.Stderr), nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, errors.Wrapf(err, "open error log %s", path)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(file.Close())
		},
	})

	return NewErrorLogWriter(file), nil
}

// NewErrorLogWriter builds an error sink on top of an arbitrary writer.
func NewErrorLogWriter(w io.Writer) *ErrorLog {
	return &ErrorLog{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}
