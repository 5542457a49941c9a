package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "github.com/rocketscienceinc/tictactoe-client"

// New returns a logger writing JSON to w and forwarding every record to the global
// OpenTelemetry logger provider, which drops them until telemetry is initialized.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewFanoutHandler(
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
		levelFilter{Handler: otelslog.NewHandler(instrumentationName), level: level},
	))
}

// ParseLevel maps the configured level name; unknown names mean warn.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// FanoutHandler dispatches every record to each handler that accepts its level.
type FanoutHandler struct {
	handlers []slog.Handler
}

func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

func (that *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range that.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (that *FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range that.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (that *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(that.handlers))
	for i, handler := range that.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}

	return NewFanoutHandler(handlers...)
}

func (that *FanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(that.handlers))
	for i, handler := range that.handlers {
		handlers[i] = handler.WithGroup(name)
	}

	return NewFanoutHandler(handlers...)
}

type levelFilter struct {
	slog.Handler
	level slog.Level
}

func (that levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= that.level && that.Handler.Enabled(ctx, level)
}

func (that levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{Handler: that.Handler.WithAttrs(attrs), level: that.level}
}

func (that levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{Handler: that.Handler.WithGroup(name), level: that.level}
}
