// Package logger provides a structured, levelled logger built on log/slog.
//
// Handlers are chosen from APP_ENV: human-readable text in development, JSON
// in production. WithCtx returns a logger pre-tagged with the request ID so
// every log line from a handler is correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("review created", "review_id", review.ReviewID)
//	// → time=... level=INFO msg="review created" request_id=a1b2c3d4 review_id=17
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/gbvars988/SoilFullStack/config"
)

var L *slog.Logger

func init() {
	Setup()
}

// Setup (re)builds the base logger from APP_ENV. Called once at package init
// and again after the configuration files have been loaded.
func Setup() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key under which a per-request logger is stored.
type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger injected by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware; rarely needed in application code.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
