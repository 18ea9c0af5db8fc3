package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// WithLogger binds an invocation-scoped logger to ctx.
func WithLogger(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext falls back to the global logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
			return log
		}
	}
	return zap.S()
}
