package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx retrieves the request logger from the context, falling back to the
// global logger.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}

// WithEntity returns a child of the context logger tagged with the id entity.
func WithEntity(ctx context.Context, entity string) (context.Context, zerolog.Logger) {
	l := Ctx(ctx).With().Str(FieldEntity, entity).Logger()
	return WithLogger(ctx, l), l
}
