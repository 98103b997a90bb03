package pg

import (
	"context"
	"strings"

	"chargemap/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one statement round trip
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// TracerFunc adapts a plain function to QueryTracer
type TracerFunc func(ctx context.Context, ev QueryEvent)

func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// Tracer logs every statement through root regardless of the process level
// failed statements log at error, slow ones at warn, the rest at info
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	switch {
	case ev.Err != nil:
		evt = z.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = z.log.Warn()
	}

	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// compact folds runs of whitespace into one space and trims the ends
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
