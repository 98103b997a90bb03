// Package pg opens the pgx pool that backs the postgres station and rating repos
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	// SlowQuery marks statements at or above it as slow in traces
	SlowQuery time.Duration
}

// PG holds the pool and what the sql adapter needs to trace it
type PG struct {
	Pool      *pgxpool.Pool
	Tracer    QueryTracer
	SlowQuery time.Duration
}

// Option customises Open
type Option func(*options)

type options struct {
	tracer QueryTracer
	mutate []func(*pgxpool.Config)
}

// WithTracer reports every statement to t
func WithTracer(t QueryTracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithPoolConfig edits the parsed pool config before connecting
func WithPoolConfig(fn func(*pgxpool.Config)) Option {
	return func(o *options) {
		if fn != nil {
			o.mutate = append(o.mutate, fn)
		}
	}
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds the pool; it does not wait for a connection
func Open(ctx context.Context, cfg Config, opts ...Option) (*PG, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		if pcfg.ConnConfig.RuntimeParams == nil {
			pcfg.ConnConfig.RuntimeParams = map[string]string{}
		}
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	for _, fn := range o.mutate {
		fn(pcfg)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: o.tracer, SlowQuery: cfg.SlowQuery}, nil
}

// Close closes the pool; safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
