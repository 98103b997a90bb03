package store

import (
	"context"
	"fmt"
	"time"

	chx "chargemap/internal/platform/store/ch"
	"chargemap/internal/platform/store/fs"
	"chargemap/internal/platform/store/mg"
	"chargemap/internal/platform/store/pg"
)

// sleep is swapped in tests
var sleep = time.Sleep

// pingWithRetry pings until healthy, ctx is done, or attempts run out
func pingWithRetry(ctx context.Context, name string, ping func(context.Context) error) error {
	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = ping(toCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}
	return fmt.Errorf("%s ping failed after %d attempts: %w", name, maxAttempts, lastErr)
}

// openPG opens pg and wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var opts []pg.Option
	if cfg.PG.LogSQL {
		opts = append(opts, pg.WithTracer(pg.Tracer(s.Log)))
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:       cfg.PG.URL,
		AppName:   cfg.AppName,
		MaxConns:  cfg.PG.MaxConns,
		SlowQuery: cfg.PG.SlowQuery,
	}, opts...)
	if err != nil {
		return nil, err
	}

	// ping the pool directly so boot retries do not show up as traced SQL
	if err := pingWithRetry(ctx, "postgres", p.Pool.Ping); err != nil {
		p.Close()
		return nil, err
	}
	a := newPGAdapter(p)
	s.PG = a
	return a, nil
}

func openMongo(ctx context.Context, cfg Config) (*mg.MG, error) {
	m, err := mg.Open(ctx, mg.Config{
		URI:             cfg.Mongo.URI,
		Database:        cfg.Mongo.Database,
		AppName:         cfg.AppName,
		ServerSelection: pingTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := pingWithRetry(ctx, "mongo", m.Ping); err != nil {
		_ = m.Close(context.WithoutCancel(ctx))
		return nil, err
	}
	return m, nil
}

// firestore has no cheap health probe at boot, readiness covers it
func openFS(ctx context.Context, cfg Config) (*fs.FS, error) {
	return fs.Open(ctx, fs.Config{
		ProjectID:   cfg.Firestore.ProjectID,
		Credentials: cfg.Firestore.Credentials,
	})
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
