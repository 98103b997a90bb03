package store

import (
	"context"
	"errors"

	"chargemap/internal/platform/store/ch"
)

// chClient is the part of *ch.CH the adapter needs
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

func newCHAdapter(c chClient) Clickhouse {
	return &chAdapter{c: c}
}

// chAdapter adapts a ch client to the store.Clickhouse seam
type chAdapter struct {
	c chClient
}

var _ Clickhouse = (*chAdapter)(nil)

func (a *chAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.c.Insert(ctx, table, rows)
}

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r: r}, nil
}

// Exec forwards to clients that can run statements
func (a *chAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	if e, ok := a.c.(Execer); ok {
		return e.Exec(ctx, sql, args...)
	}
	return errors.New("store: clickhouse client cannot exec")
}

func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.c == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.c.Ping(ctx)
}

func (a *chAdapter) Close() error { return a.c.Close() }

// chRows wraps ch.Rows as store.Rows
type chRows struct{ r ch.Rows }

func (x chRows) Next() bool             { return x.r.Next() }
func (x chRows) Scan(dest ...any) error { return x.r.Scan(dest...) }
func (x chRows) Err() error             { return x.r.Err() }
func (x chRows) Close()                 { _ = x.r.Close() }
func (x chRows) Columns() []string      { return x.r.Columns() }
