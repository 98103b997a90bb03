package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// openTestDB opens a pool against dsn and closes it on cleanup
func openTestDB(t *testing.T, dsn string, opts ...Option) *PG {
	t.Helper()
	p, err := Open(context.Background(), Config{URL: dsn, AppName: "chargemap-pg-integration"}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(p.Close)
	return p
}

// acquire pins one session so temp tables survive between statements
func acquire(ctx context.Context, t *testing.T, p *PG) *pgxpool.Conn {
	t.Helper()
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(conn.Release)
	return conn
}
