//go:build integration_pg

package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"chargemap/internal/platform/testkit/pgtest"

	"github.com/rs/zerolog"
)

func openTestPG(t *testing.T) *pgAdapter {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	s := &Store{Log: zerolog.New(io.Discard)}
	cfg := Config{PG: PGConfig{URL: pgtest.Start(t), MaxConns: 2, LogSQL: true}}
	txr, err := openPG(ctx, cfg, s)
	if err != nil {
		t.Fatalf("openPG failed: %v", err)
	}
	a, ok := txr.(*pgAdapter)
	if !ok {
		t.Fatalf("openPG did not return *pgAdapter, got %T", txr)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSQLAdapterIntegrationExecQuery(t *testing.T) {
	a := openTestPG(t)
	ctx := context.Background()

	if _, err := a.Exec(ctx, `CREATE TABLE adapter_t (id SERIAL PRIMARY KEY, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	tag, err := a.Exec(ctx, `INSERT INTO adapter_t (name) VALUES ($1), ($2)`, "zoe", "ada")
	if err != nil || tag.RowsAffected() != 2 {
		t.Fatalf("insert: %v %v", tag, err)
	}

	first, err := Scalar[string](ctx, a, `SELECT name FROM adapter_t WHERE id=$1`, 1)
	if err != nil || first != "zoe" {
		t.Fatalf("scalar = %q, %v", first, err)
	}

	rs, err := a.Query(ctx, `SELECT id, name FROM adapter_t ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	cols := rs.Columns()
	rs.Close()
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "name" {
		t.Fatalf("columns mismatch: %#v", cols)
	}

	names, err := Many(ctx, a, func(r Row) (string, error) {
		var id int
		var n string
		return n, r.Scan(&id, &n)
	}, `SELECT id, name FROM adapter_t ORDER BY id`)
	if err != nil || len(names) != 2 || names[1] != "ada" {
		t.Fatalf("many = %v, %v", names, err)
	}

	if err := ExecOne(ctx, a, `UPDATE adapter_t SET name = 'x' WHERE id = 99`); err == nil {
		t.Fatalf("ExecOne on missing row should fail")
	}
}

func TestSQLAdapterIntegrationTx(t *testing.T) {
	a := openTestPG(t)
	ctx := context.Background()

	if _, err := a.Exec(ctx, `CREATE TABLE adapter_tx (id SERIAL PRIMARY KEY, val INT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := a.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `INSERT INTO adapter_tx (val) VALUES (10)`)
		return err
	}); err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	errRollback := errors.New("rollback")
	err := a.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO adapter_tx (val) VALUES (20)`); err != nil {
			return err
		}
		return errRollback
	})
	if !errors.Is(err, errRollback) {
		t.Fatalf("tx should return fn error, got %v", err)
	}

	for val, want := range map[int]int{10: 1, 20: 0} {
		n, err := Scalar[int64](ctx, a, `SELECT COUNT(*) FROM adapter_tx WHERE val=$1`, val)
		if err != nil || n != int64(want) {
			t.Fatalf("val %d: count = %d, %v", val, n, err)
		}
	}

	s := &Store{PG: a}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("guard: %v", err)
	}
}
