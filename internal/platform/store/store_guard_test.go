package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// plainTx is a TxRunner without Ping
type plainTx struct{}

func (plainTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return fn(plainTx{}) }
func (plainTx) Exec(context.Context, string, ...any) (CommandTag, error) {
	return cmdTag{"SELECT 1", 1}, nil
}
func (plainTx) Query(context.Context, string, ...any) (Rows, error) { return newIntRows(), nil }
func (plainTx) QueryRow(context.Context, string, ...any) Row {
	return rowFunc(func(...any) error { return nil })
}

type pingTx struct {
	plainTx
	err error
}

func (p pingTx) Ping(context.Context) error { return p.err }

func TestGuard(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	cases := []struct {
		name   string
		store  *Store
		prefix []string
	}{
		{"no seams", &Store{}, nil},
		{"pg without ping is trusted", &Store{PG: plainTx{}}, nil},
		{"pg answers", &Store{PG: pingTx{}}, nil},
		{"pg down", &Store{PG: pingTx{err: refused}}, []string{"pg: "}},
		{"pg and clickhouse down", &Store{PG: pingTx{err: refused}, CH: newCHAdapter(&fakeCH{pingErr: refused})}, []string{"pg: ", "clickhouse: "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.store.Guard(context.Background())
			if len(tc.prefix) == 0 {
				if err != nil {
					t.Fatalf("Guard = %v", err)
				}
				return
			}
			if !errors.Is(err, refused) {
				t.Fatalf("Guard = %v, want the ping error", err)
			}
			for _, p := range tc.prefix {
				if !strings.Contains(err.Error(), p) {
					t.Fatalf("Guard error %q lacks %q", err, p)
				}
			}
		})
	}

	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatal("nil store must fail")
	}
}
