package repokit

import (
	"context"
	"testing"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
)

type nopQ struct{}

func (nopQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }

type stationRepo struct{ q Queryer }

func TestBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[*stationRepo](func(q Queryer) *stationRepo { return &stationRepo{q: q} })

	r, err := Bind[*stationRepo]("stations", b, nopQ{})
	if err != nil || r == nil || r.q == nil {
		t.Fatalf("Bind = %+v, %v", r, err)
	}

	r, err = Bind[*stationRepo]("stations", b, nil)
	if r != nil || !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil handle = %+v, %v", r, err)
	}
}
