package repo

import (
	"testing"

	"chargemap/internal/modkit"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
	"chargemap/internal/services/api/stations/domain"
)

func TestClampLimit(t *testing.T) {
	t.Parallel()

	cases := map[int]int{-1: DefaultLimit, 0: DefaultLimit, 1: 1, 250: 250, MaxLimit: MaxLimit, MaxLimit + 1: MaxLimit}
	for in, want := range cases {
		if got := ClampLimit(in); got != want {
			t.Fatalf("ClampLimit(%d) = %d want %d", in, got, want)
		}
	}
}

func TestRowStation(t *testing.T) {
	t.Parallel()

	s := Row{ID: "a", PostalCode: "10115", Available: true, Latitude: 52.53, Longitude: 13.38}.Station()
	if s.Name != domain.DefaultStationName || s.Location != "52.53, 13.38" || !s.Available {
		t.Fatalf("station = %+v", s)
	}
	if s := (Row{Name: "Hub"}).Station(); s.Name != "Hub" {
		t.Fatalf("name overwritten: %q", s.Name)
	}
}

func TestFromDeps(t *testing.T) {
	t.Parallel()

	if r, err := FromDeps(modkit.Deps{}); err != nil {
		t.Fatalf("memory default: %v", err)
	} else if _, ok := r.(*Memory); !ok {
		t.Fatalf("default repo = %T", r)
	}

	for _, drv := range []store.Driver{store.DriverPG, store.DriverMongo, store.DriverFirestore} {
		if _, err := FromDeps(modkit.Deps{Driver: drv}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("%s without handle: %v", drv, err)
		}
	}
	if _, err := FromDeps(modkit.Deps{Driver: "cassandra"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown driver: %v", err)
	}

	r, err := FromDeps(modkit.Deps{Driver: store.DriverPG, PG: &fakeTx{}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*queries); !ok {
		t.Fatalf("pg repo = %T", r)
	}
}
