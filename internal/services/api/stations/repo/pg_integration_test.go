//go:build integration_pg

package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"chargemap/internal/platform/store"
	"chargemap/internal/platform/testkit/pgtest"
	"chargemap/internal/services/api/stations/domain"
)

func openPGRepo(t *testing.T) Repo {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	st, err := store.Open(ctx, store.Config{
		AppName: "chargemap-stations-it",
		Driver:  store.DriverPG,
		PG:      store.PGConfig{Enabled: true, URL: pgtest.Start(t), MaxConns: 8},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := st.PG.Exec(ctx, Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return NewPG().Bind(st.PG)
}

func TestPGStationsIntegration(t *testing.T) {
	r := openPGRepo(t)
	ctx := context.Background()

	n, err := r.Import(ctx, []domain.NewStation{
		{PostalCode: "10115", Available: true, Latitude: 52.53, Longitude: 13.38, Name: "A"},
		{PostalCode: "10115", Available: true, Latitude: 52.54, Longitude: 13.39},
		{PostalCode: "12043", Available: false, Latitude: 52.48, Longitude: 13.43, Name: "C"},
	})
	if err != nil || n != 3 {
		t.Fatalf("Import = %d, %v", n, err)
	}

	rows, err := r.FindByPostalCode(ctx, "10115", 10)
	if err != nil || len(rows) != 2 || rows[0].Name != "A" {
		t.Fatalf("find = %+v, %v", rows, err)
	}
	if one, _ := r.FindByPostalCode(ctx, "10115", 1); len(one) != 1 {
		t.Fatalf("limit ignored: %d", len(one))
	}

	got, err := r.FindByID(ctx, rows[1].ID)
	if err != nil || got == nil || got.Station().Name != domain.DefaultStationName {
		t.Fatalf("FindByID = %+v, %v", got, err)
	}
	if got, err := r.FindByID(ctx, "3f1c2f3e-8a55-4f39-9d43-1b0e4c9e2a11"); got != nil || err != nil {
		t.Fatalf("absent = %v, %v", got, err)
	}

	st, found, err := r.ToggleAvailability(ctx, rows[0].ID)
	if err != nil || !found || st {
		t.Fatalf("toggle = %v %v %v", st, found, err)
	}
}

func TestPGToggleConcurrentIntegration(t *testing.T) {
	r := openPGRepo(t)
	ctx := context.Background()

	if _, err := r.Import(ctx, []domain.NewStation{{PostalCode: "13055", Available: true}}); err != nil {
		t.Fatal(err)
	}
	rows, _ := r.FindByPostalCode(ctx, "13055", 1)
	id := rows[0].ID

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := r.ToggleAvailability(ctx, id); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("toggle: %v", err)
	}

	got, _ := r.FindByID(ctx, id)
	if !got.Available {
		t.Fatal("an even number of atomic flips from true must land true")
	}
}
