//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"chargemap/internal/platform/store"
	"chargemap/internal/platform/testkit/pgtest"
	"chargemap/internal/services/api/ratings/domain"
)

func openPGRepo(t *testing.T) Repo {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	st, err := store.Open(ctx, store.Config{
		AppName: "chargemap-ratings-it",
		Driver:  store.DriverPG,
		PG:      store.PGConfig{Enabled: true, URL: pgtest.Start(t), MaxConns: 4},
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

func TestPGRatingsLifecycleIntegration(t *testing.T) {
	r := openPGRepo(t)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Microsecond)

	rec, err := r.Save(ctx, domain.NewRating{StationID: "s1", UserID: "u1", Username: "ada", Value: 4, Comment: "ok", Timestamp: at})
	if err != nil || rec.ID == "" || !rec.Timestamp.Equal(at) {
		t.Fatalf("Save = %+v, %v", rec, err)
	}
	if _, err := r.Save(ctx, domain.NewRating{StationID: "s1", UserID: "u2", Value: 2, Timestamp: at.Add(time.Second)}); err != nil {
		t.Fatal(err)
	}

	list, err := r.ListByStation(ctx, "s1", 10)
	if err != nil || len(list) != 2 || list[0].ID != rec.ID {
		t.Fatalf("list = %+v, %v", list, err)
	}
	if _, first, err := r.SaveIfFirst(ctx, domain.NewRating{StationID: "s1", UserID: "u1", Value: 1, Timestamp: at}); err != nil || first {
		t.Fatalf("repeat rating = %v, %v", first, err)
	}
	if _, first, err := r.SaveIfFirst(ctx, domain.NewRating{StationID: "s1", UserID: "u3", Value: 5, Timestamp: at.Add(2 * time.Second)}); err != nil || !first {
		t.Fatalf("first rating = %v, %v", first, err)
	}

	c := "better"
	ok, err := r.Update(ctx, rec.ID, domain.Patch{Comment: &c, UpdatedAt: at.Add(time.Minute)})
	if err != nil || !ok {
		t.Fatalf("Update = %v, %v", ok, err)
	}
	got, _ := r.GetByID(ctx, rec.ID)
	if got.Comment != "better" || got.Value != 4 || got.UpdatedAt.IsZero() {
		t.Fatalf("after update = %+v", got)
	}

	if ok, _ := r.Delete(ctx, rec.ID); !ok {
		t.Fatal("delete reported no match")
	}
	if ok, _ := r.Delete(ctx, rec.ID); ok {
		t.Fatal("second delete should report no match")
	}
	if got, _ := r.GetByID(ctx, rec.ID); got != nil {
		t.Fatal("deleted rating still readable")
	}
}
