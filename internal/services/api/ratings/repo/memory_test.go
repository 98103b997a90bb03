package repo

import (
	"context"
	"testing"
	"time"

	"chargemap/internal/services/api/ratings/domain"
)

func save(t *testing.T, r Repo, station, user string, v int) domain.Record {
	t.Helper()
	rec, err := r.Save(context.Background(), domain.NewRating{
		StationID: station, UserID: user, Username: user + "-name", Value: v, Comment: "c",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return rec
}

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	rec := save(t, m, "s1", "u1", 4)
	if rec.ID == "" || rec.Timestamp.IsZero() {
		t.Fatalf("persisted record missing id or timestamp: %+v", rec)
	}
	got, err := m.GetByID(ctx, rec.ID)
	if err != nil || got == nil || *got != rec {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}

	v := 2
	at := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	ok, err := m.Update(ctx, rec.ID, domain.Patch{Value: &v, UpdatedAt: at})
	if err != nil || !ok {
		t.Fatalf("Update = %v, %v", ok, err)
	}
	got, _ = m.GetByID(ctx, rec.ID)
	if got.Value != 2 || got.Comment != "c" || !got.UpdatedAt.Equal(at) {
		t.Fatalf("after update = %+v", got)
	}

	ok, err = m.Delete(ctx, rec.ID)
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if got, _ := m.GetByID(ctx, rec.ID); got != nil {
		t.Fatalf("deleted record still readable")
	}
}

func TestMemoryAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	if got, err := m.GetByID(ctx, "nope"); got != nil || err != nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if ok, err := m.Update(ctx, "nope", domain.Patch{}); ok || err != nil {
		t.Fatalf("Update = %v, %v", ok, err)
	}
	if ok, err := m.Delete(ctx, "nope"); ok || err != nil {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
}

func TestMemoryListKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	a := save(t, m, "s1", "u1", 1)
	save(t, m, "s2", "u1", 2)
	b := save(t, m, "s1", "u2", 3)
	c := save(t, m, "s1", "u3", 4)

	got, err := m.ListByStation(ctx, "s1", 0)
	if err != nil || len(got) != 3 || got[0].ID != a.ID || got[1].ID != b.ID || got[2].ID != c.ID {
		t.Fatalf("list = %+v, %v", got, err)
	}
	if got, _ := m.ListByStation(ctx, "s1", 2); len(got) != 2 {
		t.Fatalf("limit ignored: %d", len(got))
	}
	if got, _ := m.ListByStation(ctx, "none", 0); got == nil || len(got) != 0 {
		t.Fatalf("empty list should be non nil: %#v", got)
	}

	if _, err := m.Delete(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = m.ListByStation(ctx, "s1", 0)
	if len(got) != 2 || got[1].ID != c.ID {
		t.Fatalf("after delete = %+v", got)
	}
}

func TestMemorySaveIfFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	first, created, err := m.SaveIfFirst(ctx, domain.NewRating{StationID: "s1", UserID: "u1", Value: 1})
	if err != nil || !created || first.ID == "" {
		t.Fatalf("first = %+v %v %v", first, created, err)
	}
	if rec, created, err := m.SaveIfFirst(ctx, domain.NewRating{StationID: "s1", UserID: "u1", Value: 5}); err != nil || created || rec.ID != "" {
		t.Fatalf("repeat = %+v %v %v", rec, created, err)
	}
	if _, created, _ := m.SaveIfFirst(ctx, domain.NewRating{StationID: "s2", UserID: "u1", Value: 2}); !created {
		t.Fatal("other station must be accepted")
	}
	if _, created, _ := m.SaveIfFirst(ctx, domain.NewRating{StationID: "s1", UserID: "u2", Value: 2}); !created {
		t.Fatal("other user must be accepted")
	}

	got, _ := m.ListByStation(ctx, "s1", 0)
	if len(got) != 2 || got[0].ID != first.ID || got[0].Value != 1 {
		t.Fatalf("s1 ratings = %+v", got)
	}
}
