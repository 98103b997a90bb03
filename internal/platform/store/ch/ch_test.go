package ch

import (
	"context"
	"testing"
)

func TestOpenValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"bad scheme", "://nope"},
	}
	for _, tc := range cases {
		if _, err := Open(context.Background(), Config{URL: tc.url}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

// clickhouse.Open does not dial, so a well formed dsn succeeds offline
func TestOpenLazy(t *testing.T) {
	t.Parallel()

	c, err := Open(context.Background(), Config{URL: "clickhouse://127.0.0.1:9000/default", Role: "api"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c == nil || c.conn == nil {
		t.Fatalf("expected a connection handle")
	}
	_ = c.Close()
}

func TestInsertEmptyIsNoop(t *testing.T) {
	t.Parallel()

	var c CH
	if err := c.Insert(context.Background(), "events", nil); err != nil {
		t.Fatalf("Insert(nil) = %v", err)
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("chargemap-seed", " v1.2.3 ")
	got := map[string]string{}
	for _, p := range ci.Products {
		got[p.Name] = p.Version
	}
	if got["chargemap"] != "v1.2.3" || got["role"] != "chargemap-seed" || got["commit"] == "" {
		t.Fatalf("products = %+v", ci.Products)
	}
	if ci := BuildClientInfo(" ", ""); ci.Products[0].Version == "" || ci.Products[1].Version != "unknown" {
		t.Fatalf("blank role = %+v", ci.Products)
	}
}
