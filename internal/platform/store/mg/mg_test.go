package mg

import (
	"context"
	"testing"
)

func TestOpenValidation(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{Database: "db"}); err == nil {
		t.Fatalf("empty uri should fail")
	}
	if _, err := Open(context.Background(), Config{URI: "mongodb://127.0.0.1:1"}); err == nil {
		t.Fatalf("empty database should fail")
	}
	if _, err := Open(context.Background(), Config{URI: "not-a-uri", Database: "db"}); err == nil {
		t.Fatalf("malformed uri should fail")
	}
}

// the driver connects lazily so no server is needed here
func TestOpenSelectsDatabase(t *testing.T) {
	t.Parallel()

	m, err := Open(context.Background(), Config{URI: "mongodb://127.0.0.1:1", Database: "berlin", AppName: "test"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	if m.DB.Name() != "berlin" {
		t.Fatalf("database = %q", m.DB.Name())
	}
	if got := m.Collection("ratings").Name(); got != "ratings" {
		t.Fatalf("collection = %q", got)
	}
}

func TestNilSafe(t *testing.T) {
	t.Parallel()

	var m *MG
	if m.Ping(context.Background()) == nil {
		t.Fatalf("nil Ping should fail")
	}
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
