// Package testkit holds helpers shared by the chargemap tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless out contains want
// long outputs are dumped to a temp file instead of the test log
func MustContain(t *testing.T, out, want string) {
	t.Helper()
	if strings.Contains(out, want) {
		return
	}
	if len(out) <= 512 {
		t.Fatalf("missing %q in:\n%s", want, out)
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(out), 0o600)
	t.Fatalf("missing %q, full output in %s", want, dump)
}

// WriteFile writes body under a fresh temp dir and returns the path
func WriteFile(t *testing.T, name string, body []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, body, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// Clock returns a now func pinned to at, in UTC
func Clock(at time.Time) func() time.Time {
	at = at.UTC()
	return func() time.Time { return at }
}
