package testkit

import (
	"sync"
	"testing"
)

// seams is held by every test that replaces package state
var seams sync.Mutex

// Swap sets *target to v and restores the old value when t finishes
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

// Serial holds the seam lock until t finishes
// call it before Swap in any test that may run next to another seam user
func Serial(t *testing.T) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}
