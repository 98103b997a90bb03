// Package time holds small time helpers shared by the stores and services
package time

import "time"

// Clock returns the current time; services take one so tests can pin it
type Clock func() time.Time

// Now is the default Clock: UTC truncated to milliseconds, the finest
// precision every store driver round trips
func Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Deref returns the zero time for nil
func Deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
