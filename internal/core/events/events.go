// Package events carries domain events from services to publishers
package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"chargemap/internal/platform/logger"
)

// Event is a fact the domain produced
type Event interface {
	// EventName is the stable name used by sinks
	EventName() string
	// OccurredAt is when the fact happened
	OccurredAt() time.Time
}

// Fields is the flat projection sinks index on
type Fields struct {
	Subject string
	UserID  string
	Count   int
}

// Describer is implemented by events that expose indexable fields
type Describer interface {
	Describe() Fields
}

// Publisher hands events to a sink
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(ctx context.Context, e Event) error

// Publish calls f
func (f PublisherFunc) Publish(ctx context.Context, e Event) error { return f(ctx, e) }

// FieldsOf returns the projection of e, zero when e does not describe itself
func FieldsOf(e Event) Fields {
	if d, ok := e.(Describer); ok {
		return d.Describe()
	}
	return Fields{}
}

// Emit publishes e and logs a failure instead of returning it
// a nil publisher drops the event
func Emit(ctx context.Context, p Publisher, e Event) {
	if p == nil || e == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logger.C(ctx).Warn().Err(err).Str("event", e.EventName()).Msg("event publish failed")
	}
}

// Discard drops every event
type Discard struct{}

// Publish implements Publisher
func (Discard) Publish(context.Context, Event) error { return nil }

// Log writes one line per event
type Log struct {
	L *logger.Logger
}

// NewLog returns a log publisher on the named events logger
func NewLog() Log { return Log{L: logger.Named("events")} }

// Publish implements Publisher
func (p Log) Publish(ctx context.Context, e Event) error {
	l := p.L
	if l == nil {
		l = logger.C(ctx)
	}
	f := FieldsOf(e)
	ev := l.Info().
		Str("event", e.EventName()).
		Time("occurred_at", e.OccurredAt())
	if f.Subject != "" {
		ev = ev.Str("subject", f.Subject)
	}
	if f.UserID != "" {
		ev = ev.Str("user_id", f.UserID)
	}
	ev.Int("count", f.Count).Interface("payload", e).Msg("domain event")
	return nil
}

// Fanout publishes to every member and joins their errors
type Fanout []Publisher

// Publish implements Publisher
func (f Fanout) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

// Publish implements Publisher
func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.Err
}

// Events returns a copy of what was published so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Last returns the most recent event, nil when empty
func (r *Recorder) Last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}
