// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"chargemap/internal/core/events"
	"chargemap/internal/modkit/repokit"
	"chargemap/internal/platform/config"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/metrics"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/platform/store"
	"chargemap/internal/platform/store/fs"
	"chargemap/internal/platform/store/mg"
	ptime "chargemap/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Driver names the backend repositories bind to
	Driver store.Driver
	PG     repokit.TxRunner
	Mongo  *mg.MG
	FS     *fs.FS
	CH     store.Clickhouse

	Auth    middleware.AuthPort
	Events  events.Publisher
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// FromStore copies the store handles into d
func (d Deps) FromStore(s *store.Store) Deps {
	if s == nil {
		return d
	}
	d.Driver, d.PG, d.Mongo, d.FS, d.CH = s.Driver, s.PG, s.Mongo, s.FS, s.CH
	return d
}

// Publisher returns the configured publisher or one that drops events
func (d Deps) Publisher() events.Publisher {
	if d.Events == nil {
		return events.Discard{}
	}
	return d.Events
}

// Clock returns the configured time source, UTC milliseconds when unset
func (d Deps) Clock() func() time.Time {
	if d.Now == nil {
		return ptime.Now
	}
	return d.Now
}

// StoreDriver returns the configured driver, memory when unset
func (d Deps) StoreDriver() store.Driver {
	if d.Driver == "" {
		return store.DriverMemory
	}
	return d.Driver
}
