package store

import (
	"fmt"

	"chargemap/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger subclients and the sql tracer write to
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithDriver overrides the configured driver, e.g. from a command line flag
// an empty driver keeps the configured one
func WithDriver(d Driver) Option {
	return func(s *Store) error {
		switch d {
		case "":
		case DriverPG, DriverMongo, DriverFirestore, DriverMemory:
			s.Driver = d
		default:
			return fmt.Errorf("store: unknown driver %q", d)
		}
		return nil
	}
}
