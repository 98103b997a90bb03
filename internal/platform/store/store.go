// Package store provides a unified interface to optional storage backends
package store

import (
	"context"
	"errors"
	"fmt"

	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/store/fs"
	"chargemap/internal/platform/store/mg"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Driver is the backend repositories should bind to
	Driver Driver

	// PG is the postgres sql seam, nil when disabled
	PG TxRunner

	// Mongo is the mongo client, nil when disabled
	Mongo *mg.MG

	// FS is the firestore client, nil when disabled
	FS *fs.FS

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is a tiny seam for columnar writes and queries
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Execer runs a statement that returns no rows
// the clickhouse seam implements it for migrations
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects the backends cfg enables; the rest stay nil
// on failure anything already opened is closed again
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Driver: cfg.Driver}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	if s.Driver == "" {
		s.Driver = DriverMemory
	}
	// a zero logger would drop subclient logs silently
	s.Log = s.Log.With().Logger()

	steps := []struct {
		on   bool
		open func() error
	}{
		{cfg.PG.Enabled, func() (err error) { s.PG, err = openPG(ctx, cfg, s); return err }},
		{cfg.Mongo.Enabled, func() (err error) { s.Mongo, err = openMongo(ctx, cfg); return err }},
		{cfg.Firestore.Enabled, func() (err error) { s.FS, err = openFS(ctx, cfg); return err }},
		{cfg.CH.Enabled, func() (err error) { s.CH, err = openCH(ctx, cfg); return err }},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.open(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

type seam struct {
	name string
	v    any
}

// seams lists the open backends in open order
func (s *Store) seams() []seam {
	var out []seam
	if s.PG != nil {
		out = append(out, seam{"pg", s.PG})
	}
	if s.Mongo != nil {
		out = append(out, seam{"mongo", s.Mongo})
	}
	if s.FS != nil {
		out = append(out, seam{"firestore", s.FS})
	}
	if s.CH != nil {
		out = append(out, seam{"clickhouse", s.CH})
	}
	return out
}

// Guard pings every open backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range s.seams() {
		p, ok := b.v.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes the open backends in reverse open order and joins the failures
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	list := s.seams()
	for i := len(list) - 1; i >= 0; i-- {
		var err error
		switch c := list[i].v.(type) {
		case interface{ Close(context.Context) error }:
			err = c.Close(ctx)
		case interface{ Close() error }:
			err = c.Close()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", list[i].name, err))
		}
	}
	return errors.Join(errs...)
}
