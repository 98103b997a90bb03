// Package repo provides rating storage over the configured driver
package repo

import (
	"context"

	"chargemap/internal/modkit"
	"chargemap/internal/modkit/repokit"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
	"chargemap/internal/services/api/ratings/domain"
)

// Collection is the document store collection holding ratings
const Collection = "ratings"

// Page bounds for ListByStation
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Repo defines the repository contract for ratings
// absent records are reported as nil or false, never as errors
type Repo interface {
	Save(ctx context.Context, in domain.NewRating) (domain.Record, error)
	// ListByStation returns at most limit ratings in insertion order
	ListByStation(ctx context.Context, stationID string, limit int) ([]domain.Record, error)
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	// Update writes only the fields p carries and reports whether a record matched
	Update(ctx context.Context, id string, p domain.Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// SaveIfFirst stores in unless in.UserID already rated in.StationID
	// the check and the insert are atomic; created is false when a rating exists
	SaveIfFirst(ctx context.Context, in domain.NewRating) (rec domain.Record, created bool, err error)
}

// ClampLimit bounds a page size to 1..MaxLimit, DefaultLimit when unset
func ClampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

// FromDeps builds the repo for the configured driver
func FromDeps(d modkit.Deps) (Repo, error) {
	switch drv := d.StoreDriver(); drv {
	case store.DriverPG:
		return repokit.Bind("ratings", NewPG(), d.PG)
	case store.DriverMongo:
		if d.Mongo == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "ratings: driver %s has no mongo handle", drv)
		}
		return NewMongo(d.Mongo.Collection(Collection)), nil
	case store.DriverFirestore:
		if d.FS == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "ratings: driver %s has no firestore handle", drv)
		}
		return NewFirestore(d.FS.Client), nil
	case store.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "ratings: unknown store driver %q", drv)
	}
}
