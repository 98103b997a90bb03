// Package repo provides charging station storage over the configured driver
package repo

import (
	"context"

	"chargemap/internal/modkit"
	"chargemap/internal/modkit/repokit"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
	"chargemap/internal/services/api/stations/domain"
)

// Collection is the document store collection holding stations
const Collection = "charging_stations"

// Page bounds for FindByPostalCode
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Repo defines the repository contract for charging stations
type Repo interface {
	// FindByPostalCode returns at most limit stations in store order
	FindByPostalCode(ctx context.Context, code string, limit int) ([]Row, error)
	// FindByID returns nil, nil when no station has id
	FindByID(ctx context.Context, id string) (*Row, error)
	// ToggleAvailability flips the flag atomically and returns the new value
	// found is false when no station has id
	ToggleAvailability(ctx context.Context, id string) (status bool, found bool, err error)
	// Import stores rows and returns how many were written
	Import(ctx context.Context, rows []domain.NewStation) (int, error)
}

// Row is a stored station
type Row struct {
	ID          string
	PostalCode  string
	Available   bool
	Latitude    float64
	Longitude   float64
	Description string
	Name        string
	PowerKW     float64
}

// Station maps a row to the served model
func (r Row) Station() domain.Station {
	name := r.Name
	if name == "" {
		name = domain.DefaultStationName
	}
	return domain.Station{
		ID:          r.ID,
		PostalCode:  r.PostalCode,
		Available:   r.Available,
		Location:    domain.FormatLocation(r.Latitude, r.Longitude),
		Name:        name,
		PowerKW:     r.PowerKW,
		Description: r.Description,
	}
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
		return repokit.Bind("stations", NewPG(), d.PG)
	case store.DriverMongo:
		if d.Mongo == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "stations: driver %s has no mongo handle", drv)
		}
		return NewMongo(d.Mongo.Collection(Collection)), nil
	case store.DriverFirestore:
		if d.FS == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "stations: driver %s has no firestore handle", drv)
		}
		return NewFirestore(d.FS.Client), nil
	case store.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "stations: unknown store driver %q", drv)
	}
}
