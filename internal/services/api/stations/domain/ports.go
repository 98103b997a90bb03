package domain

import (
	"context"

	"chargemap/internal/core/outcome"
	pnet "chargemap/internal/platform/net"
)

// ServicePort is the station search contract
type ServicePort interface {
	SearchByPostalCode(ctx context.Context, raw string) (SearchResult, error)
	FindByID(ctx context.Context, id string) (Station, error)
	ToggleAvailability(ctx context.Context, id string) (bool, error)
}

// ManagementPort is the use case facade transports call
type ManagementPort interface {
	Search(ctx context.Context, raw string) outcome.Result[SearchResult]
	Station(ctx context.Context, id string) outcome.Result[Station]
	ToggleAvailability(ctx context.Context, requester pnet.Principal, id string) outcome.Result[bool]
}

// LookupPort lets other modules check that a station exists
type LookupPort interface {
	StationExists(ctx context.Context, id string) (bool, error)
}

// ImportPort loads register rows into the store
type ImportPort interface {
	Import(ctx context.Context, rows []NewStation) (int, error)
}
