package domain

import (
	"context"

	"chargemap/internal/core/outcome"
	pnet "chargemap/internal/platform/net"
)

// ServicePort is the rating CRUD contract
type ServicePort interface {
	CreateRating(ctx context.Context, in CreateInput) (RatingCreated, error)
	GetRatingsByStation(ctx context.Context, stationID string) ([]Record, error)
	GetRatingByID(ctx context.Context, id string) (Record, error)
	UpdateRating(ctx context.Context, id string, p Patch) (Record, error)
	DeleteRating(ctx context.Context, id string) (bool, error)
}

// ManagementPort is the use case facade transports call
// Update and Delete are only allowed for the rating's owner
type ManagementPort interface {
	Create(ctx context.Context, requester pnet.Principal, stationID string, value int, comment string) outcome.Result[RatingCreated]
	List(ctx context.Context, stationID string) outcome.Result[[]Record]
	Get(ctx context.Context, id string) outcome.Result[Record]
	Update(ctx context.Context, requester pnet.Principal, id string, p Patch) outcome.Result[Record]
	Delete(ctx context.Context, requester pnet.Principal, id string) outcome.Result[bool]
}

// StationLookup checks that a rated station exists
type StationLookup interface {
	StationExists(ctx context.Context, id string) (bool, error)
}
