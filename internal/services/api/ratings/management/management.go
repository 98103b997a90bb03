// Package management is the rating use case facade transports call
//
// Writes need an authenticated requester. Update and Delete read the rating
// first and only let its owner through; a rejected call leaves it unchanged.
package management

import (
	"context"

	"chargemap/internal/core/outcome"
	"chargemap/internal/platform/logger"
	pnet "chargemap/internal/platform/net"
	"chargemap/internal/services/api/ratings/domain"
)

// Management implements domain.ManagementPort over the rating service
type Management struct {
	svc domain.ServicePort
}

var _ domain.ManagementPort = (*Management)(nil)

// New returns a facade over svc
func New(svc domain.ServicePort) *Management {
	if svc == nil {
		panic("ratings.Management requires a non nil service")
	}
	return &Management{svc: svc}
}

// Create rates a station as requester
func (m *Management) Create(ctx context.Context, requester pnet.Principal, stationID string, value int, comment string) outcome.Result[domain.RatingCreated] {
	if !requester.Authenticated() {
		return unauthenticated[domain.RatingCreated]()
	}
	ev, err := m.svc.CreateRating(ctx, domain.CreateInput{
		StationID: stationID,
		UserID:    requester.UserID,
		Username:  requester.Username,
		Value:     value,
		Comment:   comment,
	})
	return report(ctx, "create", outcome.From(ev, err))
}

// List returns a station's ratings
func (m *Management) List(ctx context.Context, stationID string) outcome.Result[[]domain.Record] {
	recs, err := m.svc.GetRatingsByStation(ctx, stationID)
	return report(ctx, "list", outcome.From(recs, err))
}

// Get returns one rating
func (m *Management) Get(ctx context.Context, id string) outcome.Result[domain.Record] {
	rec, err := m.svc.GetRatingByID(ctx, id)
	return report(ctx, "get", outcome.From(rec, err))
}

// Update patches a rating the requester owns
func (m *Management) Update(ctx context.Context, requester pnet.Principal, id string, p domain.Patch) outcome.Result[domain.Record] {
	if r, ok := owned[domain.Record](ctx, m, "update", requester, id); !ok {
		return r
	}
	rec, err := m.svc.UpdateRating(ctx, id, p)
	return report(ctx, "update", outcome.From(rec, err))
}

// Delete removes a rating the requester owns
func (m *Management) Delete(ctx context.Context, requester pnet.Principal, id string) outcome.Result[bool] {
	if r, ok := owned[bool](ctx, m, "delete", requester, id); !ok {
		return r
	}
	deleted, err := m.svc.DeleteRating(ctx, id)
	if err == nil && !deleted {
		return outcome.Fail[bool](outcome.NotFound, "rating "+id+" not found", "")
	}
	return report(ctx, "delete", outcome.From(deleted, err))
}

// owned checks authentication and ownership; ok is false with the failed result otherwise
func owned[T any](ctx context.Context, m *Management, op string, requester pnet.Principal, id string) (outcome.Result[T], bool) {
	if !requester.Authenticated() {
		return unauthenticated[T](), false
	}
	rec, err := m.svc.GetRatingByID(ctx, id)
	if err != nil {
		f := report(ctx, op, outcome.From(domain.Record{}, err))
		return outcome.Fail[T](f.Kind, f.Message, f.Field), false
	}
	if rec.UserID != requester.UserID {
		logger.C(ctx).Info().Str("rating_id", id).Str("owner", rec.UserID).Msg("rating write by non owner rejected")
		return outcome.Fail[T](outcome.PermissionDenied, "rating belongs to another user", ""), false
	}
	return outcome.Result[T]{}, true
}

func unauthenticated[T any]() outcome.Result[T] {
	return outcome.Fail[T](outcome.Unauthenticated, "authentication required", "")
}

// report logs system faults with their cause; callers only ever see the generic message
func report[T any](ctx context.Context, op string, r outcome.Result[T]) outcome.Result[T] {
	if r.Kind == outcome.SystemFault {
		logger.C(ctx).Error().Err(r.Cause()).Str("op", "ratings."+op).Msg("rating operation failed")
	}
	return r
}
