// Package management is the station use case facade transports call
package management

import (
	"context"

	"chargemap/internal/core/outcome"
	"chargemap/internal/platform/logger"
	pnet "chargemap/internal/platform/net"
	"chargemap/internal/services/api/stations/domain"
)

// Management implements domain.ManagementPort over the station service
type Management struct {
	svc domain.ServicePort
}

var _ domain.ManagementPort = (*Management)(nil)

// New returns a facade over svc
func New(svc domain.ServicePort) *Management {
	if svc == nil {
		panic("stations.Management requires a non nil service")
	}
	return &Management{svc: svc}
}

// Search looks up stations by raw postal code
func (m *Management) Search(ctx context.Context, raw string) outcome.Result[domain.SearchResult] {
	res, err := m.svc.SearchByPostalCode(ctx, raw)
	return report(ctx, "search", outcome.From(res, err))
}

// Station returns one station by id
func (m *Management) Station(ctx context.Context, id string) outcome.Result[domain.Station] {
	st, err := m.svc.FindByID(ctx, id)
	return report(ctx, "station", outcome.From(st, err))
}

// ToggleAvailability flips availability for an authenticated requester
func (m *Management) ToggleAvailability(ctx context.Context, requester pnet.Principal, id string) outcome.Result[bool] {
	if !requester.Authenticated() {
		return outcome.Fail[bool](outcome.Unauthenticated, "authentication required", "")
	}
	st, err := m.svc.ToggleAvailability(ctx, id)
	return report(ctx, "toggle", outcome.From(st, err))
}

// report logs system faults with their cause; callers only ever see the generic message
func report[T any](ctx context.Context, op string, r outcome.Result[T]) outcome.Result[T] {
	if r.Kind == outcome.SystemFault {
		logger.C(ctx).Error().Err(r.Cause()).Str("op", "stations."+op).Msg("station operation failed")
	}
	return r
}
