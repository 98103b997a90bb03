// Package service contains charging station search workflows
package service

import (
	"context"
	"time"

	"chargemap/internal/core/events"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/metrics"
	"chargemap/internal/services/api/stations/domain"
	"chargemap/internal/services/api/stations/repo"
)

// Service defines the service contract for stations
type Service interface {
	domain.ServicePort
	domain.LookupPort
	domain.ImportPort
}

// Config carries the search knobs
type Config struct {
	Policy    domain.PostalPolicy
	PageLimit int
}

// Svc implements Service
type Svc struct {
	Repo    repo.Repo
	events  events.Publisher
	metrics *metrics.Metrics
	now     func() time.Time
	cfg     Config
}

// Option customizes Svc
type Option func(*Svc)

// WithEvents sets the event publisher
func WithEvents(p events.Publisher) Option { return func(s *Svc) { s.events = p } }

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithClock sets the time source stamped on events
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// New creates a new stations service
func New(r repo.Repo, cfg Config, opts ...Option) *Svc {
	if r == nil {
		panic("stations.Service requires a non nil Repo")
	}
	s := &Svc{Repo: r, events: events.Discard{}, now: time.Now, cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	s.cfg.PageLimit = repo.ClampLimit(s.cfg.PageLimit)
	return s
}

// SearchByPostalCode validates raw and lists its stations
// a store failure yields an empty result; only validation errors escape
func (s *Svc) SearchByPostalCode(ctx context.Context, raw string) (domain.SearchResult, error) {
	code, err := s.cfg.Policy.Parse(raw)
	if err != nil {
		s.metrics.Search("invalid", 0)
		return domain.SearchResult{}, err
	}

	outcome := "ok"
	rows, err := s.Repo.FindByPostalCode(ctx, code.String(), s.cfg.PageLimit)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("postal_code", code.String()).Msg("station search failed, returning no stations")
		rows, outcome = nil, "degraded"
	}

	stations := make([]domain.Station, 0, len(rows))
	for _, r := range rows {
		stations = append(stations, r.Station())
	}
	res := domain.SearchResult{
		Stations: stations,
		Event: domain.ChargingStationSearched{
			PostalCode:    code.String(),
			StationsFound: len(stations),
			Timestamp:     s.now(),
		},
	}
	s.metrics.Search(outcome, len(stations))
	events.Emit(ctx, s.events, res.Event)
	return res, nil
}

// FindByID returns one station
func (s *Svc) FindByID(ctx context.Context, id string) (domain.Station, error) {
	row, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return domain.Station{}, perr.WithOp(err, "stations.FindByID")
	}
	if row == nil {
		return domain.Station{}, stationNotFound(id)
	}
	return row.Station(), nil
}

// ToggleAvailability flips the station flag and returns the new value
func (s *Svc) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	status, found, err := s.Repo.ToggleAvailability(ctx, id)
	switch {
	case err != nil:
		s.metrics.Toggle("error")
		return false, perr.WithOp(err, "stations.ToggleAvailability")
	case !found:
		s.metrics.Toggle("not_found")
		return false, stationNotFound(id)
	}
	s.metrics.Toggle("ok")
	logger.C(ctx).Info().Str("station_id", id).Bool("availability_status", status).Msg("station availability toggled")
	return status, nil
}

// StationExists implements domain.LookupPort
func (s *Svc) StationExists(ctx context.Context, id string) (bool, error) {
	row, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

// Import keeps rows the postal policy accepts and stores them
func (s *Svc) Import(ctx context.Context, rows []domain.NewStation) (int, error) {
	keep := make([]domain.NewStation, 0, len(rows))
	for _, r := range rows {
		if !s.cfg.Policy.Accepts(r.PostalCode) {
			continue
		}
		if r.Name == "" {
			r.Name = domain.DefaultStationName
		}
		keep = append(keep, r)
	}
	n, err := s.Repo.Import(ctx, keep)
	if err != nil {
		return n, perr.WithOp(err, "stations.Import")
	}
	logger.C(ctx).Info().Int("read", len(rows)).Int("imported", n).Msg("stations imported")
	return n, nil
}

func stationNotFound(id string) error {
	return perr.NotFoundf("station %s not found", id)
}
