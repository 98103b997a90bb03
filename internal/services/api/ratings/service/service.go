// Package service contains rating workflows
package service

import (
	"context"
	"time"

	"chargemap/internal/core/events"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/metrics"
	"chargemap/internal/services/api/ratings/domain"
	"chargemap/internal/services/api/ratings/repo"
)

// Config carries the rating rules
type Config struct {
	// CommentMax bounds comments in code points, DefaultCommentMax when zero
	CommentMax int
	// OnePerUser rejects a second rating of the same station by the same user
	OnePerUser bool
	PageLimit  int
}

// Svc implements domain.ServicePort
type Svc struct {
	Repo     repo.Repo
	stations domain.StationLookup
	events   events.Publisher
	metrics  *metrics.Metrics
	now      func() time.Time
	cfg      Config
}

var _ domain.ServicePort = (*Svc)(nil)

// Option customizes Svc
type Option func(*Svc)

// WithStations makes CreateRating reject unknown stations
func WithStations(l domain.StationLookup) Option { return func(s *Svc) { s.stations = l } }

// WithEvents sets the event publisher
func WithEvents(p events.Publisher) Option { return func(s *Svc) { s.events = p } }

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithClock sets the server time source
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// New creates a new ratings service
func New(r repo.Repo, cfg Config, opts ...Option) *Svc {
	if r == nil {
		panic("ratings.Service requires a non nil Repo")
	}
	s := &Svc{Repo: r, events: events.Discard{}, now: time.Now, cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	if s.cfg.CommentMax <= 0 {
		s.cfg.CommentMax = domain.DefaultCommentMax
	}
	s.cfg.PageLimit = repo.ClampLimit(s.cfg.PageLimit)
	return s
}

// CreateRating validates and stores a rating, then publishes RatingCreated
func (s *Svc) CreateRating(ctx context.Context, in domain.CreateInput) (domain.RatingCreated, error) {
	if err := domain.ValidateValue(in.Value); err != nil {
		s.metrics.RatingOp("create", "invalid")
		return domain.RatingCreated{}, err
	}
	comment, err := domain.NormalizeComment(in.Comment, s.cfg.CommentMax)
	if err != nil {
		s.metrics.RatingOp("create", "invalid")
		return domain.RatingCreated{}, err
	}

	if s.stations != nil {
		ok, err := s.stations.StationExists(ctx, in.StationID)
		if err != nil {
			s.metrics.RatingOp("create", "error")
			return domain.RatingCreated{}, perr.WithOp(err, "ratings.CreateRating")
		}
		if !ok {
			s.metrics.RatingOp("create", "not_found")
			return domain.RatingCreated{}, perr.NotFoundf("station %s not found", in.StationID)
		}
	}

	nr := domain.NewRating{
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   comment,
		Timestamp: s.now().UTC(),
	}
	var (
		rec     domain.Record
		created = true
	)
	if s.cfg.OnePerUser {
		rec, created, err = s.Repo.SaveIfFirst(ctx, nr)
	} else {
		rec, err = s.Repo.Save(ctx, nr)
	}
	if err != nil {
		s.metrics.RatingOp("create", "error")
		return domain.RatingCreated{}, perr.WithOp(err, "ratings.CreateRating")
	}
	if !created {
		s.metrics.RatingOp("create", "conflict")
		return domain.RatingCreated{}, perr.Conflictf("user %s already rated station %s", in.UserID, in.StationID)
	}

	ev := domain.Created(rec)
	s.metrics.RatingOp("create", "ok")
	events.Emit(ctx, s.events, ev)
	logger.C(ctx).Info().Str("rating_id", rec.ID).Str("station_id", rec.StationID).Msg("rating created")
	return ev, nil
}

// GetRatingsByStation lists a station's ratings
// a store failure yields an empty list
func (s *Svc) GetRatingsByStation(ctx context.Context, stationID string) ([]domain.Record, error) {
	recs, err := s.Repo.ListByStation(ctx, stationID, s.cfg.PageLimit)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("station_id", stationID).Msg("rating list failed, returning no ratings")
		s.metrics.RatingOp("list", "degraded")
		return []domain.Record{}, nil
	}
	s.metrics.RatingOp("list", "ok")
	if recs == nil {
		recs = []domain.Record{}
	}
	return recs, nil
}

// GetRatingByID returns one rating
func (s *Svc) GetRatingByID(ctx context.Context, id string) (domain.Record, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return domain.Record{}, perr.WithOp(err, "ratings.GetRatingByID")
	}
	if rec == nil {
		return domain.Record{}, ratingNotFound(id)
	}
	return *rec, nil
}

// UpdateRating writes the supplied fields and returns the stored record
// an empty patch changes nothing and returns the record as stored
func (s *Svc) UpdateRating(ctx context.Context, id string, p domain.Patch) (domain.Record, error) {
	if p.Value != nil {
		if err := domain.ValidateValue(*p.Value); err != nil {
			s.metrics.RatingOp("update", "invalid")
			return domain.Record{}, err
		}
	}
	if p.Comment != nil {
		c, err := domain.NormalizeComment(*p.Comment, s.cfg.CommentMax)
		if err != nil {
			s.metrics.RatingOp("update", "invalid")
			return domain.Record{}, err
		}
		p.Comment = &c
	}
	if p.Empty() {
		return s.GetRatingByID(ctx, id)
	}

	p.UpdatedAt = s.now().UTC()
	ok, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		s.metrics.RatingOp("update", "error")
		return domain.Record{}, perr.WithOp(err, "ratings.UpdateRating")
	}
	if !ok {
		s.metrics.RatingOp("update", "not_found")
		return domain.Record{}, ratingNotFound(id)
	}
	s.metrics.RatingOp("update", "ok")
	return s.GetRatingByID(ctx, id)
}

// DeleteRating removes a rating and reports whether one was removed
func (s *Svc) DeleteRating(ctx context.Context, id string) (bool, error) {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		s.metrics.RatingOp("delete", "error")
		return false, perr.WithOp(err, "ratings.DeleteRating")
	}
	if !ok {
		s.metrics.RatingOp("delete", "not_found")
		return false, nil
	}
	s.metrics.RatingOp("delete", "ok")
	logger.C(ctx).Info().Str("rating_id", id).Msg("rating deleted")
	return true, nil
}

func ratingNotFound(id string) error {
	return perr.NotFoundf("rating %s not found", id)
}
