// Package http provides http transport for ratings
package http

import (
	stdhttp "net/http"

	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/platform/net/http/bind"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/services/api/ratings/domain"
)

// RegisterStation mounts the ratings of a station on the stations router
func RegisterStation(r httpkit.Router, m domain.ManagementPort, auth middleware.AuthPort) {
	h := &handlers{m: m}
	httpkit.Get(r, "/{stationID}/ratings", h.list)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/{stationID}/ratings", h.create)
	})
}

// Register mounts single rating endpoints on the ratings router
func Register(r httpkit.Router, m domain.ManagementPort, auth middleware.AuthPort) {
	h := &handlers{m: m}
	httpkit.Get(r, "/{ratingID}", h.get)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PatchJSON(pr, "/{ratingID}", h.update)
		httpkit.Delete(pr, "/{ratingID}", h.delete)
	})
}

type handlers struct{ m domain.ManagementPort }

func stationRef(r *stdhttp.Request) (domain.StationRef, error) {
	in := domain.StationRef{StationID: httpkit.Param(r, "stationID")}
	return in, bind.Validate(in)
}

func ratingRef(r *stdhttp.Request) (domain.RatingRef, error) {
	in := domain.RatingRef{RatingID: httpkit.Param(r, "ratingID")}
	return in, bind.Validate(in)
}

// @Summary List ratings of a station
// @Tags Ratings
// @Produce json
// @Param stationID path string true "Station id"
// @Success 200 {object} domain.ListResponse "ok"
// @Router /stations/{stationID}/ratings [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := stationRef(r)
	if err != nil {
		return nil, err
	}
	recs, err := h.m.List(r.Context(), in.StationID).Unwrap()
	if err != nil {
		return nil, err
	}
	return domain.ListResponse{Ratings: recs, Count: len(recs)}, nil
}

// @Summary Rate a station
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param stationID path string true "Station id"
// @Param body body domain.CreateRequest true "Rating"
// @Success 201 {object} domain.RatingCreated "created"
// @Failure 400 {object} swaggerkit.ErrorResponse "invalid rating"
// @Failure 401 {object} swaggerkit.ErrorResponse "unauthenticated"
// @Failure 404 {object} swaggerkit.ErrorResponse "unknown station"
// @Failure 409 {object} swaggerkit.ErrorResponse "already rated"
// @Router /stations/{stationID}/ratings [post]
func (h *handlers) create(r *stdhttp.Request, body domain.CreateRequest) (any, error) {
	in, err := stationRef(r)
	if err != nil {
		return nil, err
	}
	ev, err := h.m.Create(r.Context(), httpkit.Caller(r), in.StationID, body.Value, body.Comment).Unwrap()
	if err != nil {
		return nil, err
	}
	return httpkit.Created(ev), nil
}

// @Summary Get a rating
// @Tags Ratings
// @Produce json
// @Param ratingID path string true "Rating id"
// @Success 200 {object} domain.Record "ok"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /ratings/{ratingID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	in, err := ratingRef(r)
	if err != nil {
		return nil, err
	}
	return h.m.Get(r.Context(), in.RatingID).Unwrap()
}

// @Summary Update a rating
// @Description Only the rating's owner may update it; omitted fields keep their value.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ratingID path string true "Rating id"
// @Param body body domain.Patch true "Fields to change"
// @Success 200 {object} domain.Record "ok"
// @Failure 403 {object} swaggerkit.ErrorResponse "not the owner"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /ratings/{ratingID} [patch]
func (h *handlers) update(r *stdhttp.Request, p domain.Patch) (any, error) {
	in, err := ratingRef(r)
	if err != nil {
		return nil, err
	}
	return h.m.Update(r.Context(), httpkit.Caller(r), in.RatingID, p).Unwrap()
}

// @Summary Delete a rating
// @Tags Ratings
// @Produce json
// @Security BearerAuth
// @Param ratingID path string true "Rating id"
// @Success 200 {object} domain.DeleteResponse "ok"
// @Failure 403 {object} swaggerkit.ErrorResponse "not the owner"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /ratings/{ratingID} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	in, err := ratingRef(r)
	if err != nil {
		return nil, err
	}
	ok, err := h.m.Delete(r.Context(), httpkit.Caller(r), in.RatingID).Unwrap()
	if err != nil {
		return nil, err
	}
	return domain.DeleteResponse{ID: in.RatingID, Deleted: ok}, nil
}
