// Package http provides http transport for charging stations
package http

import (
	stdhttp "net/http"

	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/platform/net/http/bind"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/services/api/stations/domain"
)

// Register mounts station endpoints on the given router
// write routes sit behind auth
func Register(r httpkit.Router, m domain.ManagementPort, auth middleware.AuthPort) {
	h := &handlers{m: m}
	httpkit.Get(r, "/", h.search)
	httpkit.Get(r, "/{stationID}", h.station)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Post(pr, "/{stationID}/availability/toggle", h.toggle)
	})
}

type handlers struct{ m domain.ManagementPort }

func stationRef(r *stdhttp.Request) (domain.StationRef, error) {
	in := domain.StationRef{StationID: httpkit.Param(r, "stationID")}
	return in, bind.Validate(in)
}

// @Summary Search charging stations by postal code
// @Tags Stations
// @Produce json
// @Param postal_code query string true "Berlin postal code" example(10115)
// @Success 200 {object} domain.SearchResponse "ok"
// @Router /stations [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	in := domain.SearchInput{PostalCode: r.URL.Query().Get("postal_code")}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	res, err := h.m.Search(r.Context(), in.PostalCode).Unwrap()
	if err != nil {
		return nil, err
	}
	return res.Response(), nil
}

// @Summary Get a charging station
// @Tags Stations
// @Produce json
// @Param stationID path string true "Station id"
// @Success 200 {object} domain.Station "ok"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /stations/{stationID} [get]
func (h *handlers) station(r *stdhttp.Request) (any, error) {
	in, err := stationRef(r)
	if err != nil {
		return nil, err
	}
	return h.m.Station(r.Context(), in.StationID).Unwrap()
}

// @Summary Toggle station availability
// @Tags Stations
// @Produce json
// @Security BearerAuth
// @Param stationID path string true "Station id"
// @Success 200 {object} domain.ToggleResponse "ok"
// @Failure 401 {object} swaggerkit.ErrorResponse "unauthenticated"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /stations/{stationID}/availability/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request) (any, error) {
	in, err := stationRef(r)
	if err != nil {
		return nil, err
	}
	st, err := h.m.ToggleAvailability(r.Context(), httpkit.Caller(r), in.StationID).Unwrap()
	if err != nil {
		return nil, err
	}
	return domain.ToggleResponse{StationID: in.StationID, Available: st}, nil
}
