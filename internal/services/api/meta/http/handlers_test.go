package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "chargemap/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func get[T any](t *testing.T, d Deps, path string) T {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("GET %s = %d", path, rec.Code)
	}
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return env.Data
}

func TestReadyAggregates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		checks []Check
		want   string
	}{
		{"all ok", []Check{{Name: "pg", Target: pinger{}}, {Name: "mongo"}}, "ok"},
		{"unknown seam", []Check{{Name: "pg", Target: pinger{}}, {Name: "odd", Target: struct{}{}}}, "degraded"},
		{"one fails", []Check{{Name: "pg", Target: pinger{errors.New("refused")}}, {Name: "odd", Target: 1}}, "fail"},
		{"nothing configured", nil, "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := get[ReadyResponse](t, Deps{Checks: tc.checks}, "/ready")
			if got.Status != tc.want || len(got.Checks) != len(tc.checks) {
				t.Fatalf("ready = %+v, want %s", got, tc.want)
			}
		})
	}

	got := get[ReadyResponse](t, Deps{Checks: []Check{{Name: "pg", Target: pinger{errors.New("refused")}}, {Name: "ch"}}}, "/ready")
	if got.Checks[0].Error != "refused" || got.Checks[1].Status != "skipped" {
		t.Fatalf("checks = %+v", got.Checks)
	}
}

func TestHealthAndService(t *testing.T) {
	t.Parallel()

	d := Deps{ServiceName: "chargemap-api", StartedAt: t0, Now: func() time.Time { return t0.Add(90 * time.Second) }}
	h := get[HealthResponse](t, d, "/health")
	if !h.OK || h.Service != "chargemap-api" || h.Started != "2026-05-01T12:00:00Z" || h.Now != "2026-05-01T12:01:30Z" {
		t.Fatalf("health = %+v", h)
	}
	s := get[ServiceResponse](t, d, "/service")
	if s.Uptime != 90 || s.Name != "chargemap-api" {
		t.Fatalf("service = %+v", s)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	v := get[map[string]string](t, Deps{}, "/version")
	if v["service"] != "chargemap-api" || v["version"] == "" {
		t.Fatalf("version = %v", v)
	}
}
