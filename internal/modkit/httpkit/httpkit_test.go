package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perrs "chargemap/internal/platform/errors"
	pnet "chargemap/internal/platform/net"
	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
)

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func serve(t *testing.T, r Router, method, path, body string, hdr map[string]string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	var env Envelope
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v body=%s", method, path, err, rr.Body.String())
		}
	}
	return rr, env
}

type body struct {
	Name string `json:"name" validate:"required,max=8"`
}

func TestSugarMountsVerbs(t *testing.T) {
	t.Parallel()

	r := newRouter()
	Get(r, "/items/{id}", func(req *http.Request) (any, error) { return Param(req, "id"), nil })
	Post(r, "/items/{id}/touch", func(*http.Request) (any, error) { return Created("touched"), nil })
	Delete(r, "/items/{id}", func(*http.Request) (any, error) { return NoContent(), nil })
	PostJSON(r, "/items", func(_ *http.Request, in body) (any, error) { return Created(in.Name), nil })
	PatchJSON(r, "/items/{id}", func(_ *http.Request, in body) (any, error) { return in.Name, nil })

	cases := []struct {
		method, path, body string
		status             int
		data               any
	}{
		{http.MethodGet, "/items/abc", "", 200, "abc"},
		{http.MethodPost, "/items/abc/touch", "", 201, "touched"},
		{http.MethodDelete, "/items/abc", "", 204, nil},
		{http.MethodPost, "/items", `{"name":"ada"}`, 201, "ada"},
		{http.MethodPatch, "/items/abc", `{"name":"bob"}`, 200, "bob"},
	}
	for _, tc := range cases {
		rr, env := serve(t, r, tc.method, tc.path, tc.body, nil)
		if rr.Code != tc.status {
			t.Fatalf("%s %s: status %d, want %d", tc.method, tc.path, rr.Code, tc.status)
		}
		if env.Data != tc.data {
			t.Fatalf("%s %s: data %v, want %v", tc.method, tc.path, env.Data, tc.data)
		}
	}

	rr, env := serve(t, r, http.MethodPost, "/items", `{"name":"far-too-long"}`, nil)
	if rr.Code != http.StatusBadRequest || env.Field != "name" {
		t.Fatalf("validation: status %d field %q", rr.Code, env.Field)
	}
}

func TestCallAndHandle(t *testing.T) {
	t.Parallel()

	r := newRouter()
	r.Get("/err", Call(func(*http.Request) (any, error) { return nil, perrs.NotFoundf("station not found") }))
	r.Get("/raw", Handle(func(*http.Request) Response { return OK(map[string]int{"n": 1}) }))
	r.Get("/boom", Call(func(*http.Request) (any, error) { return nil, errors.New("db exploded") }))

	rr, env := serve(t, r, http.MethodGet, "/err", "", nil)
	if rr.Code != 404 || env.Error != "station not found" || env.Reason != "not_found" {
		t.Fatalf("not found envelope: %d %+v", rr.Code, env)
	}
	rr, _ = serve(t, r, http.MethodGet, "/raw", "", nil)
	if rr.Code != 200 {
		t.Fatalf("raw status %d", rr.Code)
	}
	rr, env = serve(t, r, http.MethodGet, "/boom", "", nil)
	if rr.Code != 500 || strings.Contains(env.Error, "exploded") {
		t.Fatalf("foreign errors must be hidden: %d %+v", rr.Code, env)
	}
	_ = Error(errors.New("x"))
}

func TestProtectedAndCaller(t *testing.T) {
	t.Parallel()

	port := middleware.AuthFunc(func(r *http.Request) (pnet.Principal, error) {
		if r.Header.Get("Authorization") != "Bearer ok" {
			return pnet.Principal{}, perrs.Unauthorizedf("invalid token")
		}
		return pnet.Principal{UserID: "u-1", Username: "ada"}, nil
	})

	r := newRouter()
	Get(r, "/open", func(req *http.Request) (any, error) { return Caller(req).Authenticated(), nil })
	Protected(r, port, func(pr Router) {
		Get(pr, "/me", func(req *http.Request) (any, error) {
			return Caller(req).Username, nil
		})
	})
	Protected(r, nil, func(pr Router) {
		Get(pr, "/locked", func(*http.Request) (any, error) { return "never", nil })
	})

	if rr, env := serve(t, r, http.MethodGet, "/open", "", nil); rr.Code != 200 || env.Data != false {
		t.Fatalf("open route: %d %+v", rr.Code, env)
	}
	if rr, _ := serve(t, r, http.MethodGet, "/me", "", nil); rr.Code != 401 {
		t.Fatalf("missing token: %d", rr.Code)
	}
	if rr, env := serve(t, r, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer ok"}); rr.Code != 200 || env.Data != "ada" {
		t.Fatalf("authorized: %d %+v", rr.Code, env)
	}
	if rr, _ := serve(t, r, http.MethodGet, "/locked", "", map[string]string{"Authorization": "Bearer ok"}); rr.Code != 401 {
		t.Fatalf("nil port must reject: %d", rr.Code)
	}
}

func TestCallerWithoutPrincipalIsAnonymous(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if p := Caller(req); p.Authenticated() || p.UserID != "" {
		t.Fatalf("want anonymous, got %+v", p)
	}
}

func TestMountHelpers(t *testing.T) {
	t.Parallel()

	hits := 0
	counter := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}

	if p := APIPrefix("/v2/"); p != "/api/v2" {
		t.Fatalf("APIPrefix = %q", p)
	}

	r := newRouter()
	MountAPIV1(r, []func(http.Handler) http.Handler{counter}, func(api Router) {
		api.Route("/stations", func(sr Router) {
			Get(sr, "/", func(*http.Request) (any, error) { return "list", nil })
		})
	})
	MountAPI(r, "v2", nil, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	rr, env := serve(t, r, http.MethodGet, "/api/v1/stations/", "", nil)
	if rr.Code != 200 || env.Data != "list" {
		t.Fatalf("mounted route: %d %+v", rr.Code, env)
	}
	if rr, _ := serve(t, r, http.MethodGet, "/api/v2/ping", "", nil); rr.Code != 200 {
		t.Fatalf("v2 route: %d", rr.Code)
	}
	if hits != 1 {
		t.Fatalf("v1 middleware must run once and only under v1, hits=%d", hits)
	}
}

func TestCommonStack(t *testing.T) {
	t.Parallel()

	extra := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Extra", "1")
			next.ServeHTTP(w, r)
		})
	}
	mux := chi.NewRouter()
	mux.Use(CommonStack(StackOptions{Timeout: time.Second, CORSOrigins: []string{"https://example.test"}, Extra: []func(http.Handler) http.Handler{extra}})...)
	r := phttp.AdaptChi(mux)
	Get(r, "/ping", func(req *http.Request) (any, error) { return pnet.RequestID(req.Context()) != "", nil })

	rr, env := serve(t, r, http.MethodGet, "/ping/", "", map[string]string{"Origin": "https://example.test"})
	if rr.Code != 200 || env.Data != true {
		t.Fatalf("ping: %d %+v", rr.Code, env)
	}
	if rr.Header().Get("X-Extra") != "1" {
		t.Fatalf("extra middleware not applied")
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://example.test" {
		t.Fatalf("cors header missing: %v", rr.Header())
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache headers missing")
	}
}
