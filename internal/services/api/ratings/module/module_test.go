package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chargemap/internal/core/outcome"
	modkit "chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/modkit/module"
	"chargemap/internal/platform/config"
	pnet "chargemap/internal/platform/net"
	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestFromConfig(t *testing.T) {
	o := FromConfig(config.New())
	if o.PageLimit != 100 || o.OnePerUser || o.CommentMax != 500 {
		t.Fatalf("defaults = %+v", o)
	}

	body := "ratings:\n  page_limit: 25\n  one_per_user: true\n  comment_max: 280\n"
	path := testkit.WriteFile(t, "policy.yaml", []byte(body))
	t.Setenv(config.PolicyFileKey, path)
	o = FromConfig(config.New())
	if o.PageLimit != 25 || !o.OnePerUser || o.CommentMax != 280 {
		t.Fatalf("file = %+v", o)
	}

	t.Setenv("RATINGS_ONE_PER_USER", "false")
	t.Setenv("RATINGS_COMMENT_MAX", "140")
	o = FromConfig(config.New())
	if o.OnePerUser || o.CommentMax != 140 || o.PageLimit != 25 {
		t.Fatalf("env over file = %+v", o)
	}
	if sc := o.Service(); sc.CommentMax != 140 || sc.PageLimit != 25 {
		t.Fatalf("service config = %+v", sc)
	}
}

type lookup map[string]bool

func (l lookup) StationExists(_ context.Context, id string) (bool, error) { return l[id], nil }

var alice = pnet.Principal{UserID: "u1", Username: "alice"}

func TestModuleUsesStationLookup(t *testing.T) {
	m := New(modkit.Deps{}, WithStations(lookup{"s1": true}))
	if mod := m.(*Module); m.Name() != "ratings" || mod.built.Prefix != "/ratings" {
		t.Fatalf("name/prefix = %s %s", m.Name(), mod.built.Prefix)
	}
	ports := module.MustPortsOf[Ports](m)

	ctx := context.Background()
	if r := ports.Management.Create(ctx, alice, "s1", 5, ""); !r.IsOK() {
		t.Fatalf("known station = %+v", r)
	}
	if r := ports.Management.Create(ctx, alice, "ghost", 5, ""); r.Kind != outcome.NotFound {
		t.Fatalf("unknown station = %+v", r)
	}
}

func TestModuleRoutes(t *testing.T) {
	auth := middleware.AuthFunc(func(*http.Request) (pnet.Principal, error) { return alice, nil })
	m := New(modkit.Deps{Auth: auth})
	sr := module.MustPortsOf[StationRoutes](m)

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	r.Route("/stations", func(s httpkit.Router) { sr.MountStationRoutes(s) })

	req := httptest.NewRequest(http.MethodPost, "/stations/s1/ratings", strings.NewReader(`{"rating_value":3}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", rr.Code, rr.Body.String())
	}

	list := module.MustPortsOf[Ports](m).Management.List(context.Background(), "s1")
	if len(list.Value) != 1 {
		t.Fatalf("list = %+v", list)
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ratings/"+list.Value[0].ID, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("get = %d", rr.Code)
	}
}
