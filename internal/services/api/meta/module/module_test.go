package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "chargemap/internal/modkit"
	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/store/mg"

	"github.com/go-chi/chi/v5"
)

func TestChecksTreatTypedNilAsSkipped(t *testing.T) {
	t.Parallel()

	var nilMongo *mg.MG
	checks := Checks(modkit.Deps{Mongo: nilMongo})
	if len(checks) != 4 {
		t.Fatalf("checks = %d", len(checks))
	}
	for _, c := range checks {
		if c.Target != nil {
			t.Fatalf("%s should be skipped, target = %#v", c.Name, c.Target)
		}
	}
}

func TestModuleMounts(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{}, modkit.WithPrefix("status/"))
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("module = %s %+v", m.Name(), m.Ports())
	}
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready = %d", rec.Code)
	}
}
