package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type dto struct {
	N int `json:"n"`
}

func TestSugarVerbs(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	GetJSON(r, "/g", func(*http.Request) (any, error) { return "get", nil })
	DeleteJSON(r, "/g", func(*http.Request) (any, error) { return NoContent(), nil })
	PostJSON(r, "/p", func(_ *http.Request, in dto) (any, error) { return in.N * 2, nil })
	PostAction(r, "/a", func(*http.Request) (any, error) { return "acted", nil })
	PatchJSON(r, "/p", func(_ *http.Request, in dto) (any, error) { return in.N, nil })

	cases := []struct {
		method, path, body string
		status             int
		contains           string
	}{
		{http.MethodGet, "/g", "", http.StatusOK, `"data":"get"`},
		{http.MethodDelete, "/g", "", http.StatusNoContent, ""},
		{http.MethodPost, "/p", `{"n":4}`, http.StatusOK, `"data":8`},
		{http.MethodPost, "/a", "", http.StatusOK, `"data":"acted"`},
		{http.MethodPatch, "/p", `{"n":5}`, http.StatusOK, `"data":5`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body)))
		if rec.Code != tc.status || !strings.Contains(rec.Body.String(), tc.contains) {
			t.Fatalf("%s %s = %d %q", tc.method, tc.path, rec.Code, rec.Body.String())
		}
	}
}
