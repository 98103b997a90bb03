package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "chargemap/internal/platform/errors"
	pnet "chargemap/internal/platform/net"
)

func TestSuccessEnvelopes(t *testing.T) {
	cases := []struct {
		name   string
		build  func() (int, pnet.Wire)
		status int
	}{
		{"ok", func() (int, pnet.Wire) { return pnet.OK([]int{1}, "r") }, http.StatusOK},
		{"created", func() (int, pnet.Wire) { return pnet.Created("x", "r") }, http.StatusCreated},
		{"no content", func() (int, pnet.Wire) { return pnet.NoContent("r") }, http.StatusNoContent},
		{"nil error", func() (int, pnet.Wire) { return pnet.Error(nil, "r") }, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, w := tc.build()
			if status != tc.status || w.StatusCode != tc.status || w.Status != http.StatusText(tc.status) {
				t.Fatalf("got %d %+v", status, w)
			}
			if w.RequestID != "r" || w.Error != "" {
				t.Fatalf("unexpected wire %+v", w)
			}
		})
	}
}

func TestErrorEnvelope(t *testing.T) {
	status, w := pnet.Error(perr.Validationf("postal_code", "invalid postal code"), "req-1")
	if status != http.StatusBadRequest || w.Reason != "validation_error" || w.Field != "postal_code" {
		t.Fatalf("validation envelope %d %+v", status, w)
	}

	status, w = pnet.Error(errors.New("pq: password authentication failed"), "req-2")
	if status != http.StatusInternalServerError || w.Error != "internal error" {
		t.Fatalf("foreign error leaked: %d %+v", status, w)
	}

	status, w = pnet.Error(perr.Unauthorizedf("missing bearer token"), "")
	if status != http.StatusUnauthorized || w.Reason != "unauthenticated" {
		t.Fatalf("unauthorized envelope %d %+v", status, w)
	}
}
