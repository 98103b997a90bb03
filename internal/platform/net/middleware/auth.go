package middleware

import (
	"net/http"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/logger"
	pnet "chargemap/internal/platform/net"
)

// AuthPort resolves the caller of a request
type AuthPort interface {
	Parse(r *http.Request) (pnet.Principal, error)
}

// AuthFunc adapts a func to AuthPort
type AuthFunc func(r *http.Request) (pnet.Principal, error)

// Parse calls f
func (f AuthFunc) Parse(r *http.Request) (pnet.Principal, error) { return f(r) }

// Auth rejects requests the port cannot resolve and stores the principal otherwise
// A nil port rejects everything; a route is never silently left open.
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := pnet.RequestID(r.Context())
			if p == nil {
				status, body := pnet.Error(perr.Unauthorizedf("authentication is not configured"), reqID)
				write(w, status, body)
				return
			}
			who, err := p.Parse(r)
			if err == nil && !who.Authenticated() {
				err = perr.Unauthorizedf("missing subject")
			}
			if err != nil {
				logger.C(r.Context()).Debug().Err(err).Msg("auth rejected")
				status, body := pnet.Error(err, reqID)
				write(w, status, body)
				return
			}
			ctx := pnet.WithPrincipal(r.Context(), who)
			ctx = logger.WithUser(ctx, who.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
