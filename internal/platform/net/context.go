// Package net holds transport neutral request context and reply helpers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyPrincipal ctxKey = "principal"

// Principal is the authenticated caller as seen by handlers
type Principal struct {
	UserID   string
	Username string
}

// Authenticated reports whether the principal carries a user id
func (p Principal) Authenticated() bool { return p.UserID != "" }

// WithRequest sets the request id where chimw.GetReqID will find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithPrincipal stores the authenticated caller; anonymous principals are not stored
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	if !p.Authenticated() {
		return ctx
	}
	return context.WithValue(ctx, keyPrincipal, p)
}

// WithUser is WithPrincipal for callers that only know the id and name
func WithUser(ctx context.Context, userID, username string) context.Context {
	return WithPrincipal(ctx, Principal{UserID: userID, Username: username})
}

// RequestID returns the request id, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// PrincipalFrom returns the caller stored on ctx and whether there was one
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(keyPrincipal).(Principal)
	return p, ok
}

// UserID returns the caller id, or ""
func UserID(ctx context.Context) string {
	p, _ := PrincipalFrom(ctx)
	return p.UserID
}
