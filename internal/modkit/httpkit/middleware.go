package httpkit

import (
	"net/http"
	"time"

	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	// Extra runs after the defaults, e.g. the metrics middleware
	Extra []func(http.Handler) http.Handler
}

// CommonStack returns the router wide middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	mw := middleware.Defaults(o.Timeout)
	mw = append(mw, middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}))
	if len(o.CORSOrigins) > 0 {
		mw = append(mw, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}))
	}
	mw = append(mw, middleware.StripSlashes())
	return append(mw, o.Extra...)
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
