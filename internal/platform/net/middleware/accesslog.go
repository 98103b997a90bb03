// Package middleware holds the HTTP middleware chain: chi adapters, access log, auth, recovery
package middleware

import (
	"context"
	"net/http"
	"time"

	"chargemap/internal/platform/logger"
	pnet "chargemap/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests at warn when they take at least this long; 0 disables it
	Slow time.Duration
	// Log picks the logger for a request, logger.C when nil
	Log func(context.Context) *logger.Logger
}

// AccessLogZerolog writes one line per request
// it copies the chi request id into the logger context so downstream logs carry it, so mount it after RequestID
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	logFor := opt.Log
	if logFor == nil {
		logFor = logger.C
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), "")
			r = r.WithContext(ctx)
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			slow := opt.Slow > 0 && elapsed >= opt.Slow

			log := logFor(ctx)
			evt := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case slow:
				evt = log.Warn()
			}
			if rc := chi.RouteContext(ctx); rc != nil && rc.RoutePattern() != "" {
				evt = evt.Str("route", rc.RoutePattern())
			}
			evt.Int("status", status).
				Dur("elapsed", elapsed).
				Bool("slow", slow).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
