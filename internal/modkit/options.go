package modkit

import (
	"net/http"
	"time"

	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/net/middleware"
)

// Option adjusts how a module is built and mounted
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	auth      middleware.AuthPort
	now       func() time.Time
	subrouter func(phttp.Router) phttp.Router
	register  []func(phttp.Router)
}

// WithName names the module for logs and module.Find
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix sets the path the module mounts under, e.g. /stations
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares appends module scoped middleware, run in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands the module a port another module exports
// ratings receives the station lookup this way
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithAuth replaces the deps bearer parser for this module
func WithAuth(p middleware.AuthPort) Option {
	return func(c *buildCfg) { c.auth = p }
}

// WithClock replaces the deps clock for this module
func WithClock(now func() time.Time) Option {
	return func(c *buildCfg) { c.now = now }
}

// WithSubrouter wraps the module router before any route is added
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister adds routes after the module's own; repeated calls run in order
// stations uses it to carry the nested /stations/{id}/ratings routes
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) {
		if fn != nil {
			c.register = append(c.register, fn)
		}
	}
}
