package modkit

import (
	"net/http"
	"time"

	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/platform/net/middleware"
	str "chargemap/internal/platform/strings"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Auth and Now fall back to the matching Deps fields
	Auth middleware.AuthPort
	Now  func() time.Time

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts over the defaults taken from deps
func Build(deps Deps, opts ...Option) Built {
	c := buildCfg{auth: deps.Auth, now: deps.Clock()}
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	hooks := make([]func(httpkit.Router), len(c.register))
	copy(hooks, c.register)
	register := func(r httpkit.Router) {
		for _, h := range hooks {
			h(r)
		}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Auth:      c.auth,
		Now:       c.now,
		Subrouter: c.subrouter,
		Register:  register,
	}
}

// Mount applies the module middlewares, subrouter and register hooks under Prefix
// it panics when Prefix is blank
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(sr httpkit.Router) {
		for _, mw := range b.Mw {
			sr.Use(mw)
		}
		sr = b.Subrouter(sr)
		if own != nil {
			own(sr)
		}
		b.Register(sr)
	})
}
