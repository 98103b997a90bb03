// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"chargemap/internal/core/version"
	modkit "chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	str "chargemap/internal/platform/strings"

	metahttp "chargemap/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(deps, append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := b.Now()
	return &Module{
		built:     b,
		startedAt: started,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   started,
			Checks:      Checks(deps),
			Now:         b.Now,
		},
	}
}

// Checks lists the backends a readiness probe pings, in a stable order
// typed nil handles become nil so they report skipped
func Checks(d modkit.Deps) []metahttp.Check {
	checks := []metahttp.Check{{Name: "pg"}, {Name: "mongo"}, {Name: "firestore"}, {Name: "clickhouse"}}
	if d.PG != nil {
		checks[0].Target = d.PG
	}
	if d.Mongo != nil {
		checks[1].Target = d.Mongo
	}
	if d.FS != nil {
		checks[2].Target = d.FS
	}
	if d.CH != nil {
		checks[3].Target = d.CH
	}
	return checks
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
