// Package module wires charging stations into the API using modkit
package module

import (
	modkit "chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	str "chargemap/internal/platform/strings"
	stationshttp "chargemap/internal/services/api/stations/http"
	"chargemap/internal/services/api/stations/management"
	stationsrepo "chargemap/internal/services/api/stations/repo"
	stationssvc "chargemap/internal/services/api/stations/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	ports Ports
	mgmt  *management.Management
}

// New constructs the stations module over the store driver in deps
// it panics when deps cannot back the configured driver
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(deps, append([]modkit.Option{modkit.WithName("stations"), modkit.WithPrefix("/stations")}, opts...)...)
	o := FromConfig(deps.Cfg)

	repo, err := stationsrepo.FromDeps(deps)
	if err != nil {
		panic(err)
	}
	svc := stationssvc.New(repo, stationssvc.Config{Policy: o.Policy(), PageLimit: o.PageLimit},
		stationssvc.WithEvents(deps.Publisher()),
		stationssvc.WithMetrics(deps.Metrics),
		stationssvc.WithClock(b.Now),
	)
	mgmt := management.New(svc)

	return &Module{
		built: b,
		mgmt:  mgmt,
		ports: Ports{Management: mgmt, Lookup: svc, Importer: svc},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		stationshttp.Register(rr, m.mgmt, m.built.Auth)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }
