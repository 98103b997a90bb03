// Package module wires ratings into the API using modkit
package module

import (
	modkit "chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	str "chargemap/internal/platform/strings"
	"chargemap/internal/services/api/ratings/domain"
	ratingshttp "chargemap/internal/services/api/ratings/http"
	"chargemap/internal/services/api/ratings/management"
	ratingsrepo "chargemap/internal/services/api/ratings/repo"
	ratingssvc "chargemap/internal/services/api/ratings/service"
)

// Module implements the modkit.Module interface
// single rating routes live under its prefix; per station routes are mounted by
// the stations module through the StationRoutes port
type Module struct {
	built modkit.Built
	mgmt  *management.Management
}

// New constructs the ratings module over the store driver in deps
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(deps, append([]modkit.Option{modkit.WithName("ratings"), modkit.WithPrefix("/ratings")}, opts...)...)
	o := FromConfig(deps.Cfg)

	repo, err := ratingsrepo.FromDeps(deps)
	if err != nil {
		panic(err)
	}
	svcOpts := []ratingssvc.Option{
		ratingssvc.WithEvents(deps.Publisher()),
		ratingssvc.WithMetrics(deps.Metrics),
		ratingssvc.WithClock(b.Now),
	}
	if lookup, ok := b.Ports.(domain.StationLookup); ok && lookup != nil {
		svcOpts = append(svcOpts, ratingssvc.WithStations(lookup))
	}
	svc := ratingssvc.New(repo, o.Service(), svcOpts...)

	return &Module{built: b, mgmt: management.New(svc)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		ratingshttp.Register(rr, m.mgmt, m.built.Auth)
	})
}

// MountStationRoutes implements StationRoutes
func (m *Module) MountStationRoutes(r httpkit.Router) {
	ratingshttp.RegisterStation(r, m.mgmt, m.built.Auth)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }
