// Package api provides the HTTP API for the application
package api

import (
	"time"

	"chargemap/internal/core/events"
	"chargemap/internal/platform/config"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/metrics"
	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/platform/store"

	"chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/modkit/module"
	"chargemap/internal/modkit/swaggerkit"

	metamod "chargemap/internal/services/api/meta/module"
	ratingsmod "chargemap/internal/services/api/ratings/module"
	stationsmod "chargemap/internal/services/api/stations/module"
)

// Options are the API options
type Options struct {
	// Config is the root view; modules read their own prefixes from it
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.Metrics
	Auth    middleware.AuthPort
	Events  events.Publisher
	Now     func() time.Time

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Deps builds the shared module deps from opt
func Deps(opt Options) modkit.Deps {
	d := modkit.Deps{
		Cfg:     opt.Config,
		Auth:    opt.Auth,
		Events:  opt.Events,
		Metrics: opt.Metrics,
		Now:     opt.Now,
	}
	if opt.Logger != nil {
		d.Log = *opt.Logger
	}
	return d.FromStore(opt.Store)
}

// Modules builds the api modules in dependency order
// stations mounts the nested rating routes, ratings checks stations exist
func Modules(deps modkit.Deps) []module.Module {
	var ratings module.Module
	stations := stationsmod.New(deps, stationsmod.WithRegister(func(r httpkit.Router) {
		module.MustPortsOf[ratingsmod.Ports](ratings).StationRoutes.MountStationRoutes(r)
	}))
	ratings = ratingsmod.New(deps, ratingsmod.WithStations(module.MustPortsOf[stationsmod.Ports](stations).Lookup))

	return []module.Module{
		metamod.New(deps),
		stations,
		ratings,
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) []module.Module {
	mods := Modules(Deps(opt))

	cfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 15*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
	}
	if opt.Metrics != nil {
		stack.Extra = append(stack.Extra, opt.Metrics.Middleware)
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		module.MountAll(api, mods)
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
	return mods
}
