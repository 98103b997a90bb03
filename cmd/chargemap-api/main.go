// @title         chargemap API
// @version       0.1.0
// @description   Charging station search and ratings for Berlin postal codes
// @BasePath      /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"chargemap/internal/core/version"
	"chargemap/internal/modkit/repokit"
	"chargemap/internal/platform/config"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/metrics"
	phttp "chargemap/internal/platform/net/http"
	"chargemap/internal/platform/store"

	"chargemap/internal/services/api"
)

func main() {
	if err := config.Load(); err != nil {
		logger.Get().Panic().Err(err).Msg("config.Load failed")
	}

	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = version.Service
	}
	logger.Init(opts)
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// SERVICE_STORE_DRIVER picks pg, mongo, firestore or memory
	stCfg := store.FromConf(root.Prefix("SERVICE_"), version.Service)
	st, err := store.Open(ctx, stCfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := repokit.Guard(ctx, st, apiCfg.MayDuration("GUARD_TIMEOUT", repokit.DefaultGuardTimeout)); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	authPort, err := api.AuthFromConf(root)
	if err != nil {
		l.Panic().Err(err).Msg("auth config invalid")
	}
	if authPort == nil {
		l.Warn().Msg("AUTH_JWT_SECRET unset, write routes reject every caller")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Metrics:        metrics.New(true),
			Auth:           authPort,
			Events:         api.Publisher(st, stCfg.CH.Table),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	l.Info().Str("driver", string(st.Driver)).Str("addr", srv.Addr()).Msg("chargemap api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
