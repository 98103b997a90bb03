// Command chargemap-seed prepares a store and loads the station register
//
//	chargemap-seed migrate
//	chargemap-seed import -file Ladesaeulenregister.xlsx
//	chargemap-seed token -sub u-1 -name ada -ttl 24h
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chargemap/internal/modkit/module"
	"chargemap/internal/platform/auth"
	"chargemap/internal/platform/config"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/store"

	"chargemap/internal/services/api"
	ratingsmod "chargemap/internal/services/api/ratings/module"
	"chargemap/internal/services/api/stations/importer"
	stationsmod "chargemap/internal/services/api/stations/module"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: chargemap-seed <migrate|import|token> [flags]")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	if err := config.Load(); err != nil {
		logger.Get().Fatal().Err(err).Msg("config.Load failed")
	}
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "migrate":
		err = withStore(ctx, func(st *store.Store, cfg store.Config) error {
			return migrate(ctx, st, cfg.CH.Table, ratingsmod.FromConfig(config.New()).OnePerUser)
		})
	case "import":
		err = runImport(ctx, args)
	case "token":
		err = runToken(os.Stdout, args)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		l.Fatal().Err(err).Str("cmd", os.Args[1]).Msg("seed failed")
	}
}

func withStore(ctx context.Context, fn func(*store.Store, store.Config) error) error {
	cfg := store.FromConf(config.New().Prefix("SERVICE_"), "chargemap-seed")
	st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Get()))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close store")
		}
	}()
	return fn(st, cfg)
}

func runImport(ctx context.Context, args []string) error {
	fl := flag.NewFlagSet("import", flag.ContinueOnError)
	file := fl.String("file", "", "path to the charging station register (.xlsx)")
	state := fl.String("state", importer.DefaultState, "keep rows of this Bundesland; empty keeps all")
	sheet := fl.String("sheet", "", "sheet name, first sheet when empty")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("import: -file is required")
	}

	return withStore(ctx, func(st *store.Store, _ store.Config) error {
		root := config.New()
		deps := api.Deps(api.Options{Config: root, Store: st, Logger: logger.Get()})
		stations := stationsmod.New(deps)
		ports := module.MustPortsOf[stationsmod.Ports](stations)

		rep, err := importer.Run(ctx, *file, importer.Config{
			Policy: stationsmod.FromConfig(root).Policy(),
			State:  *state,
			Sheet:  *sheet,
		}, ports.Importer)
		if err != nil {
			return err
		}
		logger.Get().Info().
			Int("rows", rep.Rows).
			Int("kept", rep.Kept).
			Int("skipped", rep.Skipped).
			Int("imported", rep.Imported).
			Msg("import done")
		return nil
	})
}

// runToken mints a bearer token with the AUTH_* secret for local testing
func runToken(w io.Writer, args []string) error {
	fl := flag.NewFlagSet("token", flag.ContinueOnError)
	sub := fl.String("sub", "", "user id")
	name := fl.String("name", "", "display name")
	ttl := fl.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fl.Parse(args); err != nil {
		return err
	}
	v, err := auth.FromConf(config.New().Prefix("AUTH_"))
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("token: AUTH_JWT_SECRET is not set")
	}
	tok, err := v.Sign(*sub, *name, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tok)
	return err
}
