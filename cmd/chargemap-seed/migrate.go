package main

import (
	"context"
	"fmt"

	"chargemap/internal/core/events"
	"chargemap/internal/platform/logger"
	"chargemap/internal/platform/store"

	ratingsrepo "chargemap/internal/services/api/ratings/repo"
	stationsrepo "chargemap/internal/services/api/stations/repo"
)

// migrate creates tables and indexes on every backend the store opened
// firestore needs nothing; its single field indexes are automatic
// onePerUser adds the unique (user, station) index to mongo
func migrate(ctx context.Context, st *store.Store, eventsTable string, onePerUser bool) error {
	log := logger.C(ctx)

	if st.PG != nil {
		for name, ddl := range map[string]string{"stations": stationsrepo.Schema, "ratings": ratingsrepo.Schema} {
			if _, err := st.PG.Exec(ctx, ddl); err != nil {
				return fmt.Errorf("migrate pg %s: %w", name, err)
			}
			log.Info().Str("table", name).Msg("pg schema applied")
		}
	}

	if st.Mongo != nil {
		if err := stationsrepo.NewMongo(st.Mongo.Collection(stationsrepo.Collection)).EnsureIndexes(ctx); err != nil {
			return err
		}
		if err := ratingsrepo.NewMongo(st.Mongo.Collection(ratingsrepo.Collection)).EnsureIndexes(ctx, onePerUser); err != nil {
			return err
		}
		log.Info().Bool("one_per_user", onePerUser).Msg("mongo indexes ensured")
	}

	if st.CH != nil {
		ex, ok := st.CH.(store.Execer)
		if !ok {
			return fmt.Errorf("migrate clickhouse: seam cannot exec")
		}
		if err := ex.Exec(ctx, events.TableDDL(eventsTable)); err != nil {
			return fmt.Errorf("migrate clickhouse: %w", err)
		}
		log.Info().Str("table", eventsTable).Msg("clickhouse events table ready")
	}
	return nil
}
