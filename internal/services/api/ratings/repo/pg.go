package repo

import (
	"context"
	_ "embed"
	"time"

	"chargemap/internal/modkit/repokit"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
	ptime "chargemap/internal/platform/time"
	"chargemap/internal/services/api/ratings/domain"

	"github.com/google/uuid"
)

// Schema creates the ratings table
//
//go:embed schema.sql
var Schema string

type (
	// PG binds the Postgres implementation
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const ratingCols = `id::text, station_id, user_id, username, rating_value, comment, created_at, updated_at`

func scanRecord(r store.Row) (domain.Record, error) {
	var (
		out     domain.Record
		updated *time.Time
	)
	err := r.Scan(&out.ID, &out.StationID, &out.UserID, &out.Username, &out.Value, &out.Comment,
		&out.Timestamp, &updated)
	out.UpdatedAt = ptime.Deref(updated)
	return out, err
}

func (r *queries) Save(ctx context.Context, in domain.NewRating) (domain.Record, error) {
	const sql = `
insert into ratings (station_id, user_id, username, rating_value, comment, created_at)
values ($1, $2, $3, $4, $5, $6)
returning ` + ratingCols
	rec, err := scanRecord(r.q.QueryRow(ctx, sql, in.StationID, in.UserID, in.Username, in.Value, in.Comment, in.Timestamp))
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "save rating")
	}
	return rec, nil
}

func (r *queries) ListByStation(ctx context.Context, stationID string, limit int) ([]domain.Record, error) {
	const sql = `
select ` + ratingCols + `
from ratings
where station_id = $1
order by created_at, id
limit $2
`
	recs, err := store.Many(ctx, r.q, scanRecord, sql, stationID, ClampLimit(limit))
	if err != nil {
		return nil, perr.FromPostgres(err, "list ratings")
	}
	return recs, nil
}

func (r *queries) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	const sql = `select ` + ratingCols + ` from ratings where id = $1::uuid`
	rec, err := scanRecord(r.q.QueryRow(ctx, sql, id))
	if perr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "get rating")
	}
	return &rec, nil
}

// Update sets supplied columns only; nil args keep the stored value
func (r *queries) Update(ctx context.Context, id string, p domain.Patch) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	const sql = `
update ratings
set rating_value = coalesce($2::integer, rating_value),
    comment      = coalesce($3::text, comment),
    updated_at   = coalesce($4::timestamptz, updated_at)
where id = $1::uuid
`
	tag, err := store.Exec(ctx, r.q, sql, id, p.Value, p.Comment, ptime.Ptr(p.UpdatedAt))
	if err != nil {
		return false, perr.FromPostgres(err, "update rating")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	tag, err := store.Exec(ctx, r.q, `delete from ratings where id = $1::uuid`, id)
	if err != nil {
		return false, perr.FromPostgres(err, "delete rating")
	}
	return tag.RowsAffected() > 0, nil
}

// SaveIfFirst serializes writers of one (user, station) pair on a transaction scoped
// advisory lock; the insert runs as a second statement so it sees committed rivals
func (r *queries) SaveIfFirst(ctx context.Context, in domain.NewRating) (domain.Record, bool, error) {
	const (
		lock = `select pg_advisory_xact_lock(hashtextextended($1::text, 0))`
		sql  = `
insert into ratings (station_id, user_id, username, rating_value, comment, created_at)
select $1::text, $2::text, $3::text, $4::integer, $5::text, $6::timestamptz
where not exists (select 1 from ratings where user_id = $2::text and station_id = $1::text)
returning ` + ratingCols
	)
	var (
		rec     domain.Record
		created bool
	)
	run := func(q repokit.Queryer) error {
		if _, err := q.Exec(ctx, lock, in.UserID+"/"+in.StationID); err != nil {
			return err
		}
		var err error
		rec, err = scanRecord(q.QueryRow(ctx, sql, in.StationID, in.UserID, in.Username, in.Value, in.Comment, in.Timestamp))
		if perr.IsNoRows(err) {
			return nil
		}
		created = err == nil
		return err
	}

	var err error
	if tx, ok := r.q.(repokit.TxRunner); ok {
		err = tx.Tx(ctx, run)
	} else {
		// already inside the caller's transaction
		err = run(r.q)
	}
	if err != nil {
		return domain.Record{}, false, perr.FromPostgres(err, "save rating")
	}
	if !created {
		return domain.Record{}, false, nil
	}
	return rec, true, nil
}
