package repo

import (
	"context"
	_ "embed"

	"chargemap/internal/modkit/repokit"
	perr "chargemap/internal/platform/errors"
	"chargemap/internal/platform/store"
	"chargemap/internal/services/api/stations/domain"

	"github.com/google/uuid"
)

// Schema creates the stations table
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

const stationCols = `id::text, postal_code, availability_status, latitude, longitude, description, name, power_kw`

func scanRow(r store.Row) (Row, error) {
	var out Row
	err := r.Scan(&out.ID, &out.PostalCode, &out.Available, &out.Latitude, &out.Longitude,
		&out.Description, &out.Name, &out.PowerKW)
	return out, err
}

func (r *queries) FindByPostalCode(ctx context.Context, code string, limit int) ([]Row, error) {
	const sql = `
select ` + stationCols + `
from stations
where postal_code = $1
order by created_at, id
limit $2
`
	rows, err := store.Many(ctx, r.q, scanRow, sql, code, ClampLimit(limit))
	if err != nil {
		return nil, perr.FromPostgres(err, "find stations by postal code")
	}
	return rows, nil
}

func (r *queries) FindByID(ctx context.Context, id string) (*Row, error) {
	// a malformed id cannot match a uuid key
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	const sql = `select ` + stationCols + ` from stations where id = $1::uuid`
	row, err := scanRow(r.q.QueryRow(ctx, sql, id))
	if perr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "find station")
	}
	return &row, nil
}

func (r *queries) ToggleAvailability(ctx context.Context, id string) (bool, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, false, nil
	}
	const sql = `
update stations
set availability_status = not availability_status
where id = $1::uuid
returning availability_status
`
	status, err := store.Scalar[bool](ctx, r.q, sql, id)
	if perr.IsNoRows(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, perr.FromPostgres(err, "toggle station availability")
	}
	return status, true, nil
}

func (r *queries) Import(ctx context.Context, in []domain.NewStation) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}
	var (
		codes, descs, names []string
		avail               []bool
		lats, lons, kws     []float64
	)
	for _, s := range in {
		codes = append(codes, s.PostalCode)
		avail = append(avail, s.Available)
		lats = append(lats, s.Latitude)
		lons = append(lons, s.Longitude)
		descs = append(descs, s.Description)
		names = append(names, s.Name)
		kws = append(kws, s.PowerKW)
	}
	const sql = `
insert into stations (postal_code, availability_status, latitude, longitude, description, name, power_kw)
select * from unnest($1::text[], $2::boolean[], $3::float8[], $4::float8[], $5::text[], $6::text[], $7::float8[])
`
	tag, err := store.Exec(ctx, r.q, sql, codes, avail, lats, lons, descs, names, kws)
	if err != nil {
		return 0, perr.FromPostgres(err, "import stations")
	}
	return int(tag.RowsAffected()), nil
}
