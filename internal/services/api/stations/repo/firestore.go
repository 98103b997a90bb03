package repo

import (
	"context"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/services/api/stations/domain"

	"cloud.google.com/go/firestore"
)

// firestore caps a write batch at 500 operations
const fsBatchSize = 500

type fsLocation struct {
	Latitude    float64 `firestore:"latitude"`
	Longitude   float64 `firestore:"longitude"`
	Description string  `firestore:"description,omitempty"`
}

type fsStation struct {
	PostalCode string     `firestore:"postal_code"`
	Available  bool       `firestore:"availability_status"`
	Location   fsLocation `firestore:"location"`
	Name       string     `firestore:"name,omitempty"`
	PowerKW    float64    `firestore:"power_kw,omitempty"`
}

func (d fsStation) row(id string) Row {
	return Row{
		ID:          id,
		PostalCode:  d.PostalCode,
		Available:   d.Available,
		Latitude:    d.Location.Latitude,
		Longitude:   d.Location.Longitude,
		Description: d.Location.Description,
		Name:        d.Name,
		PowerKW:     d.PowerKW,
	}
}

// Firestore stores stations in a Firestore collection
type Firestore struct{ c *firestore.Client }

// NewFirestore returns a Repo over c
func NewFirestore(c *firestore.Client) *Firestore { return &Firestore{c: c} }

func (f *Firestore) col() *firestore.CollectionRef { return f.c.Collection(Collection) }

// FindByPostalCode implements Repo
func (f *Firestore) FindByPostalCode(ctx context.Context, code string, limit int) ([]Row, error) {
	snaps, err := f.col().Where("postal_code", "==", code).Limit(ClampLimit(limit)).Documents(ctx).GetAll()
	if err != nil {
		return nil, perr.FromFirestore(err, "find stations by postal code")
	}
	out := make([]Row, 0, len(snaps))
	for _, s := range snaps {
		var d fsStation
		if err := s.DataTo(&d); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "decode station")
		}
		out = append(out, d.row(s.Ref.ID))
	}
	return out, nil
}

// FindByID implements Repo
func (f *Firestore) FindByID(ctx context.Context, id string) (*Row, error) {
	if !validDocID(id) {
		return nil, nil
	}
	snap, err := f.col().Doc(id).Get(ctx)
	if perr.IsGRPCNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromFirestore(err, "find station")
	}
	var d fsStation
	if err := snap.DataTo(&d); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "decode station")
	}
	row := d.row(snap.Ref.ID)
	return &row, nil
}

// ToggleAvailability implements Repo
// the transaction is retried by the client when another toggle commits first
func (f *Firestore) ToggleAvailability(ctx context.Context, id string) (bool, bool, error) {
	if !validDocID(id) {
		return false, false, nil
	}
	ref := f.col().Doc(id)
	var status, found bool
	err := f.c.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		status, found = false, false
		snap, err := tx.Get(ref)
		if perr.IsGRPCNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		var d fsStation
		if err := snap.DataTo(&d); err != nil {
			return err
		}
		status, found = !d.Available, true
		return tx.Update(ref, []firestore.Update{{Path: "availability_status", Value: status}})
	})
	if err != nil {
		return false, false, perr.FromFirestore(err, "toggle station availability")
	}
	return status, found, nil
}

// Import implements Repo
func (f *Firestore) Import(ctx context.Context, in []domain.NewStation) (int, error) {
	written := 0
	for start := 0; start < len(in); start += fsBatchSize {
		end := min(start+fsBatchSize, len(in))
		batch := f.c.Batch()
		for _, s := range in[start:end] {
			batch.Create(f.col().NewDoc(), fsStation{
				PostalCode: s.PostalCode,
				Available:  s.Available,
				Location:   fsLocation{Latitude: s.Latitude, Longitude: s.Longitude, Description: s.Description},
				Name:       s.Name,
				PowerKW:    s.PowerKW,
			})
		}
		if _, err := batch.Commit(ctx); err != nil {
			return written, perr.FromFirestore(err, "import stations")
		}
		written += end - start
	}
	return written, nil
}

// validDocID rejects ids Firestore would refuse as a document path segment
func validDocID(id string) bool {
	if id == "" || id == "." || id == ".." || len(id) > 1500 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return false
		}
	}
	return true
}
