package repo

import (
	"context"
	"time"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/services/api/ratings/domain"

	"cloud.google.com/go/firestore"
)

type fsRating struct {
	StationID string     `firestore:"station_id"`
	UserID    string     `firestore:"user_id"`
	Username  string     `firestore:"username"`
	Value     int        `firestore:"rating_value"`
	Comment   string     `firestore:"comment"`
	Timestamp time.Time  `firestore:"timestamp"`
	UpdatedAt *time.Time `firestore:"updated_at,omitempty"`
}

func (d fsRating) record(id string) domain.Record {
	r := domain.Record{
		ID:        id,
		StationID: d.StationID,
		UserID:    d.UserID,
		Username:  d.Username,
		Value:     d.Value,
		Comment:   d.Comment,
		Timestamp: d.Timestamp.UTC(),
	}
	if d.UpdatedAt != nil {
		r.UpdatedAt = d.UpdatedAt.UTC()
	}
	return r
}

func patchUpdates(p domain.Patch) []firestore.Update {
	var ups []firestore.Update
	if p.Value != nil {
		ups = append(ups, firestore.Update{Path: "rating_value", Value: *p.Value})
	}
	if p.Comment != nil {
		ups = append(ups, firestore.Update{Path: "comment", Value: *p.Comment})
	}
	if !p.UpdatedAt.IsZero() {
		ups = append(ups, firestore.Update{Path: "updated_at", Value: p.UpdatedAt})
	}
	return ups
}

// Firestore stores ratings in a Firestore collection
type Firestore struct{ c *firestore.Client }

// NewFirestore returns a Repo over c
func NewFirestore(c *firestore.Client) *Firestore { return &Firestore{c: c} }

func (f *Firestore) col() *firestore.CollectionRef { return f.c.Collection(Collection) }

func decode(s *firestore.DocumentSnapshot) (domain.Record, error) {
	var d fsRating
	if err := s.DataTo(&d); err != nil {
		return domain.Record{}, perr.Wrap(err, perr.ErrorCodeDB, "decode rating")
	}
	return d.record(s.Ref.ID), nil
}

// Save implements Repo
func (f *Firestore) Save(ctx context.Context, in domain.NewRating) (domain.Record, error) {
	d := fsRating{
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   in.Comment,
		Timestamp: in.Timestamp,
	}
	ref := f.col().NewDoc()
	if _, err := ref.Create(ctx, d); err != nil {
		return domain.Record{}, perr.FromFirestore(err, "save rating")
	}
	return d.record(ref.ID), nil
}

// ListByStation implements Repo
// the query needs a composite index on (station_id, timestamp)
func (f *Firestore) ListByStation(ctx context.Context, stationID string, limit int) ([]domain.Record, error) {
	snaps, err := f.col().
		Where("station_id", "==", stationID).
		OrderBy("timestamp", firestore.Asc).
		Limit(ClampLimit(limit)).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, perr.FromFirestore(err, "list ratings")
	}
	out := make([]domain.Record, 0, len(snaps))
	for _, s := range snaps {
		rec, err := decode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// GetByID implements Repo
func (f *Firestore) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if !validDocID(id) {
		return nil, nil
	}
	snap, err := f.col().Doc(id).Get(ctx)
	if perr.IsGRPCNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromFirestore(err, "get rating")
	}
	rec, err := decode(snap)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update implements Repo
// Update fails with NotFound on a missing document, which reads as no match
func (f *Firestore) Update(ctx context.Context, id string, p domain.Patch) (bool, error) {
	if !validDocID(id) {
		return false, nil
	}
	ups := patchUpdates(p)
	if len(ups) == 0 {
		rec, err := f.GetByID(ctx, id)
		return rec != nil, err
	}
	_, err := f.col().Doc(id).Update(ctx, ups)
	if perr.IsGRPCNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, perr.FromFirestore(err, "update rating")
	}
	return true, nil
}

// Delete implements Repo
func (f *Firestore) Delete(ctx context.Context, id string) (bool, error) {
	if !validDocID(id) {
		return false, nil
	}
	_, err := f.col().Doc(id).Delete(ctx, firestore.Exists)
	if perr.IsGRPCNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, perr.FromFirestore(err, "delete rating")
	}
	return true, nil
}

// SaveIfFirst reads the pair and creates the rating in one transaction
// a rival commit on the same query aborts and retries the function
func (f *Firestore) SaveIfFirst(ctx context.Context, in domain.NewRating) (domain.Record, bool, error) {
	d := fsRating{
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   in.Comment,
		Timestamp: in.Timestamp,
	}
	ref := f.col().NewDoc()
	created := false
	err := f.c.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		created = false
		q := f.col().
			Where("user_id", "==", in.UserID).
			Where("station_id", "==", in.StationID).
			Limit(1)
		snaps, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		if len(snaps) > 0 {
			return nil
		}
		created = true
		return tx.Create(ref, d)
	})
	if err != nil {
		return domain.Record{}, false, perr.FromFirestore(err, "save rating")
	}
	if !created {
		return domain.Record{}, false, nil
	}
	return d.record(ref.ID), true, nil
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
