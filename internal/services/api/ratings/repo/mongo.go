package repo

import (
	"context"
	"time"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/services/api/ratings/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ratingDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StationID string             `bson:"station_id"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Value     int                `bson:"rating_value"`
	Comment   string             `bson:"comment"`
	Timestamp time.Time          `bson:"timestamp"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (d ratingDoc) record() domain.Record {
	r := domain.Record{
		ID:        d.ID.Hex(),
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

// patchSet is the $set document for p
func patchSet(p domain.Patch) bson.D {
	set := bson.D{}
	if p.Value != nil {
		set = append(set, bson.E{Key: "rating_value", Value: *p.Value})
	}
	if p.Comment != nil {
		set = append(set, bson.E{Key: "comment", Value: *p.Comment})
	}
	if !p.UpdatedAt.IsZero() {
		set = append(set, bson.E{Key: "updated_at", Value: p.UpdatedAt})
	}
	return set
}

// Mongo stores ratings in a MongoDB collection
type Mongo struct{ c *mongo.Collection }

// NewMongo returns a Repo over c
func NewMongo(c *mongo.Collection) *Mongo { return &Mongo{c: c} }

// Save implements Repo
func (m *Mongo) Save(ctx context.Context, in domain.NewRating) (domain.Record, error) {
	d := ratingDoc{
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   in.Comment,
		Timestamp: in.Timestamp,
	}
	res, err := m.c.InsertOne(ctx, d)
	if err != nil {
		return domain.Record{}, perr.FromMongo(err, "save rating")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return d.record(), nil
}

// ListByStation implements Repo
func (m *Mongo) ListByStation(ctx context.Context, stationID string, limit int) ([]domain.Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(ClampLimit(limit)))
	cur, err := m.c.Find(ctx, bson.D{{Key: "station_id", Value: stationID}}, opts)
	if err != nil {
		return nil, perr.FromMongo(err, "list ratings")
	}
	var docs []ratingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, perr.FromMongo(err, "decode ratings")
	}
	out := make([]domain.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.record())
	}
	return out, nil
}

// GetByID implements Repo
func (m *Mongo) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var d ratingDoc
	err = m.c.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if perr.IsNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromMongo(err, "get rating")
	}
	rec := d.record()
	return &rec, nil
}

// Update implements Repo
func (m *Mongo) Update(ctx context.Context, id string, p domain.Patch) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	set := patchSet(p)
	if len(set) == 0 {
		n, err := m.c.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}})
		if err != nil {
			return false, perr.FromMongo(err, "update rating")
		}
		return n > 0, nil
	}
	res, err := m.c.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, perr.FromMongo(err, "update rating")
	}
	return res.MatchedCount > 0, nil
}

// Delete implements Repo
func (m *Mongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := m.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, perr.FromMongo(err, "delete rating")
	}
	return res.DeletedCount > 0, nil
}

// SaveIfFirst upserts on (user_id, station_id) with $setOnInsert
// concurrent upserts only stay single with the unique index from Indexes(true);
// the losing writer then gets a duplicate key, which reads as not created
func (m *Mongo) SaveIfFirst(ctx context.Context, in domain.NewRating) (domain.Record, bool, error) {
	d := ratingDoc{
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   in.Comment,
		Timestamp: in.Timestamp,
	}
	filter := bson.D{{Key: "user_id", Value: in.UserID}, {Key: "station_id", Value: in.StationID}}
	res, err := m.c.UpdateOne(ctx, filter, bson.D{{Key: "$setOnInsert", Value: d}}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, perr.FromMongo(err, "save rating")
	}
	oid, ok := res.UpsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Record{}, false, nil
	}
	d.ID = oid
	return d.record(), true, nil
}

const userStationIndex = "user_id_1_station_id_1"

// Indexes are the secondary indexes list and uniqueness queries rely on
// onePerUser makes (user_id, station_id) unique; switching an existing
// collection means dropping that index first
func Indexes(onePerUser bool) []mongo.IndexModel {
	userStation := options.Index().SetName(userStationIndex)
	if onePerUser {
		userStation.SetUnique(true)
	}
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "station_id", Value: 1}, {Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "station_id", Value: 1}}, Options: userStation},
	}
}

// EnsureIndexes creates Indexes(onePerUser), existing ones are left alone
func (m *Mongo) EnsureIndexes(ctx context.Context, onePerUser bool) error {
	if _, err := m.c.Indexes().CreateMany(ctx, Indexes(onePerUser)); err != nil {
		return perr.FromMongo(err, "create rating indexes")
	}
	return nil
}
