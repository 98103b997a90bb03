package repo

import (
	"context"

	perr "chargemap/internal/platform/errors"
	"chargemap/internal/services/api/stations/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type locationDoc struct {
	Latitude    float64 `bson:"latitude"`
	Longitude   float64 `bson:"longitude"`
	Description string  `bson:"description,omitempty"`
}

type stationDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PostalCode string             `bson:"postal_code"`
	Available  bool               `bson:"availability_status"`
	Location   locationDoc        `bson:"location"`
	Name       string             `bson:"name,omitempty"`
	PowerKW    float64            `bson:"power_kw,omitempty"`
}

func (d stationDoc) row() Row {
	return Row{
		ID:          d.ID.Hex(),
		PostalCode:  d.PostalCode,
		Available:   d.Available,
		Latitude:    d.Location.Latitude,
		Longitude:   d.Location.Longitude,
		Description: d.Location.Description,
		Name:        d.Name,
		PowerKW:     d.PowerKW,
	}
}

func newStationDoc(s domain.NewStation) stationDoc {
	return stationDoc{
		PostalCode: s.PostalCode,
		Available:  s.Available,
		Location:   locationDoc{Latitude: s.Latitude, Longitude: s.Longitude, Description: s.Description},
		Name:       s.Name,
		PowerKW:    s.PowerKW,
	}
}

// Mongo stores stations in a MongoDB collection
type Mongo struct{ c *mongo.Collection }

// NewMongo returns a Repo over c
func NewMongo(c *mongo.Collection) *Mongo { return &Mongo{c: c} }

// FindByPostalCode implements Repo
func (m *Mongo) FindByPostalCode(ctx context.Context, code string, limit int) ([]Row, error) {
	cur, err := m.c.Find(ctx, bson.D{{Key: "postal_code", Value: code}},
		options.Find().SetLimit(int64(ClampLimit(limit))))
	if err != nil {
		return nil, perr.FromMongo(err, "find stations by postal code")
	}
	var docs []stationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, perr.FromMongo(err, "decode stations")
	}
	out := make([]Row, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.row())
	}
	return out, nil
}

// FindByID implements Repo
func (m *Mongo) FindByID(ctx context.Context, id string) (*Row, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var d stationDoc
	err = m.c.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if perr.IsNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromMongo(err, "find station")
	}
	row := d.row()
	return &row, nil
}

// toggleUpdate negates the flag server side so concurrent toggles never read stale state
var toggleUpdate = mongo.Pipeline{
	{{Key: "$set", Value: bson.D{{Key: "availability_status", Value: bson.D{{Key: "$not", Value: "$availability_status"}}}}}},
}

// ToggleAvailability implements Repo
func (m *Mongo) ToggleAvailability(ctx context.Context, id string) (bool, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, false, nil
	}
	var d stationDoc
	err = m.c.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, toggleUpdate,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if perr.IsNoDocuments(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, perr.FromMongo(err, "toggle station availability")
	}
	return d.Available, true, nil
}

// Import implements Repo
func (m *Mongo) Import(ctx context.Context, in []domain.NewStation) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(in))
	for _, s := range in {
		docs = append(docs, newStationDoc(s))
	}
	res, err := m.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, perr.FromMongo(err, "import stations")
	}
	return len(res.InsertedIDs), nil
}

// Indexes are the secondary indexes the postal code search relies on
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "postal_code", Value: 1}, {Key: "_id", Value: 1}}},
}

// EnsureIndexes creates Indexes, existing ones are left alone
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	if _, err := m.c.Indexes().CreateMany(ctx, Indexes); err != nil {
		return perr.FromMongo(err, "create station indexes")
	}
	return nil
}
