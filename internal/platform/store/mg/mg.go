// Package mg provides a thin mongo client wrapper
package mg

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config configures the mongo client
type Config struct {
	URI      string
	Database string
	AppName  string

	// ServerSelection bounds how long a call waits for a usable server, 0 means driver default
	ServerSelection time.Duration
}

// MG wraps a connected client and the selected database
type MG struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var connect = mongo.Connect

// Open connects lazily; the first Ping verifies reachability
func Open(ctx context.Context, cfg Config) (*MG, error) {
	if cfg.URI == "" {
		return nil, errors.New("mg: empty uri")
	}
	if cfg.Database == "" {
		return nil, errors.New("mg: empty database")
	}
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.ServerSelection > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelection)
	}
	c, err := connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &MG{Client: c, DB: c.Database(cfg.Database)}, nil
}

// Collection returns a handle on the named collection
func (m *MG) Collection(name string) *mongo.Collection { return m.DB.Collection(name) }

// Ping checks the primary is reachable
func (m *MG) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mg: nil client")
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MG) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
