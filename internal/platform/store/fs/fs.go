// Package fs provides a thin firestore client wrapper
package fs

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Config configures the firestore client
type Config struct {
	ProjectID string
	// Credentials is a service account json path; empty uses application default credentials
	Credentials string
}

// FS wraps a firestore client
type FS struct {
	Client *firestore.Client
}

var newClient = firestore.NewClient

// Open builds a client for the configured project
func Open(ctx context.Context, cfg Config) (*FS, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("fs: empty project id")
	}
	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	c, err := newClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, err
	}
	return &FS{Client: c}, nil
}

// Collection returns a handle on the named collection
func (f *FS) Collection(name string) *firestore.CollectionRef { return f.Client.Collection(name) }

// Ping lists at most one root collection
func (f *FS) Ping(ctx context.Context) error {
	if f == nil || f.Client == nil {
		return errors.New("fs: nil client")
	}
	it := f.Client.Collections(ctx)
	if _, err := it.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

// Close releases the client
func (f *FS) Close() error {
	if f == nil || f.Client == nil {
		return nil
	}
	return f.Client.Close()
}
