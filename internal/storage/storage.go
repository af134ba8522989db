package storage

import (
	"context"
	"errors"
	"io"
)

// StoredObject is what a backend hands back after a successful write: the
// public URL to serve and the opaque handle needed to delete the object
// later.
type StoredObject struct {
	URL      string
	PublicID string
}

var ErrNotFound = errors.New("object not found")

// Store is the media storage collaborator. Implementations persist an
// uploaded payload and can remove it again by its deletion handle.
type Store interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string) (*StoredObject, error)
	Delete(ctx context.Context, publicID string) error
}
