package storage

import (
	"context"
	"errors"
)

// Package storage contains the object-store gateway and its backend drivers.
// All persisted state of the service lives as flat JSON blobs in one bucket.

var (
	// ErrNotFound is returned by ReadBlob when the named blob does not exist.
	ErrNotFound = errors.New("object not found")
	// ErrUnavailable is returned by every operation of a gateway whose
	// backend could not be configured at startup.
	ErrUnavailable = errors.New("object storage unavailable")
)

// Store is the blob-level contract implemented by the backend drivers and by
// the Gateway that wraps them. All operations target the single configured
// bucket; names are flat, with no folder hierarchy.
type Store interface {
	// WriteBlob uploads data under the given name, overwriting any existing
	// blob with that name.
	WriteBlob(ctx context.Context, name string, data []byte, contentType string) error
	// ListBlobs returns the names of all blobs in the bucket, one full pass
	// per call, in whatever order the backend yields them.
	ListBlobs(ctx context.Context) ([]string, error)
	// ReadBlob returns the raw bytes of the named blob, or ErrNotFound.
	ReadBlob(ctx context.Context, name string) ([]byte, error)
	// Exists reports whether the named blob is present.
	Exists(ctx context.Context, name string) (bool, error)
	// Ping verifies the bucket is reachable.
	Ping(ctx context.Context) error
}
