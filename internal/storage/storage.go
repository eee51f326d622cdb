// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider (AWS S3, MinIO).
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ErrPreconditionFailed is returned when a conditional write loses to a concurrent writer.
var ErrPreconditionFailed = errors.New("object changed since it was read")

// Object is a fully buffered object body together with its version tag.
type Object struct {
	Data []byte
	ETag string
}

// PutOptions controls a buffered write.
type PutOptions struct {
	ContentType string
	// IfMatch, when set, makes the write succeed only if the stored object
	// still carries this ETag.
	IfMatch string
}

// Storage is the interface for uploading and retrieving objects.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Get reads a whole object. Missing keys yield ErrObjectNotFound.
	Get(ctx context.Context, key string) (*Object, error)
	// Put writes a whole object and returns its new ETag.
	Put(ctx context.Context, key string, data []byte, opts PutOptions) (string, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
