package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryObject is a stored object as seen by MemoryStorage.
type MemoryObject struct {
	Data        []byte
	ContentType string
	ETag        string
}

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage is an in-process Storage used by tests and local experiments.
// It honors If-Match preconditions the same way S3 does.
type MemoryStorage struct {
	mu         sync.Mutex
	objects    map[string]MemoryObject
	publicBase string

	// BeforePut, when set, runs before every Put while no lock is held.
	// Tests use it to interleave a competing writer.
	BeforePut func(key string)
}

// NewMemoryStorage returns an empty MemoryStorage whose public URLs start with publicBase.
func NewMemoryStorage(publicBase string) *MemoryStorage {
	return &MemoryStorage{
		objects:    make(map[string]MemoryObject),
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// Upload stores the full reader contents under key.
func (m *MemoryStorage) Upload(ctx context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	_, err = m.Put(ctx, key, data, PutOptions{ContentType: contentType})
	return err
}

// Get returns a copy of the object at key.
func (m *MemoryStorage) Get(_ context.Context, key string) (*Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("get object %q: %w", key, ErrObjectNotFound)
	}
	return &Object{Data: append([]byte(nil), obj.Data...), ETag: obj.ETag}, nil
}

// Put stores data under key, enforcing opts.IfMatch.
func (m *MemoryStorage) Put(_ context.Context, key string, data []byte, opts PutOptions) (string, error) {
	if m.BeforePut != nil {
		m.BeforePut(key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if opts.IfMatch != "" {
		cur, ok := m.objects[key]
		if !ok || cur.ETag != opts.IfMatch {
			return "", fmt.Errorf("put object %q: %w", key, ErrPreconditionFailed)
		}
	}

	sum := md5.Sum(data)
	etag := hex.EncodeToString(sum[:])
	m.objects[key] = MemoryObject{
		Data:        append([]byte(nil), data...),
		ContentType: opts.ContentType,
		ETag:        etag,
	}
	return etag, nil
}

// Delete removes key; deleting a missing key is not an error.
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// PublicURL joins the configured base and key.
func (m *MemoryStorage) PublicURL(key string) string {
	return m.publicBase + "/" + strings.TrimLeft(key, "/")
}

// Object returns the raw stored object for assertions.
func (m *MemoryStorage) Object(key string) (MemoryObject, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Len reports how many objects are stored.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
