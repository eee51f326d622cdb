// Package upload stores floor plan images in object storage.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/floorboard/service/internal/metrics"
)

// ErrNotConfigured is returned when no object storage credentials were provided.
var ErrNotConfigured = errors.New("object storage not configured")

const (
	keyPrefix          = "floors/"
	maxFilenameLength  = 100
	defaultFilename    = "image"
	defaultContentType = "application/octet-stream"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Uploader is the subset of storage.Storage needed to publish images.
type Uploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// Result describes a stored image.
type Result struct {
	Key string `json:"key" example:"floors/1700000000000-ab12cd34-level-1.png"`
	URL string `json:"url" example:"https://cdn.example.com/floors/1700000000000-ab12cd34-level-1.png"`
}

// Service builds object keys and streams images to storage.
type Service struct {
	store Uploader
	now   func() time.Time
	newID func() string
}

// NewService creates an upload Service. A nil store makes every upload fail
// with ErrNotConfigured.
func NewService(store Uploader) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Configured reports whether uploads can succeed.
func (s *Service) Configured() bool {
	return s.store != nil
}

// Upload writes the image under a fresh key and returns where it can be fetched.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (*Result, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	key := s.objectKey(filename)
	if err := s.store.Upload(ctx, key, r, size, contentType); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if size > 0 {
		metrics.UploadBytesTotal.Add(float64(size))
	}
	return &Result{Key: key, URL: s.store.PublicURL(key)}, nil
}

func (s *Service) objectKey(filename string) string {
	id := strings.ReplaceAll(s.newID(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s%d-%s-%s", keyPrefix, s.now().UnixMilli(), id, SanitizeFilename(filename))
}

// SanitizeFilename reduces a client filename to [A-Za-z0-9._-]. Runs of other
// characters become a single "-", leading and trailing "-" are trimmed and the
// result is capped at 100 characters. An empty result becomes "image".
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if len(name) > maxFilenameLength {
		name = strings.Trim(name[:maxFilenameLength], "-")
	}
	if name == "" {
		return defaultFilename
	}
	return name
}
