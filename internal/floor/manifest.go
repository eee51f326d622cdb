package floor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/floorboard/service/internal/storage"
)

// ObjectStore is the slice of object storage the manifest backend needs.
type ObjectStore interface {
	Get(ctx context.Context, key string) (*storage.Object, error)
	Put(ctx context.Context, key string, data []byte, opts storage.PutOptions) (string, error)
}

// manifest is the JSON document stored under the manifest key.
type manifest struct {
	Floors    []Floor `json:"floors"`
	UpdatedAt string  `json:"updatedAt"`
}

// rawManifest is how a stored manifest is read back: entries stay loose so
// documents written by older schema versions still normalize.
type rawManifest struct {
	Floors []any `json:"floors"`
}

// ManifestStore keeps the floor set as one JSON document in object storage.
//
// Publish overwrites the document unconditionally (last writer wins, readers
// always see one complete document). Delete is a read-filter-write guarded by
// the ETag of the document it read, so a concurrent change makes it fail with
// ErrConflict rather than being silently undone.
type ManifestStore struct {
	objects ObjectStore
	key     string
	now     func() time.Time
}

// NewManifestStore creates a ManifestStore writing to key through objects.
func NewManifestStore(objects ObjectStore, key string) *ManifestStore {
	return &ManifestStore{objects: objects, key: key, now: time.Now}
}

// Backend implements Store.
func (s *ManifestStore) Backend() string { return "manifest" }

// List reads the manifest; a missing document is an empty floor set.
func (s *ManifestStore) List(ctx context.Context) ([]Floor, error) {
	floors, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return floors, nil
}

// Publish overwrites the manifest with floors and a fresh updatedAt stamp.
func (s *ManifestStore) Publish(ctx context.Context, floors []Floor) ([]Floor, error) {
	published := append([]Floor(nil), floors...)
	SortFloors(published)

	if _, err := s.write(ctx, floors, ""); err != nil {
		return nil, err
	}
	return published, nil
}

// Delete drops every entry whose id matches and rewrites the manifest.
// The first match is reported as the deleted floor.
func (s *ManifestStore) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	floors, etag, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]Floor, 0, len(floors))
	var removed *Floor
	for i := range floors {
		if floors[i].ID == id {
			if removed == nil {
				removed = &floors[i]
			}
			continue
		}
		remaining = append(remaining, floors[i])
	}
	if removed == nil {
		return nil, ErrNotFound
	}

	if _, err := s.write(ctx, remaining, etag); err != nil {
		if errors.Is(err, storage.ErrPreconditionFailed) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &DeleteResult{Floor: *removed, Remaining: remaining}, nil
}

// load fetches and normalizes the manifest, returning floors in display order
// together with the ETag of the document read ("" when it does not exist).
func (s *ManifestStore) load(ctx context.Context) ([]Floor, string, error) {
	obj, err := s.objects.Get(ctx, s.key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return []Floor{}, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read manifest: %w", err)
	}

	var doc rawManifest
	if err := json.Unmarshal(obj.Data, &doc); err != nil {
		return nil, "", fmt.Errorf("decode manifest: %w", err)
	}

	now := s.now()
	floors := make([]Floor, 0, len(doc.Floors))
	for i, entry := range doc.Floors {
		raw, ok := entry.(map[string]any)
		if !ok {
			slog.WarnContext(ctx, "manifest: skipping non-object floor entry", "key", s.key, "position", i)
			continue
		}
		f, err := Normalize(raw, i, now)
		if err != nil {
			slog.WarnContext(ctx, "manifest: skipping floor entry", "key", s.key, "position", i, "err", err)
			continue
		}
		floors = append(floors, f)
	}
	SortFloors(floors)
	return floors, obj.ETag, nil
}

func (s *ManifestStore) write(ctx context.Context, floors []Floor, ifMatch string) (string, error) {
	if floors == nil {
		floors = []Floor{}
	}
	data, err := json.Marshal(manifest{
		Floors:    floors,
		UpdatedAt: s.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}

	etag, err := s.objects.Put(ctx, s.key, data, storage.PutOptions{
		ContentType: "application/json",
		IfMatch:     ifMatch,
	})
	if err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return etag, nil
}
