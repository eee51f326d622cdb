package floor

import (
	"context"
	"fmt"
	"time"
)

// Service contains the floor publishing rules shared by both backends.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new floor Service on top of store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Backend names the persistence mode in use.
func (s *Service) Backend() string {
	return s.store.Backend()
}

// List returns every floor in display order.
func (s *Service) List(ctx context.Context) ([]Floor, error) {
	floors, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	return floors, nil
}

// Publish normalizes raws and replaces the stored set with them. Nothing is
// written unless every entry normalizes.
func (s *Service) Publish(ctx context.Context, raws []map[string]any) ([]Floor, error) {
	if len(raws) == 0 {
		return nil, ErrEmptyPublish
	}

	floors, err := NormalizeAll(raws, s.now())
	if err != nil {
		return nil, err
	}

	published, err := s.store.Publish(ctx, floors)
	if err != nil {
		return nil, fmt.Errorf("publish floors: %w", err)
	}
	return published, nil
}

// Delete removes the floor with the given identifier.
func (s *Service) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	res, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete floor %q: %w", id, err)
	}
	return res, nil
}
