package admin

import (
	"context"
	"errors"
)

// ProfileReader loads admin profiles; *Repository is the production implementation.
type ProfileReader interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
}

// Service contains business logic for admin profiles.
type Service struct {
	repo ProfileReader
}

// NewService creates a new admin Service.
func NewService(repo ProfileReader) *Service {
	return &Service{repo: repo}
}

// Profile returns the profile of the admin with the given id.
func (s *Service) Profile(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetProfile(ctx, id)
}

// IsNotFound returns true when the error indicates an admin was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
