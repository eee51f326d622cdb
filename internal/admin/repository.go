// Package admin exposes the read-only profile of the authenticated admin.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Profile is the public view of an admin. No other admin fields are ever exposed.
type Profile struct {
	Email string   `json:"email" example:"ops@example.com"`
	Tags  []string `json:"tags" example:"floors,editor"`
}

// ErrNotFound is returned when an admin does not exist.
var ErrNotFound = errors.New("admin not found")

// Repository handles admin database reads.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetProfile fetches the profile of the admin with the given id. The id is
// compared as text so malformed ids from old tokens read as not found.
func (r *Repository) GetProfile(ctx context.Context, id string) (*Profile, error) {
	p := &Profile{}
	err := r.db.QueryRow(ctx,
		`SELECT email, tags FROM admins WHERE id::text = $1`,
		id,
	).Scan(&p.Email, &p.Tags)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin profile: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}
