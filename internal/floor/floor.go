// Package floor publishes and serves the set of floor maps shown by the client apps.
//
// Floors live either in PostgreSQL or in a single JSON manifest held in object
// storage; both backends implement Store and the choice is made once at startup.
package floor

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Default walkable-region hint applied when a floor does not carry one.
const (
	DefaultWalkableColor     = "#9F9383"
	DefaultWalkableTolerance = 12
)

var (
	// ErrInvalidFloor is returned when a floor cannot be normalized.
	ErrInvalidFloor = errors.New("invalid floor")
	// ErrEmptyPublish is returned when a publish request carries no floors.
	ErrEmptyPublish = errors.New("floors must be a non-empty array")
	// ErrInvalidID is returned when an identifier cannot address the backend.
	ErrInvalidID = errors.New("invalid floor id")
	// ErrNotFound is returned when no floor has the requested identifier.
	ErrNotFound = errors.New("floor not found")
	// ErrConflict is returned when the floor set changed underneath a delete.
	ErrConflict = errors.New("floors were modified concurrently")
)

// Walkable tells the client which pixels of the floor image are walkable.
type Walkable struct {
	Color     string  `json:"color" example:"#9F9383"`
	Tolerance float64 `json:"tolerance" example:"12"`
}

// Floor is the canonical floor record. Every field is always populated.
type Floor struct {
	ID          string    `json:"id" example:"floor-1"`
	Name        string    `json:"name" example:"Floor 1"`
	ImageURL    string    `json:"imageUrl" example:"https://cdn.example.com/floors/l1.png"`
	Points      []any     `json:"points" swaggertype:"array,object"`
	Walkable    Walkable  `json:"walkable"`
	SortOrder   int       `json:"sortOrder" example:"0"`
	NorthOffset float64   `json:"northOffset" example:"0"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DeleteResult describes a successful delete. Remaining is only set by backends
// that rewrite the whole set (the manifest), and is then returned to the client.
type DeleteResult struct {
	Floor     Floor
	Remaining []Floor
}

// MarshalJSON renders {"floor": ...} and, when the backend reports it, the
// remaining set as "floors".
func (d DeleteResult) MarshalJSON() ([]byte, error) {
	if d.Remaining == nil {
		return json.Marshal(struct {
			Floor Floor `json:"floor"`
		}{d.Floor})
	}
	return json.Marshal(struct {
		Floor  Floor   `json:"floor"`
		Floors []Floor `json:"floors"`
	}{d.Floor, d.Remaining})
}

// Store persists the floor set.
type Store interface {
	// List returns all floors ordered by SortOrder, ties in submission order.
	List(ctx context.Context) ([]Floor, error)
	// Publish atomically replaces the whole set with floors (already normalized).
	Publish(ctx context.Context, floors []Floor) ([]Floor, error)
	// Delete removes one floor by identifier.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	// Backend names the implementation, e.g. "relational" or "manifest".
	Backend() string
}
