package floor

import (
	"context"
	"errors"
	"time"

	"github.com/floorboard/service/internal/metrics"
)

// InstrumentedStore records Prometheus metrics around another Store.
type InstrumentedStore struct {
	next Store
}

// NewInstrumentedStore wraps next.
func NewInstrumentedStore(next Store) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

// Backend implements Store.
func (s *InstrumentedStore) Backend() string { return s.next.Backend() }

// List implements Store.
func (s *InstrumentedStore) List(ctx context.Context) ([]Floor, error) {
	defer s.observe("list", time.Now())()
	floors, err := s.next.List(ctx)
	s.count("list", err)
	return floors, err
}

// Publish implements Store.
func (s *InstrumentedStore) Publish(ctx context.Context, floors []Floor) ([]Floor, error) {
	defer s.observe("publish", time.Now())()
	published, err := s.next.Publish(ctx, floors)
	s.count("publish", err)
	if err == nil {
		metrics.FloorsPublished.Set(float64(len(published)))
	}
	return published, err
}

// Delete implements Store.
func (s *InstrumentedStore) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	defer s.observe("delete", time.Now())()
	res, err := s.next.Delete(ctx, id)
	s.count("delete", err)
	return res, err
}

func (s *InstrumentedStore) observe(op string, start time.Time) func() {
	return func() {
		metrics.FloorStoreDuration.WithLabelValues(s.next.Backend(), op).Observe(time.Since(start).Seconds())
	}
}

func (s *InstrumentedStore) count(op string, err error) {
	metrics.FloorStoreOpsTotal.WithLabelValues(s.next.Backend(), op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidID):
		return "invalid"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
