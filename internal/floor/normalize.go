package floor

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Normalize converts a loosely shaped client object at position (zero based)
// within its batch into a canonical Floor. Only a missing image is an error;
// every other field falls back to its default.
func Normalize(raw map[string]any, position int, now time.Time) (Floor, error) {
	image := firstString(raw, "url", "imageUrl")
	if image == "" {
		image = firstString(raw, "imageData", "image")
	}
	if image == "" {
		return Floor{}, fmt.Errorf("%w: floor %d is missing url or imageData", ErrInvalidFloor, position+1)
	}

	f := Floor{
		ID:          normalizeID(raw["id"], position),
		Name:        firstString(raw, "name"),
		ImageURL:    image,
		Points:      normalizePoints(raw["points"]),
		Walkable:    normalizeWalkable(raw["walkable"]),
		SortOrder:   position,
		NorthOffset: finiteOrZero(raw["northOffset"]),
		CreatedAt:   now.UTC(),
	}

	if f.Name == "" {
		f.Name = fmt.Sprintf("Floor %d", position+1)
	}
	if n, ok := number(raw["sortOrder"]); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		// sort_order is a Postgres INTEGER; fractions are truncated.
		n = math.Trunc(n)
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Floor{}, fmt.Errorf("%w: floor %d sortOrder is out of range", ErrInvalidFloor, position+1)
		}
		f.SortOrder = int(n)
	}
	if s, ok := raw["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			f.CreatedAt = t.UTC()
		}
	}
	return f, nil
}

// NormalizeAll normalizes a batch and fails on the first invalid entry.
func NormalizeAll(raws []map[string]any, now time.Time) ([]Floor, error) {
	floors := make([]Floor, 0, len(raws))
	for i, raw := range raws {
		f, err := Normalize(raw, i, now)
		if err != nil {
			return nil, err
		}
		floors = append(floors, f)
	}
	return floors, nil
}

// SortFloors orders floors by SortOrder, keeping the input order for ties.
func SortFloors(floors []Floor) {
	sort.SliceStable(floors, func(i, j int) bool {
		return floors[i].SortOrder < floors[j].SortOrder
	})
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func normalizeID(v any, position int) string {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return id
		}
	case float64:
		if !math.IsNaN(id) && !math.IsInf(id, 0) {
			return strconv.FormatFloat(id, 'f', -1, 64)
		}
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("floor-%d", position+1)
}

func normalizePoints(v any) []any {
	if pts, ok := v.([]any); ok {
		return pts
	}
	return []any{}
}

func normalizeWalkable(v any) Walkable {
	w := Walkable{Color: DefaultWalkableColor, Tolerance: DefaultWalkableTolerance}
	m, ok := v.(map[string]any)
	if !ok {
		return w
	}
	if c, ok := m["color"].(string); ok && strings.TrimSpace(c) != "" {
		w.Color = c
	}
	if t, ok := number(m["tolerance"]); ok && !math.IsNaN(t) && !math.IsInf(t, 0) {
		w.Tolerance = t
	}
	return w
}

// finiteOrZero parses numbers and numeric strings; anything else, including
// NaN and infinities, yields 0.
func finiteOrZero(v any) float64 {
	n, ok := number(v)
	if !ok {
		if s, isStr := v.(string); isStr {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return 0
			}
			n = parsed
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// number reports whether v is a JSON number (or a Go numeric passed by a caller).
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
