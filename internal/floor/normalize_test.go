package floor

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNormalizeAppliesDefaults(t *testing.T) {
	f, err := Normalize(map[string]any{"url": "http://x/a.png"}, 2, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "floor-3", f.ID)
	assert.Equal(t, "Floor 3", f.Name)
	assert.Equal(t, "http://x/a.png", f.ImageURL)
	assert.Equal(t, []any{}, f.Points)
	assert.Equal(t, Walkable{Color: "#9F9383", Tolerance: 12}, f.Walkable)
	assert.Equal(t, 2, f.SortOrder)
	assert.Equal(t, 0.0, f.NorthOffset)
	assert.Equal(t, fixedNow, f.CreatedAt)
}

func TestNormalizeImageSources(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"url", map[string]any{"url": "u"}, "u"},
		{"imageUrl", map[string]any{"imageUrl": "iu"}, "iu"},
		{"url wins over imageData", map[string]any{"url": "u", "imageData": "data:image/png;base64,AA"}, "u"},
		{"imageData fallback", map[string]any{"url": "  ", "imageData": "data:image/png;base64,AA"}, "data:image/png;base64,AA"},
		{"image fallback", map[string]any{"image": "blob"}, "blob"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Normalize(tc.raw, 0, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.ImageURL)
		})
	}
}

func TestNormalizeMissingImage(t *testing.T) {
	for _, raw := range []map[string]any{
		nil,
		{},
		{"name": "L1"},
		{"url": ""},
		{"url": 5, "imageData": false},
	} {
		_, err := Normalize(raw, 1, fixedNow)
		require.ErrorIs(t, err, ErrInvalidFloor)
		assert.Contains(t, err.Error(), "floor 2")
		assert.Contains(t, err.Error(), "url or imageData")
	}
}

func TestNormalizeNorthOffset(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{12.5, 12.5},
		{-90.0, -90},
		{"45", 45},
		{" 7.25 ", 7.25},
		{"north", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"-Inf", 0},
		{true, 0},
		{map[string]any{}, 0},
	}
	for _, tc := range cases {
		f, err := Normalize(map[string]any{"url": "u", "northOffset": tc.in}, 0, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f.NorthOffset, "input %#v", tc.in)
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	f, err := Normalize(map[string]any{"url": "u", "sortOrder": 7.0}, 3, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 7, f.SortOrder)

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": "7"}, 3, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 3, f.SortOrder, "non-number sortOrder falls back to position")

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": nil}, 4, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 4, f.SortOrder)

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": 2.9}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, f.SortOrder, "fractions are truncated")

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": -2.9}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, -2, f.SortOrder)

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": float64(math.MaxInt32)}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, f.SortOrder)

	f, err = Normalize(map[string]any{"url": "u", "sortOrder": float64(math.MinInt32)}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, math.MinInt32, f.SortOrder)
}

func TestNormalizeSortOrderOutOfRange(t *testing.T) {
	for _, v := range []float64{1e20, -1e20, 3e9, -3e9, float64(math.MaxInt32) + 1} {
		_, err := Normalize(map[string]any{"url": "u", "sortOrder": v}, 1, fixedNow)
		assert.ErrorIs(t, err, ErrInvalidFloor, "sortOrder %v", v)
		assert.Contains(t, err.Error(), "floor 2 sortOrder is out of range")
	}

	_, err := NormalizeAll([]map[string]any{
		{"name": "Ground", "url": "g", "sortOrder": 0.0},
		{"name": "Roof", "url": "r", "sortOrder": 1e20},
	}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidFloor)
}

func TestNormalizeWalkablePartial(t *testing.T) {
	f, err := Normalize(map[string]any{
		"url":      "u",
		"walkable": map[string]any{"color": "#FFFFFF"},
	}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, Walkable{Color: "#FFFFFF", Tolerance: 12}, f.Walkable)

	f, err = Normalize(map[string]any{
		"url":      "u",
		"walkable": map[string]any{"tolerance": 30.0, "color": ""},
	}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, Walkable{Color: "#9F9383", Tolerance: 30}, f.Walkable)

	f, err = Normalize(map[string]any{"url": "u", "walkable": "nope"}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, Walkable{Color: "#9F9383", Tolerance: 12}, f.Walkable)
}

func TestNormalizeIDAndCreatedAt(t *testing.T) {
	f, err := Normalize(map[string]any{
		"url":       "u",
		"id":        42.0,
		"createdAt": "2025-01-02T03:04:05Z",
	}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "42", f.ID)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), f.CreatedAt)

	f, err = Normalize(map[string]any{"url": "u", "id": "lobby", "createdAt": "yesterday"}, 0, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "lobby", f.ID)
	assert.Equal(t, fixedNow, f.CreatedAt)
}

func TestNormalizeRoundTrip(t *testing.T) {
	original, err := Normalize(map[string]any{
		"name":        "Mezzanine",
		"imageData":   "data:image/png;base64,AA",
		"points":      []any{map[string]any{"x": 1.0, "y": 2.0, "label": "exit"}},
		"walkable":    map[string]any{"color": "#000000", "tolerance": 4.0},
		"sortOrder":   5.0,
		"northOffset": "not a number",
	}, 0, fixedNow)
	require.NoError(t, err)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(encoded, &raw))

	again, err := Normalize(raw, 9, fixedNow.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, original.Name, again.Name)
	assert.Equal(t, original.SortOrder, again.SortOrder)
	assert.Equal(t, original.Walkable, again.Walkable)
	assert.Equal(t, original.Points, again.Points)
	assert.Equal(t, original.ImageURL, again.ImageURL)
	assert.Equal(t, original.ID, again.ID)
	assert.Equal(t, original.CreatedAt, again.CreatedAt)
	assert.Equal(t, 0.0, again.NorthOffset)
}

func TestNormalizeAllStopsAtFirstInvalid(t *testing.T) {
	_, err := NormalizeAll([]map[string]any{
		{"url": "a"},
		{"name": "broken"},
		{"url": "c"},
	}, fixedNow)
	require.ErrorIs(t, err, ErrInvalidFloor)
	assert.Contains(t, err.Error(), "floor 2")
}

func TestSortFloorsIsStable(t *testing.T) {
	floors := []Floor{
		{ID: "a", SortOrder: 2},
		{ID: "b", SortOrder: 1},
		{ID: "c", SortOrder: 2},
		{ID: "d", SortOrder: 1},
	}
	SortFloors(floors)

	ids := make([]string, 0, len(floors))
	for _, f := range floors {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}
