//go:build unit

package geo_test

import (
	"testing"

	"checkout-engine/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance at identical points", func(t *testing.T) {
		p := geo.Point{Lat: 35.6812, Lng: 139.7671}
		assert.InDelta(t, 0, geo.HaversineKm(p, p), 1e-9)
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		a := geo.Point{Lat: 0, Lng: 0}
		b := geo.Point{Lat: 1, Lng: 0}
		assert.InDelta(t, 111.19, geo.HaversineKm(a, b), 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.Point{Lat: 35.6812, Lng: 139.7671}
		b := geo.Point{Lat: 34.7025, Lng: 135.4959}
		assert.InDelta(t, geo.HaversineKm(a, b), geo.HaversineKm(b, a), 1e-9)
	})
}

func TestRadiusZone(t *testing.T) {
	center := geo.Point{Lat: 35.0, Lng: 139.0}

	t.Run("center is always inside regardless of radius", func(t *testing.T) {
		assert.True(t, geo.NewRadiusZone(center, 0).Contains(center))
		assert.True(t, geo.NewRadiusZone(center, 5).Contains(center))
	})

	t.Run("point just beyond the radius is outside", func(t *testing.T) {
		// ~0.09 degrees of latitude is ~10km
		near := geo.Point{Lat: 35.08, Lng: 139.0}
		far := geo.Point{Lat: 35.2, Lng: 139.0}

		zone := geo.NewRadiusZone(center, 10)
		assert.True(t, zone.Contains(near))
		assert.False(t, zone.Contains(far))
	})
}

func TestPolygonZone(t *testing.T) {
	square := []geo.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}

	// Boundary behavior (points exactly on an edge) is implementation-defined
	// for ray casting; only interior/exterior correctness is pinned here.
	cases := []struct {
		name   string
		point  geo.Point
		inside bool
	}{
		{"interior point", geo.Point{Lat: 5, Lng: 5}, true},
		{"exterior point", geo.Point{Lat: 15, Lng: 15}, false},
		{"exterior point aligned with an edge", geo.Point{Lat: 5, Lng: 15}, false},
		{"near a corner but inside", geo.Point{Lat: 9.5, Lng: 9.5}, true},
		{"near a corner but outside", geo.Point{Lat: 10.5, Lng: 10.5}, false},
	}
	zone := geo.NewPolygonZone(square)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.inside, zone.Contains(tc.point))
		})
	}

	t.Run("concave polygon", func(t *testing.T) {
		// L-shape: the notch at the top right is outside
		lShape := []geo.Point{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 10},
			{Lat: 5, Lng: 10},
			{Lat: 5, Lng: 5},
			{Lat: 10, Lng: 5},
			{Lat: 10, Lng: 0},
		}
		zone := geo.NewPolygonZone(lShape)
		assert.True(t, zone.Contains(geo.Point{Lat: 2, Lng: 2}))
		assert.False(t, zone.Contains(geo.Point{Lat: 8, Lng: 8}))
	})

	t.Run("degenerate polygon degrades to unrestricted", func(t *testing.T) {
		zone := geo.NewPolygonZone([]geo.Point{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}})
		assert.Equal(t, geo.MethodNone, zone.Method())
		assert.True(t, zone.Contains(geo.Point{Lat: 99, Lng: 99}))
	})
}

func TestUnrestrictedZone(t *testing.T) {
	zone := geo.NewUnrestrictedZone()
	assert.True(t, zone.Contains(geo.Point{Lat: -89, Lng: 170}))
	assert.True(t, zone.Contains(geo.Point{}))
}
