package s2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointFromCoordsDegenerateFallsBackToOrigin(t *testing.T) {
	p := PointFromCoords(0, 0, 0)
	require.Equal(t, OriginPoint(), p)
	require.True(t, p.IsUnit())
}

func TestPointFromCoordsNormalizes(t *testing.T) {
	p := PointFromCoords(1, 1, 1)
	require.True(t, p.IsUnit())
}

func TestPointApproxEqual(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(1, 1e-9, 0)
	require.True(t, a.ApproxEqual(b))
	c := PointFromCoords(0, 1, 0)
	require.False(t, a.ApproxEqual(c))
}

func TestPointDistance(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	require.InDelta(t, math.Pi/2, a.Distance(b), 1e-14)

	c := PointFromCoords(-1, 0, 0)
	require.InDelta(t, math.Pi, a.Distance(c), 1e-14)
}

func TestLatLngIsValid(t *testing.T) {
	require.True(t, (LatLng{Lat: 0, Lng: 0}).IsValid())
	require.True(t, (LatLng{Lat: math.Pi / 2, Lng: math.Pi}).IsValid())
	require.False(t, (LatLng{Lat: math.Pi, Lng: 0}).IsValid())
	require.False(t, (LatLng{Lat: 0, Lng: 2 * math.Pi}).IsValid())
}

func TestLatLngNormalized(t *testing.T) {
	ll := LatLng{Lat: math.Pi, Lng: 3 * math.Pi}
	n := ll.Normalized()
	require.True(t, n.IsValid())
	require.InDelta(t, math.Pi/2, n.Lat, 1e-14)
}

func TestLatLngPointRoundTrip(t *testing.T) {
	// Longitude is ill-defined exactly at the poles, so only latitude is
	// checked there; away from the poles both round-trip.
	tests := []LatLng{
		LatLngFromDegrees(0, 0),
		LatLngFromDegrees(-45, 170),
		LatLngFromDegrees(48.45, -122.3),
	}
	for _, ll := range tests {
		p := PointFromLatLng(ll)
		require.True(t, p.IsUnit())
		got := LatLngFromPoint(p)
		require.InDelta(t, ll.Lat, got.Lat, 1e-9, "lat round trip for %v", ll)
		require.InDelta(t, 0, math.Remainder(ll.Lng-got.Lng, 2*math.Pi), 1e-9, "lng round trip for %v", ll)
	}

	for _, ll := range []LatLng{LatLngFromDegrees(90, 0), LatLngFromDegrees(-90, 0)} {
		p := PointFromLatLng(ll)
		require.True(t, p.IsUnit())
		got := LatLngFromPoint(p)
		require.InDelta(t, ll.Lat, got.Lat, 1e-9, "lat round trip for %v", ll)
	}
}

func TestLatLngDegrees(t *testing.T) {
	ll := LatLngFromDegrees(12.5, -34.25)
	lat, lng := ll.Degrees()
	require.InDelta(t, 12.5, lat, 1e-12)
	require.InDelta(t, -34.25, lng, 1e-12)
}
