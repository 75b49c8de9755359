package s2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignCCW(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(0, 0, 1)
	require.True(t, Sign(a, b, c))
	require.False(t, Sign(c, b, a))
}

func TestRobustSignRotationInvariant(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0.1)
	c := PointFromCoords(0, -1, 0.2)

	d1 := RobustSign(a, b, c)
	d2 := RobustSign(b, c, a)
	d3 := RobustSign(c, a, b)
	require.Equal(t, d1, d2)
	require.Equal(t, d1, d3)
	require.NotEqual(t, Indeterminate, d1)
}

func TestRobustSignSwapNegates(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0.1)
	c := PointFromCoords(0, -1, 0.2)

	d1 := RobustSign(a, b, c)
	d2 := RobustSign(a, c, b)
	require.Equal(t, -d1, d2)
}

func TestRobustSignDuplicatePointIsIndeterminate(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	require.Equal(t, Indeterminate, RobustSign(a, a, b))
}

func TestOrderedCCW(t *testing.T) {
	// Three points spaced 120° apart around the equator, in CCW order as
	// seen looking down from the north pole.
	o := PointFromCoords(0, 0, 1)
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(-0.5, math.Sqrt(3)/2, 0)
	c := PointFromCoords(-0.5, -math.Sqrt(3)/2, 0)
	require.True(t, OrderedCCW(a, b, c, o))
	require.False(t, OrderedCCW(c, b, a, o))
}

func TestPointAreaOctantIsOneEighthSphere(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(0, 0, 1)
	want := 4 * math.Pi / 8
	require.InDelta(t, want, PointArea(a, b, c), 1e-9)
}

func TestPointAreaDegenerateIsZero(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	require.InDelta(t, 0, PointArea(a, a, a), 1e-9)
}

func TestPointAreaSmallTriangleIsNonNegative(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(1, 1e-6, 0)
	c := PointFromCoords(1, 0, 1e-6)
	require.GreaterOrEqual(t, PointArea(a, b, c), 0.0)
}

func TestTrueCentroidSignMatchesOrientation(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(0, 0, 1)

	ccw := TrueCentroid(a, b, c)
	cw := TrueCentroid(c, b, a)
	require.InDelta(t, ccw.X, -cw.X, 1e-9)
	require.InDelta(t, ccw.Y, -cw.Y, 1e-9)
	require.InDelta(t, ccw.Z, -cw.Z, 1e-9)
}

func TestPlanarCentroidIsSimpleAverage(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(0, 0, 1)
	got := PlanarCentroid(a, b, c)
	// The simple average of three orthogonal unit vectors, once
	// renormalized onto the sphere, lies equidistant from all three.
	require.InDelta(t, got.Distance(a), got.Distance(b), 1e-9)
	require.InDelta(t, got.Distance(b), got.Distance(c), 1e-9)
}
