package s2

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCapEmptyAndFull(t *testing.T) {
	require.True(t, EmptyCap().IsEmpty())
	require.False(t, EmptyCap().IsFull())
	require.True(t, FullCap().IsFull())
	require.False(t, FullCap().IsEmpty())
}

func TestCapRadiusRoundTrip(t *testing.T) {
	for _, r := range []float64{0, 0.1, 1, math.Pi / 2, math.Pi - 0.01} {
		c := CapFromCenterAngle(PointFromCoords(1, 0, 0), r)
		require.InDelta(t, r, c.Radius(), 1e-9)
	}
}

func TestCapEmptyRadiusIsSentinel(t *testing.T) {
	require.Equal(t, -1.0, EmptyCap().Radius())
}

func TestCapContainsPoint(t *testing.T) {
	center := PointFromCoords(1, 0, 0)
	c := CapFromCenterAngle(center, 0.1)
	require.True(t, c.ContainsPoint(center))
	require.True(t, c.ContainsPoint(PointFromCoords(1, 0.05, 0)))
	require.False(t, c.ContainsPoint(PointFromCoords(0, 1, 0)))
}

func TestCapAddPointGrowsToContain(t *testing.T) {
	center := PointFromCoords(1, 0, 0)
	c := CapFromCenterHeight(center, 0)
	p := PointFromCoords(1, 0.3, 0)
	grown := c.AddPoint(p)
	require.True(t, grown.ContainsPoint(center))
	require.True(t, grown.ContainsPoint(p))
}

func TestCapContainsCap(t *testing.T) {
	center := PointFromCoords(1, 0, 0)
	big := CapFromCenterAngle(center, 0.5)
	small := CapFromCenterAngle(center, 0.1)
	require.True(t, big.ContainsCap(small))
	require.False(t, small.ContainsCap(big))
}

func TestCapIntersects(t *testing.T) {
	a := CapFromCenterAngle(PointFromCoords(1, 0, 0), 0.2)
	b := CapFromCenterAngle(PointFromCoords(0, 1, 0), 0.2)
	require.False(t, a.Intersects(b))
	c := CapFromCenterAngle(PointFromCoords(0, 1, 0), math.Pi/2)
	require.True(t, a.Intersects(c))
}

func TestCapComplement(t *testing.T) {
	c := CapFromCenterAngle(PointFromCoords(1, 0, 0), 0.3)
	comp := c.Complement()
	require.True(t, comp.ContainsPoint(PointFromCoords(-1, 0, 0)))
	require.False(t, comp.ContainsPoint(PointFromCoords(1, 0, 0)))

	back := comp.Complement()
	require.True(t, back.center.ApproxEqual(c.center))
	require.InDelta(t, c.height, back.height, 1e-9)
}

func TestCapAddCapOfIdenticalCapsIsUnchanged(t *testing.T) {
	c := CapFromCenterAngle(PointFromCoords(1, 0, 0), 0.4)
	combined := c.AddCap(c)

	diff := cmp.Diff(c, combined, cmp.AllowUnexported(Cap{}, Point{}))
	require.Empty(t, diff, "adding a cap to itself should leave it unchanged:\n%s", diff)
}

func TestCapRectBoundFullLongitudeNearPole(t *testing.T) {
	northPole := PointFromCoords(0, 0, 1)
	c := CapFromCenterAngle(northPole, 0.5)
	rb := c.RectBound()
	require.True(t, rb.Lng.IsFull())
}

func TestCapContainsCellVertexShortCircuit(t *testing.T) {
	cell := CellFromCellID(CellIDFromFacePosLevel(0, 0x1234, 10))
	full := FullCap()
	require.True(t, full.ContainsCell(cell))
	require.True(t, full.IntersectsCell(cell))

	empty := EmptyCap()
	require.False(t, empty.ContainsCell(cell))
	require.False(t, empty.IntersectsCell(cell))
}
