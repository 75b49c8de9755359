package s2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellFromCellIDMatchesFaceLevel(t *testing.T) {
	id := CellIDFromFacePosLevel(2, 0x123456789, 15)
	c := CellFromCellID(id)
	require.Equal(t, id, c.ID())
	require.Equal(t, 2, c.Face())
	require.Equal(t, 15, c.Level())
}

func TestCellFromFaceIsLevelZeroNotLeaf(t *testing.T) {
	c := CellFromCellID(CellIDFromFace(3))
	require.Equal(t, 0, c.Level())
	require.True(t, c.IsLeaf() == false)
}

func TestCellLeaf(t *testing.T) {
	ll := LatLngFromDegrees(20, -40)
	c := CellFromLatLng(ll)
	require.True(t, c.IsLeaf())
}

func TestCellVerticesAreUnitAndOrdered(t *testing.T) {
	c := CellFromCellID(CellIDFromFacePosLevel(0, 0x123456789ab, 10))
	var verts [4]Point
	for k := 0; k < 4; k++ {
		verts[k] = c.Vertex(k)
		require.True(t, verts[k].IsUnit(), "vertex %d should be unit length", k)
	}
	// Adjacent vertices should be closer to each other than to the
	// opposite corner, confirming they go around the quadrilateral in
	// order.
	for k := 0; k < 4; k++ {
		dAdjacent := verts[k].Distance(verts[(k+1)%4])
		dOpposite := verts[k].Distance(verts[(k+2)%4])
		require.Less(t, dAdjacent, dOpposite, "vertex %d should be nearer its neighbor than the opposite corner", k)
	}
}

func TestCellContainsOwnCenter(t *testing.T) {
	c := CellFromCellID(CellIDFromFacePosLevel(4, 0x42, 20))
	center := PointFromVector(faceUVToXYZ(c.Face(), c.uv.Center().X, c.uv.Center().Y))
	require.True(t, c.ContainsPoint(center))
}

func TestCellContainsCellAndIntersectsCell(t *testing.T) {
	parent := CellFromCellID(CellIDFromFacePosLevel(1, 0x3300, 5))
	childID := parent.ID().Children()[0]
	child := CellFromCellID(childID)

	require.True(t, parent.ContainsCell(child))
	require.True(t, parent.IntersectsCell(child))
	require.False(t, child.ContainsCell(parent))

	other := CellFromCellID(parent.ID().Next())
	require.False(t, parent.ContainsCell(other))
}

func TestCellExactAreaPositive(t *testing.T) {
	c := CellFromCellID(CellIDFromFacePosLevel(0, 0x55, 8))
	require.Greater(t, c.ExactArea(), 0.0)
}

func TestCellApproxAreaFullFaceIsOneSixthSphere(t *testing.T) {
	c := CellFromCellID(CellIDFromFace(0))
	want := 4 * math.Pi / 6
	require.InDelta(t, want, c.ApproxArea(), 1e-9)
}

func TestCellRectBoundContainsCenter(t *testing.T) {
	c := CellFromCellID(CellIDFromFacePosLevel(2, 0xdeadbe, 12))
	rb := c.RectBound()
	center := LatLngFromPoint(PointFromVector(faceUVToXYZ(c.Face(), c.uv.Center().X, c.uv.Center().Y)))
	require.True(t, rb.ContainsLatLng(center))
}

func TestCellCapBoundContainsVertices(t *testing.T) {
	c := CellFromCellID(CellIDFromFacePosLevel(5, 0x9988, 9))
	cb := c.CapBound()
	for k := 0; k < 4; k++ {
		require.True(t, cb.ContainsPoint(c.Vertex(k)), "cap bound should contain vertex %d", k)
	}
}
