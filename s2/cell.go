package s2

import (
	"math"

	"github.com/mkevac/gos2/r1"
	"github.com/mkevac/gos2/r2"
	"github.com/mkevac/gos2/r3"
	"github.com/mkevac/gos2/s1"
)

// Cell is an S2 region object that represents a cell. Unlike CellIDs,
// it supports efficient containment and intersection tests, at the
// cost of being a more expensive representation: constructing one
// decodes the CellID's bits into a face and (u,v) bounding rectangle
// up front.
type Cell struct {
	face        int8
	level       int8
	orientation int8
	id          CellID
	uv          r2.Rect
}

// CellFromCellID constructs a Cell corresponding to the given CellID.
func CellFromCellID(id CellID) Cell {
	c := Cell{id: id}
	f, i, j, o := id.faceIJOrientation()
	c.face = int8(f)
	c.level = int8(id.Level())
	c.orientation = int8(o)
	c.uv = ijLevelToBoundUV(i, j, int(c.level))
	return c
}

// CellFromPoint constructs a cell for the given Point.
func CellFromPoint(p Point) Cell { return CellFromCellID(CellIDFromPoint(p)) }

// CellFromLatLng constructs a cell for the given LatLng.
func CellFromLatLng(ll LatLng) Cell { return CellFromCellID(CellIDFromLatLng(ll)) }

// ID returns the cell ID this cell was constructed from.
func (c Cell) ID() CellID { return c.id }

// Face returns the cube face, in the range [0,5], this cell belongs to.
func (c Cell) Face() int { return int(c.face) }

// Level returns the subdivision level of the cell.
func (c Cell) Level() int { return int(c.level) }

// Orientation returns the Hilbert curve orientation of the cell.
func (c Cell) Orientation() int { return int(c.orientation) }

// IsLeaf reports whether this cell is a leaf cell.
func (c Cell) IsLeaf() bool { return int(c.level) == maxLevel }

// SizeIJ returns the edge length of this cell in (i,j)-space.
func (c Cell) SizeIJ() int { return sizeIJ(int(c.level)) }

// Vertex returns the k-th vertex of the cell (k in [0,3]) in CCW
// order: lower-left, lower-right, upper-right, upper-left in
// (u,v)-space.
func (c Cell) Vertex(k int) Point {
	v := c.uv.Vertices()[k]
	return Point{faceUVToXYZ(int(c.face), v.X, v.Y).Normalize()}
}

// Edge returns the inward-facing unit normal of the great circle
// passing through the CCW-ordered edge from vertex k to vertex k+1
// (mod 4).
func (c Cell) Edge(k int) Point { return Point{c.edgeRaw(k).Normalize()} }

func (c Cell) edgeRaw(k int) r3.Vector {
	switch k {
	case 0:
		return vNorm(int(c.face), c.uv.Y.Lo) // Bottom
	case 1:
		return uNorm(int(c.face), c.uv.X.Hi) // Right
	case 2:
		return vNorm(int(c.face), c.uv.Y.Hi).Mul(-1) // Top
	default:
		return uNorm(int(c.face), c.uv.X.Lo).Mul(-1) // Left
	}
}

// ExactArea returns the area of this cell as accurately as possible.
func (c Cell) ExactArea() float64 {
	v0, v1, v2, v3 := c.Vertex(0), c.Vertex(1), c.Vertex(2), c.Vertex(3)
	return PointArea(v0, v1, v2) + PointArea(v0, v2, v3)
}

// ApproxArea returns the approximate area of this cell; cheaper than
// ExactArea. Level-0 cells return exactly 4π/6; other levels use the
// planar area of the vertex quadrilateral with a curvature correction.
func (c Cell) ApproxArea() float64 {
	if c.level == 0 {
		return 4 * math.Pi / 6
	}
	flatArea := 0.5 * (c.Vertex(2).Sub(c.Vertex(0).Vector).Cross(c.Vertex(3).Sub(c.Vertex(1).Vector))).Norm()
	return flatArea * 2 / (1 + math.Sqrt(1-math.Min(1/math.Pi*flatArea, 1.0)))
}

// CapBound returns a bounding spherical cap. Neither this nor
// RectBound is guaranteed to be the smallest possible bound, only a
// safe conservative one.
func (c Cell) CapBound() Cap {
	u := c.uv.Center().X
	v := c.uv.Center().Y
	cp := CapFromCenterHeight(Point{faceUVToXYZ(int(c.face), u, v).Normalize()}, 0)
	for k := 0; k < 4; k++ {
		cp = cp.AddPoint(c.Vertex(k))
	}
	return cp
}

// RectBound returns a bounding latitude-longitude rectangle.
//
// For level 0 the four corners alone do not reach a face's latitude
// and longitude extremes, so the edge midpoints are folded in as well,
// and the polar faces 2 and 5 get their latitude range set directly
// with a full longitude span.
func (c Cell) RectBound() Rect {
	bound := EmptyRect()
	if c.level > 0 {
		// At levels >= 1 the four vertices of the (u,v) rect, mapped
		// through the face projection, already bound both the latitude
		// and longitude extremes: the diagonal that achieves each
		// extreme depends on the signs of the face's u/v axes, which
		// is exactly what folding all four vertices through AddPoint
		// discovers without hand-casing those signs per face.
		u := [2]float64{c.uv.X.Lo, c.uv.X.Hi}
		v := [2]float64{c.uv.Y.Lo, c.uv.Y.Hi}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				ll := LatLngFromPoint(Point{faceUVToXYZ(int(c.face), u[i], v[j]).Normalize()})
				bound = bound.AddPoint(ll)
			}
		}
		return bound.expandedByEpsilon().PolarClosure()
	}

	// Face cells span [-1,1]x[-1,1] in (u,v); the corners alone don't
	// bound the latitude/longitude extremes of such a large patch, so
	// the edge midpoints are folded in too.
	for k := 0; k < 4; k++ {
		bound = bound.AddPoint(LatLngFromPoint(c.Vertex(k)))
	}
	mids := [4]Point{
		{faceUVToXYZ(int(c.face), 0, -1).Normalize()},
		{faceUVToXYZ(int(c.face), 1, 0).Normalize()},
		{faceUVToXYZ(int(c.face), 0, 1).Normalize()},
		{faceUVToXYZ(int(c.face), -1, 0).Normalize()},
	}
	for _, m := range mids {
		bound = bound.AddPoint(LatLngFromPoint(m))
	}

	if c.face == 2 || c.face == 5 {
		// This face's center is a pole; the corner/edge-midpoint fold
		// above never visits the center, so on its own it would miss the
		// exact pole latitude. The opposite side already converges (up
		// to rounding) on the latitude of a cube corner, PoleMinLat, so
		// snap both ends to their exact values and open the longitude to
		// full, since every meridian passes through a pole.
		if c.face == 2 {
			bound.Lat = r1.Interval{Lo: PoleMinLat, Hi: math.Pi / 2}
		} else {
			bound.Lat = r1.Interval{Lo: -math.Pi / 2, Hi: -PoleMinLat}
		}
		return Rect{bound.Lat, s1.FullInterval()}
	}
	return bound.expandedByEpsilon().PolarClosure()
}

// ContainsPoint reports whether the cell contains p.
func (c Cell) ContainsPoint(p Point) bool {
	// We can't just call xyzToFaceUV, because for points that lie on
	// the boundary between two faces (i.e. u or v is +1/-1) we need to
	// return true for both adjacent cells.
	u, v, ok := faceXYZToUV(int(c.face), p)
	if !ok {
		return false
	}
	return u >= c.uv.X.Lo-DblEpsilon && u <= c.uv.X.Hi+DblEpsilon &&
		v >= c.uv.Y.Lo-DblEpsilon && v <= c.uv.Y.Hi+DblEpsilon
}

// ContainsCell reports whether the cell completely contains oc.
func (c Cell) ContainsCell(oc Cell) bool { return c.id.Contains(oc.id) }

// IntersectsCell reports whether the cell intersects oc.
func (c Cell) IntersectsCell(oc Cell) bool { return c.id.Intersects(oc.id) }
