package s2

import (
	"math"

	"github.com/mkevac/gos2/r1"
	"github.com/mkevac/gos2/s1"
)

// Cap represents a disc-shaped region defined by a center and radius.
// Internally the radius is stored as the height of the cap measured
// from the center's intersection with the sphere's surface, i.e.
// height = 1 - cos(radius). This representation is preferred because
// containment reduces to a chord-squared comparison, with no trig.
//
// A Cap is empty if its height is negative, and full if its height is
// at least 2 (every point on the sphere is within a great-circle's
// distance of any center once the "radius" covers a full diameter).
type Cap struct {
	center Point
	height float64
}

// EmptyCap returns a cap that contains no points.
func EmptyCap() Cap { return Cap{Point{}, -1} }

// FullCap returns a cap that contains all points.
func FullCap() Cap { return Cap{Point{}, 2} }

// CapFromCenterHeight constructs a cap with the given center and
// height. A negative height yields the empty cap; height >= 2 yields
// the full cap regardless of center.
func CapFromCenterHeight(center Point, height float64) Cap {
	return Cap{center, height}
}

// CapFromCenterAngle constructs a cap with the given center and
// angular radius (in radians).
func CapFromCenterAngle(center Point, angle float64) Cap {
	return CapFromCenterHeight(center, radiusToHeight(angle))
}

// CapFromCenterChordAngle2 constructs a cap with the given center and
// squared chord-length radius; useful when the caller already knows
// the chord distance and wants to avoid a redundant trig round trip.
func CapFromCenterChordAngle2(center Point, chord2 float64) Cap {
	return CapFromCenterHeight(center, 0.5*chord2)
}

// radiusToHeight converts an angular radius to the height
// representation: height = 1 - cos(r) = 2 sin²(r/2). The half-angle
// form keeps relative precision for small radii, where 1-cos(r) would
// catastrophically cancel.
func radiusToHeight(r float64) float64 {
	if r < 0 {
		return -1
	}
	if r >= math.Pi {
		return 2
	}
	s := math.Sin(0.5 * r)
	return 2 * s * s
}

// IsEmpty reports whether the cap is empty, i.e. contains no points.
func (c Cap) IsEmpty() bool { return c.height < 0 }

// IsFull reports whether the cap contains the entire sphere.
func (c Cap) IsFull() bool { return c.height >= 2 }

// Center returns the cap's center.
func (c Cap) Center() Point { return c.center }

// Height returns the cap's height.
func (c Cap) Height() float64 { return c.height }

// Radius returns the cap's angular radius in radians. The empty cap's
// radius is defined as -1, matching spec §7's sentinel for domain
// violations rather than panicking.
func (c Cap) Radius() float64 {
	if c.IsEmpty() {
		return -1
	}
	return 2 * math.Asin(math.Sqrt(0.5*c.height))
}

// Area returns the surface area of the cap.
func (c Cap) Area() float64 {
	return 2 * math.Pi * math.Max(0, c.height)
}

// chordAngle2 returns the squared chord distance corresponding to the
// cap's radius, i.e. 2*height.
func (c Cap) chordAngle2() float64 { return 2 * c.height }

// ContainsPoint reports whether the cap contains p.
func (c Cap) ContainsPoint(p Point) bool {
	return c.center.Sub(p.Vector).Norm2() <= c.chordAngle2()
}

// InteriorContainsPoint reports whether the interior of the cap
// contains p.
func (c Cap) InteriorContainsPoint(p Point) bool {
	return c.IsFull() || c.center.Sub(p.Vector).Norm2() < c.chordAngle2()
}

// ContainsCap reports whether c contains oc.
func (c Cap) ContainsCap(oc Cap) bool {
	if c.IsFull() || oc.IsEmpty() {
		return true
	}
	return c.Radius() >= c.Center().Distance(oc.Center())+oc.Radius()
}

// Intersects reports whether c and oc have any points in common.
func (c Cap) Intersects(oc Cap) bool {
	if c.IsEmpty() || oc.IsEmpty() {
		return false
	}
	return c.Radius()+oc.Radius() >= c.Center().Distance(oc.Center())
}

// InteriorIntersects reports whether the interior of c intersects oc.
func (c Cap) InteriorIntersects(oc Cap) bool {
	if c.height <= 0 || oc.IsEmpty() {
		return false
	}
	return c.Radius()+oc.Radius() > c.Center().Distance(oc.Center())
}

// AddPoint returns the smallest cap containing both c and p. The
// resulting height is rounded up by one ulp so that, even after the
// rounding inherent in the chord-squared computation, ContainsPoint(p)
// is guaranteed to hold for the result (spec §8, invariant 4).
func (c Cap) AddPoint(p Point) Cap {
	if c.IsEmpty() {
		return Cap{p, 0}
	}
	// After addition the cap must also still contain its old self, so
	// grow just enough to reach p, expressed directly in height terms:
	// height' = max(height, distance2(center,p)/2).
	dist2 := c.center.Sub(p.Vector).Norm2()
	if dist2 > c.chordAngle2() {
		h := 0.5 * dist2
		return Cap{c.center, math.Nextafter(h, 2*h+1)}
	}
	return c
}

// AddCap returns the smallest cap containing both c and oc.
func (c Cap) AddCap(oc Cap) Cap {
	if c.IsEmpty() {
		return oc
	}
	if oc.IsEmpty() {
		return c
	}
	if c.ContainsCap(oc) {
		return c
	}
	if oc.ContainsCap(c) {
		return oc
	}
	// The result's radius is half the distance between the centers
	// plus both radii, split so the new cap is tangent to both old
	// caps' boundaries along the line joining their centers.
	d := c.Center().Distance(oc.Center())
	r := 0.5 * (d + c.Radius() + oc.Radius())
	if r >= math.Pi {
		return FullCap()
	}
	// Move from c's center toward oc's center by (r - c.Radius()),
	// along the great circle through both centers.
	t := (r - c.Radius()) / d
	axis := c.center.Cross(oc.center.Vector)
	var center Point
	if axis.Norm2() == 0 {
		// Centers coincide or are antipodal; keep c's center.
		center = c.center
	} else {
		center = slerp(c.center, oc.center, t)
	}
	result := CapFromCenterAngle(center, r)
	return result.AddPoint(c.center).AddPoint(oc.center)
}

// slerp returns the point a fraction t of the way from a to b along
// the great circle connecting them.
func slerp(a, b Point, t float64) Point {
	theta := a.Distance(b)
	if theta == 0 {
		return a
	}
	sinTheta := math.Sin(theta)
	f1 := math.Sin((1-t)*theta) / sinTheta
	f2 := math.Sin(t*theta) / sinTheta
	return PointFromVector(a.Vector.Mul(f1).Add(b.Vector.Mul(f2)))
}

// Complement returns the complement of c: the same boundary but the
// opposite interior, centered at the antipodal point.
func (c Cap) Complement() Cap {
	if c.IsFull() {
		return EmptyCap()
	}
	if c.IsEmpty() {
		return FullCap()
	}
	return Cap{Point{c.center.Vector.Mul(-1)}, 2 - math.Max(c.height, 0)}
}

// CapBound returns c itself: a Cap is its own tightest cap bound.
func (c Cap) CapBound() Cap { return c }

// RectBound returns a bounding latitude-longitude rectangle for the
// cap, using the spherical law of sines on the right triangle formed
// by the north pole, the cap's center, and the point where the cap's
// boundary is tangent to a meridian.
func (c Cap) RectBound() Rect {
	if c.IsEmpty() {
		return EmptyRect()
	}
	capAngle := c.Radius()
	ll := LatLngFromPoint(c.center)

	latLo := ll.Lat - capAngle
	latHi := ll.Lat + capAngle
	allLongitudes := false
	if latLo <= -math.Pi/2 {
		latLo = -math.Pi / 2
		allLongitudes = true
	}
	if latHi >= math.Pi/2 {
		latHi = math.Pi / 2
		allLongitudes = true
	}
	lat := r1.Interval{Lo: latLo, Hi: latHi}
	if allLongitudes {
		return Rect{lat, s1.FullInterval()}
	}
	// sin(A) = sin(a) / sin(c), where a is the cap radius and c is the
	// colatitude of the cap's center.
	sinA := math.Sin(capAngle)
	sinC := math.Cos(ll.Lat)
	if sinC <= 0 {
		return Rect{lat, s1.FullInterval()}
	}
	sinHalfLngSpan := sinA / sinC
	if sinHalfLngSpan >= 1 {
		return Rect{lat, s1.FullInterval()}
	}
	halfLngSpan := math.Asin(sinHalfLngSpan)
	return Rect{lat, s1.IntervalFromEndpoints(math.Remainder(ll.Lng-halfLngSpan, 2*math.Pi),
		math.Remainder(ll.Lng+halfLngSpan, 2*math.Pi))}
}

// ContainsCell reports whether the cap contains every point of c.
func (cp Cap) ContainsCell(c Cell) bool {
	for k := 0; k < 4; k++ {
		if !cp.ContainsPoint(c.Vertex(k)) {
			return false
		}
	}
	return !cp.Complement().IntersectsCell(c)
}

// IntersectsCell reports whether the cap and cell c have any points in
// common.
func (cp Cap) IntersectsCell(c Cell) bool {
	for k := 0; k < 4; k++ {
		if cp.ContainsPoint(c.Vertex(k)) {
			return true
		}
	}
	if cp.height >= 1 {
		// A cap covering a hemisphere or more is convex enough that,
		// having already missed every vertex, it cannot pick up the
		// cell through an edge crossing either.
		return false
	}
	if cp.IsEmpty() {
		return false
	}
	if c.ContainsPoint(cp.center) {
		return true
	}
	axis := cp.center
	for k := 0; k < 4; k++ {
		edgeNormal := c.Edge(k)
		// Edge(k) returns the inward normal, so a negative dot product
		// means the cap's center lies on the outer half-plane of this
		// edge; that's the case to process. Skip the inner side.
		if edgeNormal.Dot(axis.Vector) > 0 {
			continue
		}
		// Closest point on the great circle to the cap's center,
		// projected back onto the unit sphere.
		closest := axis.Vector.Sub(edgeNormal.Vector.Mul(axis.Vector.Dot(edgeNormal.Vector)))
		if closest.Norm2() == 0 {
			continue
		}
		closestPt := PointFromVector(closest)
		v0, v1 := c.Vertex(k), c.Vertex((k+1)%4)
		if between(v0, closestPt, v1) && cp.ContainsPoint(closestPt) {
			return true
		}
	}
	return false
}

// between reports whether b lies on the short great-circle arc from a
// to c, used by IntersectsCell to check that the closest point on an
// edge's great circle actually falls within the edge's endpoints
// rather than on the circle's far side.
func between(a, b, c Point) bool {
	n := a.Cross(c.Vector)
	return a.Cross(b.Vector).Dot(n) >= 0 && b.Cross(c.Vector).Dot(n) >= 0
}
