package s2

import (
	"math"

	"github.com/mkevac/gos2/r1"
	"github.com/mkevac/gos2/r3"
	"github.com/mkevac/gos2/s1"
)

// Rect represents a closed latitude-longitude rectangle. It is
// capable of representing the empty and full rectangles, as well as
// single points. Its Lat field is always a subset of [-π/2, π/2];
// its Lng field may be inverted (wrapping through ±π), per s1.Interval.
type Rect struct {
	Lat r1.Interval
	Lng s1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect { return Rect{r1.EmptyInterval(), s1.EmptyInterval()} }

// FullRect returns the full rectangle, containing every LatLng.
func FullRect() Rect {
	return Rect{r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}, s1.FullInterval()}
}

// RectFromLatLng constructs a single-point rectangle.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{r1.Interval{Lo: ll.Lat, Hi: ll.Lat}, s1.Interval{Lo: ll.Lng, Hi: ll.Lng}}
}

// RectFromCenterSize constructs a rectangle centered at center with
// the given (lat,lng) size. Size must be non-negative; the latitude
// span is clamped to [-π/2, π/2] (never inverted), the longitude span
// becomes full if it is 2π or more.
func RectFromCenterSize(center, size LatLng) Rect {
	lng := s1.FullInterval()
	if size.Lng < 2*math.Pi {
		lng = s1.IntervalFromEndpoints(math.Remainder(center.Lng-size.Lng/2, 2*math.Pi),
			math.Remainder(center.Lng+size.Lng/2, 2*math.Pi))
	}
	return Rect{
		Lat: r1.Interval{Lo: center.Lat - size.Lat/2, Hi: center.Lat + size.Lat/2}.Intersection(
			r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}),
		Lng: lng,
	}
}

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool { return r.Lat.IsEmpty() }

// IsFull reports whether the rectangle is full.
func (r Rect) IsFull() bool {
	return r.Lat.Lo == -math.Pi/2 && r.Lat.Hi == math.Pi/2 && r.Lng.IsFull()
}

// IsValid reports whether the rectangle satisfies its invariants:
// Lat within [-π/2,π/2] and both components empty together or not at
// all.
func (r Rect) IsValid() bool {
	return math.Abs(r.Lat.Lo) <= math.Pi/2 && math.Abs(r.Lat.Hi) <= math.Pi/2 &&
		r.Lat.IsEmpty() == r.Lng.IsEmpty()
}

// Center returns the center of the rectangle.
func (r Rect) Center() LatLng { return LatLng{r.Lat.Center(), r.Lng.Center()} }

// ContainsLatLng reports whether the rectangle contains ll.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat) && r.Lng.Contains(ll.Lng)
}

// ContainsPoint reports whether the rectangle contains p.
func (r Rect) ContainsPoint(p Point) bool {
	return r.ContainsLatLng(LatLngFromPoint(p))
}

// InteriorContainsLatLng reports whether the interior of the
// rectangle contains ll.
func (r Rect) InteriorContainsLatLng(ll LatLng) bool {
	return r.Lat.InteriorContains(ll.Lat) && r.Lng.InteriorContains(ll.Lng)
}

// ContainsRect reports whether the rectangle contains or.
func (r Rect) ContainsRect(or Rect) bool {
	return r.Lat.ContainsInterval(or.Lat) && r.Lng.ContainsInterval(or.Lng)
}

// Intersects reports whether the rectangle intersects or.
func (r Rect) Intersects(or Rect) bool {
	return r.Lat.Intersects(or.Lat) && r.Lng.Intersects(or.Lng)
}

// AddPoint returns the smallest rectangle containing both r and ll.
func (r Rect) AddPoint(ll LatLng) Rect {
	return Rect{r.Lat.AddPoint(ll.Lat), r.Lng.AddPoint(ll.Lng)}
}

// Union returns the smallest rectangle containing both r and or.
func (r Rect) Union(or Rect) Rect {
	return Rect{r.Lat.Union(or.Lat), r.Lng.Union(or.Lng)}
}

// Intersection returns the intersection of r and or; empty if the
// rectangles do not overlap (on either axis alone, or both).
func (r Rect) Intersection(or Rect) Rect {
	lat := r.Lat.Intersection(or.Lat)
	lng := r.Lng.Intersection(or.Lng)
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	return Rect{lat, lng}
}

// Expanded returns a rectangle expanded by margin.Lat / margin.Lng on
// each axis. A negative margin shrinks; shrinking past empty on
// either axis yields the fully empty rectangle.
func (r Rect) Expanded(margin LatLng) Rect {
	if r.IsEmpty() {
		return r
	}
	lat := r.Lat.Expanded(margin.Lat).Intersection(r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2})
	lng := r.Lng
	switch {
	case lng.IsEmpty() || (margin.Lng < 0 && lng.IsFull()):
	case lng.Length()+2*margin.Lng >= 2*math.Pi:
		lng = s1.FullInterval()
	case lng.Length()+2*margin.Lng < 0:
		lng = s1.EmptyInterval()
	default:
		lng = s1.IntervalFromEndpoints(math.Remainder(lng.Lo-margin.Lng, 2*math.Pi),
			math.Remainder(lng.Hi+margin.Lng, 2*math.Pi))
	}
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	return Rect{lat, lng}
}

// PolarClosure returns the rectangle widened so that its longitude
// span becomes full whenever the latitude span touches either pole,
// matching the fact that every longitude passes through the poles.
func (r Rect) PolarClosure() Rect {
	if r.Lat.Lo == -math.Pi/2 || r.Lat.Hi == math.Pi/2 {
		return Rect{r.Lat, s1.FullInterval()}
	}
	return r
}

// expandedByEpsilon expands a rectangle computed from (u,v)-vertex
// projections by a couple of ulps on each axis, so that floating-point
// normalization error in the projection never causes a point that is
// geometrically inside the cell to test as outside its bound.
func (r Rect) expandedByEpsilon() Rect {
	marginLat := 2 * DblEpsilon
	return r.Expanded(LatLng{marginLat, marginLat})
}

// CapBound returns a bounding cap for this rectangle.
func (r Rect) CapBound() Cap {
	if r.IsEmpty() {
		return EmptyCap()
	}
	var poleZ, poleAngle float64
	if r.Lat.Lo+r.Lat.Hi < 0 {
		poleZ = -1
		poleAngle = math.Pi/2 + r.Lat.Hi
	} else {
		poleZ = 1
		poleAngle = math.Pi/2 - r.Lat.Lo
	}
	poleCap := CapFromCenterAngle(Point{r3.Vector{X: 0, Y: 0, Z: poleZ}}, poleAngle)

	if r.Lng.Length() < 2*math.Pi && poleCap.height < 1 {
		// The bounding cap is computed using the midpoint as the
		// cap axis, then expanded to include the four corners.
		midLng := r.Lng.Center()
		lngSpan := 0.5 * r.Lng.Length()
		latCenter := r.Lat.Center()
		cp := CapFromCenterHeight(PointFromLatLng(LatLng{latCenter, midLng}), 0)
		cp = cp.AddPoint(PointFromLatLng(LatLng{r.Lat.Lo, midLng - lngSpan}))
		cp = cp.AddPoint(PointFromLatLng(LatLng{r.Lat.Lo, midLng + lngSpan}))
		cp = cp.AddPoint(PointFromLatLng(LatLng{r.Lat.Hi, midLng - lngSpan}))
		cp = cp.AddPoint(PointFromLatLng(LatLng{r.Lat.Hi, midLng + lngSpan}))
		if cp.height < poleCap.height {
			return cp
		}
	}
	return poleCap
}

// RectBound returns r itself: a LatLngRect is its own tightest
// rectangular bound.
func (r Rect) RectBound() Rect { return r }

// ContainsCell reports whether the rectangle contains every point of
// the given cell, via the cell's conservative RectBound.
func (r Rect) ContainsCell(c Cell) bool {
	return r.ContainsRect(c.RectBound())
}

// IntersectsCell reports whether the rectangle intersects the given
// cell.
func (r Rect) IntersectsCell(c Cell) bool {
	if r.IsEmpty() {
		return false
	}
	if r.ContainsPoint(Point{faceUVToXYZ(c.Face(), c.uv.Center().X, c.uv.Center().Y).Normalize()}) {
		return true
	}
	if c.ContainsPoint(PointFromLatLng(r.Center())) {
		return true
	}
	if !r.Intersects(c.RectBound()) {
		return false
	}
	for k := 0; k < 4; k++ {
		if r.ContainsPoint(c.Vertex(k)) {
			return true
		}
	}
	return false
}
