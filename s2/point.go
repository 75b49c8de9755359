package s2

import (
	"math"

	"github.com/mkevac/gos2/r3"
)

// Point represents a point on the unit sphere as a 3-dimensional
// vector. Most clients should use the methods on Point rather than
// working with the underlying Vector directly, since not all
// Vector methods yield points that remain on the sphere.
//
// Points are guaranteed to be approximately unit length; the zero
// vector is never a valid Point (see PointFromCoords).
type Point struct {
	r3.Vector
}

// originPoint is the fixed, arbitrary non-degenerate direction used
// both as the fallback for a degenerate PointFromCoords input and by
// edge-crossing parity tests throughout the higher layers.
var originPoint = Point{r3.Vector{X: 0.00456762077230, Y: 0.99947476613078, Z: 0.03208315302933}}

// OriginPoint returns the fixed point used as a reference for
// edge-crossing parity tests.
func OriginPoint() Point { return originPoint }

// PointFromCoords creates a new normalized point from coordinates.
//
// This always returns a valid point: if the given coordinates are all
// zero, it returns originPoint instead of producing an invalid
// zero-length vector, so that no Point is ever the origin.
func PointFromCoords(x, y, z float64) Point {
	if x == 0 && y == 0 && z == 0 {
		return originPoint
	}
	return Point{r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}

// PointFromVector creates a new normalized point from v, handling the
// zero vector the same way as PointFromCoords.
func PointFromVector(v r3.Vector) Point {
	return PointFromCoords(v.X, v.Y, v.Z)
}

// ApproxEqual reports whether the two points are similar enough to be
// equal, up to a small floating point error.
func (p Point) ApproxEqual(op Point) bool {
	const epsilon = 1e-14
	return p.Vector.Sub(op.Vector).Norm2() <= epsilon
}

// Distance returns the great circle distance (in radians) between p
// and op, both assumed to be unit vectors.
func (p Point) Distance(op Point) float64 {
	return p.Vector.Angle(op.Vector)
}

// LatLng is a point represented by its latitude and longitude, in
// radians.
type LatLng struct {
	Lat, Lng float64
}

// IsValid reports whether the LatLng is within valid bounds:
// Lat ∈ [-π/2, π/2], Lng ∈ [-π, π].
func (ll LatLng) IsValid() bool {
	return math.Abs(ll.Lat) <= math.Pi/2 && math.Abs(ll.Lng) <= math.Pi
}

// Normalized returns the LatLng with its latitude clamped to
// [-π/2, π/2] and its longitude wrapped into (-π, π].
func (ll LatLng) Normalized() LatLng {
	lat := math.Max(-math.Pi/2, math.Min(math.Pi/2, ll.Lat))
	lng := math.Remainder(ll.Lng, 2*math.Pi)
	if lng <= -math.Pi {
		lng = math.Pi
	}
	return LatLng{lat, lng}
}

// LatLngFromDegrees returns a LatLng for the given latitude and
// longitude in degrees.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{lat * math.Pi / 180, lng * math.Pi / 180}
}

// Degrees returns lat/lng in degrees.
func (ll LatLng) Degrees() (lat, lng float64) {
	return ll.Lat * 180 / math.Pi, ll.Lng * 180 / math.Pi
}

// PointFromLatLng returns an equivalent Point for the given LatLng.
func PointFromLatLng(ll LatLng) Point {
	phi := ll.Lat
	theta := ll.Lng
	cosphi := math.Cos(phi)
	return PointFromCoords(
		math.Cos(theta)*cosphi,
		math.Sin(theta)*cosphi,
		math.Sin(phi),
	)
}

// LatLngFromPoint returns a LatLng for a given Point.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{
		Lat: math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y)),
		Lng: math.Atan2(p.Y, p.X),
	}
}

// Distance returns the angle between ll and oll as an angle in radians.
func (ll LatLng) Distance(oll LatLng) float64 {
	return PointFromLatLng(ll).Distance(PointFromLatLng(oll))
}
