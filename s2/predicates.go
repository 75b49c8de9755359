package s2

import (
	"math"

	"github.com/mkevac/gos2/r3"
)

// Direction is the result of a three-point orientation test.
type Direction int

const (
	Clockwise Direction = -1
	// Indeterminate is returned by RobustSign when even the "stable"
	// adaptive phase can't resolve the sign; the exact (bignum) phase
	// that would resolve it is a documented stub (spec §4.K / §7): a
	// caller that sees this should treat it as a tie, not an error.
	Indeterminate Direction = 0
	CounterClockwise Direction = 1
)

// maxDeterminantError is the maximum relative error in the simple
// (triage) determinant computed by Sign's det = (c×a)·b, expressed as
// a multiplier on the product of the three input norms (here all
// inputs are unit vectors, so the bound is an absolute one).
const maxDeterminantError = 4.6125e-16

// detErrorMultiplier is the error multiplier for the "stable" phase,
// whose determinant error scales with the edge lengths |A-C| and
// |B-C| rather than with unit-vector magnitude.
const detErrorMultiplier = 7.1767e-16

// Sign reports the orientation of the triangle a, b, c: returns true
// iff the points are in counterclockwise order as seen from outside
// the sphere, i.e. (c×a)·b > 0.
//
// (c×a)·b rather than the more obvious (a×b)·c is deliberate: it
// makes swapping a and c always negate the result, even in the
// presence of rounding error, which RobustSign's "stable" phase
// depends on.
func Sign(a, b, c Point) bool {
	return c.Cross(a.Vector).Dot(b.Vector) > 0
}

// RobustSign reports the orientation of a, b, c using a three-level
// adaptive scheme: a cheap triage determinant first, a more expensive
// but more accurate "stable" determinant second, and an exact
// (bignum) fallback that is not implemented and returns Indeterminate
// instead (spec §4.K, §9 — documented TODO).
//
// RobustSign(a,b,c) == Indeterminate when two of the three points are
// approximately equal (Point.ApproxEqual), and also when distinct
// points are too close to collinear for the first two phases to
// decide, since the exact phase is not implemented. Rotating the arguments preserves the sign; swapping any two
// arguments negates it.
func RobustSign(a, b, c Point) Direction {
	if a.ApproxEqual(b) || b.ApproxEqual(c) || c.ApproxEqual(a) {
		return Indeterminate
	}
	if d, ok := triageSign(a, b, c); ok {
		return d
	}
	if d, ok := stableSign(a, b, c); ok {
		return d
	}
	return exactSign(a, b, c)
}

// triageSign is the cheap first phase: compute det = (c×a)·b and
// compare against the fixed error bound that holds for unit-length
// inputs.
func triageSign(a, b, c Point) (Direction, bool) {
	det := c.Cross(a.Vector).Dot(b.Vector)
	if det > maxDeterminantError {
		return CounterClockwise, true
	}
	if det < -maxDeterminantError {
		return Clockwise, true
	}
	return Indeterminate, false
}

// stableSign recomputes the determinant after cyclically permuting
// the arguments so the longest of the three edges is AB, which
// minimizes the magnitude (and hence the absolute error) of the cross
// product, then checks against an error bound that scales with the
// edge lengths instead of being a fixed constant.
func stableSign(a, b, c Point) (Direction, bool) {
	ab2 := a.Vector.Sub(b.Vector).Norm2()
	bc2 := b.Vector.Sub(c.Vector).Norm2()
	ca2 := c.Vector.Sub(a.Vector).Norm2()

	// Every candidate below is a cyclic rotation of (a,b,c), which
	// preserves orientation, so the recomputed determinant's sign can
	// be reported directly without tracking which rotation was used.
	var pa, pb, pc Point
	switch {
	case ab2 >= bc2 && ab2 >= ca2:
		pa, pb, pc = a, b, c
	case bc2 >= ca2:
		pa, pb, pc = b, c, a
	default:
		pa, pb, pc = c, a, b
	}

	det := pc.Cross(pa.Vector).Dot(pb.Vector)
	bound := detErrorMultiplier * pa.Vector.Sub(pc.Vector).Norm() * pb.Vector.Sub(pc.Vector).Norm()
	if det > bound {
		return CounterClockwise, true
	}
	if det < -bound {
		return Clockwise, true
	}
	return Indeterminate, false
}

// exactSign is the reserved arbitrary-precision phase. It is not
// implemented (spec §1 Non-goals, §4.K, §9): three truly collinear or
// degenerate-within-float64-precision points fall through to here and
// are reported as Indeterminate, which is the documented, callers-
// must-tolerate outcome for the rare tie.
func exactSign(a, b, c Point) Direction {
	return Indeterminate
}

// OrderedCCW reports whether the edges OA, OB, OC are encountered in
// that order while sweeping counterclockwise around O. Equivalent to:
// at least two of (B,O,A) != Clockwise, (C,O,B) != Clockwise,
// (A,O,C) == CounterClockwise hold.
func OrderedCCW(a, b, c, o Point) bool {
	sum := 0
	if RobustSign(b, o, a) != Clockwise {
		sum++
	}
	if RobustSign(c, o, b) != Clockwise {
		sum++
	}
	if RobustSign(a, o, c) == CounterClockwise {
		sum++
	}
	return sum >= 2
}

// PointArea returns the area of triangle a,b,c on the unit sphere,
// using l'Huilier's theorem by default and falling back to Girard's
// formula for "skinny" triangles, where l'Huilier's relative error
// degrades because one side is much smaller than the semiperimeter.
func PointArea(a, b, c Point) float64 {
	sa := b.Distance(c)
	sb := c.Distance(a)
	sc := a.Distance(b)
	s := 0.5 * (sa + sb + sc)
	if s >= 3*math.Pi {
		// Degenerate triangle that wraps around the sphere.
		s = math.Mod(s, 2*math.Pi)
	}
	dmin := s - math.Max(sa, math.Max(sb, sc))
	if dmin < 1e-2*s*s*s*s*s && s > 0 {
		return girardArea(a, b, c)
	}
	// l'Huilier's theorem.
	t1 := math.Tan(0.5 * s)
	t2 := math.Tan(0.5 * (s - sa))
	t3 := math.Tan(0.5 * (s - sb))
	t4 := math.Tan(0.5 * (s - sc))
	area := 4 * math.Atan(math.Sqrt(math.Max(0, t1*t2*t3*t4)))
	return area
}

// girardArea computes the area of triangle a,b,c from the sum of its
// interior angles minus π (Girard's theorem), used when l'Huilier's
// formula would lose precision on a skinny triangle.
func girardArea(a, b, c Point) float64 {
	ab := a.Cross(b.Vector)
	bc := b.Cross(c.Vector)
	ca := c.Cross(a.Vector)

	angleA := ab.Mul(-1).Angle(ca)
	angleB := bc.Mul(-1).Angle(ab)
	angleC := ca.Mul(-1).Angle(bc)

	area := angleA + angleB + angleC - math.Pi
	if area < 0 {
		area = 0
	}
	return area
}

// TrueCentroid returns the centroid of the spherical triangle a,b,c
// multiplied by its signed area: the vector M with a·M, b·M, c·M equal
// to half of det(a,b,c) times ra, rb, rc, where each r is s/sin(s) of
// the side s opposite that vertex. This is solved in closed form as
// ½(ra·b×c + rb·c×a + rc·a×b). The result is not unit length; callers
// accumulating centroids over many triangles (e.g. for a polygon)
// should normalize the accumulated sum, not each contribution.
func TrueCentroid(a, b, c Point) r3.Vector {
	ratio := func(s float64) float64 {
		if s == 0 {
			return 1
		}
		return s / math.Sin(s)
	}
	return b.Cross(c.Vector).Mul(ratio(b.Distance(c))).
		Add(c.Cross(a.Vector).Mul(ratio(c.Distance(a)))).
		Add(a.Cross(b.Vector).Mul(ratio(a.Distance(b)))).Mul(0.5)
}

// PlanarCentroid returns the simple average of a, b, c, useful as a
// cheap approximation when spherical accuracy is not required.
func PlanarCentroid(a, b, c Point) Point {
	return PointFromVector(a.Vector.Add(b.Vector).Add(c.Vector).Mul(1.0 / 3.0))
}
