// Package s1 implements types and functions for working with
// geometric shapes in a one-dimensional angular space, specifically
// intervals of directions on a circle, [-π, π].
package s1

import "math"

// Interval represents a closed interval on a unit circle (also known
// as a 1-dimensional angular interval). It is capable of representing
// the empty interval (containing no points), the full interval
// (containing all points), and non-empty proper intervals containing
// one or more points.
//
// The interval is represented as a pair of doubles (lo, hi), both
// in the range [-π, π]. The value lo is the arc's start point, hi is
// its end point, in the counterclockwise direction; if lo <= hi the
// arc extends from lo to hi, otherwise it wraps around through ±π.
// An endpoint value of -π is normalized to +π unless the interval is
// empty or full.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval returns the canonical empty interval.
func EmptyInterval() Interval { return Interval{math.Pi, -math.Pi} }

// FullInterval returns the full interval.
func FullInterval() Interval { return Interval{-math.Pi, math.Pi} }

// IntervalFromEndpoints constructs an interval from lo to hi, with
// both endpoints normalized per the -π rule above. Callers wanting the
// canonical empty/full interval should use EmptyInterval/FullInterval
// directly, since normalization alone cannot distinguish an empty
// interval of zero length from a single-point interval at lo==hi.
func IntervalFromEndpoints(lo, hi float64) Interval {
	if lo == -math.Pi && hi != math.Pi {
		lo = math.Pi
	}
	if hi == -math.Pi && lo != math.Pi {
		hi = math.Pi
	}
	return Interval{lo, hi}
}

// IsEmpty reports whether the interval is empty.
func (i Interval) IsEmpty() bool { return i.Lo == math.Pi && i.Hi == -math.Pi }

// IsFull reports whether the interval is full.
func (i Interval) IsFull() bool { return i.Lo == -math.Pi && i.Hi == math.Pi }

// IsInverted reports whether the interval is inverted, i.e. lo > hi,
// meaning it wraps around through ±π.
func (i Interval) IsInverted() bool { return i.Lo > i.Hi }

// Center returns the midpoint of the interval. For the full interval
// this is defined as zero. For an inverted interval the midpoint lies
// on the far side of ±π from the representation's endpoints.
func (i Interval) Center() float64 {
	c := 0.5 * (i.Lo + i.Hi)
	if !i.IsInverted() {
		return c
	}
	if c <= 0 {
		return c + math.Pi
	}
	return c - math.Pi
}

// Length returns the length of the interval. The length of an empty
// interval is negative (matching R1's convention).
func (i Interval) Length() float64 {
	l := i.Hi - i.Lo
	if l >= 0 {
		return l
	}
	l += 2 * math.Pi
	if l > 0 {
		return l
	}
	return -1
}

// fastContains reports whether the interval contains x, assuming x is
// already in the range (-π, π] (no normalization of -π is done).
func (i Interval) fastContains(x float64) bool {
	if i.IsInverted() {
		return (x >= i.Lo || x <= i.Hi) && !i.IsEmpty()
	}
	return x >= i.Lo && x <= i.Hi
}

// Contains reports whether the interval contains x, where x is first
// normalized into the range (-π, π].
func (i Interval) Contains(x float64) bool {
	if x == -math.Pi {
		x = math.Pi
	}
	return i.fastContains(x)
}

// InteriorContains reports whether the interior of the interval
// contains x, where x is first normalized into the range (-π, π].
func (i Interval) InteriorContains(x float64) bool {
	if x == -math.Pi {
		x = math.Pi
	}
	if i.IsInverted() {
		return x > i.Lo || x < i.Hi
	}
	return (x > i.Lo && x < i.Hi) || i.IsFull()
}

// ContainsInterval reports whether the interval contains oi.
func (i Interval) ContainsInterval(oi Interval) bool {
	if i.IsFull() || oi.IsEmpty() {
		return true
	}
	return i.fastOperation(oi, func(l, h float64) bool {
		if i.IsInverted() {
			return (l >= i.Lo || h <= i.Hi) && !i.IsEmpty()
		}
		return l >= i.Lo && h <= i.Hi
	})
}

// fastOperation is a small helper used by ContainsInterval above: it
// case-splits on whether oi is inverted, feeding the uninverted
// [lo,hi] chunk(s) to f.
func (i Interval) fastOperation(oi Interval, f func(lo, hi float64) bool) bool {
	if oi.IsInverted() {
		return f(oi.Lo, math.Pi) && f(-math.Pi, oi.Hi)
	}
	return f(oi.Lo, oi.Hi)
}

// InteriorContainsInterval reports whether the interior of the
// interval contains oi.
func (i Interval) InteriorContainsInterval(oi Interval) bool {
	if i.IsFull() {
		return true
	}
	if oi.IsEmpty() {
		return true
	}
	if i.IsInverted() {
		if !oi.IsInverted() {
			return oi.Lo > i.Lo || oi.Hi < i.Hi
		}
		return (oi.Lo > i.Lo && oi.Hi < i.Hi) || oi.IsFull()
	}
	if oi.IsInverted() {
		return i.IsFull() || oi.IsEmpty()
	}
	return oi.Lo > i.Lo && oi.Hi < i.Hi
}

// Intersects reports whether the interval contains any points in
// common with oi.
func (i Interval) Intersects(oi Interval) bool {
	if i.IsEmpty() || oi.IsEmpty() {
		return false
	}
	if i.IsInverted() {
		return oi.IsInverted() || oi.Lo <= i.Hi || oi.Hi >= i.Lo
	}
	if oi.IsInverted() {
		return oi.Lo <= i.Hi || oi.Hi >= i.Lo
	}
	return oi.Lo <= i.Hi && oi.Hi >= i.Lo
}

// InteriorIntersects reports whether the interior of the interval
// contains any points in common with oi, including the latter's
// boundary.
func (i Interval) InteriorIntersects(oi Interval) bool {
	if i.IsEmpty() || oi.IsEmpty() || i.Lo == i.Hi {
		return false
	}
	if i.IsInverted() {
		return oi.IsInverted() || oi.Lo < i.Hi || oi.Hi > i.Lo
	}
	if oi.IsInverted() {
		return oi.Lo < i.Hi || oi.Hi > i.Lo
	}
	return (oi.Lo < i.Hi && oi.Hi > i.Lo) || i.IsFull()
}

// Complement returns the complement of the interior of the interval.
// An interval and its complement have the same boundary but do not
// share any interior values. The complement of the full interval is
// empty, and vice versa.
func (i Interval) Complement() Interval {
	if i.Lo == i.Hi {
		return FullInterval()
	}
	return Interval{i.Hi, i.Lo}
}

// AddPoint returns the smallest interval that contains the interval
// and the point x, where x is first normalized into the range (-π, π].
// Of the two ways to extend the interval to include x, the shorter
// extension is chosen; ties are broken by extending toward lo.
func (i Interval) AddPoint(x float64) Interval {
	if x == -math.Pi {
		x = math.Pi
	}
	if i.fastContains(x) {
		return i
	}
	if i.IsEmpty() {
		return Interval{x, x}
	}
	// Compute the distance from x to each endpoint.
	dlo := positiveDistance(x, i.Lo)
	dhi := positiveDistance(i.Hi, x)
	if dlo <= dhi {
		return Interval{x, i.Hi}
	}
	return Interval{i.Lo, x}
}

// positiveDistance returns the distance traveled CCW from a to b, in
// the range [0, 2π). Equivalent to (b - a) mod 2π, staying positive
// even when b < a.
func positiveDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return d
	}
	return (b + math.Pi) - (a - math.Pi)
}

// Union returns the smallest interval that contains both i and oi. If
// the intervals overlap at both gap endpoints the result is full.
func (i Interval) Union(oi Interval) Interval {
	if oi.IsEmpty() {
		return i
	}
	if i.fastContains(oi.Lo) {
		if i.fastContains(oi.Hi) {
			if i.ContainsInterval(oi) {
				return i
			}
			return FullInterval()
		}
		return Interval{i.Lo, oi.Hi}
	}
	if i.fastContains(oi.Hi) {
		return Interval{oi.Lo, i.Hi}
	}
	if i.IsEmpty() || oi.fastContains(i.Lo) {
		return oi
	}
	// Neither interval contains the other's endpoints and they are
	// disjoint; join across whichever gap is smaller.
	dlo := positiveDistance(oi.Hi, i.Lo)
	dhi := positiveDistance(i.Hi, oi.Lo)
	if dlo < dhi {
		return Interval{oi.Lo, i.Hi}
	}
	return Interval{i.Lo, oi.Hi}
}

// Intersection returns the smallest interval containing the
// intersection of i and oi. Disjoint intervals yield the empty
// interval.
func (i Interval) Intersection(oi Interval) Interval {
	if oi.IsEmpty() {
		return EmptyInterval()
	}
	if i.fastContains(oi.Lo) {
		if i.fastContains(oi.Hi) {
			if oi.Length() < i.Length() || (oi.Length() == i.Length() && oi.IsInverted()) {
				return oi
			}
			return i
		}
		return Interval{oi.Lo, i.Hi}
	}
	if i.fastContains(oi.Hi) {
		return Interval{i.Lo, oi.Hi}
	}
	if oi.fastContains(i.Lo) {
		return i
	}
	return EmptyInterval()
}

// ApproxEqual reports whether i and oi are within maxError of each
// other.
func (i Interval) ApproxEqual(oi Interval, maxError float64) bool {
	if i.IsEmpty() {
		return oi.Length() <= 2*maxError
	}
	if oi.IsEmpty() {
		return i.Length() <= 2*maxError
	}
	return (math.Abs(normalizedDiff(oi.Lo, i.Lo)) <= maxError &&
		math.Abs(normalizedDiff(oi.Hi, i.Hi)) <= maxError) ||
		(i.IsFull() && oi.Length() <= 2*maxError) ||
		(oi.IsFull() && i.Length() <= 2*maxError)
}

func normalizedDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
