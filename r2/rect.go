// Package r2 implements types and functions for working with
// geometry in ℝ², namely an axis-aligned rectangle formed from the
// product of two r1.Intervals.
package r2

import "github.com/mkevac/gos2/r1"

// Point represents a point in ℝ².
type Point struct {
	X, Y float64
}

// Rect represents a closed axis-aligned rectangle in the (x,y) plane.
type Rect struct {
	X, Y r1.Interval
}

// EmptyRect constructs the canonical empty rectangle. Both of its
// components are the canonical empty R1Interval.
func EmptyRect() Rect {
	return Rect{r1.EmptyInterval(), r1.EmptyInterval()}
}

// RectFromPoints constructs a rectangle from the two given points,
// assigning the smaller coordinates to Lo and the larger to Hi on each
// axis. This is the only point-based constructor the core provides;
// anything wider is built by repeated AddPoint.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: r1.Interval{Lo: minF(a.X, b.X), Hi: maxF(a.X, b.X)},
		Y: r1.Interval{Lo: minF(a.Y, b.Y), Hi: maxF(a.Y, b.Y)},
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// IsEmpty reports whether the rectangle is empty. By invariant, both
// axes are empty together or neither is.
func (r Rect) IsEmpty() bool { return r.X.IsEmpty() }

// Center returns the center of the rectangle in (x,y)-space.
func (r Rect) Center() Point { return Point{r.X.Center(), r.Y.Center()} }

// Vertices returns the four vertices of the rectangle, in CCW order
// starting from the lower-left corner (LoX, LoY).
func (r Rect) Vertices() [4]Point {
	return [4]Point{
		{r.X.Lo, r.Y.Lo},
		{r.X.Hi, r.Y.Lo},
		{r.X.Hi, r.Y.Hi},
		{r.X.Lo, r.Y.Hi},
	}
}

// Contains reports whether the rectangle contains the point p.
func (r Rect) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// InteriorContains reports whether the interior of the rectangle
// contains the point p.
func (r Rect) InteriorContains(p Point) bool {
	return r.X.InteriorContains(p.X) && r.Y.InteriorContains(p.Y)
}

// ContainsRect reports whether the rectangle contains or.
func (r Rect) ContainsRect(or Rect) bool {
	return r.X.ContainsInterval(or.X) && r.Y.ContainsInterval(or.Y)
}

// Intersects reports whether r and or have any points in common.
func (r Rect) Intersects(or Rect) bool {
	return r.X.Intersects(or.X) && r.Y.Intersects(or.Y)
}

// Union returns the smallest rectangle containing both r and or.
func (r Rect) Union(or Rect) Rect {
	return Rect{r.X.Union(or.X), r.Y.Union(or.Y)}
}

// Intersection returns the intersection of r and or; empty if they do
// not overlap.
func (r Rect) Intersection(or Rect) Rect {
	xx := r.X.Intersection(or.X)
	yy := r.Y.Intersection(or.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// AddPoint returns the smallest rectangle containing r and p.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{r.X.AddPoint(p.X), r.Y.AddPoint(p.Y)}
}

// Expanded returns a rectangle expanded by margin on each axis. A
// negative component shrinks that axis; shrinking past empty yields
// the empty rectangle on both axes, preserving the both-or-neither
// invariant.
func (r Rect) Expanded(margin Point) Rect {
	xx := r.X.Expanded(margin.X)
	yy := r.Y.Expanded(margin.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// ApproxEqual reports whether r and or are within eps of each other on
// both axes.
func (r Rect) ApproxEqual(or Rect, eps float64) bool {
	return r.X.ApproxEqual(or.X, eps) && r.Y.ApproxEqual(or.Y, eps)
}
