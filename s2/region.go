package s2

// Region represents a two-dimensional region on the unit sphere.
//
// The purpose of this interface is to allow complex regions to be
// approximated as simpler regions. Each region can answer the basic
// questions "is this point inside the region" and, more usefully for
// indexing, "does the region contain/intersect this cell", plus
// produce a conservative Cap and LatLngRect bound of itself so that
// higher layers (coverings, spatial indexes) can mix regions of
// different concrete kinds without a type switch on each one.
//
// Cap, Rect, and Cell all implement Region.
type Region interface {
	// CapBound returns a bounding spherical cap. This is not
	// guaranteed to be tight.
	CapBound() Cap

	// RectBound returns a bounding latitude-longitude rectangle that
	// contains the region. This is not guaranteed to be tight.
	RectBound() Rect

	// ContainsCell reports whether the region completely contains the
	// given cell. It returns false if containment could not be
	// determined.
	ContainsCell(c Cell) bool

	// IntersectsCell reports whether the region intersects the given
	// cell, or if intersection could not be determined. It returns
	// false if the region definitely does not intersect c.
	IntersectsCell(c Cell) bool
}

var (
	_ Region = Cap{}
	_ Region = Rect{}
	_ Region = Cell{}
)
