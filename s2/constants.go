package s2

import "math"

// Exported constants mirroring the bit-layout constants already
// defined unexported in cellid.go (faceBits, numFaces, maxLevel, ...),
// per spec §6's "fixed constants exposed to callers".
const (
	MaxLevel = maxLevel
	NumFaces = numFaces
)

// DblEpsilon is the smallest float64 e such that 1+e != 1, i.e. the
// machine epsilon for float64. math.Nextafter is not a compile-time
// constant, so this is computed once at package init.
var DblEpsilon = math.Nextafter(1, 2) - 1

// PoleMinLat is the latitude of a cube corner, asin(sqrt(1/3)), less
// half an epsilon: the lowest latitude reached by the polar faces 2
// and 5. Cell.RectBound uses it for the latitude bound of those faces.
var PoleMinLat = math.Asin(math.Sqrt(1.0/3.0)) - 0.5*DblEpsilon
