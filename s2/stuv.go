package s2

import (
	"math"

	"github.com/mkevac/gos2/r3"
)

// This file implements the bijection between the unit sphere and the
// six square faces of its circumscribed cube (§4.F of the design):
// Point <-> (face, u, v) <-> (face, s, t) <-> (face, i, j).
//
// (u,v) are coordinates on the face's tangent plane, roughly in
// [-1,1]; (s,t) are the "quadratic" reprojection of (u,v) into [0,1]
// chosen so that subdividing s,t into equal intervals yields cells of
// much more uniform area than subdividing u,v directly would. (i,j)
// are the integer leaf-cell coordinates obtained by scaling (s,t) by
// 2^maxLevel.

// uvwAxes[face] holds, in order, the u-axis, v-axis, and outward unit
// normal of the given face, expressed in (x,y,z).
var uvwAxes = [6][3]r3.Vector{
	{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 1}},
	{{X: 0, Y: 0, Z: -1}, {X: 0, Y: -1, Z: 0}, {X: -1, Y: 0, Z: 0}},
	{{X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}},
	{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
}

// uAxis returns the u-axis for the given face.
func uAxis(face int) r3.Vector { return uvwAxes[face][0] }

// vAxis returns the v-axis for the given face.
func vAxis(face int) r3.Vector { return uvwAxes[face][1] }

// unitNorm returns the outward unit normal for the given face.
func unitNorm(face int) r3.Vector { return uvwAxes[face][2] }

// faceUVToXYZ turns face/u/v coordinates into an (un-normalized) x,y,z
// vector on the cube face.
func faceUVToXYZ(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vector{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vector{X: -1, Y: -v, Z: -u}
	case 4:
		return r3.Vector{X: v, Y: -1, Z: -u}
	default:
		return r3.Vector{X: v, Y: u, Z: -1}
	}
}

// validFaceXYZToUV given a valid face for the vector r (i.e. the
// vector's largest-magnitude, correctly-signed component matches that
// face), returns the (u,v) coordinates for the point on that face.
func validFaceXYZToUV(face int, r r3.Vector) (u, v float64) {
	switch face {
	case 0:
		return r.Y / r.X, r.Z / r.X
	case 1:
		return -r.X / r.Y, r.Z / r.Y
	case 2:
		return -r.X / r.Z, -r.Y / r.Z
	case 3:
		return r.Z / r.X, r.Y / r.X
	case 4:
		return r.Z / r.Y, -r.X / r.Y
	default:
		return -r.Y / r.Z, -r.X / r.Z
	}
}

// face returns the face that contains the given direction vector r,
// i.e. the face whose outward normal is most nearly parallel to r.
func face(r r3.Vector) int {
	f := r.X
	axis := 0
	if math.Abs(r.Y) > math.Abs(f) {
		f = r.Y
		axis = 1
	}
	if math.Abs(r.Z) > math.Abs(f) {
		f = r.Z
		axis = 2
	}
	if f < 0 {
		axis += 3
	}
	return axis
}

// xyzToFaceUV converts an (un-normalized) point on the sphere into its
// face and (u,v) coordinates on that face.
func xyzToFaceUV(r r3.Vector) (f int, u, v float64) {
	f = face(r)
	u, v = validFaceXYZToUV(f, r)
	return
}

// faceXYZToUV returns the (u,v) coordinates for point p on the given
// face. It reports ok=false only when p's component along the face's
// axis is zero or has the wrong sign; it does not check that this
// component is the largest, so u and v may fall outside [-1,1]. Used
// for cell point-containment at face boundaries, where a point may
// legitimately belong to more than one face's closed cell.
func faceXYZToUV(face int, p Point) (u, v float64, ok bool) {
	switch face {
	case 0:
		if p.X <= 0 {
			return 0, 0, false
		}
	case 1:
		if p.Y <= 0 {
			return 0, 0, false
		}
	case 2:
		if p.Z <= 0 {
			return 0, 0, false
		}
	case 3:
		if p.X >= 0 {
			return 0, 0, false
		}
	case 4:
		if p.Y >= 0 {
			return 0, 0, false
		}
	default:
		if p.Z >= 0 {
			return 0, 0, false
		}
	}
	u, v = validFaceXYZToUV(face, p.Vector)
	return u, v, true
}

// uNorm returns the right-handed normal of the great circle through
// the face's edge line u=uCoord, used by Cell.Edge to bound the left
// and right sides of a cell.
func uNorm(face int, uCoord float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: uCoord, Y: -1, Z: 0}
	case 1:
		return r3.Vector{X: 1, Y: uCoord, Z: 0}
	case 2:
		return r3.Vector{X: 1, Y: 0, Z: uCoord}
	case 3:
		return r3.Vector{X: -uCoord, Y: 0, Z: 1}
	case 4:
		return r3.Vector{X: 0, Y: -uCoord, Z: 1}
	default:
		return r3.Vector{X: 0, Y: -1, Z: -uCoord}
	}
}

// vNorm returns the right-handed normal of the great circle through
// the face's edge line v=vCoord.
func vNorm(face int, vCoord float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: -vCoord, Y: 0, Z: 1}
	case 1:
		return r3.Vector{X: 0, Y: -vCoord, Z: 1}
	case 2:
		return r3.Vector{X: 0, Y: -1, Z: -vCoord}
	case 3:
		return r3.Vector{X: vCoord, Y: -1, Z: 0}
	case 4:
		return r3.Vector{X: 1, Y: vCoord, Z: 0}
	default:
		return r3.Vector{X: 1, Y: 0, Z: vCoord}
	}
}

// stToUV converts a value in ST coordinates to a value in UV
// coordinates, using the quadratic projection that makes cell areas
// on a face much more uniform than a linear (identity) projection
// would. s/t is expected to be in [0,1].
func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.0) * (4*s*s - 1)
	}
	return (1 / 3.0) * (1 - 4*(1-s)*(1-s))
}

// uvToST is the inverse of stToUV.
func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}
