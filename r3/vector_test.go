package r3

import (
	"math"
	"testing"
)

func TestNorm(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{Vector{0, 0, 0}, 0},
		{Vector{3, 4, 0}, 5},
		{Vector{1, 0, 0}, 1},
	}
	for _, test := range tests {
		if got := test.v.Norm(); !float64Eq(got, test.want) {
			t.Errorf("%v.Norm() = %v, want %v", test.v, got, test.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{1, 1, 1}.Normalize()
	if !v.IsUnit() {
		t.Errorf("Normalize() = %v, want unit vector", v)
	}

	zero := Vector{0, 0, 0}.Normalize()
	if zero != (Vector{0, 0, 0}) {
		t.Errorf("Normalize() of zero vector = %v, want %v", zero, Vector{0, 0, 0})
	}
}

func TestCrossAndDot(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}
	z := x.Cross(y)
	if z != (Vector{0, 0, 1}) {
		t.Errorf("X.Cross(Y) = %v, want %v", z, Vector{0, 0, 1})
	}
	if d := x.Dot(y); d != 0 {
		t.Errorf("X.Dot(Y) = %v, want 0", d)
	}
	if d := x.Dot(x); d != 1 {
		t.Errorf("X.Dot(X) = %v, want 1", d)
	}
}

func TestLargestComponent(t *testing.T) {
	tests := []struct {
		v        Vector
		wantAxis int
	}{
		{Vector{1, 2, 3}, 2},
		{Vector{-5, 2, 3}, 0},
		{Vector{1, -9, 3}, 1},
	}
	for _, test := range tests {
		if axis, _ := test.v.LargestComponent(); axis != test.wantAxis {
			t.Errorf("%v.LargestComponent() axis = %d, want %d", test.v, axis, test.wantAxis)
		}
	}
}

func TestOrthoIsOrthogonalAndUnit(t *testing.T) {
	for _, v := range []Vector{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 2, 3}, {-4, 5, -6}, {0.012, 0.053, 1},
	} {
		o := v.Ortho()
		if !o.IsUnit() {
			t.Errorf("%v.Ortho() = %v, want unit length", v, o)
		}
		if d := v.Normalize().Dot(o); math.Abs(d) > 1e-14 {
			t.Errorf("%v.Ortho() = %v, not orthogonal to v (dot = %v)", v, o, d)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		a, b Vector
		want float64
	}{
		{Vector{1, 0, 0}, Vector{1, 0, 0}, 0},
		{Vector{1, 0, 0}, Vector{0, 1, 0}, math.Pi / 2},
		{Vector{1, 0, 0}, Vector{-1, 0, 0}, math.Pi},
	}
	for _, test := range tests {
		if got := test.a.Angle(test.b); !float64Eq(got, test.want) {
			t.Errorf("%v.Angle(%v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func float64Eq(a, b float64) bool {
	const eps = 1e-13
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
