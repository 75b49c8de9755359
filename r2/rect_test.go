package r2

import "testing"

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Point{X: 3, Y: -1}, Point{X: 1, Y: 5})
	if r.X.Lo != 1 || r.X.Hi != 3 || r.Y.Lo != -1 || r.Y.Hi != 5 {
		t.Errorf("RectFromPoints = %v, want X:[1,3] Y:[-1,5]", r)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !EmptyRect().IsEmpty() {
		t.Errorf("EmptyRect() should be empty")
	}
	if RectFromPoints(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}).IsEmpty() {
		t.Errorf("unit rect should not be empty")
	}
}

func TestRectCenterAndVertices(t *testing.T) {
	r := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 2, Y: 4})
	if c := r.Center(); c != (Point{X: 1, Y: 2}) {
		t.Errorf("Center() = %v, want {1,2}", c)
	}
	v := r.Vertices()
	want := [4]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 4}, {X: 0, Y: 4}}
	if v != want {
		t.Errorf("Vertices() = %v, want %v", v, want)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if !r.Contains(Point{X: 5, Y: 5}) || !r.Contains(Point{X: 0, Y: 0}) {
		t.Errorf("rect should contain interior point and corner")
	}
	if r.Contains(Point{X: 11, Y: 5}) {
		t.Errorf("rect should not contain point outside its X range")
	}
	if r.InteriorContains(Point{X: 0, Y: 5}) {
		t.Errorf("rect interior should not contain a boundary point")
	}
}

func TestRectUnionIntersection(t *testing.T) {
	a := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 2, Y: 2})
	b := RectFromPoints(Point{X: 1, Y: 1}, Point{X: 3, Y: 3})
	u := a.Union(b)
	if want := (RectFromPoints(Point{X: 0, Y: 0}, Point{X: 3, Y: 3})); u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
	x := a.Intersection(b)
	if want := (RectFromPoints(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})); x != want {
		t.Errorf("Intersection = %v, want %v", x, want)
	}
	disjoint := RectFromPoints(Point{X: 5, Y: 5}, Point{X: 6, Y: 6})
	if x := a.Intersection(disjoint); !x.IsEmpty() {
		t.Errorf("Intersection of disjoint rects = %v, want empty", x)
	}
}

func TestRectExpanded(t *testing.T) {
	r := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 2, Y: 2})
	e := r.Expanded(Point{X: 1, Y: 1})
	if want := (RectFromPoints(Point{X: -1, Y: -1}, Point{X: 3, Y: 3})); e != want {
		t.Errorf("Expanded = %v, want %v", e, want)
	}
	shrunk := r.Expanded(Point{X: -5, Y: -5})
	if !shrunk.IsEmpty() {
		t.Errorf("over-shrinking should yield an empty rect, got %v", shrunk)
	}
}

func TestRectAddPoint(t *testing.T) {
	r := EmptyRect().AddPoint(Point{X: 1, Y: 1}).AddPoint(Point{X: -1, Y: 3})
	if want := (RectFromPoints(Point{X: -1, Y: 1}, Point{X: 1, Y: 3})); r != want {
		t.Errorf("AddPoint accumulation = %v, want %v", r, want)
	}
}
