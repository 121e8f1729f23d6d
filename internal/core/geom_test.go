package core

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), false},
		{"apart", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), false},
		{"above", NewRect(0, 10, 5, 5), NewRect(0, 0, 5, 5), false},
	}

	for _, c := range cases {
		if got := c.a.Intersects(c.b); got != c.want {
			t.Errorf("%s: Intersects = %v, expected %v", c.name, got, c.want)
		}
		if got := c.b.Intersects(c.a); got != c.want {
			t.Errorf("%s (flipped): Intersects = %v, expected %v", c.name, got, c.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("right/bottom edges are exclusive")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -1})
	if v.X != 4 || v.Y != 1 {
		t.Errorf("Add = %+v, expected (4, 1)", v)
	}

	v = Vec2{X: 2, Y: -3}.Scale(0.5)
	if v.X != 1 || v.Y != -1.5 {
		t.Errorf("Scale = %+v, expected (1, -1.5)", v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Error("Clamp out of range")
	}
	if ClampF(0.5, 0, 1) != 0.5 || ClampF(-0.1, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF out of range")
	}
}
