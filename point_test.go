package dragon

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 7)), Vec(2, -3))
	diff(t, Pt(3, -4).Scale(3), Pt(9, -12))
	diff(t, Pt(1, 2).Weigh(Pt(3, 5), 1, 1), Pt(4, 7))
	diff(t, Pt(1, 2).Weigh(Pt(3, 5), 0, 2), Pt(6, 10))
}

func TestPointMinMax(t *testing.T) {
	p := Pt(1, 5)
	q := Pt(3, -2)
	diff(t, p.Min(q), Pt(1, -2))
	diff(t, p.Max(q), Pt(3, 5))
}

func TestPointLess(t *testing.T) {
	if !Pt(0, 9).Less(Pt(1, 0)) {
		t.Error("(0, 9) should sort before (1, 0)")
	}
	if !Pt(1, 0).Less(Pt(1, 1)) {
		t.Error("(1, 0) should sort before (1, 1)")
	}
	if Pt(1, 1).Less(Pt(1, 1)) {
		t.Error("a point must not sort before itself")
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(-1, 2).String(); s != "(-1, 2)" {
		t.Errorf("got %q, want %q", s, "(-1, 2)")
	}
}

func TestVec2(t *testing.T) {
	v := Vec(1, 2)
	o := Vec(3, -1)
	diff(t, v.Add(o), Vec(4, 1))
	diff(t, v.Sub(o), Vec(-2, 3))
	diff(t, v.Mul(-2), Vec(-2, -4))
	diff(t, v.Negate(), Vec(-1, -2))
	if d := v.Dot(o); d != 1 {
		t.Errorf("got dot product %d, want 1", d)
	}
	if c := v.Cross(o); c != -7 {
		t.Errorf("got cross product %d, want -7", c)
	}
	if h := o.Hypot2(); h != 10 {
		t.Errorf("got squared magnitude %d, want 10", h)
	}
	if !(Vec2{}).IsZero() || v.IsZero() {
		t.Error("IsZero is wrong")
	}
}
