package dragon

import (
	"errors"
	"testing"
)

func TestBuildBase(t *testing.T) {
	diff(t, MustBuild(0), Curve{Pt(0, 0), Pt(0, 1)})
}

func TestBuildFirstFold(t *testing.T) {
	// Joining the unit segment with its reversed, right-rotated image gives
	// [(0, 0), (0, 1), (-1, 1)]; justifying moves it right by one.
	diff(t, MustBuild(1), Curve{Pt(1, 0), Pt(1, 1), Pt(0, 1)})

	base := Curve{Pt(0, 0), Pt(0, 1)}
	mirror := base.Clone().Reverse().RotateRight()
	diff(t, mirror, Curve{Pt(1, 0), Pt(0, 0)})
	diff(t, base.Join(mirror).Justify(), MustBuild(1))
}

func TestBuildSecondFold(t *testing.T) {
	diff(t, MustBuild(2), Curve{Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 0), Pt(0, 0)})
}

func TestBuildLen(t *testing.T) {
	prev := 0
	for order := 0; order <= 12; order++ {
		c := MustBuild(order)
		if order == 0 {
			if len(c) != 2 {
				t.Fatalf("order 0 has %d points, want 2", len(c))
			}
		} else if want := 2*prev - 1; len(c) != want {
			t.Errorf("order %d has %d points, want %d", order, len(c), want)
		}
		if len(c) != Len(order) {
			t.Errorf("order %d has %d points, but Len reports %d", order, len(c), Len(order))
		}
		prev = len(c)
	}
}

func TestBuildJustified(t *testing.T) {
	for order := 0; order <= 10; order++ {
		diff(t, MustBuild(order).TopLeft(), Pt(0, 0))
	}
}

func TestBuildUnitSteps(t *testing.T) {
	for order := 0; order <= 10; order++ {
		for seg := range MustBuild(order).Segments() {
			if l := seg.Vec().Hypot2(); l != 1 {
				t.Fatalf("order %d: segment %v has squared length %d, want 1", order, seg, l)
			}
		}
	}
}

// The turns of the dragon curve follow the regular paper-folding sequence:
// write k = 2ᵐ·q with q odd, then turn k is a left turn if q ≡ 1 (mod 4)
// and a right turn otherwise.
func TestBuildPaperFolding(t *testing.T) {
	for order := 1; order <= 10; order++ {
		k := 1
		for turn := range MustBuild(order).Turns() {
			q := k
			for q%2 == 0 {
				q /= 2
			}
			want := Right
			if q%4 == 1 {
				want = Left
			}
			if turn != want {
				t.Fatalf("order %d: turn %d is %v, want %v", order, k, turn, want)
			}
			k++
		}
		if want := Len(order) - 2; k-1 != want {
			t.Errorf("order %d: got %d turns, want %d", order, k-1, want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(-1); !errors.Is(err, ErrNegativeOrder) {
		t.Errorf("got error %v, want %v", err, ErrNegativeOrder)
	}
	if _, err := Build(MaxOrder + 1); !errors.Is(err, ErrOrderTooLarge) {
		t.Errorf("got error %v, want %v", err, ErrOrderTooLarge)
	}
	expectPanic(t, ErrOrderTooLarge, func() { MustBuild(MaxOrder + 1) })
}

func BenchmarkBuild(b *testing.B) {
	for range b.N {
		MustBuild(16)
	}
}
