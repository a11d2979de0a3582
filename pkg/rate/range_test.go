package rate

import (
	"math"
	"testing"
)

func TestIntersect(t *testing.T) {
	a := New(60, 90)
	b := New(70, 120)

	got := a.Intersect(b)
	if got.Min != 70 || got.Max != 90 {
		t.Fatalf("expected (70,90), got (%v,%v)", got.Min, got.Max)
	}

	// Intersection is commutative.
	if rev := b.Intersect(a); rev != got {
		t.Fatalf("intersection not commutative: %v vs %v", rev, got)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := New(60, 90)
	b := New(100, 120)

	got := a.Intersect(b)
	if !got.IsEmpty() {
		t.Fatalf("expected empty result for disjoint ranges, got (%v,%v)", got.Min, got.Max)
	}
}

func TestUnboundedIsIdentity(t *testing.T) {
	u := Unbounded()
	if u.Min != 0 || !math.IsInf(float64(u.Max), 1) {
		t.Fatalf("expected (0,+Inf), got (%v,%v)", u.Min, u.Max)
	}

	r := New(48, 144)
	if got := u.Intersect(r); got != r {
		t.Fatalf("unbounded intersection changed range: got (%v,%v)", got.Min, got.Max)
	}
	if u.IsEmpty() {
		t.Fatal("unbounded range must not be empty")
	}
}

func TestIsEmptyTolerance(t *testing.T) {
	// Inverted by less than Tolerance: still satisfiable.
	if New(60.005, 60).IsEmpty() {
		t.Fatal("inversion within tolerance should not be empty")
	}
	// Inverted by more than Tolerance: empty.
	if !New(60.02, 60).IsEmpty() {
		t.Fatal("inversion beyond tolerance should be empty")
	}
	if New(60, 60).IsEmpty() {
		t.Fatal("degenerate single-point range should not be empty")
	}
}

func TestContainsTolerance(t *testing.T) {
	r := New(60, 90)

	for _, v := range []float32{60, 90, 75, 59.995, 90.005} {
		if !r.Contains(v) {
			t.Fatalf("expected %v to be contained in (60,90)", v)
		}
	}
	for _, v := range []float32{59.9, 90.1, 0, 144} {
		if r.Contains(v) {
			t.Fatalf("expected %v to be outside (60,90)", v)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	if !New(60, 90).ApproxEqual(New(60.005, 89.995)) {
		t.Fatal("bounds within tolerance should compare equal")
	}
	if New(60, 90).ApproxEqual(New(60.02, 90)) {
		t.Fatal("min beyond tolerance should not compare equal")
	}
	if !Unbounded().ApproxEqual(Unbounded()) {
		t.Fatal("unbounded ranges should compare equal")
	}
}
