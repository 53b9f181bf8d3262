package raster

import "testing"

func TestClampedAccess(t *testing.T) {
	g := New(3, 4, 1)
	g.Set(0, 0, 0, 7)
	g.Set(2, 3, 0, 9)

	if v := g.At(-5, -5, 0); v != 7 {
		t.Fatalf("expected clamp to top-left corner value 7, got %d", v)
	}
	if v := g.At(50, 50, 0); v != 9 {
		t.Fatalf("expected clamp to bottom-right corner value 9, got %d", v)
	}
}

func TestBilinearMidpoint(t *testing.T) {
	g := New(2, 2, 1)
	g.Set(0, 0, 0, 0)
	g.Set(0, 1, 0, 100)
	g.Set(1, 0, 0, 0)
	g.Set(1, 1, 0, 100)

	got := g.Bilinear(0, 0.5, 0)
	if got != 50 {
		t.Fatalf("expected 50 at horizontal midpoint, got %v", got)
	}
}

func TestBilinearExactCorner(t *testing.T) {
	g := New(2, 2, 1)
	g.Set(0, 0, 0, 10)
	g.Set(0, 1, 0, 20)
	g.Set(1, 0, 0, 30)
	g.Set(1, 1, 0, 40)

	if got := g.Bilinear(1, 1, 0); got != 40 {
		t.Fatalf("expected exact corner sample 40, got %v", got)
	}
}
