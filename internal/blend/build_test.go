package blend

import (
	"testing"

	"github.com/Fepozopo/stitch/internal/raster"
)

func TestBuildQuadtreeForcesSeamsAndBoundaryToUnit(t *testing.T) {
	z := raster.New(4, 4, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				z.Set(y, x, 0, 1)
			} else {
				z.Set(y, x, 0, 2)
			}
		}
	}
	qt := BuildQuadtree(z, 4, 4)

	idx, ok := qt.Find(1, 0)
	if !ok {
		t.Fatalf("Find(1,0) failed")
	}
	if xl, xr, yl, yr := qt.Bounds(idx); xr-xl != 1 || yr-yl != 1 {
		t.Fatalf("expected seam pixel (1,0) forced to unit, got [%d,%d)x[%d,%d)", xl, xr, yl, yr)
	}

	idx, ok = qt.Find(3, 3)
	if !ok {
		t.Fatalf("Find(3,3) failed")
	}
	if xl, xr, yl, yr := qt.Bounds(idx); xr-xl != 1 || yr-yl != 1 {
		t.Fatalf("expected bottom-right boundary pixel forced to unit, got [%d,%d)x[%d,%d)", xl, xr, yl, yr)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 8: 8, 9: 16}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Fatalf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
