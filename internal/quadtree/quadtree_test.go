package quadtree

import "testing"

// walkAllLeaves returns every leaf's bounds via Traverse.
func walkAllLeaves(qt *Quadtree) [][4]int {
	var out [][4]int
	qt.Traverse(func(xl, xr, yl, yr int) {
		out = append(out, [4]int{xl, xr, yl, yr})
	})
	return out
}

func TestSplitProducesBalancedLeaves(t *testing.T) {
	qt := New(0, 8, 0, 8)
	qt.Split(3, 3, 1)

	leaves := walkAllLeaves(qt)
	if len(leaves) < 4 {
		t.Fatalf("expected at least 4 leaves after splitting, got %d", len(leaves))
	}

	sideAt := func(x, y int) int {
		idx, ok := qt.Find(x, y)
		if !ok {
			t.Fatalf("Find(%d,%d) failed", x, y)
		}
		xl, xr, _, _ := qt.Bounds(idx)
		return xr - xl
	}

	// every horizontally adjacent pair of sampled points must have leaves whose side
	// ratio is 1, 1/2, or 2 (the 2:1 balance invariant).
	for y := 0; y < 8; y++ {
		for x := 0; x < 7; x++ {
			a, b := sideAt(x, y), sideAt(x+1, y)
			ratio := float64(a) / float64(b)
			if ratio != 0.5 && ratio != 1 && ratio != 2 {
				t.Fatalf("unbalanced neighbors at (%d,%d)-(%d,%d): sides %d,%d", x, y, x+1, y, a, b)
			}
		}
	}
}

func TestFindUnitLeafAfterSplitToOne(t *testing.T) {
	qt := New(0, 8, 0, 8)
	qt.Split(3, 3, 1)

	idx, ok := qt.Find(2, 2)
	if !ok {
		t.Fatalf("Find(2,2) failed")
	}
	xl, xr, yl, yr := qt.Bounds(idx)
	if xl != 2 || xr != 3 || yl != 2 || yr != 3 {
		t.Fatalf("expected unit leaf [2,3)x[2,3), got [%d,%d)x[%d,%d)", xl, xr, yl, yr)
	}
}

func TestFindOuterDiffersAtBoundary(t *testing.T) {
	qt := New(0, 8, 0, 8)
	qt.Split(3, 3, 1)

	fIdx, ok := qt.Find(4, 4)
	if !ok {
		t.Fatalf("Find(4,4) failed")
	}
	oIdx, ok := qt.FindOuter(4, 4)
	if !ok {
		t.Fatalf("FindOuter(4,4) failed")
	}
	if fIdx == oIdx {
		t.Fatalf("expected Find and FindOuter to return distinct leaves at a shared corner")
	}
	oxl, oxr, oyl, oyr := qt.Bounds(oIdx)
	_ = oxl
	_ = oyl
	if oxr != 4 || oyr != 4 {
		t.Fatalf("expected FindOuter leaf's bottom-right corner to be (4,4), got (%d,%d)", oxr, oyr)
	}
}

func TestIsKeypointBoundary(t *testing.T) {
	qt := New(0, 8, 0, 8)
	if !qt.IsKeypoint(0, 5) || !qt.IsKeypoint(5, 0) {
		t.Fatalf("expected canvas-boundary points to always be keypoints")
	}
}

func TestIsKeypointInteriorRequiresBalance(t *testing.T) {
	qt := New(0, 8, 0, 8)
	qt.Split(3, 3, 1)

	if !qt.IsKeypoint(4, 4) {
		t.Fatalf("expected (4,4) to be a keypoint: it is the top-left corner of Find(4,4) and the bottom-right corner of FindOuter(4,4)")
	}
}
