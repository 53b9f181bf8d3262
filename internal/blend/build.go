package blend

import (
	"github.com/Fepozopo/stitch/internal/quadtree"
	"github.com/Fepozopo/stitch/internal/raster"
)

// nextPow2 returns the smallest power of two >= n (n > 0).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BuildQuadtree seeds a balanced quadtree over [0,R)² (R = nextPow2(max(w,h)))
// by forcing every canvas-boundary cell along x=w-1 and y=h-1, and every
// pixel with a seam neighbor, down to a unit leaf (spec.md §4.3, "Boundary
// seeding").
func BuildQuadtree(z *raster.Grid, w, h int) *quadtree.Quadtree {
	r := nextPow2(maxInt(w, h))
	qt := quadtree.New(0, r, 0, r)

	for x := 0; x < w; x++ {
		qt.Split(x, h-1, 1)
	}
	for y := 0; y < h; y++ {
		qt.Split(w-1, y, 1)
	}

	zv := func(x, y int) byte { return z.At(y, x, 0) }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			here := zv(x, y)
			seam := (x > 0 && zv(x-1, y) != here) ||
				(x < w-1 && zv(x+1, y) != here) ||
				(y > 0 && zv(x, y-1) != here) ||
				(y < h-1 && zv(x, y+1) != here)
			if seam {
				qt.Split(x, y, 1)
			}
		}
	}
	return qt
}
