package blend

import (
	"math"

	"github.com/Fepozopo/stitch/internal/quadtree"
	"github.com/Fepozopo/stitch/internal/raster"
)

// deltaRaster min-max normalises a per-pixel correction field to [0, 255]
// per channel, for the optional debug visualisation (spec.md §6).
func deltaRaster(deltaF [][3]float64, w, h int) *raster.Grid {
	var lo, hi [3]float64
	for c := 0; c < 3; c++ {
		lo[c], hi[c] = math.Inf(1), math.Inf(-1)
	}
	for _, d := range deltaF {
		for c := 0; c < 3; c++ {
			if d[c] < lo[c] {
				lo[c] = d[c]
			}
			if d[c] > hi[c] {
				hi[c] = d[c]
			}
		}
	}

	out := raster.New(h, w, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := deltaF[y*w+x]
			for c := 0; c < 3; c++ {
				span := hi[c] - lo[c]
				var v float64
				if span > 0 {
					v = 255 * (d[c] - lo[c]) / span
				}
				out.Set(y, x, c, clampRound(v))
			}
		}
	}
	return out
}

// QuadtreeRaster colorises every leaf of qt with a pseudorandom color
// derived from its bounds, for the optional debug visualisation.
func QuadtreeRaster(qt *quadtree.Quadtree, w, h int) *raster.Grid {
	out := raster.New(h, w, 3)
	qt.Traverse(func(xl, xr, yl, yr int) {
		r, g, b := leafColor(xl, yl, xr, yr)
		for y := yl; y < yr && y < h; y++ {
			for x := xl; x < xr && x < w; x++ {
				out.Set(y, x, 0, r)
				out.Set(y, x, 1, g)
				out.Set(y, x, 2, b)
			}
		}
	})
	return out
}

// leafColor derives a stable pseudorandom RGB triple from a leaf's bounds
// via simple bit mixing, so debug runs are reproducible across invocations.
func leafColor(xl, yl, xr, yr int) (r, g, b byte) {
	h := uint64(xl)*2654435761 + uint64(yl)*40503 + uint64(xr)*2246822519 + uint64(yr)*3266489917
	h ^= h >> 15
	h *= 0x85ebca6b
	h ^= h >> 13
	return byte(h), byte(h >> 8), byte(h >> 16)
}
