package blend

import (
	"github.com/Fepozopo/stitch/internal/layer"
	"github.com/Fepozopo/stitch/internal/raster"
	"github.com/cpmech/gosl/la"
)

// System is the accumulated normal-equations form SᵀS x = SᵀB_c, stored as
// A = SᵀS and B[c] = SᵀB_c for the three color channels, ready to hand to
// the solver.
type System struct {
	N int
	A *sparseMatrix
	B [3][]float64
}

// colorWithout scans layers from the highest index down, skipping index zm,
// and returns the first opaque layer's sample, or 255 if none remain
// (spec.md §4.6).
func colorWithout(layers []*layer.Layer, x, y, c, zm int) float64 {
	for i := len(layers) - 1; i >= 0; i-- {
		if i == zm {
			continue
		}
		if layers[i].Opaque(x, y) {
			return float64(layers[i].Color(x, y, c))
		}
	}
	return 255
}

// AssembleSystem builds A = SᵀS and b_c = SᵀB_c by streaming each row of S
// (a per-pixel, per-axis gradient-difference constraint, plus the anchor
// row) straight into a triplet accumulator and discarding it, per spec.md
// §5's memory note.
func AssembleSystem(lat Lattice, mixed, z *raster.Grid, layers []*layer.Layer, w, h int) (*System, error) {
	n := lat.Count()
	if n == 0 {
		return nil, ErrInvalidGeometry
	}

	// Rough upper bound on triplet entries: a diff row merges two interp
	// rows of at most 8 terms each (four corners, each possibly
	// redistributed across two edge endpoints), so at most 16 distinct ids
	// per row; each row contributes up to (ids)^2 pairwise entries. Two
	// axis rows per pixel plus the anchor row.
	maxEntries := (2*w*h + 1) * 16 * 16
	trip := la.NewTriplet(n, n, maxEntries)
	var bAcc [3][]float64
	for c := range bAcc {
		bAcc[c] = make([]float64, n)
	}

	emit := func(row map[int32]float64, rhs [3]float64) {
		for u, ru := range row {
			if ru == 0 {
				continue
			}
			for v, rv := range row {
				if rv == 0 {
					continue
				}
				trip.Put(int(u), int(v), ru*rv)
			}
			for c := 0; c < 3; c++ {
				bAcc[c][u] += ru * rhs[c]
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			here := lat.Row(x, y)
			if x > 0 {
				emit(diffRow(here, lat.Row(x-1, y)), seamRHS(mixed, z, layers, x, y, x-1, y))
			}
			if y > 0 {
				emit(diffRow(here, lat.Row(x, y-1)), seamRHS(mixed, z, layers, x, y, x, y-1))
			}
		}
	}

	anchorMap := make(map[int32]float64)
	for _, t := range lat.Row(w-1, h-1) {
		anchorMap[t.ID] += t.Weight
	}
	emit(anchorMap, [3]float64{0, 0, 0})

	return &System{N: n, A: compress(trip, n), B: bAcc}, nil
}

// diffRow merges two interp rows into row(cur) - row(prev), keyed by id.
func diffRow(cur, prev InterpRow) map[int32]float64 {
	out := make(map[int32]float64, len(cur)+len(prev))
	for _, t := range cur {
		out[t.ID] += t.Weight
	}
	for _, t := range prev {
		out[t.ID] -= t.Weight
	}
	return out
}

// seamRHS computes B_c for the gradient-difference row between (x,y) and its
// predecessor (px,py): zero within a region, or the gradient-replacement
// delta g1-g0 across a seam (spec.md §4.6).
func seamRHS(mixed, z *raster.Grid, layers []*layer.Layer, x, y, px, py int) [3]float64 {
	var rhs [3]float64
	zHere := z.At(y, x, 0)
	zPrev := z.At(py, px, 0)
	if zHere == zPrev {
		return rhs
	}
	zm := int(zHere)
	if int(zPrev) > zm {
		zm = int(zPrev)
	}
	zm--
	for c := 0; c < 3; c++ {
		g0 := float64(mixed.At(y, x, c)) - float64(mixed.At(py, px, c))
		g1 := colorWithout(layers, x, y, c, zm) - colorWithout(layers, px, py, c, zm)
		rhs[c] = g1 - g0
	}
	return rhs
}
