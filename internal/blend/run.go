package blend

import (
	"fmt"
	"math"

	"github.com/Fepozopo/stitch/internal/layer"
	"github.com/Fepozopo/stitch/internal/quadtree"
	"github.com/Fepozopo/stitch/internal/raster"
)

// Options configures a Run.
type Options struct {
	// FullKeypoints selects the dense per-pixel reference mode instead of
	// the quadtree-reduced mode (spec.md §6, default false).
	FullKeypoints bool
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the spec's default solver configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// Result holds everything a caller may want to persist after a run.
type Result struct {
	Output    *raster.Grid
	Mixed     *raster.Grid
	Delta     *raster.Grid
	Quad      *quadtree.Quadtree // nil in full-keypoints mode
	Keypoints int
}

// Run executes the full gradient-domain compositing pipeline: mixed/z-index
// construction, quadtree seeding and keypoint assignment (or the dense
// reference lattice), normal-equations assembly, per-channel Conjugate
// Gradient solves, correction-field reconstruction, zero-mean shift, and
// clamp+round into the output raster (spec.md §4.4-§4.7).
func Run(layers []*layer.Layer, w, h int, opt Options) (*Result, error) {
	if w <= 0 || h <= 0 || len(layers) == 0 {
		return nil, ErrInvalidGeometry
	}

	mixed, z := BuildMixed(layers, w, h)

	var lat Lattice
	var qt *quadtree.Quadtree
	if opt.FullKeypoints {
		lat = NewDenseLattice(w, h)
	} else {
		qt = BuildQuadtree(z, w, h)
		ki := BuildKeypointIndex(qt, w, h)
		fmt.Printf("blend: %d keypoints over %dx%d canvas (%d leaves)\n", ki.Count(), w, h, qt.LeafCount())
		lat = NewQuadtreeLattice(qt, ki)
	}

	sys, err := AssembleSystem(lat, mixed, z, layers, w, h)
	if err != nil {
		return nil, err
	}

	tol := opt.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	maxIter := opt.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}

	deltaF := make([][3]float64, w*h)
	for c := 0; c < 3; c++ {
		x, iters, resid, serr := solveCG(sys.A, sys.B[c], tol, maxIter)
		if serr != nil {
			return nil, serr
		}
		fmt.Printf("blend: channel %d converged in %d iterations (residual %g)\n", c, iters, resid)
		for y := 0; y < h; y++ {
			for xi := 0; xi < w; xi++ {
				row := lat.Row(xi, y)
				var v float64
				for _, t := range row {
					v += t.Weight * x[t.ID]
				}
				deltaF[y*w+xi][c] = v
			}
		}
	}

	var mean [3]float64
	for _, d := range deltaF {
		for c := 0; c < 3; c++ {
			mean[c] += d[c]
		}
	}
	for c := 0; c < 3; c++ {
		mean[c] /= float64(w * h)
	}

	output := raster.New(h, w, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				v := float64(mixed.At(y, x, c)) + deltaF[y*w+x][c] - mean[c]
				output.Set(y, x, c, clampRound(v))
			}
		}
	}

	return &Result{
		Output:    output,
		Mixed:     mixed,
		Delta:     deltaRaster(deltaF, w, h),
		Quad:      qt,
		Keypoints: lat.Count(),
	}, nil
}

func clampRound(v float64) byte {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
