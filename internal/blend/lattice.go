package blend

import "github.com/Fepozopo/stitch/internal/quadtree"

// Lattice supplies the unknown count and the interp row for any canvas
// pixel, abstracting over the quadtree-reduced mode and the dense
// full-keypoints reference mode (spec.md §4.6, "Alternate dense mode").
type Lattice interface {
	Count() int
	Row(x, y int) InterpRow
}

// QuadtreeLattice is the default mode: one unknown per quadtree keypoint.
type QuadtreeLattice struct {
	qt *quadtree.Quadtree
	ki *KeypointIndex
}

func NewQuadtreeLattice(qt *quadtree.Quadtree, ki *KeypointIndex) *QuadtreeLattice {
	return &QuadtreeLattice{qt: qt, ki: ki}
}

func (l *QuadtreeLattice) Count() int { return l.ki.Count() }

func (l *QuadtreeLattice) Row(x, y int) InterpRow {
	return BuildInterpRow(l.qt, l.ki, x, y)
}

// DenseLattice is the full_keypoints reference mode: one unknown per pixel,
// row e_{i,j}. It exists to validate the quadtree path against a canvas with
// no coarsening opportunity (spec.md invariant 6).
type DenseLattice struct {
	w, h int
}

func NewDenseLattice(w, h int) *DenseLattice { return &DenseLattice{w: w, h: h} }

func (l *DenseLattice) Count() int { return l.w * l.h }

func (l *DenseLattice) Row(x, y int) InterpRow {
	return InterpRow{{ID: int32(y*l.w + x), Weight: 1}}
}
