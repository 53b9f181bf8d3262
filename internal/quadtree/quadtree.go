// Package quadtree implements the balanced, power-of-two-sided spatial
// subdivision that discretises the canvas so that degrees of freedom
// concentrate near inter-layer seams.
//
// Nodes live in a flat arena indexed by int32 rather than behind owning
// pointers: splitting never invalidates an existing index, find/find-outer
// become plain iterative descents, and there is no per-node allocation.
package quadtree

// noChild marks a leaf: none of its four child slots are populated.
const noChild = -1

type node struct {
	xl, xr, yl, yr int
	// children index order matches the historical ll/lr/rl/rr naming:
	// 0 = low-x,low-y; 1 = low-x,high-y; 2 = high-x,low-y; 3 = high-x,high-y.
	children [4]int32
}

func (n *node) isLeaf() bool { return n.children[0] == noChild }
func (n *node) side() int    { return n.xr - n.xl }

// Quadtree is a single balanced quadtree over [0,R)x[0,R).
type Quadtree struct {
	nodes []node
	root  int32
}

// New creates a quadtree with one leaf spanning [xl,xr) x [yl,yr). xr-xl
// must equal yr-yl and be a power of two.
func New(xl, xr, yl, yr int) *Quadtree {
	qt := &Quadtree{nodes: make([]node, 0, 64)}
	qt.nodes = append(qt.nodes, node{xl: xl, xr: xr, yl: yl, yr: yr, children: [4]int32{noChild, noChild, noChild, noChild}})
	qt.root = 0
	return qt
}

func (qt *Quadtree) subdivide(idx int32) {
	n := qt.nodes[idx]
	xm, ym := (n.xl+n.xr)/2, (n.yl+n.yr)/2
	base := int32(len(qt.nodes))
	qt.nodes = append(qt.nodes,
		node{xl: n.xl, xr: xm, yl: n.yl, yr: ym, children: [4]int32{noChild, noChild, noChild, noChild}}, // ll
		node{xl: n.xl, xr: xm, yl: ym, yr: n.yr, children: [4]int32{noChild, noChild, noChild, noChild}}, // lr
		node{xl: xm, xr: n.xr, yl: n.yl, yr: ym, children: [4]int32{noChild, noChild, noChild, noChild}}, // rl
		node{xl: xm, xr: n.xr, yl: ym, yr: n.yr, children: [4]int32{noChild, noChild, noChild, noChild}}, // rr
	)
	qt.nodes[idx].children = [4]int32{base, base + 1, base + 2, base + 3}
}

func (qt *Quadtree) childHalfOpen(idx int32, x, y int) int32 {
	n := &qt.nodes[idx]
	xm, ym := (n.xl+n.xr)/2, (n.yl+n.yr)/2
	if x < xm {
		if y < ym {
			return n.children[0]
		}
		return n.children[1]
	}
	if y < ym {
		return n.children[2]
	}
	return n.children[3]
}

func (qt *Quadtree) childClosed(idx int32, x, y int) int32 {
	n := &qt.nodes[idx]
	xm, ym := (n.xl+n.xr)/2, (n.yl+n.yr)/2
	if x <= xm {
		if y <= ym {
			return n.children[0]
		}
		return n.children[1]
	}
	if y <= ym {
		return n.children[2]
	}
	return n.children[3]
}

// Split descends to the leaf covering (x, y) and, while its side exceeds
// targetRange, subdivides it into four children, additionally splitting
// the four outward-adjacent neighbors down to the same side length so the
// 2:1 balance invariant holds across every shared edge.
func (qt *Quadtree) Split(x, y, targetRange int) {
	now := qt.root
	for qt.nodes[now].side() > targetRange {
		if qt.nodes[now].isLeaf() {
			s := qt.nodes[now].side()
			xl, yl, xr, yr := qt.nodes[now].xl, qt.nodes[now].yl, qt.nodes[now].xr, qt.nodes[now].yr
			qt.subdivide(now)
			qt.subSplit(xl-1, yl, s)
			qt.subSplit(xl, yl-1, s)
			qt.subSplit(xr, yl, s)
			qt.subSplit(xl, yr, s)
		}
		now = qt.childHalfOpen(now, x, y)
	}
}

func (qt *Quadtree) subSplit(x, y, targetRange int) {
	n, ok := qt.Find(x, y)
	if ok && qt.nodes[n].side() > targetRange {
		qt.Split(x, y, targetRange)
	}
}

// Find returns the leaf containing (x, y) under the half-open convention
// (x < xm / y < ym routes to the lower child). ok is false when (x, y)
// lies outside the tree's domain.
func (qt *Quadtree) Find(x, y int) (idx int32, ok bool) {
	root := &qt.nodes[qt.root]
	if x < root.xl || y < root.yl || x >= root.xr || y >= root.yr {
		return 0, false
	}
	cur := qt.root
	for !qt.nodes[cur].isLeaf() {
		cur = qt.childHalfOpen(cur, x, y)
	}
	return cur, true
}

// FindOuter locates the leaf whose closed closure contains (x, y), using
// the closed convention (x <= xm / y <= ym). This deliberately returns a
// different leaf from Find when (x, y) lies exactly on a cell boundary, so
// callers can obtain the two cells meeting at a keypoint.
func (qt *Quadtree) FindOuter(x, y int) (idx int32, ok bool) {
	cur := qt.root
	for {
		n := &qt.nodes[cur]
		if n.isLeaf() {
			return cur, true
		}
		if !(n.xl <= x && x <= n.xr && n.yl <= y && y <= n.yr) {
			return 0, false
		}
		cur = qt.childClosed(cur, x, y)
	}
}

// IsKeypoint reports whether (x, y) belongs to the conforming keypoint
// lattice: either it lies on the canvas boundary, or it is simultaneously
// the top-left corner of Find(x,y) and the bottom-right corner of
// FindOuter(x,y).
func (qt *Quadtree) IsKeypoint(x, y int) bool {
	if x == 0 || y == 0 {
		return true
	}
	fi, ok := qt.Find(x, y)
	if !ok {
		return false
	}
	f := &qt.nodes[fi]
	if f.xl != x || f.yl != y {
		return false
	}
	oi, ok := qt.FindOuter(x, y)
	if !ok {
		return false
	}
	o := &qt.nodes[oi]
	return o.xr == x && o.yr == y
}

// Bounds returns the rectangle [xl,xr) x [yl,yr) of the node at idx.
func (qt *Quadtree) Bounds(idx int32) (xl, xr, yl, yr int) {
	n := &qt.nodes[idx]
	return n.xl, n.xr, n.yl, n.yr
}

// Corners returns the four corners of the node at idx in the order
// top-left, bottom-left, top-right, bottom-right (matching the historical
// P0..P3 layout): (xl,yl), (xl,yr), (xr,yl), (xr,yr).
func (qt *Quadtree) Corners(idx int32) (x [4]int, y [4]int) {
	n := &qt.nodes[idx]
	x = [4]int{n.xl, n.xl, n.xr, n.xr}
	y = [4]int{n.yl, n.yr, n.yl, n.yr}
	return
}

// Traverse visits every leaf rectangle in depth-first order.
func (qt *Quadtree) Traverse(f func(xl, xr, yl, yr int)) {
	qt.traverse(qt.root, f)
}

func (qt *Quadtree) traverse(idx int32, f func(xl, xr, yl, yr int)) {
	n := &qt.nodes[idx]
	if n.isLeaf() {
		f(n.xl, n.xr, n.yl, n.yr)
		return
	}
	for _, c := range n.children {
		qt.traverse(c, f)
	}
}

// LeafCount returns the number of leaves currently in the tree.
func (qt *Quadtree) LeafCount() int {
	count := 0
	qt.Traverse(func(int, int, int, int) { count++ })
	return count
}
