package blend

import "github.com/Fepozopo/stitch/internal/quadtree"

// Term is one (keypoint id, weight) pair of a sparse interp row.
type Term struct {
	ID     int32
	Weight float64
}

// InterpRow is a sparse convex combination of keypoint ids. Terms are not
// pre-merged by id; diffRow combines two rows when that is needed.
type InterpRow []Term

// weightEpsilon is the minimum corner weight retained in an interp row
// (spec: "drop weights below 1e-5").
const weightEpsilon = 1e-5

// BuildInterpRow computes the interp row for canvas pixel (x, y): itself if
// it is a keypoint, otherwise a bilinear combination of its enclosing leaf's
// four corners, redistributing the weight of any non-keypoint corner along
// the edge of the larger neighbor it hangs on.
func BuildInterpRow(qt *quadtree.Quadtree, ki *KeypointIndex, x, y int) InterpRow {
	if id, ok := ki.Lookup(x, y); ok {
		return InterpRow{{ID: id, Weight: 1}}
	}

	n, ok := qt.Find(x, y)
	if !ok {
		return nil
	}
	xl, xr, yl, yr := qt.Bounds(n)
	px, py := qt.Corners(n)
	area := float64(xr-xl) * float64(yr-yl)

	var row InterpRow
	for k := 0; k < 4; k++ {
		cx, cy := px[k], py[k]
		var dx, dy float64
		if cx == xl {
			dx = float64(xr - x)
		} else {
			dx = float64(x - xl)
		}
		if cy == yl {
			dy = float64(yr - y)
		} else {
			dy = float64(y - yl)
		}
		w := dx * dy / area
		if w < weightEpsilon {
			continue
		}
		row = appendCornerWeight(row, qt, ki, cx, cy, w)
	}
	return row
}

// appendCornerWeight distributes weight w at corner (x, y) onto one or more
// keypoint ids: directly if (x, y) is itself a keypoint, otherwise along the
// shared edge of the two cells that meet there (queried via both Find and
// FindOuter, per spec.md §4.5 step 3b).
func appendCornerWeight(row InterpRow, qt *quadtree.Quadtree, ki *KeypointIndex, x, y int, w float64) InterpRow {
	if id, ok := ki.Lookup(x, y); ok {
		return append(row, Term{ID: id, Weight: w})
	}

	cells := [2]func() (int32, bool){
		func() (int32, bool) { return qt.Find(x, y) },
		func() (int32, bool) { return qt.FindOuter(x, y) },
	}
	for _, cell := range cells {
		idx, ok := cell()
		if !ok {
			continue
		}
		xl, xr, yl, yr := qt.Bounds(idx)
		if (x == xl || x == xr) && yr > yl {
			topID, topOK := ki.Lookup(x, yl)
			botID, botOK := ki.Lookup(x, yr)
			if topOK && botOK {
				t := float64(y-yl) / float64(yr-yl)
				row = append(row, Term{ID: topID, Weight: w * (1 - t)})
				row = append(row, Term{ID: botID, Weight: w * t})
			}
		}
		if (y == yl || y == yr) && xr > xl {
			leftID, leftOK := ki.Lookup(xl, y)
			rightID, rightOK := ki.Lookup(xr, y)
			if leftOK && rightOK {
				t := float64(x-xl) / float64(xr-xl)
				row = append(row, Term{ID: leftID, Weight: w * (1 - t)})
				row = append(row, Term{ID: rightID, Weight: w * t})
			}
		}
	}
	return row
}
