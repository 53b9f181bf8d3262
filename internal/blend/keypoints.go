package blend

import "github.com/Fepozopo/stitch/internal/quadtree"

// KeypointIndex assigns a dense 0-based id to every quadtree keypoint on a
// canvas, scanning row-major so ids are stable and reproducible.
type KeypointIndex struct {
	ids   map[[2]int]int32
	count int32
}

// BuildKeypointIndex scans the (w, h) canvas in row-major order and assigns
// the next id to every point where qt.IsKeypoint holds.
func BuildKeypointIndex(qt *quadtree.Quadtree, w, h int) *KeypointIndex {
	ki := &KeypointIndex{ids: make(map[[2]int]int32, w+h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if qt.IsKeypoint(x, y) {
				ki.ids[[2]int{x, y}] = ki.count
				ki.count++
			}
		}
	}
	return ki
}

// Lookup returns the id assigned to (x, y), if it is a keypoint.
func (ki *KeypointIndex) Lookup(x, y int) (int32, bool) {
	id, ok := ki.ids[[2]int{x, y}]
	return id, ok
}

// Count returns the total number of keypoints (the unknown count N_k).
func (ki *KeypointIndex) Count() int { return int(ki.count) }
