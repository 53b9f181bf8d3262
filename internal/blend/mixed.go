package blend

import (
	"github.com/Fepozopo/stitch/internal/layer"
	"github.com/Fepozopo/stitch/internal/raster"
)

// BuildMixed paints layers in ascending index order into a 3-channel mixed
// raster and a 1-channel z-index raster. Z[x,y] is the 1-based index of the
// highest-index opaque layer at (x,y), or 0 where no layer covers (x,y).
func BuildMixed(layers []*layer.Layer, w, h int) (mixed *raster.Grid, z *raster.Grid) {
	mixed = raster.New(h, w, 3)
	z = raster.New(h, w, 1)
	for i, l := range layers {
		l.Iterate(0, 0, w, h, func(x, y int, rgb []byte) {
			copy(mixed.Row(y, x), rgb)
			z.Set(y, x, 0, byte(i+1))
		})
	}
	return mixed, z
}
