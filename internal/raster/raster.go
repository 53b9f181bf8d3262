// Package raster implements the pixel grid the compositor reads and writes:
// a contiguous byte buffer addressed as (row, col, channel) with
// bounds-clamped access and bilinear sampling.
package raster

import "math"

// Grid is a height x width x channels byte buffer. Indexing clamps to the
// valid range so sampling near the border is always well-defined.
type Grid struct {
	H, W, C int
	Pix     []byte
}

// New allocates a zeroed grid of the given shape.
func New(h, w, c int) *Grid {
	return &Grid{H: h, W: w, C: c, Pix: make([]byte, h*w*c)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// offset returns the buffer index of the first channel at (row, col),
// clamping both coordinates into range first.
func (g *Grid) offset(row, col int) int {
	row = clampInt(row, 0, g.H-1)
	col = clampInt(col, 0, g.W-1)
	return (row*g.W + col) * g.C
}

// At returns the clamped sample at (row, col, ch).
func (g *Grid) At(row, col, ch int) byte {
	return g.Pix[g.offset(row, col)+ch]
}

// Set writes a sample at (row, col, ch). Coordinates are clamped, so writes
// outside the grid land on the border rather than panicking.
func (g *Grid) Set(row, col, ch int, v byte) {
	g.Pix[g.offset(row, col)+ch] = v
}

// Row returns a slice over all channels at (row, col), clamped.
func (g *Grid) Row(row, col int) []byte {
	o := g.offset(row, col)
	return g.Pix[o : o+g.C]
}

// Bilinear samples the grid at fractional coordinates (row, col) for
// channel ch, clamping corner lookups to the grid border.
func (g *Grid) Bilinear(row, col float64, ch int) float64 {
	fr, fc := int(math.Floor(row)), int(math.Floor(col))
	cr, cc := fr+1, fc+1
	dy := row - float64(fr)
	dx := col - float64(fc)

	p00 := float64(g.At(fr, fc, ch))
	p10 := float64(g.At(fr, cc, ch))
	p01 := float64(g.At(cr, fc, ch))
	p11 := float64(g.At(cr, cc, ch))

	top := (1-dx)*p00 + dx*p10
	bot := (1-dx)*p01 + dx*p11
	return (1-dy)*top + dy*bot
}
