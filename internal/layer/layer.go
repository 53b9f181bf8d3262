// Package layer implements an offset-placed source image with a binary
// mask, the unit of input the compositor's core consumes. Decoding image
// files and binarising masks is the job of external collaborators
// (pkg/imageio); Layer only owns the decoded pixels.
package layer

// Layer is a single source image with a binary mask, placed on the canvas
// at an integer offset. Higher-index layers in a stack paint later.
type Layer struct {
	w, h    int
	pix     []byte // h*w*3, RGB
	mask    []bool // h*w; nil means fully opaque
	offsetX int
	offsetY int
}

// New wraps pre-decoded RGB pixels and an optional mask. pix must have
// length h*w*3; mask, if non-nil, must have length h*w. A nil mask means
// every pixel in the image is opaque.
func New(w, h int, pix []byte, mask []bool, offsetX, offsetY int) *Layer {
	return &Layer{w: w, h: h, pix: pix, mask: mask, offsetX: offsetX, offsetY: offsetY}
}

// MaskThreshold is the byte value above which a mask image's red channel
// counts as opaque (spec: mask[*,*,0] > 128).
const MaskThreshold = 128

func (l *Layer) local(x, y int) (lx, ly int, ok bool) {
	lx, ly = x-l.offsetX, y-l.offsetY
	return lx, ly, lx >= 0 && ly >= 0 && lx < l.w && ly < l.h
}

// Opaque reports whether canvas pixel (x, y) is covered and unmasked.
func (l *Layer) Opaque(x, y int) bool {
	lx, ly, ok := l.local(x, y)
	if !ok {
		return false
	}
	if l.mask == nil {
		return true
	}
	return l.mask[ly*l.w+lx]
}

// Color returns the sample at canvas pixel (x, y) channel c, or 255 if the
// pixel lies outside this layer's placed extent.
func (l *Layer) Color(x, y, c int) byte {
	lx, ly, ok := l.local(x, y)
	if !ok {
		return 255
	}
	return l.pix[(ly*l.w+lx)*3+c]
}

// Offset returns the layer's placement on the canvas.
func (l *Layer) Offset() (x, y int) { return l.offsetX, l.offsetY }

// Bounds returns the layer's placed extent as a half-open rectangle
// [x0,x1) x [y0,y1) in canvas coordinates.
func (l *Layer) Bounds() (x0, y0, x1, y1 int) {
	return l.offsetX, l.offsetY, l.offsetX + l.w, l.offsetY + l.h
}

// Iterate visits every opaque canvas pixel inside the half-open rectangle
// [x0,x1) x [y0,y1), intersected with the layer's placed extent, calling f
// with the pixel's canvas coordinates and its RGB triple. Visit order is
// unspecified.
func (l *Layer) Iterate(x0, y0, x1, y1 int, f func(x, y int, rgb []byte)) {
	bx0, by0, bx1, by1 := l.Bounds()
	if bx0 > x0 {
		x0 = bx0
	}
	if by0 > y0 {
		y0 = by0
	}
	if bx1 < x1 {
		x1 = bx1
	}
	if by1 < y1 {
		y1 = by1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			lx, ly := x-l.offsetX, y-l.offsetY
			if l.mask != nil && !l.mask[ly*l.w+lx] {
				continue
			}
			i := (ly*l.w + lx) * 3
			f(x, y, l.pix[i:i+3])
		}
	}
}
