// Package imageio decodes layer images and masks and encodes output
// rasters. Codec I/O is an "external collaborator" spec.md deliberately
// excludes from the core compositor.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "github.com/deepteams/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Fepozopo/stitch/internal/layer"
	"github.com/Fepozopo/stitch/internal/raster"
	"github.com/Fepozopo/stitch/pkg/manifest"
)

// MaskThreshold mirrors layer.MaskThreshold: a mask image's red channel
// above this value counts as opaque (spec.md §4.2).
const MaskThreshold = layer.MaskThreshold

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func rgbFromImage(img image.Image) (pix []byte, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	pix = make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pix[i+0] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
		}
	}
	return pix, w, h
}

func maskFromImage(img image.Image, w, h int) []bool {
	b := img.Bounds()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			mask[y*w+x] = byte(r>>8) > MaskThreshold
		}
	}
	return mask
}

// LoadLayer decodes entry's image (and optional mask) into an internal
// layer.Layer, binarising the mask per spec.md §4.2.
func LoadLayer(entry manifest.LayerEntry) (*layer.Layer, error) {
	img, err := decodeFile(entry.Image)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", entry.Image, err)
	}
	pix, w, h := rgbFromImage(img)

	var mask []bool
	if entry.Mask != "" {
		mimg, err := decodeFile(entry.Mask)
		if err != nil {
			return nil, fmt.Errorf("imageio: decode mask %s: %w", entry.Mask, err)
		}
		mb := mimg.Bounds()
		if mb.Dx() != w || mb.Dy() != h {
			return nil, fmt.Errorf("imageio: mask %s size %dx%d does not match image %s size %dx%d", entry.Mask, mb.Dx(), mb.Dy(), entry.Image, w, h)
		}
		mask = maskFromImage(mimg, w, h)
	}

	return layer.New(w, h, pix, mask, entry.OffsetX, entry.OffsetY), nil
}

// SaveRaster PNG-encodes a raster, grounded on the teacher's SaveImage.
func SaveRaster(path string, r *raster.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r.At(y, x, 0)
			img.Pix[i+1] = r.At(y, x, 1)
			img.Pix[i+2] = r.At(y, x, 2)
			img.Pix[i+3] = 255
		}
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}
