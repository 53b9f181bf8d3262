package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fepozopo/stitch/internal/raster"
	"github.com/Fepozopo/stitch/pkg/manifest"
)

func writePNG(t *testing.T, path string, w, h int, fill func(x, y int) color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadLayerWithoutMaskIsFullyOpaque(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "a.png")
	writePNG(t, imgPath, 2, 2, func(x, y int) color.Color {
		return color.RGBA{R: 10, G: 20, B: 30, A: 255}
	})

	l, err := LoadLayer(manifest.LayerEntry{Image: imgPath, OffsetX: 3, OffsetY: 4})
	if err != nil {
		t.Fatalf("LoadLayer: %v", err)
	}
	if !l.Opaque(3, 4) {
		t.Fatalf("expected pixel at placed origin to be opaque with no mask")
	}
	if c := l.Color(3, 4, 0); c != 10 {
		t.Fatalf("expected red channel 10, got %d", c)
	}
}

func TestLoadLayerWithMaskBinarises(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "a.png")
	maskPath := filepath.Join(dir, "a_mask.png")
	writePNG(t, imgPath, 2, 1, func(x, y int) color.Color {
		return color.RGBA{R: 50, G: 50, B: 50, A: 255}
	})
	writePNG(t, maskPath, 2, 1, func(x, y int) color.Color {
		if x == 0 {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	})

	l, err := LoadLayer(manifest.LayerEntry{Image: imgPath, Mask: maskPath})
	if err != nil {
		t.Fatalf("LoadLayer: %v", err)
	}
	if !l.Opaque(0, 0) {
		t.Fatalf("expected (0,0) opaque per mask")
	}
	if l.Opaque(1, 0) {
		t.Fatalf("expected (1,0) transparent per mask")
	}
}

func TestLoadLayerRejectsMismatchedMaskSize(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "a.png")
	maskPath := filepath.Join(dir, "a_mask.png")
	writePNG(t, imgPath, 4, 4, func(x, y int) color.Color { return color.Black })
	writePNG(t, maskPath, 2, 2, func(x, y int) color.Color { return color.White })

	if _, err := LoadLayer(manifest.LayerEntry{Image: imgPath, Mask: maskPath}); err == nil {
		t.Fatalf("expected error for mismatched mask size")
	}
}

func TestSaveRasterRoundTrips(t *testing.T) {
	g := raster.New(3, 5, 3)
	g.Set(1, 2, 0, 128)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SaveRaster(path, g); err != nil {
		t.Fatalf("SaveRaster: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved raster: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved raster: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != g.W || b.Dy() != g.H {
		t.Fatalf("expected %dx%d, got %dx%d", g.W, g.H, b.Dx(), b.Dy())
	}
	if r, _, _, _ := decoded.At(b.Min.X+2, b.Min.Y+1).RGBA(); byte(r>>8) != 128 {
		t.Fatalf("expected red 128 at (2,1), got %d", byte(r>>8))
	}
}
