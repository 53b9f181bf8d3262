package layer

import "testing"

func solidRGB(w, h int, r, g, b byte) []byte {
	pix := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		pix[i*3+0] = r
		pix[i*3+1] = g
		pix[i*3+2] = b
	}
	return pix
}

func TestOffsetAndOpaque(t *testing.T) {
	l := New(4, 4, solidRGB(4, 4, 10, 20, 30), nil, 2, 3)

	if !l.Opaque(2, 3) {
		t.Fatalf("expected top-left placed pixel to be opaque")
	}
	if l.Opaque(0, 0) {
		t.Fatalf("expected pixel outside placement to be unmasked/absent")
	}
	if c := l.Color(2, 3, 0); c != 10 {
		t.Fatalf("expected red channel 10 at placed origin, got %d", c)
	}
	if c := l.Color(0, 0, 0); c != 255 {
		t.Fatalf("expected out-of-range color 255, got %d", c)
	}
}

func TestMaskThreshold(t *testing.T) {
	mask := []bool{true, false, false, true}
	l := New(2, 2, solidRGB(2, 2, 5, 5, 5), mask, 0, 0)

	if !l.Opaque(0, 0) {
		t.Fatalf("expected (0,0) opaque per mask")
	}
	if l.Opaque(1, 0) {
		t.Fatalf("expected (1,0) transparent per mask")
	}
}

func TestIterateRespectsMaskAndRect(t *testing.T) {
	mask := []bool{true, true, true, true}
	l := New(2, 2, solidRGB(2, 2, 1, 2, 3), mask, 1, 1)

	var visited [][2]int
	l.Iterate(0, 0, 10, 10, func(x, y int, rgb []byte) {
		visited = append(visited, [2]int{x, y})
	})
	if len(visited) != 4 {
		t.Fatalf("expected 4 opaque pixels visited, got %d", len(visited))
	}

	visited = nil
	l.Iterate(0, 0, 2, 2, func(x, y int, rgb []byte) {
		visited = append(visited, [2]int{x, y})
	})
	if len(visited) != 1 {
		t.Fatalf("expected rectangle clipping to leave 1 pixel, got %d", len(visited))
	}
}
