package swipe

import (
	"image/color"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(16, 16)

	red := RGB(1, 0, 0)
	pm.SetPixel(3, 5, red)

	got := pm.GetPixel(3, 5)
	if got != red {
		t.Errorf("GetPixel(3, 5) = %+v, want %+v", got, red)
	}

	// Out-of-bounds writes are dropped
	pm.SetPixel(-1, 0, red)
	pm.SetPixel(16, 0, red)
	if got := pm.GetPixel(0, 0); got.A != 0 {
		t.Errorf("GetPixel(0, 0) = %+v after out-of-bounds writes, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(2, 2, RGB(0, 1, 0))

	pm.Clear(Transparent)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := pm.GetPixel(x, y); got.A != 0 {
				t.Fatalf("pixel (%d,%d) = %+v after Clear, want transparent", x, y, got)
			}
		}
	}
}

func TestPixmapDrawImage(t *testing.T) {
	pm := NewPixmap(4, 4)

	// Set via the image/draw interface, read back via GetPixel
	pm.Set(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	got := pm.GetPixel(1, 2)
	if got.A != 1 {
		t.Fatalf("GetPixel(1, 2).A = %v, want 1", got.A)
	}
	r, _, _, _ := pm.At(1, 2).RGBA()
	if d := int(r>>8) - 10; d < -1 || d > 1 {
		t.Errorf("At(1, 2) red = %d, want ~10", r>>8)
	}

	if pm.Bounds().Dx() != 4 || pm.Bounds().Dy() != 4 {
		t.Errorf("Bounds() = %v, want 4x4", pm.Bounds())
	}
}
