package raster

import (
	"testing"

	"github.com/gogpu/fontsdf/internal/geom"
)

func TestComputeExpandsByPadding(t *testing.T) {
	bbox := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 100, Y: 100}}
	sz := Compute(bbox, 100, 0.1, 64)

	if sz.Right <= sz.Left {
		t.Fatalf("right (%v) must exceed left (%v)", sz.Right, sz.Left)
	}
	if sz.Top <= sz.Bottom {
		t.Fatalf("top (%v) must exceed bottom (%v)", sz.Top, sz.Bottom)
	}
	if sz.PixelWidth < 1 || sz.PixelHeight < 1 {
		t.Fatalf("expected non-degenerate pixel dims, got %dx%d", sz.PixelWidth, sz.PixelHeight)
	}

	wantWidth := (sz.Right - sz.Left) * 64
	if diff := float32(sz.PixelWidth) - wantWidth; diff > 1 || diff < -1 {
		t.Errorf("pixel_width = %d, want ~%v", sz.PixelWidth, wantWidth)
	}
}

func TestComputeClampsToUint16Range(t *testing.T) {
	bbox := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1e9, Y: 1e9}}
	sz := Compute(bbox, 1, 0.1, 1e9)
	if sz.PixelWidth != 65535 || sz.PixelHeight != 65535 {
		t.Fatalf("got %dx%d, want clamped to 65535", sz.PixelWidth, sz.PixelHeight)
	}
}
