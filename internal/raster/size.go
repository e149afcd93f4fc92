// Package raster computes per-glyph pixel extents and rasterizes signed
// distance field pixels into a shared atlas buffer.
package raster

import (
	"math"

	"github.com/gogpu/fontsdf/internal/geom"
)

// Size holds one glyph's destination pixel dimensions and its expanded
// bounding box in font-height units, for one font size. Earlier drafts
// of this computation also tracked an asymmetric left-padding "clamp"
// for glyphs with a flat left edge; that optimization is intentionally
// not carried forward here (see DESIGN.md).
type Size struct {
	PixelWidth, PixelHeight            uint16
	Left, Right, Top, Bottom           float32
}

// Compute derives a Size from a glyph's font-unit bounding box, the
// face height (same units), a padding ratio (fraction of face height),
// and a target font size (pixels).
func Compute(bbox geom.Rect, faceHeight, paddingRatio, fontSize float32) Size {
	rel := func(v float32) float32 { return v / faceHeight }

	left := rel(bbox.Min.X) - paddingRatio
	right := rel(bbox.Max.X) + paddingRatio
	bottom := rel(bbox.Min.Y) - paddingRatio
	top := rel(bbox.Max.Y) + paddingRatio

	width := right - left
	height := top - bottom

	return Size{
		PixelWidth:  clampPixels(width * fontSize),
		PixelHeight: clampPixels(height * fontSize),
		Left:        left,
		Right:       right,
		Top:         top,
		Bottom:      bottom,
	}
}

// clampPixels rounds half-to-even and clamps to the representable
// uint16 pixel range, per the determinism requirement that pixel-extent
// rounding never depends on platform rounding-mode defaults.
func clampPixels(v float32) uint16 {
	r := math.RoundToEven(float64(v))
	if r < 0 {
		return 0
	}
	if r > 65535 {
		return 65535
	}
	return uint16(r)
}
