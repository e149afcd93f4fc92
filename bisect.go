package fontsdf

import (
	"log/slog"

	"github.com/gogpu/fontsdf/internal/pack"
	"github.com/gogpu/fontsdf/internal/raster"
)

const fontSizeAttempts = 11

// packTrial computes RasteredSize for every glyph at the given font
// size and attempts to pack the resulting rectangles into a texW x
// texH atlas, each rect padded by the packer's 1-pixel gutter.
func packTrial(work []glyphWork, fontSize float32, paddingRatio float32, texW, texH uint16, allowRotate bool) ([]raster.Size, []pack.Placement, bool) {
	sizes := make([]raster.Size, len(work))
	items := make([]pack.Item, len(work))
	for i, w := range work {
		sizes[i] = raster.Compute(w.bbox, w.faceHeight, paddingRatio, fontSize)
		items[i] = pack.Item{ID: i, W: sizes[i].PixelWidth + 1, H: sizes[i].PixelHeight + 1}
	}
	placements, ok := pack.Pack(items, texW, texH, allowRotate)
	return sizes, placements, ok
}

// bisectFontSize implements Mode A: given a fixed texture size, find
// the largest font size whose glyphs all pack into it. If the glyphs do
// not pack at font size 1, the search runs between 0 and 1 instead; it
// fails only when not even zero-size (gutter-only) glyph cells fit.
func bisectFontSize(work []glyphWork, texW, texH uint16, paddingRatio float32, allowRotate bool) (float32, []raster.Size, []pack.Placement, error) {
	lowerBound := float32(1.0)
	tooBig := float32(8) * float32(texH)

	bestSizes, bestPlacements, ok := packTrial(work, lowerBound, paddingRatio, texW, texH, allowRotate)
	if !ok {
		tooBig, lowerBound = lowerBound, 0
		bestSizes, bestPlacements, ok = packTrial(work, lowerBound, paddingRatio, texW, texH, allowRotate)
		if !ok {
			return 0, nil, nil, ErrPackingAtlasFailed
		}
	}

	for attempt := 0; attempt < fontSizeAttempts; attempt++ {
		mid := (lowerBound + tooBig) / 2
		sizes, placements, ok := packTrial(work, mid, paddingRatio, texW, texH, allowRotate)
		Logger().Debug("fontsdf: bisection trial", slog.Int("attempt", attempt), slog.Float64("font_size", float64(mid)), slog.Bool("packed", ok))
		if ok {
			lowerBound = mid
			bestSizes, bestPlacements = sizes, placements
		} else {
			tooBig = mid
		}
	}

	return lowerBound, bestSizes, bestPlacements, nil
}

// bisectTextureSize implements Mode B: given a fixed font size, find
// the smallest square texture dimension that holds all glyphs.
func bisectTextureSize(work []glyphWork, fontSize float32, paddingRatio float32, allowRotate bool) (uint16, uint16, []raster.Size, []pack.Placement, error) {
	floorSize := float32(int(fontSize))
	if floorSize < 2 {
		floorSize = 2
	} else if floorSize > 65535 {
		floorSize = 65535
	}
	tooSmall := int(floorSize) - 1

	sizes, placements, ok := packTrial(work, fontSize, paddingRatio, 65535, 65535, allowRotate)
	if !ok {
		return 0, 0, nil, nil, ErrPackingAtlasFailed
	}
	upperBound := 65535
	bestSizes, bestPlacements := sizes, placements

	for tooSmall+1 < upperBound {
		mid := tooSmall + (upperBound-tooSmall)/2
		sizes, placements, ok := packTrial(work, fontSize, paddingRatio, uint16(mid), uint16(mid), allowRotate)
		Logger().Debug("fontsdf: bisection trial", slog.Int("candidate_dim", mid), slog.Bool("packed", ok))
		if ok {
			upperBound = mid
			bestSizes, bestPlacements = sizes, placements
		} else {
			tooSmall = mid
		}
	}

	dim := uint16(upperBound)
	return dim, dim, bestSizes, bestPlacements, nil
}
