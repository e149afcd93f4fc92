package fontsdf

import (
	"log/slog"

	"github.com/gogpu/fontsdf/internal/geom"
	"github.com/gogpu/fontsdf/internal/pack"
	"github.com/gogpu/fontsdf/internal/raster"
)

// glyphWork is the per-glyph working state shared across bisection
// trials: the outline is decomposed once (it doesn't depend on font
// size, only on the provider's design-unit geometry) and reused at
// every trial size, only RasteredSize and the packed rect change.
type glyphWork struct {
	codepoint  rune
	faceHeight float32
	bbox       geom.Rect
	segments   []geom.Edge
}

// Build runs bisection, allocates the atlas, rasterizes every glyph,
// and emits per-glyph metadata. requests must be restartable: Build
// does not mutate or consume it destructively, but bisection logically
// revisits every glyph's geometry at each trial size, so requests
// should be a plain slice (or otherwise cheaply re-readable) rather
// than a single-use stream.
func Build[T any](b *FontAssetBuilder, requests []GlyphRequest[T]) (*SdfFontAsset[T], error) {
	work := make([]glyphWork, len(requests))
	for i, req := range requests {
		bbox, height, ok := req.Provider.GlyphBounds(req.Codepoint)
		if !ok {
			return nil, &MissingGlyphError{Codepoint: req.Codepoint}
		}
		collector := geom.NewCollector(height)
		if !req.Provider.DecomposeOutline(req.Codepoint, collector) {
			return nil, &MissingGlyphError{Codepoint: req.Codepoint}
		}
		work[i] = glyphWork{
			codepoint:  req.Codepoint,
			faceHeight: height,
			bbox:       geom.Rect{Min: geom.Point{X: bbox.XMin, Y: bbox.YMin}, Max: geom.Point{X: bbox.XMax, Y: bbox.YMax}},
			segments:   collector.Segments(),
		}
	}

	var (
		width, height uint16
		sizes         []raster.Size
		placements    []pack.Placement
		err           error
	)
	switch b.policy {
	case policyFontSize:
		width, height, sizes, placements, err = bisectTextureSize(work, b.fontSize, b.paddingRatio, b.allowRotate)
	default:
		_, sizes, placements, err = bisectFontSize(work, b.texWidth, b.texHeight, b.paddingRatio, b.allowRotate)
		width, height = b.texWidth, b.texHeight
	}
	if err != nil {
		return nil, err
	}

	Logger().Info("fontsdf: atlas built", slog.Int("width", int(width)), slog.Int("height", int(height)), slog.Int("glyphs", len(work)))

	data := make([]byte, int(width)*int(height))
	metadata := make([]Glyph[T], len(work))
	for _, pl := range placements {
		w := work[pl.ID]
		sz := sizes[pl.ID]
		raster.Rasterize(data, width, b.paddingRatio, raster.PackedGlyph{
			Segments: w.segments,
			Size:     sz,
			X:        pl.X,
			Y:        pl.Y,
			W:        pl.W,
			H:        pl.H,
			Rotated:  pl.Rotated,
		})

		metadata[pl.ID] = Glyph[T]{
			UserData:  requests[pl.ID].UserData,
			Codepoint: w.codepoint,
			Rotated:   pl.Rotated,
			Left:      sz.Left,
			Right:     sz.Right,
			Top:       sz.Top,
			Bottom:    sz.Bottom,
			TexLeft:   float32(pl.X) / float32(width),
			TexRight:  float32(int(pl.X)+int(sz.PixelWidth)) / float32(width),
			TexBottom: float32(pl.Y) / float32(height),
			TexTop:    float32(int(pl.Y)+int(sz.PixelHeight)) / float32(height),
		}
	}

	return &SdfFontAsset[T]{Width: width, Height: height, Data: data, Metadata: metadata}, nil
}
