// Package sfntprovider is a reference [fontsdf.OutlineProvider]
// implementation backed by golang.org/x/image/font/sfnt, so fontsdf can
// be fed a real TTF/OTF file without requiring callers to write their
// own outline adapter.
package sfntprovider

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontsdf"
)

// Provider decomposes glyph outlines from a parsed sfnt.Font. All
// queries operate at a 1:1 scale (ppem == units-per-em), so returned
// coordinates and bounding boxes are in the font's own design units —
// the units [fontsdf.OutlineProvider] expects.
type Provider struct {
	font       *sfnt.Font
	buf        sfnt.Buffer
	unitsPerEm fixed.Int26_6
}

// New parses font data (TTF or OTF) and returns a Provider over it.
func New(data []byte) (*Provider, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	upm, err := f.UnitsPerEm()
	if err != nil {
		return nil, err
	}
	return &Provider{
		font:       f,
		buf:        buf,
		unitsPerEm: fixed.Int26_6(upm) * 64,
	}, nil
}

// GlyphBounds implements fontsdf.OutlineProvider.
func (p *Provider) GlyphBounds(codepoint rune) (fontsdf.GlyphBBox, float32, bool) {
	segs, ok := p.loadSegments(codepoint)
	if !ok {
		return fontsdf.GlyphBBox{}, 0, false
	}
	if len(segs) == 0 {
		return fontsdf.GlyphBBox{}, float32(p.unitsPerEm) / 64, true
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segs {
		n := segArgCount(seg.Op)
		for i := 0; i < n; i++ {
			x, y := fixedToFloat(seg.Args[i])
			minX, minY = math.Min(minX, x), math.Min(minY, y)
			maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
		}
	}
	return fontsdf.GlyphBBox{
		XMin: float32(minX), XMax: float32(maxX),
		YMin: float32(minY), YMax: float32(maxY),
	}, float32(p.unitsPerEm) / 64, true
}

// DecomposeOutline implements fontsdf.OutlineProvider.
func (p *Provider) DecomposeOutline(codepoint rune, visitor fontsdf.OutlineVisitor) bool {
	segs, ok := p.loadSegments(codepoint)
	if !ok {
		return false
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := fixedToFloat(seg.Args[0])
			visitor.MoveTo(float32(x), float32(y))
		case sfnt.SegmentOpLineTo:
			x, y := fixedToFloat(seg.Args[0])
			visitor.LineTo(float32(x), float32(y))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := fixedToFloat(seg.Args[0])
			x, y := fixedToFloat(seg.Args[1])
			visitor.QuadTo(float32(x1), float32(y1), float32(x), float32(y))
		case sfnt.SegmentOpCubeTo:
			x1, y1 := fixedToFloat(seg.Args[0])
			x2, y2 := fixedToFloat(seg.Args[1])
			x, y := fixedToFloat(seg.Args[2])
			visitor.CurveTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
		}
	}
	visitor.Close()
	return true
}

func (p *Provider) loadSegments(codepoint rune) (sfnt.Segments, bool) {
	gid, err := p.font.GlyphIndex(&p.buf, codepoint)
	if err != nil || gid == 0 {
		return nil, false
	}
	segs, err := p.font.LoadGlyph(&p.buf, gid, p.unitsPerEm, nil)
	if err != nil {
		return nil, false
	}
	return segs, true
}

func segArgCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
		return 1
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 0
	}
}

func fixedToFloat(p fixed.Point26_6) (float64, float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
