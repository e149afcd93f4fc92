package fontsdf

import "testing"

// squareProvider serves a single synthetic square glyph for every
// codepoint in its set, so tests don't need a real font file.
type squareProvider struct {
	known map[rune]bool
}

func newSquareProvider(codepoints ...rune) *squareProvider {
	known := make(map[rune]bool, len(codepoints))
	for _, r := range codepoints {
		known[r] = true
	}
	return &squareProvider{known: known}
}

func (p *squareProvider) GlyphBounds(codepoint rune) (GlyphBBox, float32, bool) {
	if !p.known[codepoint] {
		return GlyphBBox{}, 0, false
	}
	return GlyphBBox{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, 100, true
}

func (p *squareProvider) DecomposeOutline(codepoint rune, v OutlineVisitor) bool {
	if !p.known[codepoint] {
		return false
	}
	v.MoveTo(0, 0)
	v.LineTo(100, 0)
	v.LineTo(100, 100)
	v.LineTo(0, 100)
	v.LineTo(0, 0)
	v.Close()
	return true
}

func singleGlyphRequest(provider OutlineProvider, cp rune) []GlyphRequest[rune] {
	return []GlyphRequest[rune]{{UserData: cp, Provider: provider, Codepoint: cp}}
}

func TestBuildSingleGlyphFixedTexture(t *testing.T) {
	provider := newSquareProvider('A')
	builder, err := WithTextureSize(64, 64)
	if err != nil {
		t.Fatalf("WithTextureSize: %v", err)
	}
	builder.WithPaddingRatio(0.1)

	asset, err := Build(builder, singleGlyphRequest(provider, 'A'))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(asset.Metadata) != 1 {
		t.Fatalf("got %d glyphs, want 1", len(asset.Metadata))
	}
	g := asset.Metadata[0]
	if g.Codepoint != 'A' {
		t.Errorf("codepoint = %q, want 'A'", g.Codepoint)
	}
	if g.TexLeft >= g.TexRight {
		t.Errorf("tex_left (%v) must be < tex_right (%v)", g.TexLeft, g.TexRight)
	}
	if g.TexBottom >= g.TexTop {
		t.Errorf("tex_bottom (%v) must be < tex_top (%v)", g.TexBottom, g.TexTop)
	}

	stride := int(asset.Width)
	corners := []int{0, stride - 1, (int(asset.Height)-1)*stride, int(asset.Height)*stride - 1}
	for _, idx := range corners {
		if asset.Data[idx] != 0 {
			t.Errorf("corner pixel at %d = %d, want 0", idx, asset.Data[idx])
		}
	}
}

func TestBuildLatin1FixedTextureNoRotation(t *testing.T) {
	codepoints := Latin1()
	provider := newSquareProvider(codepoints...)
	builder, err := WithTextureSize(255, 255)
	if err != nil {
		t.Fatalf("WithTextureSize: %v", err)
	}
	builder.WithPaddingRatio(0.1)

	requests := make([]GlyphRequest[rune], len(codepoints))
	for i, cp := range codepoints {
		requests[i] = GlyphRequest[rune]{UserData: cp, Provider: provider, Codepoint: cp}
	}

	asset, err := Build(builder, requests)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(asset.Metadata) != len(codepoints) {
		t.Fatalf("got %d glyphs, want %d", len(asset.Metadata), len(codepoints))
	}
	for _, g := range asset.Metadata {
		if g.Rotated {
			t.Errorf("glyph %q rotated, want false (rotation disabled)", g.Codepoint)
		}
	}
}

func TestBuildFontSizeModeSquareDimensions(t *testing.T) {
	codepoints := HexDigits()
	provider := newSquareProvider(codepoints...)
	builder, err := WithFontSize(30)
	if err != nil {
		t.Fatalf("WithFontSize: %v", err)
	}
	builder.WithPaddingRatio(0.3)

	requests := make([]GlyphRequest[rune], len(codepoints))
	for i, cp := range codepoints {
		requests[i] = GlyphRequest[rune]{UserData: cp, Provider: provider, Codepoint: cp}
	}

	asset, err := Build(builder, requests)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if asset.Width != asset.Height {
		t.Fatalf("width (%d) != height (%d), want square atlas", asset.Width, asset.Height)
	}
	if asset.Width > 256 {
		t.Errorf("atlas dimension %d larger than expected for a handful of glyphs", asset.Width)
	}
}

func TestBuildMissingGlyphReturnsTypedError(t *testing.T) {
	provider := newSquareProvider('A')
	builder, err := WithTextureSize(64, 64)
	if err != nil {
		t.Fatalf("WithTextureSize: %v", err)
	}

	_, err = Build(builder, singleGlyphRequest(provider, 'Z'))
	var missing *MissingGlyphError
	if !asMissingGlyph(err, &missing) {
		t.Fatalf("Build error = %v, want *MissingGlyphError", err)
	}
	if missing.Codepoint != 'Z' {
		t.Errorf("missing codepoint = %q, want 'Z'", missing.Codepoint)
	}
}

func asMissingGlyph(err error, target **MissingGlyphError) bool {
	me, ok := err.(*MissingGlyphError)
	if !ok {
		return false
	}
	*target = me
	return true
}

func TestBuildTinyTextureSucceedsWithSmallFontSize(t *testing.T) {
	// A handful of glyphs into a very small texture: bisection must
	// still find a (possibly sub-pixel) font size that packs, never error.
	// A full Latin-1 set cannot physically fit a 2x2 texture (each
	// glyph needs at least a 1x1 gutter-inclusive cell), so this uses a
	// glyph count the smallest textures can actually hold.
	codepoints := []rune{'A', 'B', 'C'}
	provider := newSquareProvider(codepoints...)
	builder, err := WithTextureSize(4, 4)
	if err != nil {
		t.Fatalf("WithTextureSize: %v", err)
	}

	requests := make([]GlyphRequest[rune], len(codepoints))
	for i, cp := range codepoints {
		requests[i] = GlyphRequest[rune]{UserData: cp, Provider: provider, Codepoint: cp}
	}

	if _, err := Build(builder, requests); err != nil {
		t.Fatalf("Build: %v, want success with a very small font size", err)
	}
}

func TestWithTextureSizeRejectsTooSmall(t *testing.T) {
	if _, err := WithTextureSize(1, 2); err == nil {
		t.Fatal("expected ConfigError for texture width < 2")
	}
}
