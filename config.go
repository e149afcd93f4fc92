package fontsdf

type sizePolicyKind int

const (
	policyFontSize sizePolicyKind = iota
	policyTextureSize
)

// FontAssetBuilder configures one atlas build. Construct one with
// WithFontSize or WithTextureSize, optionally chain WithPaddingRatio and
// AllowRotatingGlyphs, then call Build.
type FontAssetBuilder struct {
	policy       sizePolicyKind
	fontSize     float32
	texWidth     uint16
	texHeight    uint16
	paddingRatio float32
	allowRotate  bool
}

// WithFontSize fixes the font size (in pixels of glyph height) and asks
// Build to find the smallest square atlas that holds every requested
// glyph at that size.
func WithFontSize(fontSize float32) (*FontAssetBuilder, error) {
	if fontSize <= 0 {
		return nil, &ConfigError{Reason: "font size must be positive"}
	}
	return &FontAssetBuilder{
		policy:       policyFontSize,
		fontSize:     fontSize,
		paddingRatio: 0.1,
	}, nil
}

// WithTextureSize fixes the atlas dimensions and asks Build to find the
// largest font size whose glyphs all pack into it.
func WithTextureSize(width, height uint16) (*FontAssetBuilder, error) {
	if width < 2 || height < 2 {
		return nil, &ConfigError{Reason: "texture size must be at least 2x2"}
	}
	return &FontAssetBuilder{
		policy:       policyTextureSize,
		texWidth:     width,
		texHeight:    height,
		paddingRatio: 0.1,
	}, nil
}

// WithPaddingRatio sets the SDF padding as a fraction of font height.
// Default is 0.1.
func (b *FontAssetBuilder) WithPaddingRatio(p float32) *FontAssetBuilder {
	b.paddingRatio = p
	return b
}

// AllowRotatingGlyphs permits the packer to place glyphs rotated 90°.
// Default is false.
func (b *FontAssetBuilder) AllowRotatingGlyphs() *FontAssetBuilder {
	b.allowRotate = true
	return b
}
