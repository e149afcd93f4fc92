package fontsdf

import (
	"errors"
	"fmt"
)

// MissingGlyphError is returned when the outline provider has no glyph
// or bounding box for a requested codepoint. It is detected while the
// glyphs are prepared, before bisection starts, so it takes precedence
// over a packing failure for the same build.
type MissingGlyphError struct {
	Codepoint rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("fontsdf: missing glyph for codepoint %q", e.Codepoint)
}

// ErrPackingAtlasFailed is returned in font-size mode when even a
// 65535x65535 atlas cannot hold the requested glyphs. Reduce font size,
// reduce the glyph count, or enable rotation. In texture-size mode it is
// returned when the texture cannot hold one 1x1 gutter cell per glyph
// (the glyphs do not fit even at font size 0), for example a full
// Latin-1 set in a 2x2 texture.
var ErrPackingAtlasFailed = errors.New("fontsdf: glyphs do not fit in the atlas")

// ConfigError reports a programmer error in builder configuration
// (zero/negative font size, texture size below 2x2), detected and
// signaled synchronously at construction time rather than during build.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontsdf: invalid configuration: " + e.Reason
}
