// Package fontsdf generates single-channel signed distance field (SDF)
// font atlases for GPU text rendering.
//
// Given a set of requested glyphs and an [OutlineProvider] that can
// decompose each one into line/quadratic/cubic outline segments, Build
// computes per-pixel signed distances via closed-form polynomial
// algebra and Newton's-method curve-nearest-point refinement, packs the
// glyphs into a texture atlas, and returns a grayscale pixel buffer plus
// per-glyph metadata suitable for driving a GPU shader:
//
//	atlasCoord := (texLeft + u*(texRight-texLeft), texBottom + v*(texTop-texBottom))
//	sdf := texture.Sample(atlasCoord).r
//	coverage := smoothstep(0.5 - aaWidth, 0.5 + aaWidth, sdf)
//
// Font-file parsing, rectangle bin-packing (beyond this module's own
// internal packer), image encoding, and GPU rendering itself are all
// external collaborators' responsibilities; this package only produces
// the atlas bytes and metadata. See the providers/sfntprovider
// subpackage for one concrete OutlineProvider backed by
// golang.org/x/image/font/sfnt.
//
// Build is single-threaded and synchronous: one call either returns a
// complete atlas or a single error, with no shared state surviving
// between calls.
package fontsdf
