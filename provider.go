package fontsdf

// GlyphBBox is a glyph's bounding box in font design units.
type GlyphBBox struct {
	XMin, XMax, YMin, YMax float32
}

// OutlineVisitor receives path callbacks in path order while an outline
// is being decomposed. Close is expected to be a no-op from the
// implementer's perspective too: if a font implies an explicit closing
// segment, the OutlineProvider must emit a matching LineTo itself before
// calling Close.
type OutlineVisitor interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x, y float32)
	CurveTo(x1, y1, x2, y2, x, y float32)
	Close()
}

// OutlineProvider is the external collaborator that answers bounding-box
// and outline-decomposition queries for a codepoint. Font-file parsing
// itself is out of scope for this module; OutlineProvider is the seam an
// integrator implements against their own font backend.
type OutlineProvider interface {
	// GlyphBounds reports the glyph's bounding box and the face height
	// scalar (same design units as the bbox), or ok=false if the face
	// has no glyph for codepoint.
	GlyphBounds(codepoint rune) (bbox GlyphBBox, faceHeight float32, ok bool)

	// DecomposeOutline replays the glyph's path into visitor in path
	// order, returning false if the face has no glyph for codepoint.
	DecomposeOutline(codepoint rune, visitor OutlineVisitor) bool
}

// GlyphRequest is one requested glyph: arbitrary caller-supplied user
// data of type T, the provider to query, and the codepoint to request.
type GlyphRequest[T any] struct {
	UserData  T
	Provider  OutlineProvider
	Codepoint rune
}
