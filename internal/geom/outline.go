package geom

// Collector receives move/line/quad/curve/close callbacks from an
// outline provider and assembles the normalized segment sequence for one
// glyph. All incoming coordinates are divided by the face height so the
// resulting geometry has height ≈ 1 font-unit. Close is a no-op: if the
// font implies a closing segment, the outline provider is responsible
// for emitting a matching LineTo itself.
type Collector struct {
	invHeight float32
	cursor    Point
	segments  []Edge
}

// NewCollector creates a collector that normalizes by the given face
// height (in the same design units as incoming coordinates).
func NewCollector(faceHeight float32) *Collector {
	return &Collector{invHeight: 1 / faceHeight}
}

func (c *Collector) norm(x, y float32) Point {
	return Point{x * c.invHeight, y * c.invHeight}
}

// MoveTo updates the pen position without emitting a segment.
func (c *Collector) MoveTo(x, y float32) {
	c.cursor = c.norm(x, y)
}

// LineTo emits a Line segment from the current pen to (x, y).
func (c *Collector) LineTo(x, y float32) {
	end := c.norm(x, y)
	c.segments = append(c.segments, NewLine(c.cursor, end))
	c.cursor = end
}

// QuadTo emits a QuadCurve segment from the current pen through the
// control point to (x, y).
func (c *Collector) QuadTo(x1, y1, x, y float32) {
	ctrl := c.norm(x1, y1)
	end := c.norm(x, y)
	c.segments = append(c.segments, NewQuad(c.cursor, ctrl, end))
	c.cursor = end
}

// CurveTo emits a CubicCurve segment from the current pen through both
// control points to (x, y).
func (c *Collector) CurveTo(x1, y1, x2, y2, x, y float32) {
	c1 := c.norm(x1, y1)
	c2 := c.norm(x2, y2)
	end := c.norm(x, y)
	c.segments = append(c.segments, NewCubic(c.cursor, c1, c2, end))
	c.cursor = end
}

// Close emits no segment.
func (c *Collector) Close() {}

// Segments returns the collected, ordered segment sequence.
func (c *Collector) Segments() []Edge { return c.segments }
