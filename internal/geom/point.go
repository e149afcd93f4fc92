// Package geom implements the polynomial algebra, edge-segment, and
// outline-collection primitives that the rasterizer builds on.
package geom

// Point is a 2D coordinate or vector in font-height-normalized units.
type Point struct {
	X, Y float32
}

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float32) Point { return Point{p.X * s, p.Y * s} }

func (p Point) Dot(q Point) float32 { return p.X*q.X + p.Y*q.Y }

func (p Point) DistanceSq(q Point) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Clamp returns the point closest to p that lies within r.
func (r Rect) Clamp(p Point) Point {
	x, y := p.X, p.Y
	if x < r.Min.X {
		x = r.Min.X
	} else if x > r.Max.X {
		x = r.Max.X
	}
	if y < r.Min.Y {
		y = r.Min.Y
	} else if y > r.Max.Y {
		y = r.Max.Y
	}
	return Point{x, y}
}

// Union returns the smallest rect containing both r and q.
func (r Rect) Union(q Rect) Rect {
	return Rect{
		Min: Point{min32(r.Min.X, q.Min.X), min32(r.Min.Y, q.Min.Y)},
		Max: Point{max32(r.Max.X, q.Max.X), max32(r.Max.Y, q.Max.Y)},
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
