package raster

import (
	"math"

	"github.com/gogpu/fontsdf/internal/geom"
)

// PackedGlyph is one glyph placed at its destination rectangle in the
// atlas, ready to rasterize. X, Y, W, H describe the packer's assigned
// rectangle including its 1-pixel gutter; W/H are already swapped
// relative to Size's pixel dimensions when Rotated is true.
type PackedGlyph struct {
	Segments []geom.Edge
	Size     Size
	X, Y     uint16
	W, H     uint16
	Rotated  bool
}

// Rasterize writes one glyph's SDF pixels into atlas, a row-major
// atlasWidth x atlasHeight byte buffer. It runs synchronously and
// touches only the rows it owns; callers must not invoke it
// concurrently for overlapping destination rectangles.
func Rasterize(atlas []byte, atlasWidth uint16, paddingRatio float32, g PackedGlyph) {
	n := len(g.Segments)
	if n == 0 || g.W < 2 || g.H < 2 {
		return
	}

	// For pixels in the outer padding band (within p of the expanded
	// bbox edge) the running nearest-distance-squared search is capped at
	// p^2: such a pixel farther than one padding width from the outline
	// is left at 0 (fully outside), so segments beyond that radius need
	// never be evaluated precisely. Other pixels search without a cap.
	capDistSq := paddingRatio * paddingRatio

	bboxDist := make([]float32, n)
	isCurve := make([]bool, n)
	for i, seg := range g.Segments {
		isCurve[i] = seg.Kind != geom.Line
	}

	left, right := g.Size.Left, g.Size.Right
	bottom, top := g.Size.Bottom, g.Size.Top
	stride := int(atlasWidth)

	interiorW := int(g.W) - 1
	interiorH := int(g.H) - 1

	for dy := 0; dy < interiorH; dy++ {
		for dx := 0; dx < interiorW; dx++ {
			nx := (float32(dx) + 0.5) / float32(interiorW)
			ny := (float32(dy) + 0.5) / float32(interiorH)
			if g.Rotated {
				nx, ny = ny, nx
			}

			x := left + nx*(right-left)
			y := bottom + ny*(top-bottom)
			point := geom.Point{X: x, Y: y}

			bestDistSq := float32(math.Inf(1))
			if x < left+paddingRatio || x > right-paddingRatio || y < bottom+paddingRatio || y > top-paddingRatio {
				bestDistSq = capDistSq
			}
			bestT := float32(0)
			bestIdx := -1
			found := false

			// Pass 1: lines resolve exactly; curves get a cheap
			// bbox-clamp lower bound plus their two endpoints.
			for i, seg := range g.Segments {
				if !isCurve[i] {
					t := seg.NearestT(point)
					if d := seg.Point(t).DistanceSq(point); d < bestDistSq {
						bestDistSq, bestT, bestIdx, found = d, t, i, true
					}
					continue
				}
				clamped := seg.Bounds.Clamp(point)
				d := clamped.DistanceSq(point)
				bboxDist[i] = d
				if d > bestDistSq {
					continue
				}
				if d0 := seg.Point(0).DistanceSq(point); d0 < bestDistSq {
					bestDistSq, bestT, bestIdx, found = d0, 0, i, true
				}
				if d1 := seg.Point(1).DistanceSq(point); d1 < bestDistSq {
					bestDistSq, bestT, bestIdx, found = d1, 1, i, true
				}
			}

			// Pass 2: refine curves whose bbox-clamp bound still beats
			// the current running best.
			for i, seg := range g.Segments {
				if !isCurve[i] || bboxDist[i] > bestDistSq {
					continue
				}
				t := seg.NearestT(point)
				if d := seg.Point(t).DistanceSq(point); d < bestDistSq {
					bestDistSq, bestT, bestIdx, found = d, t, i, true
				}
			}

			if !found {
				continue
			}

			tangent := endpointTangent(g.Segments, bestIdx, bestT)
			winPoint := g.Segments[bestIdx].Point(bestT)
			cross := tangent.X*(y-winPoint.Y) - tangent.Y*(x-winPoint.X)
			side := float32(1)
			if cross < 0 {
				side = -1
			}

			dist := float32(math.Sqrt(float64(bestDistSq))) / paddingRatio
			sdf := 0.5 - side*(dist*0.5)
			if sdf < 0 {
				sdf = 0
			} else if sdf > 1 {
				sdf = 1
			}
			value := byte(math.Round(float64(255 * sdf)))

			px := int(g.X) + dx
			py := int(g.Y) + dy
			atlas[py*stride+px] = value
		}
	}
}

// endpointTangent returns the direction to use for sign determination
// at (segments[idx], t). At a segment's own endpoints the tangent is
// blended with the neighboring segment's tangent at the matching
// endpoint, each normalized first, to avoid sign artefacts at vertices.
func endpointTangent(segments []geom.Edge, idx int, t float32) geom.Point {
	n := len(segments)
	raw := normalize(segments[idx].Direction(t))

	switch t {
	case 0:
		prev := (idx - 1 + n) % n
		return raw.Add(normalize(segments[prev].Direction(1)))
	case 1:
		next := (idx + 1) % n
		return raw.Add(normalize(segments[next].Direction(0)))
	default:
		return raw
	}
}

func normalize(p geom.Point) geom.Point {
	l := float32(math.Sqrt(float64(p.Dot(p))))
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}
