package geom

import "testing"

func TestCollectorNormalizesByHeight(t *testing.T) {
	c := NewCollector(2) // face height 2: halves all coordinates
	c.MoveTo(0, 0)
	c.LineTo(4, 2)
	c.Close()

	segs := c.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	want := Point{2, 1}
	if !pointsEqual(segs[0].End, want) {
		t.Fatalf("end = %v, want %v", segs[0].End, want)
	}
}

func TestCollectorCloseEmitsNoSegment(t *testing.T) {
	c := NewCollector(1)
	c.MoveTo(0, 0)
	c.LineTo(1, 0)
	c.Close()
	if len(c.Segments()) != 1 {
		t.Fatalf("got %d segments, want 1 (close must not emit)", len(c.Segments()))
	}
}

func TestCollectorEmitsAllSegmentKinds(t *testing.T) {
	c := NewCollector(1)
	c.MoveTo(0, 0)
	c.LineTo(1, 0)
	c.QuadTo(1.5, 1, 2, 0)
	c.CurveTo(2.2, 1, 2.8, 1, 3, 0)
	c.Close()

	segs := c.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	kinds := []Kind{Line, Quad, Cubic}
	for i, k := range kinds {
		if segs[i].Kind != k {
			t.Errorf("segment %d kind = %v, want %v", i, segs[i].Kind, k)
		}
	}
	// Consecutive segments are C0-connected.
	for i := 1; i < len(segs); i++ {
		if !pointsEqual(segs[i-1].End, segs[i].Start) {
			t.Errorf("segment %d does not connect to segment %d", i-1, i)
		}
	}
}
