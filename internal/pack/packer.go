// Package pack implements a 2D rectangle bin-packer. No third-party Go
// rectangle-packing library appears anywhere in the project's retrieved
// dependency corpus (the original implementation this module descends
// from relied on a Rust crate with no Go sibling), so this is a
// self-contained shelf packer, generalized from a fixed-cell-size
// allocator to arbitrary per-item widths and heights with optional
// per-item rotation.
package pack

// Item is one rectangle to place, tagged with an opaque integer ID so
// the caller can recover which input each Placement corresponds to.
type Item struct {
	ID   int
	W, H uint16
}

// Placement is where an Item landed. W and H are the placed dimensions;
// they are swapped relative to the input Item when Rotated is true.
type Placement struct {
	ID      int
	X, Y    uint16
	W, H    uint16
	Rotated bool
}

type shelf struct {
	y, height uint16
	cursorX   uint16
}

// Pack places items into a binW x binH bin. A 1-pixel gutter is
// reserved by starting the packable region at (1,1) and shrinking the
// usable area to (binW-1) x (binH-1), matching the origin convention
// the bisection driver expects. Items are placed largest-height-first
// to keep shelves tightly packed. Returns ok=false if any item cannot
// be placed.
func Pack(items []Item, binW, binH uint16, allowRotate bool) ([]Placement, bool) {
	if binW < 2 || binH < 2 {
		return nil, len(items) == 0
	}
	usableW := binW - 1
	usableH := binH - 1

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sortByHeightDesc(order, items)

	placements := make([]Placement, len(items))
	var shelves []shelf
	nextY := uint16(1)

	for _, idx := range order {
		it := items[idx]
		w, h, rotated, ok := fitOrientation(it.W, it.H, usableW, usableH, allowRotate)
		if !ok {
			return nil, false
		}

		placed := false
		for si := range shelves {
			s := &shelves[si]
			if h > s.height {
				continue
			}
			if uint32(s.cursorX)+uint32(w) > uint32(1)+uint32(usableW) {
				continue
			}
			placements[idx] = Placement{ID: it.ID, X: s.cursorX, Y: s.y, W: w, H: h, Rotated: rotated}
			s.cursorX += w
			placed = true
			break
		}
		if placed {
			continue
		}

		if uint32(nextY)+uint32(h) > uint32(1)+uint32(usableH) {
			return nil, false
		}
		if uint32(1)+uint32(w) > uint32(1)+uint32(usableW) {
			return nil, false
		}
		shelves = append(shelves, shelf{y: nextY, height: h, cursorX: 1 + w})
		placements[idx] = Placement{ID: it.ID, X: 1, Y: nextY, W: w, H: h, Rotated: rotated}
		nextY += h
		placed = true
	}

	return placements, true
}

// fitOrientation picks the un-rotated orientation if it fits; otherwise,
// if rotation is allowed, tries the swapped orientation. Reports failure
// if neither fits within the bin at all (independent of shelf state).
func fitOrientation(w, h, usableW, usableH uint16, allowRotate bool) (outW, outH uint16, rotated, ok bool) {
	if w <= usableW && h <= usableH {
		return w, h, false, true
	}
	if allowRotate && h <= usableW && w <= usableH {
		return h, w, true, true
	}
	return 0, 0, false, false
}

func sortByHeightDesc(order []int, items []Item) {
	// Simple insertion sort: item counts per glyph set are small enough
	// (charset-sized, not page-sized) that O(n^2) is not a concern here.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && items[order[j-1]].H < items[order[j]].H {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
}
