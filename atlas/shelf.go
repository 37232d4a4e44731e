// Package atlas packs glyph cells into a single fixed-size texture and
// composites their samples into one single-channel canvas.
package atlas

import "sort"

// Entry is one glyph cell to be packed: the glyph's padded field
// dimensions, keyed by code point.
type Entry struct {
	Rune   rune
	Width  int
	Height int
}

// Rect is a placed cell: the cell's position inside the canvas,
// top-left origin. Rects from one packing never overlap and always lie
// within canvas bounds.
type Rect struct {
	Rune   rune
	X, Y   int
	Width  int
	Height int
}

// Overlaps reports whether two rects share any pixel.
func (r Rect) Overlaps(s Rect) bool {
	return r.X < s.X+s.Width && s.X < r.X+r.Width &&
		r.Y < s.Y+s.Height && s.Y < r.Y+r.Height
}

// shelf is a horizontal strip of the canvas.
type shelf struct {
	y      int // top of the strip
	height int // height of the first (tallest) cell placed on it
	x      int // next free horizontal position
}

// ShelfPacker places cells into a fixed-size canvas using shelf packing.
//
// Cells are sorted by height descending (ties: width descending, then
// code point ascending) before placement, then placed first-fit: each
// cell goes onto the first shelf tall enough with horizontal room left,
// or onto a new shelf opened below the last one. The sort is stable and
// shelf selection has no randomness, so identical input always produces
// identical placement — atlases must be reproducible byte for byte.
type ShelfPacker struct {
	width  int
	height int
}

// NewShelfPacker creates a packer for the given canvas dimensions.
func NewShelfPacker(width, height int) *ShelfPacker {
	return &ShelfPacker{width: width, height: height}
}

// Pack places all entries. Returns the placed rects in placement order
// and true, or nil and false if the entries cannot all fit.
// Pack does not mutate entries.
func (p *ShelfPacker) Pack(entries []Entry) ([]Rect, bool) {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		if a.Width != b.Width {
			return a.Width > b.Width
		}
		return a.Rune < b.Rune
	})

	rects := make([]Rect, 0, len(ordered))
	var shelves []shelf

	for _, e := range ordered {
		if e.Width > p.width || e.Height > p.height {
			return nil, false
		}

		placed := false
		for i := range shelves {
			s := &shelves[i]
			if e.Height <= s.height && s.x+e.Width <= p.width {
				rects = append(rects, Rect{Rune: e.Rune, X: s.x, Y: s.y, Width: e.Width, Height: e.Height})
				s.x += e.Width
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		// Open a new shelf below the lowest one.
		newY := 0
		if len(shelves) > 0 {
			last := shelves[len(shelves)-1]
			newY = last.y + last.height
		}
		if newY+e.Height > p.height {
			return nil, false
		}
		shelves = append(shelves, shelf{y: newY, height: e.Height, x: e.Width})
		rects = append(rects, Rect{Rune: e.Rune, X: 0, Y: newY, Width: e.Width, Height: e.Height})
	}

	return rects, true
}

// Fits reports whether all entries would pack, without keeping the
// placement. This is the dry run the auto point-size search uses.
func (p *ShelfPacker) Fits(entries []Entry) bool {
	_, ok := p.Pack(entries)
	return ok
}
