package atlas

import (
	"math/rand"
	"testing"
)

func TestShelfPacker_Basic(t *testing.T) {
	p := NewShelfPacker(100, 100)

	rects, ok := p.Pack([]Entry{
		{Rune: 'a', Width: 20, Height: 20},
		{Rune: 'b', Width: 20, Height: 20},
	})
	if !ok {
		t.Fatal("pack failed")
	}
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	if rects[0].X != 0 || rects[0].Y != 0 {
		t.Errorf("first rect at (%d,%d), want (0,0)", rects[0].X, rects[0].Y)
	}
	if rects[1].X != 20 || rects[1].Y != 0 {
		t.Errorf("second rect at (%d,%d), want (20,0)", rects[1].X, rects[1].Y)
	}
}

func TestShelfPacker_NewShelf(t *testing.T) {
	p := NewShelfPacker(50, 100)

	rects, ok := p.Pack([]Entry{
		{Rune: 'a', Width: 20, Height: 20},
		{Rune: 'b', Width: 20, Height: 20},
		{Rune: 'c', Width: 20, Height: 20},
	})
	if !ok {
		t.Fatal("pack failed")
	}

	// Third cell does not fit on the first shelf (width 50).
	if rects[2].X != 0 || rects[2].Y != 20 {
		t.Errorf("third rect at (%d,%d), want (0,20)", rects[2].X, rects[2].Y)
	}
}

func TestShelfPacker_HeightOrder(t *testing.T) {
	p := NewShelfPacker(100, 100)

	// Given in ascending height; packer must place tallest first.
	rects, ok := p.Pack([]Entry{
		{Rune: 'a', Width: 10, Height: 10},
		{Rune: 'b', Width: 10, Height: 30},
		{Rune: 'c', Width: 10, Height: 20},
	})
	if !ok {
		t.Fatal("pack failed")
	}

	if rects[0].Rune != 'b' || rects[1].Rune != 'c' || rects[2].Rune != 'a' {
		t.Errorf("placement order %c,%c,%c, want b,c,a",
			rects[0].Rune, rects[1].Rune, rects[2].Rune)
	}
	// All fit on one shelf of height 30.
	for _, r := range rects {
		if r.Y != 0 {
			t.Errorf("rect %c on shelf y=%d, want 0", r.Rune, r.Y)
		}
	}
}

func TestShelfPacker_Overflow(t *testing.T) {
	p := NewShelfPacker(64, 64)

	var entries []Entry
	for i := 0; i < 20; i++ {
		entries = append(entries, Entry{Rune: rune('a' + i), Width: 30, Height: 30})
	}
	if _, ok := p.Pack(entries); ok {
		t.Error("expected overflow for 20 30x30 cells in 64x64")
	}
	if p.Fits(entries) {
		t.Error("Fits must agree with Pack")
	}
}

func TestShelfPacker_SingleCellTooLarge(t *testing.T) {
	p := NewShelfPacker(64, 64)
	if _, ok := p.Pack([]Entry{{Rune: 'a', Width: 65, Height: 10}}); ok {
		t.Error("expected overflow for cell wider than canvas")
	}
	if _, ok := p.Pack([]Entry{{Rune: 'a', Width: 10, Height: 65}}); ok {
		t.Error("expected overflow for cell taller than canvas")
	}
}

func TestShelfPacker_NoOverlapInBounds(t *testing.T) {
	const width, height = 256, 256
	p := NewShelfPacker(width, height)
	rng := rand.New(rand.NewSource(11))

	var entries []Entry
	for i := 0; i < 60; i++ {
		entries = append(entries, Entry{
			Rune:   rune(0x20 + i),
			Width:  1 + rng.Intn(24),
			Height: 1 + rng.Intn(24),
		})
	}

	rects, ok := p.Pack(entries)
	if !ok {
		t.Fatal("pack failed")
	}

	for i, r := range rects {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > width || r.Y+r.Height > height {
			t.Errorf("rect %c out of bounds: %+v", r.Rune, r)
		}
		for j := i + 1; j < len(rects); j++ {
			if r.Overlaps(rects[j]) {
				t.Errorf("rects %c and %c overlap: %+v / %+v",
					r.Rune, rects[j].Rune, r, rects[j])
			}
		}
	}
}

func TestShelfPacker_Deterministic(t *testing.T) {
	entries := []Entry{
		{Rune: 'x', Width: 12, Height: 17},
		{Rune: 'y', Width: 12, Height: 17},
		{Rune: 'z', Width: 30, Height: 5},
		{Rune: 'w', Width: 7, Height: 17},
	}

	a, okA := NewShelfPacker(64, 64).Pack(entries)
	b, okB := NewShelfPacker(64, 64).Pack(entries)
	if !okA || !okB {
		t.Fatal("pack failed")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("rect %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestShelfPacker_InputOrderIrrelevant(t *testing.T) {
	entries := []Entry{
		{Rune: 'a', Width: 10, Height: 12},
		{Rune: 'b', Width: 14, Height: 9},
		{Rune: 'c', Width: 6, Height: 20},
		{Rune: 'd', Width: 9, Height: 9},
	}
	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	byRune := func(rects []Rect) map[rune]Rect {
		m := make(map[rune]Rect)
		for _, r := range rects {
			m[r.Rune] = r
		}
		return m
	}

	a, _ := NewShelfPacker(64, 64).Pack(entries)
	b, _ := NewShelfPacker(64, 64).Pack(reversed)
	ma, mb := byRune(a), byRune(b)
	for k, v := range ma {
		if mb[k] != v {
			t.Errorf("rect %c differs across input orders: %+v vs %+v", k, v, mb[k])
		}
	}
}

func TestShelfPacker_DoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{Rune: 'a', Width: 1, Height: 1},
		{Rune: 'b', Width: 9, Height: 9},
	}
	_, _ = NewShelfPacker(64, 64).Pack(entries)
	if entries[0].Rune != 'a' || entries[1].Rune != 'b' {
		t.Error("Pack reordered the caller's slice")
	}
}
