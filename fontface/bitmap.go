package fontface

// GlyphBitmap is an 8-bit coverage bitmap for a single glyph.
// Pixels are row-major, one byte per pixel, 0 = no coverage, 255 = full.
// The bitmap is tight: it covers exactly the glyph's pixel bounding box,
// with no margin. Padding borders are added downstream when glyphs are
// framed into atlas cells.
type GlyphBitmap struct {
	// Width and Height in pixels. Both zero for glyphs without ink.
	Width, Height int

	// Pix holds Width*Height coverage samples.
	Pix []byte
}

// At returns the coverage sample at (x, y).
// Out-of-bounds coordinates return 0.
func (b *GlyphBitmap) At(x, y int) byte {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// IsEmpty reports whether the bitmap has no pixels.
func (b *GlyphBitmap) IsEmpty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0
}
