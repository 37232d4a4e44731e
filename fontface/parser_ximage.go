package fontface

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Font is read-only and safe for concurrent use as long as each
// operation gets its own sfnt.Buffer, which is how every method below is
// written. Faces are created per call: opentype.Face is not safe for
// concurrent use, and face creation is cheap next to rasterization.
type ximageParsedFont struct {
	font *sfnt.Font
}

// FamilyName implements ParsedFont.FamilyName.
func (f *ximageParsedFont) FamilyName() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// StyleName implements ParsedFont.StyleName.
func (f *ximageParsedFont) StyleName() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDSubfamily); err == nil && name != "" {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// HasGlyph implements ParsedFont.HasGlyph.
// Index 0 is .notdef, which counts as absent.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer

	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat64(m.Height) - ascent - descent,
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// GlyphMetrics implements ParsedFont.GlyphMetrics.
func (f *ximageParsedFont) GlyphMetrics(r rune, ppem float64) (GlyphMetrics, bool) {
	if !f.HasGlyph(r) {
		return GlyphMetrics{}, false
	}

	face, err := f.newFace(ppem)
	if err != nil {
		return GlyphMetrics{}, false
	}
	defer closeFace(face)

	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return GlyphMetrics{}, false
	}

	minX, minY, w, h := pixelBox(bounds)
	return GlyphMetrics{
		Width:    w,
		Height:   h,
		BearingX: float64(minX),
		BearingY: float64(-minY),
		Advance:  fixedToFloat64(advance),
	}, true
}

// Rasterize implements ParsedFont.Rasterize.
// The glyph is drawn into a tight alpha mask whose dimensions match
// GlyphMetrics for the same rune and size.
func (f *ximageParsedFont) Rasterize(r rune, ppem float64) (*GlyphBitmap, bool) {
	if !f.HasGlyph(r) {
		return nil, false
	}

	face, err := f.newFace(ppem)
	if err != nil {
		return nil, false
	}
	defer closeFace(face)

	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return nil, false
	}

	minX, minY, w, h := pixelBox(bounds)
	if w <= 0 || h <= 0 {
		// No ink (space, zero-width joiner, ...).
		return &GlyphBitmap{}, true
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		// Shift the pen so the glyph box's top-left lands on (0, 0).
		Dot: fixed.Point26_6{X: -fixed.I(minX), Y: -fixed.I(minY)},
	}
	drawer.DrawString(string(r))

	return &GlyphBitmap{Width: w, Height: h, Pix: mask.Pix}, true
}

// newFace creates a rendering face at the given size.
func (f *ximageParsedFont) newFace(ppem float64) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func closeFace(face font.Face) {
	_ = face.Close()
}

// pixelBox converts fixed-point glyph bounds to an integer pixel box.
// Floors the minimum and ceils the maximum, so ink is never clipped.
func pixelBox(bounds fixed.Rectangle26_6) (minX, minY, w, h int) {
	minX = bounds.Min.X.Floor()
	minY = bounds.Min.Y.Floor()
	w = bounds.Max.X.Ceil() - minX
	h = bounds.Max.Y.Ceil() - minY
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts float64 to fixed.Int26_6.
func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}
