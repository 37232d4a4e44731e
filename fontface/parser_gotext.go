package fontface

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextParser implements FontParser using go-text/typesetting.
//
// It is an opt-in alternative to the default x/image backend. Glyph
// coverage is produced by extracting the glyph's outline segments and
// rasterizing them with golang.org/x/image/vector, instead of going
// through an x/image font.Face.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to parse font: %w", err)
	}
	f := face.Font

	return &gotextParsedFont{
		font: f,
		facePool: sync.Pool{
			New: func() any {
				// font.Face is NOT safe for concurrent use; font.Font is.
				// NewFace is cheap — it wraps the shared *Font.
				return font.NewFace(f)
			},
		},
	}, nil
}

// gotextParsedFont implements ParsedFont using go-text/typesetting.
type gotextParsedFont struct {
	// font is the parsed go-text font. It is read-only and safe for
	// concurrent use.
	font *font.Font

	// facePool pools font.Face instances, which carry per-face glyph
	// caches and are not concurrent-safe.
	facePool sync.Pool
}

// FamilyName implements ParsedFont.FamilyName.
func (f *gotextParsedFont) FamilyName() string {
	return f.font.Describe().Family
}

// StyleName implements ParsedFont.StyleName.
// go-text exposes parsed aspect flags rather than the raw subfamily
// string, so the common style names are reconstructed from those.
func (f *gotextParsedFont) StyleName() string {
	aspect := f.font.Describe().Aspect
	bold := aspect.Weight >= font.WeightBold
	italic := aspect.Style == font.StyleItalic

	switch {
	case bold && italic:
		return "Bold Italic"
	case bold:
		return "Bold"
	case italic:
		return "Italic"
	default:
		return "Regular"
	}
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	face := f.acquireFace()
	defer f.facePool.Put(face)

	_, ok := face.NominalGlyph(r)
	return ok
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) Metrics {
	face := f.acquireFace()
	defer f.facePool.Put(face)

	scale := f.scale(ppem)
	ext, ok := face.FontHExtents()
	if !ok {
		return Metrics{}
	}

	m := Metrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: -float64(ext.Descender) * scale, // Descender is negative (y up)
		LineGap: float64(ext.LineGap) * scale,
	}

	// go-text has no direct cap/x-height accessors; measure the
	// reference glyphs the way type tools do.
	if gm, ok := f.GlyphMetrics('H', ppem); ok {
		m.CapHeight = gm.BearingY
	}
	if gm, ok := f.GlyphMetrics('x', ppem); ok {
		m.XHeight = gm.BearingY
	}
	return m
}

// GlyphMetrics implements ParsedFont.GlyphMetrics.
func (f *gotextParsedFont) GlyphMetrics(r rune, ppem float64) (GlyphMetrics, bool) {
	face := f.acquireFace()
	defer f.facePool.Put(face)

	gid, ok := face.NominalGlyph(r)
	if !ok {
		return GlyphMetrics{}, false
	}

	scale := f.scale(ppem)
	advance := float64(face.HorizontalAdvance(gid)) * scale

	segments, ok := f.outlineSegments(face, gid)
	if !ok {
		return GlyphMetrics{}, false
	}

	box := outlinePixelBox(segments, scale)
	return GlyphMetrics{
		Width:    box.w,
		Height:   box.h,
		BearingX: float64(box.minX),
		BearingY: float64(-box.minY),
		Advance:  advance,
	}, true
}

// Rasterize implements ParsedFont.Rasterize.
// Outline segments are converted to a y-down pixel-space path and filled
// with the x/image vector rasterizer (non-zero winding).
func (f *gotextParsedFont) Rasterize(r rune, ppem float64) (*GlyphBitmap, bool) {
	face := f.acquireFace()
	defer f.facePool.Put(face)

	gid, ok := face.NominalGlyph(r)
	if !ok {
		return nil, false
	}

	segments, ok := f.outlineSegments(face, gid)
	if !ok {
		return nil, false
	}

	scale := f.scale(ppem)
	box := outlinePixelBox(segments, scale)
	if box.w <= 0 || box.h <= 0 {
		return &GlyphBitmap{}, true
	}

	rast := vector.NewRasterizer(box.w, box.h)
	open := false

	// Transform a font-unit point into the rasterizer's pixel space:
	// scale, flip y (font units grow up, pixels grow down), shift the
	// box's top-left corner onto (0, 0).
	tx := func(p font.SegmentPoint) (float32, float32) {
		x := float64(p.X)*scale - float64(box.minX)
		y := -float64(p.Y)*scale - float64(box.minY)
		return float32(x), float32(y)
	}

	for _, seg := range segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				rast.ClosePath()
			}
			x, y := tx(seg.Args[0])
			rast.MoveTo(x, y)
			open = true
		case ot.SegmentOpLineTo:
			x, y := tx(seg.Args[0])
			rast.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			rast.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			dx, dy := tx(seg.Args[2])
			rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.w, box.h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &GlyphBitmap{Width: box.w, Height: box.h, Pix: mask.Pix}, true
}

// acquireFace returns a pooled face for the shared font.
func (f *gotextParsedFont) acquireFace() *font.Face {
	return f.facePool.Get().(*font.Face)
}

// scale converts font units to pixels at the given size.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := f.font.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}

// outlineSegments returns the glyph's outline, or ok == false for glyphs
// that carry no outline data (embedded bitmaps, SVG) — those are treated
// as absent, matching the pipeline's skip semantics.
func (f *gotextParsedFont) outlineSegments(face *font.Face, gid font.GID) ([]font.Segment, bool) {
	switch data := face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		return data.Segments, true
	default:
		return nil, false
	}
}

// pixelBox is an integer pixel bounding box in y-down space.
type pixelBoxInt struct {
	minX, minY int
	w, h       int
}

// outlinePixelBox computes the pixel bounding box of scaled, y-flipped
// outline segments. Control points bound their curves, so the hull of all
// points is a safe cover. Floored min, ceiled max — the same rounding the
// x/image backend applies, keeping the two backends' cell sizes aligned.
func outlinePixelBox(segments []font.Segment, scale float64) pixelBoxInt {
	if len(segments) == 0 {
		return pixelBoxInt{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p font.SegmentPoint) {
		x := float64(p.X) * scale
		y := -float64(p.Y) * scale
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, seg := range segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo, ot.SegmentOpLineTo:
			add(seg.Args[0])
		case ot.SegmentOpQuadTo:
			add(seg.Args[0])
			add(seg.Args[1])
		case ot.SegmentOpCubeTo:
			add(seg.Args[0])
			add(seg.Args[1])
			add(seg.Args[2])
		}
	}

	fMinX := int(math.Floor(minX))
	fMinY := int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - fMinX
	h := int(math.Ceil(maxY)) - fMinY
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return pixelBoxInt{minX: fMinX, minY: fMinY, w: w, h: h}
}
