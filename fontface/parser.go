package fontface

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// It provides the two capabilities atlas generation needs from a font:
// reporting whether a code point can be rendered, and producing an 8-bit
// coverage bitmap for it at a given sampling size.
//
// Implementations must be safe for concurrent use: glyph measurement and
// rasterization run on a worker pool with one task per code point.
type ParsedFont interface {
	// FamilyName returns the font family name.
	// Returns empty string if not available.
	FamilyName() string

	// StyleName returns the font subfamily (style) name, e.g. "Regular".
	// Returns empty string if not available.
	StyleName() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// HasGlyph reports whether the font can render the rune.
	// Runes mapped to the .notdef glyph are reported as absent.
	HasGlyph(r rune) bool

	// Metrics returns face-level metrics scaled to the given size
	// (pixels per em).
	Metrics(ppem float64) Metrics

	// GlyphMetrics returns the pixel-space measurements of a rune at the
	// given size. The reported Width and Height are exactly the dimensions
	// of the bitmap Rasterize produces for the same arguments.
	// Returns ok == false if the rune is absent from the font.
	GlyphMetrics(r rune, ppem float64) (GlyphMetrics, bool)

	// Rasterize renders the rune to a tight coverage bitmap at the given
	// size. Empty glyphs (such as spaces) yield a zero-dimension bitmap.
	// Returns ok == false if the rune is absent from the font.
	Rasterize(r rune, ppem float64) (*GlyphBitmap, bool)
}

// Metrics holds face-level metrics at a specific size.
// All values are in pixels, scaled from font units.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	// Zero if the font does not report it.
	XHeight float64

	// CapHeight is the height of uppercase letters.
	// Zero if the font does not report it.
	CapHeight float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// GlyphMetrics holds the pixel-space measurements of a single glyph.
type GlyphMetrics struct {
	// Width and Height are the dimensions of the tight pixel bounding box.
	// Both are zero for glyphs without visible ink (spaces).
	Width, Height int

	// BearingX is the horizontal distance from the pen position to the
	// left edge of the bounding box.
	BearingX float64

	// BearingY is the vertical distance from the baseline up to the top
	// edge of the bounding box.
	BearingY float64

	// Advance is the horizontal pen advance.
	Advance float64
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
