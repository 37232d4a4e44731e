// Package tmpasset models the metrics documents consumed by
// TextMeshPro-style text runtimes: the font asset (face metrics, glyph
// table, character table, atlas bookkeeping) and its sibling material
// document. Field names and nesting follow the runtime's serialized
// layout, so the emitted JSON can be consumed unmodified.
package tmpasset

import (
	"encoding/json"
	"io"
	"sort"
	"strings"
)

// Atlas render-mode values understood by the consuming runtime.
const (
	// RenderModeSDF marks a signed-distance-field atlas.
	RenderModeSDF = 4118

	// RenderModeRaster marks a plain coverage (smooth bitmap) atlas.
	RenderModeRaster = 4
)

// FaceInfo holds face-level metrics scaled to the sampling point size.
// Vertical values are in pixels above the baseline (DescentLine is
// negative, Baseline is 0).
type FaceInfo struct {
	FaceIndex              int     `json:"m_FaceIndex"`
	FamilyName             string  `json:"m_FamilyName"`
	StyleName              string  `json:"m_StyleName"`
	PointSize              int     `json:"m_PointSize"`
	Scale                  float64 `json:"m_Scale"`
	UnitsPerEM             int     `json:"m_UnitsPerEM"`
	LineHeight             float64 `json:"m_LineHeight"`
	AscentLine             float64 `json:"m_AscentLine"`
	CapLine                float64 `json:"m_CapLine"`
	MeanLine               float64 `json:"m_MeanLine"`
	Baseline               float64 `json:"m_Baseline"`
	DescentLine            float64 `json:"m_DescentLine"`
	SuperscriptOffset      float64 `json:"m_SuperscriptOffset"`
	SuperscriptSize        float64 `json:"m_SuperscriptSize"`
	SubscriptOffset        float64 `json:"m_SubscriptOffset"`
	SubscriptSize          float64 `json:"m_SubscriptSize"`
	UnderlineOffset        float64 `json:"m_UnderlineOffset"`
	UnderlineThickness     float64 `json:"m_UnderlineThickness"`
	StrikethroughOffset    float64 `json:"m_StrikethroughOffset"`
	StrikethroughThickness float64 `json:"m_StrikethroughThickness"`
	TabWidth               float64 `json:"m_TabWidth"`
}

// GlyphMetrics holds one glyph's typographic measurements in pixels at
// the face point size. HorizontalBearingY is measured from the baseline
// up to the glyph's top edge.
type GlyphMetrics struct {
	Width              float64 `json:"m_Width"`
	Height             float64 `json:"m_Height"`
	HorizontalBearingX float64 `json:"m_HorizontalBearingX"`
	HorizontalBearingY float64 `json:"m_HorizontalBearingY"`
	HorizontalAdvance  float64 `json:"m_HorizontalAdvance"`
}

// GlyphRect is a pixel rectangle in the atlas. The runtime measures Y
// from the bottom edge of the texture.
type GlyphRect struct {
	X      int `json:"m_X"`
	Y      int `json:"m_Y"`
	Width  int `json:"m_Width"`
	Height int `json:"m_Height"`
}

// Glyph is one entry of the glyph table.
type Glyph struct {
	Index               int          `json:"m_Index"`
	Metrics             GlyphMetrics `json:"m_Metrics"`
	Rect                GlyphRect    `json:"m_GlyphRect"`
	Scale               float64      `json:"m_Scale"`
	AtlasIndex          int          `json:"m_AtlasIndex"`
	ClassDefinitionType int          `json:"m_ClassDefinitionType"`
}

// Character maps a Unicode code point to its glyph table entry.
type Character struct {
	ElementType int     `json:"m_ElementType"`
	Unicode     int     `json:"m_Unicode"`
	GlyphIndex  int     `json:"m_GlyphIndex"`
	Scale       float64 `json:"m_Scale"`
}

// TextureRef is a serialized object reference placeholder. The patching
// tool that imports the asset rewires it to the real texture object.
type TextureRef struct {
	FileID int `json:"m_FileID"`
	PathID int `json:"m_PathID"`
}

// FontWeight is an entry of the (always empty) font weight table.
type FontWeight struct{}

// FontAsset is the full metrics document for one generated atlas.
type FontAsset struct {
	FaceInfo        FaceInfo     `json:"m_FaceInfo"`
	GlyphTable      []Glyph      `json:"m_GlyphTable"`
	CharacterTable  []Character  `json:"m_CharacterTable"`
	AtlasTextures   []TextureRef `json:"m_AtlasTextures"`
	AtlasWidth      int          `json:"m_AtlasWidth"`
	AtlasHeight     int          `json:"m_AtlasHeight"`
	AtlasPadding    int          `json:"m_AtlasPadding"`
	AtlasRenderMode int          `json:"m_AtlasRenderMode"`
	UsedGlyphRects  []GlyphRect  `json:"m_UsedGlyphRects"`
	FreeGlyphRects  []GlyphRect  `json:"m_FreeGlyphRects"`
	FontWeightTable []FontWeight `json:"m_FontWeightTable"`
}

// NewFontAsset creates a FontAsset with all list fields non-nil, so the
// document always serializes them as arrays.
func NewFontAsset() *FontAsset {
	return &FontAsset{
		GlyphTable:      []Glyph{},
		CharacterTable:  []Character{},
		AtlasTextures:   []TextureRef{{}},
		UsedGlyphRects:  []GlyphRect{},
		FreeGlyphRects:  []GlyphRect{},
		FontWeightTable: []FontWeight{},
	}
}

// SortTables orders the glyph table by glyph index and the character
// table by code point, both ascending. Document order is independent of
// packing order so repeated runs diff cleanly.
func (a *FontAsset) SortTables() {
	sort.SliceStable(a.GlyphTable, func(i, j int) bool {
		return a.GlyphTable[i].Index < a.GlyphTable[j].Index
	})
	sort.SliceStable(a.CharacterTable, func(i, j int) bool {
		return a.CharacterTable[i].Unicode < a.CharacterTable[j].Unicode
	})
}

// Encode writes the document as indented JSON.
func (a *FontAsset) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(a)
}

// NormalizeName strips file extensions and generated-asset suffixes from
// a font or asset name, leaving the bare family-style name the output
// artifacts are named after.
func NormalizeName(name string) string {
	for _, ext := range []string{".ttf", ".otf", ".json", ".png"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	for _, suffix := range []string{" SDF Atlas", " SDF", " Raster Atlas", " Raster"} {
		if strings.HasSuffix(name, suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
