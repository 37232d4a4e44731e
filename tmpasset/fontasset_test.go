package tmpasset

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFontAsset_EncodeKeys(t *testing.T) {
	asset := NewFontAsset()
	asset.FaceInfo.FamilyName = "Go"
	asset.FaceInfo.PointSize = 64
	asset.AtlasWidth = 256
	asset.AtlasHeight = 256
	asset.AtlasPadding = 4
	asset.AtlasRenderMode = RenderModeSDF
	asset.GlyphTable = append(asset.GlyphTable, Glyph{
		Index:   65,
		Metrics: GlyphMetrics{Width: 30, Height: 32, HorizontalAdvance: 33},
		Rect:    GlyphRect{X: 4, Y: 216, Width: 30, Height: 32},
		Scale:   1,
	})
	asset.CharacterTable = append(asset.CharacterTable, Character{
		ElementType: 1, Unicode: 65, GlyphIndex: 65, Scale: 1,
	})

	var buf bytes.Buffer
	if err := asset.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("re-decoding failed: %v", err)
	}

	for _, key := range []string{
		"m_FaceInfo", "m_GlyphTable", "m_CharacterTable", "m_AtlasTextures",
		"m_AtlasWidth", "m_AtlasHeight", "m_AtlasPadding", "m_AtlasRenderMode",
		"m_UsedGlyphRects", "m_FreeGlyphRects", "m_FontWeightTable",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}

	// Empty tables must serialize as arrays, not null.
	if _, ok := doc["m_FreeGlyphRects"].([]any); !ok {
		t.Errorf("m_FreeGlyphRects = %T, want array", doc["m_FreeGlyphRects"])
	}
	if _, ok := doc["m_FontWeightTable"].([]any); !ok {
		t.Errorf("m_FontWeightTable = %T, want array", doc["m_FontWeightTable"])
	}
}

func TestFontAsset_RoundTrip(t *testing.T) {
	asset := NewFontAsset()
	asset.FaceInfo.FamilyName = "Go"
	asset.FaceInfo.StyleName = "Regular"
	asset.FaceInfo.Scale = 1
	asset.AtlasRenderMode = RenderModeRaster
	asset.UsedGlyphRects = append(asset.UsedGlyphRects, GlyphRect{X: 1, Y: 2, Width: 3, Height: 4})

	var buf bytes.Buffer
	if err := asset.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded FontAsset
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if diff := cmp.Diff(*asset, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFontAsset_SortTables(t *testing.T) {
	asset := NewFontAsset()
	asset.GlyphTable = []Glyph{{Index: 90}, {Index: 65}, {Index: 66}}
	asset.CharacterTable = []Character{{Unicode: 90}, {Unicode: 65}, {Unicode: 66}}

	asset.SortTables()

	for i, want := range []int{65, 66, 90} {
		if asset.GlyphTable[i].Index != want {
			t.Errorf("glyph %d index = %d, want %d", i, asset.GlyphTable[i].Index, want)
		}
		if asset.CharacterTable[i].Unicode != want {
			t.Errorf("character %d unicode = %d, want %d", i, asset.CharacterTable[i].Unicode, want)
		}
	}
}

func TestFontAsset_EncodeDeterministic(t *testing.T) {
	build := func() []byte {
		asset := NewFontAsset()
		asset.FaceInfo.FamilyName = "Go"
		asset.GlyphTable = append(asset.GlyphTable, Glyph{Index: 65, Scale: 1})
		var buf bytes.Buffer
		if err := asset.Encode(&buf); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(build(), build()) {
		t.Error("encoding not byte-identical across runs")
	}
}

func TestMaterial_FloatPairs(t *testing.T) {
	mat := NewMaterial(5, 256, 128)

	var buf bytes.Buffer
	if err := mat.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var doc struct {
		SavedProperties struct {
			Floats [][2]any `json:"m_Floats"`
		} `json:"m_SavedProperties"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	floats := doc.SavedProperties.Floats
	if len(floats) != 3 {
		t.Fatalf("expected 3 float properties, got %d", len(floats))
	}
	if floats[0][0] != "_GradientScale" || floats[0][1].(float64) != 5 {
		t.Errorf("gradient scale pair = %v", floats[0])
	}
	if floats[1][0] != "_TextureWidth" || floats[1][1].(float64) != 256 {
		t.Errorf("texture width pair = %v", floats[1])
	}
	if floats[2][0] != "_TextureHeight" || floats[2][1].(float64) != 128 {
		t.Errorf("texture height pair = %v", floats[2])
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NanumGothic.ttf", "NanumGothic"},
		{"NanumGothic SDF", "NanumGothic"},
		{"NanumGothic SDF Atlas", "NanumGothic"},
		{"NanumGothic Raster", "NanumGothic"},
		{"NanumGothic Raster Atlas.png", "NanumGothic"},
		{"Plain Name", "Plain Name"},
		{"lower.TTF", "lower"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
