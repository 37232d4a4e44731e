// Package sdfatlas generates signed-distance-field font atlases and the
// TextMeshPro-compatible metrics documents that describe them.
//
// A run takes a parsed font, a character set and a Config, rasterizes
// every glyph at a sampling point size (fixed or discovered by binary
// search), converts each coverage mask to a distance field, packs the
// tiles into a single-channel atlas with a shelf packer, and produces
// three artifacts: the atlas PNG (field in the alpha channel), the font
// asset JSON and the sibling material JSON.
//
// The minimal flow:
//
//	src, err := fontface.NewFontSourceFromFile("NanumGothic.ttf")
//	if err != nil { ... }
//	runes, err := sdfatlas.ResolveCharset("charlist.txt")
//	if err != nil { ... }
//	res, err := sdfatlas.Generate(src, runes, sdfatlas.DefaultConfig())
//	if err != nil { ... }
//	_, err = res.WriteFiles(".", src.FamilyName())
//
// Generation is deterministic: the same font, charset and Config produce
// byte-identical artifacts.
package sdfatlas
