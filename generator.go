package sdfatlas

import (
	"log/slog"

	"github.com/glyphtools/sdfatlas/atlas"
	"github.com/glyphtools/sdfatlas/fontface"
	"github.com/glyphtools/sdfatlas/internal/parallel"
	"github.com/glyphtools/sdfatlas/sdf"
	"github.com/glyphtools/sdfatlas/tmpasset"
)

// Result holds the in-memory artifacts of one generation run. Nothing is
// written to disk until WriteFiles.
type Result struct {
	// Asset is the font metrics document.
	Asset *tmpasset.FontAsset

	// Material is the sibling material document.
	Material *tmpasset.Material

	// Atlas is the composited single-channel atlas.
	Atlas *atlas.Canvas

	// PointSize is the sampling size the run converged on. Equal to the
	// configured size when one was given, otherwise the largest size the
	// automatic search found.
	PointSize int

	// Skipped lists the charset code points the font has no glyph for,
	// in charset order.
	Skipped []rune
}

// measuredGlyph is one charset code point's measurements at a candidate
// sampling size.
type measuredGlyph struct {
	r       rune
	ok      bool
	metrics fontface.GlyphMetrics
}

// Generate runs the full pipeline: measure the charset at the sampling
// size (searching for one if cfg.PointSize is zero), pack the padded
// cells, rasterize and transform every glyph in parallel, composite the
// atlas and assemble the metrics documents.
//
// Code points the font cannot render are collected in Result.Skipped and
// never fail the run. A charset that cannot be packed returns an
// *OverflowError; in automatic mode that means it does not fit even at
// the minimum sampling size.
func Generate(src *fontface.FontSource, runes []rune, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clamped()
	if len(runes) == 0 {
		return nil, ErrEmptyCharset
	}

	parsed := src.Parsed()
	pool := parallel.NewWorkerPool(cfg.Workers)
	defer pool.Close()

	log := Logger()
	packer := atlas.NewShelfPacker(cfg.AtlasWidth, cfg.AtlasHeight)

	size := cfg.PointSize
	if size == 0 {
		size = searchPointSize(parsed, runes, cfg, packer, pool, log)
		if size == 0 {
			return nil, &OverflowError{
				PointSize:   MinPointSize,
				AtlasWidth:  cfg.AtlasWidth,
				AtlasHeight: cfg.AtlasHeight,
				GlyphCount:  len(runes),
			}
		}
		log.Info("auto point size selected", slog.Int("pointSize", size))
	}

	measured, cells, skipped := measureGlyphs(parsed, runes, size, cfg.Padding, pool)
	if len(skipped) > 0 {
		log.Warn("code points absent from font", slog.Int("count", len(skipped)))
	}
	if len(cells) == 0 {
		return nil, ErrEmptyCharset
	}

	rects, ok := packer.Pack(cells)
	if !ok {
		return nil, &OverflowError{
			PointSize:   size,
			AtlasWidth:  cfg.AtlasWidth,
			AtlasHeight: cfg.AtlasHeight,
			GlyphCount:  len(cells),
		}
	}

	byRune := make(map[rune]measuredGlyph, len(measured))
	for _, m := range measured {
		if m.ok {
			byRune[m.r] = m
		}
	}

	// Rasterize and transform each cell in parallel, then composite
	// single-threaded after the barrier.
	tiles := renderTiles(parsed, rects, byRune, size, cfg, pool)

	canvas := atlas.NewCanvas(cfg.AtlasWidth, cfg.AtlasHeight)
	for i, rect := range rects {
		if tiles[i] != nil {
			canvas.Blit(tiles[i], rect)
		}
	}

	asset := assembleAsset(parsed, rects, byRune, size, cfg)
	// FontSource supplies the name-table fallbacks ("Unknown Font",
	// "Regular") for fonts with unusable name records.
	asset.FaceInfo.FamilyName = src.FamilyName()
	asset.FaceInfo.StyleName = src.StyleName()
	gradientScale := 1.0
	if cfg.Mode == ModeSDF {
		gradientScale = float64(cfg.Padding + 1)
	}
	material := tmpasset.NewMaterial(gradientScale, cfg.AtlasWidth, cfg.AtlasHeight)

	log.Info("atlas generated",
		slog.Int("pointSize", size),
		slog.Int("atlasWidth", cfg.AtlasWidth),
		slog.Int("atlasHeight", cfg.AtlasHeight),
		slog.Int("glyphs", len(asset.GlyphTable)),
		slog.Int("skipped", len(skipped)),
		slog.String("mode", cfg.Mode.String()))

	return &Result{
		Asset:     asset,
		Material:  material,
		Atlas:     canvas,
		PointSize: size,
		Skipped:   skipped,
	}, nil
}

// searchPointSize binary-searches [MinPointSize, MaxPointSize] for the
// largest sampling size at which the charset still packs. Packing room
// shrinks monotonically with size, so the predicate partitions the range.
// Feasibility needs only glyph dimensions, so candidates are probed with
// measurement and a dry-run pack; rasterization happens once, after the
// search converges. Returns 0 when even MinPointSize overflows.
func searchPointSize(parsed fontface.ParsedFont, runes []rune, cfg Config, packer *atlas.ShelfPacker, pool *parallel.WorkerPool, log *slog.Logger) int {
	lo, hi := MinPointSize, MaxPointSize
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		_, cells, _ := measureGlyphs(parsed, runes, mid, cfg.Padding, pool)
		if len(cells) > 0 && packer.Fits(cells) {
			log.Debug("point size candidate fits", slog.Int("pointSize", mid))
			best = mid
			lo = mid + 1
		} else {
			log.Debug("point size candidate overflows", slog.Int("pointSize", mid))
			hi = mid - 1
		}
	}
	return best
}

// measureGlyphs measures every charset code point at the sampling size,
// one pool task per code point, and derives the packer cells: glyph
// bounding box plus padding on every side, or a 1x1 cell for glyphs
// without ink. Code points absent from the font become skipped, not
// cells.
func measureGlyphs(parsed fontface.ParsedFont, runes []rune, size, padding int, pool *parallel.WorkerPool) ([]measuredGlyph, []atlas.Entry, []rune) {
	measured := make([]measuredGlyph, len(runes))
	ppem := float64(size)
	pool.ForEach(len(runes), func(i int) {
		gm, ok := parsed.GlyphMetrics(runes[i], ppem)
		measured[i] = measuredGlyph{r: runes[i], ok: ok, metrics: gm}
	})

	cells := make([]atlas.Entry, 0, len(runes))
	var skipped []rune
	for _, m := range measured {
		if !m.ok {
			skipped = append(skipped, m.r)
			continue
		}
		w, h := 1, 1
		if m.metrics.Width > 0 && m.metrics.Height > 0 {
			w = m.metrics.Width + 2*padding
			h = m.metrics.Height + 2*padding
		}
		cells = append(cells, atlas.Entry{Rune: m.r, Width: w, Height: h})
	}
	return measured, cells, skipped
}

// renderTiles rasterizes each placed glyph and applies the render-mode
// transform, one pool task per cell. The returned slice is indexed like
// rects; cells for inkless glyphs stay nil.
func renderTiles(parsed fontface.ParsedFont, rects []atlas.Rect, byRune map[rune]measuredGlyph, size int, cfg Config, pool *parallel.WorkerPool) [][]byte {
	tiles := make([][]byte, len(rects))
	tr := cfg.Mode.transform(cfg.Padding)
	ppem := float64(size)
	pad := cfg.Padding

	pool.ForEach(len(rects), func(i int) {
		rect := rects[i]
		m := byRune[rect.Rune]
		if m.metrics.Width <= 0 || m.metrics.Height <= 0 {
			return
		}
		bm, ok := parsed.Rasterize(rect.Rune, ppem)
		if !ok || bm.IsEmpty() {
			return
		}

		// Center the ink in its cell: a pad-pixel zero border on every
		// side, clipped in case the raster came out larger than measured.
		tile := make([]byte, rect.Width*rect.Height)
		copyW := min(bm.Width, rect.Width-pad)
		copyH := min(bm.Height, rect.Height-pad)
		for y := 0; y < copyH; y++ {
			dst := (y+pad)*rect.Width + pad
			src := y * bm.Width
			copy(tile[dst:dst+copyW], bm.Pix[src:src+copyW])
		}
		tiles[i] = tr.Apply(tile, rect.Width, rect.Height)
	})
	return tiles
}

// transform returns the field transform for the mode. In SDF mode the
// spread equals the cell padding, so the field fades to zero exactly at
// the cell edge.
func (m RenderMode) transform(padding int) sdf.Transform {
	if m == ModeRaster {
		return sdf.CoverageTransform{}
	}
	return sdf.DistanceTransform{Spread: padding}
}

// assembleAsset builds the font metrics document from the placed cells.
// Glyph rects use the runtime's bottom-origin convention; used-rect
// bookkeeping keeps the packer's top-origin coordinates.
func assembleAsset(parsed fontface.ParsedFont, rects []atlas.Rect, byRune map[rune]measuredGlyph, size int, cfg Config) *tmpasset.FontAsset {
	asset := tmpasset.NewFontAsset()
	asset.AtlasWidth = cfg.AtlasWidth
	asset.AtlasHeight = cfg.AtlasHeight
	asset.AtlasPadding = cfg.Padding
	if cfg.Mode == ModeRaster {
		asset.AtlasRenderMode = tmpasset.RenderModeRaster
	} else {
		asset.AtlasRenderMode = tmpasset.RenderModeSDF
	}
	asset.FaceInfo = assembleFaceInfo(parsed, size)

	pad := cfg.Padding
	for _, rect := range rects {
		m := byRune[rect.Rune]

		// The document rect covers the ink only, not the padded cell.
		x, yTop, w, h := rect.X, rect.Y, 1, 1
		if m.metrics.Width > 0 && m.metrics.Height > 0 {
			x += pad
			yTop += pad
			w = m.metrics.Width
			h = m.metrics.Height
		}
		yDoc := cfg.AtlasHeight - yTop - h

		asset.GlyphTable = append(asset.GlyphTable, tmpasset.Glyph{
			Index: int(rect.Rune),
			Metrics: tmpasset.GlyphMetrics{
				Width:              float64(m.metrics.Width),
				Height:             float64(m.metrics.Height),
				HorizontalBearingX: m.metrics.BearingX,
				HorizontalBearingY: m.metrics.BearingY,
				HorizontalAdvance:  m.metrics.Advance,
			},
			Rect:  tmpasset.GlyphRect{X: x, Y: yDoc, Width: w, Height: h},
			Scale: 1,
		})
		asset.CharacterTable = append(asset.CharacterTable, tmpasset.Character{
			ElementType: 1,
			Unicode:     int(rect.Rune),
			GlyphIndex:  int(rect.Rune),
			Scale:       1,
		})
		asset.UsedGlyphRects = append(asset.UsedGlyphRects, tmpasset.GlyphRect{
			X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height,
		})
	}

	asset.SortTables()
	return asset
}

// assembleFaceInfo derives the face block at the sampling size. Cap and
// mean lines are measured from the 'H' and 'x' glyphs when the font has
// them, falling back to the face tables and then to fractions of the
// ascent. Underline, strikethrough, script and tab values follow the
// consuming runtime's conventions.
func assembleFaceInfo(parsed fontface.ParsedFont, size int) tmpasset.FaceInfo {
	ppem := float64(size)
	fm := parsed.Metrics(ppem)
	ascent := fm.Ascent
	descentLine := -fm.Descent

	capLine := ascent
	if gm, ok := parsed.GlyphMetrics('H', ppem); ok && gm.Height > 0 {
		capLine = gm.BearingY
	} else if fm.CapHeight > 0 {
		capLine = fm.CapHeight
	}

	meanLine := ascent * 0.5
	if gm, ok := parsed.GlyphMetrics('x', ppem); ok && gm.Height > 0 {
		meanLine = gm.BearingY
	} else if fm.XHeight > 0 {
		meanLine = fm.XHeight
	}

	underlineThickness := float64(size) * 0.06
	if underlineThickness < 1 {
		underlineThickness = 1
	}
	strikethroughOffset := ascent * 0.4
	if capLine != 0 {
		strikethroughOffset = capLine / 2.5
	}

	return tmpasset.FaceInfo{
		FaceIndex:              0,
		PointSize:              size,
		Scale:                  1,
		UnitsPerEM:             parsed.UnitsPerEm(),
		LineHeight:             ascent + fm.Descent,
		AscentLine:             ascent,
		CapLine:                capLine,
		MeanLine:               meanLine,
		Baseline:               0,
		DescentLine:            descentLine,
		SuperscriptOffset:      ascent * 0.5,
		SuperscriptSize:        0.5,
		SubscriptOffset:        descentLine * 0.5,
		SubscriptSize:          0.5,
		UnderlineOffset:        descentLine * 0.5,
		UnderlineThickness:     underlineThickness,
		StrikethroughOffset:    strikethroughOffset,
		StrikethroughThickness: underlineThickness,
		TabWidth:               float64(size) * 0.5,
	}
}
