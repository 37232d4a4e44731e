// Command sdfatlas generates a TextMeshPro-compatible SDF (or raster)
// font atlas from a TTF/OTF file: the atlas PNG, the font asset JSON and
// the material JSON.
//
// Usage:
//
//	sdfatlas -font NanumGothic.ttf -charset charlist.txt
//	sdfatlas -font Go-Regular.ttf -charset "ABC abc" -point-size 96 -mode raster
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/glyphtools/sdfatlas"
	"github.com/glyphtools/sdfatlas/fontface"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		fontPath  = flag.String("font", "", "TTF/OTF font file (required)")
		atlasSize = flag.String("atlas-size", "4096,4096", "atlas size in 'W,H' format")
		pointSize = flag.String("point-size", "auto", "sampling point size, or 'auto' for the largest that fits")
		padding   = flag.Int("padding", 7, "empty border around each glyph, in pixels")
		charset   = flag.String("charset", "", "charset file path or literal characters (required)")
		mode      = flag.String("mode", "sdf", "render mode: sdf or raster")
		outDir    = flag.String("out", ".", "output directory")
		parser    = flag.String("parser", "", "font parser backend: ximage or gotext")
		verbose   = flag.Bool("v", false, "log generation progress to stderr")
	)
	flag.Parse()

	if *fontPath == "" || *charset == "" {
		pterm.Error.Println("-font and -charset are required")
		flag.Usage()
		return 2
	}

	width, height, err := parseAtlasSize(*atlasSize)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}
	size, err := parsePointSize(*pointSize)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}
	renderMode, err := sdfatlas.ParseRenderMode(*mode)
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}
	if *padding <= 0 {
		pterm.Error.Println("-padding must be a positive integer")
		return 2
	}

	if *verbose {
		sdfatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []fontface.SourceOption
	if *parser != "" {
		opts = append(opts, fontface.WithParser(*parser))
	}
	src, err := fontface.NewFontSourceFromFile(*fontPath, opts...)
	if err != nil {
		pterm.Error.Printf("loading font: %v\n", err)
		return 1
	}

	runes, err := sdfatlas.ResolveCharset(*charset)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	cfg := sdfatlas.DefaultConfig()
	cfg.AtlasWidth = width
	cfg.AtlasHeight = height
	cfg.PointSize = size
	cfg.Padding = *padding
	cfg.Mode = renderMode

	res, err := sdfatlas.Generate(src, runes, cfg)
	if err != nil {
		var overflow *sdfatlas.OverflowError
		if errors.As(err, &overflow) {
			pterm.Error.Printf("%v; use a larger atlas or a smaller point size\n", overflow)
		} else {
			pterm.Error.Println(err)
		}
		return 1
	}

	if len(res.Skipped) > 0 {
		pterm.Warning.Printf("%d code points have no glyph in %s and were skipped\n",
			len(res.Skipped), filepath.Base(*fontPath))
	}

	baseName := strings.TrimSuffix(filepath.Base(*fontPath), filepath.Ext(*fontPath))
	paths, err := res.WriteFiles(*outDir, baseName)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	for _, p := range paths {
		pterm.Info.Printf("generated %s\n", p)
	}
	pterm.Success.Printf("glyphs=%d skipped=%d atlas=%dx%d point-size=%d mode=%s\n",
		len(res.Asset.GlyphTable), len(res.Skipped),
		cfg.AtlasWidth, cfg.AtlasHeight, res.PointSize, cfg.Mode)
	return 0
}

// parseAtlasSize parses a "W,H" pair.
func parseAtlasSize(s string) (int, int, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("atlas size must be in 'W,H' format, got %q", s)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("atlas width must be an integer, got %q", parts[0])
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("atlas height must be an integer, got %q", parts[1])
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("atlas size must be positive, got %dx%d", width, height)
	}
	return width, height, nil
}

// parsePointSize parses an integer point size or "auto" (returned as 0).
func parsePointSize(s string) (int, error) {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		return 0, nil
	}
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("point size must be a positive integer or 'auto', got %q", s)
	}
	return size, nil
}
