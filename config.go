package sdfatlas

import "fmt"

// RenderMode selects how rasterized coverage becomes atlas samples.
type RenderMode int

const (
	// ModeSDF converts each glyph's coverage mask into a signed distance
	// field. This is the default.
	ModeSDF RenderMode = iota

	// ModeRaster stores the anti-aliased coverage mask unchanged.
	ModeRaster
)

// String returns the mode name as used on the command line.
func (m RenderMode) String() string {
	switch m {
	case ModeSDF:
		return "sdf"
	case ModeRaster:
		return "raster"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode parses a mode name ("sdf" or "raster").
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "sdf":
		return ModeSDF, nil
	case "raster":
		return ModeRaster, nil
	default:
		return ModeSDF, &ConfigError{Field: "mode", Reason: fmt.Sprintf("must be \"sdf\" or \"raster\", got %q", s)}
	}
}

// Bounds within which run parameters are clamped.
const (
	MinPointSize = 8
	MaxPointSize = 512
	MinPadding   = 1
	MaxPadding   = 64
	MinAtlasAxis = 64
	MaxAtlasAxis = 8192
)

// Config holds the parameters of one generation run.
//
// Out-of-range values are clamped into the documented bounds rather than
// rejected, so callers can pass user input through unfiltered: PointSize
// to [MinPointSize, MaxPointSize], Padding to [MinPadding, MaxPadding],
// atlas axes to [MinAtlasAxis, MaxAtlasAxis].
type Config struct {
	// AtlasWidth and AtlasHeight are the atlas texture dimensions in
	// pixels.
	AtlasWidth  int
	AtlasHeight int

	// PointSize is the sampling size in pixels. Zero selects automatic
	// sizing: a binary search for the largest size at which the whole
	// charset still packs.
	PointSize int

	// Padding is the empty border around each glyph's ink inside its
	// atlas cell, in pixels. In SDF mode it is also the distance-field
	// spread.
	Padding int

	// Mode selects SDF or plain raster output.
	Mode RenderMode

	// Workers bounds the rasterization parallelism. Zero uses
	// runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig returns the defaults of the command-line tool: a
// 4096x4096 SDF atlas, automatic point size, padding 7.
func DefaultConfig() Config {
	return Config{
		AtlasWidth:  4096,
		AtlasHeight: 4096,
		PointSize:   0,
		Padding:     7,
		Mode:        ModeSDF,
	}
}

// Validate checks the fields that clamping cannot repair.
func (c Config) Validate() error {
	if c.AtlasWidth <= 0 {
		return &ConfigError{Field: "atlas width", Reason: "must be positive"}
	}
	if c.AtlasHeight <= 0 {
		return &ConfigError{Field: "atlas height", Reason: "must be positive"}
	}
	if c.PointSize < 0 {
		return &ConfigError{Field: "point size", Reason: "must be positive or zero (auto)"}
	}
	if c.Padding <= 0 {
		return &ConfigError{Field: "padding", Reason: "must be positive"}
	}
	if c.Mode != ModeSDF && c.Mode != ModeRaster {
		return &ConfigError{Field: "mode", Reason: "unknown render mode"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Reason: "must be positive or zero (GOMAXPROCS)"}
	}
	return nil
}

// clamped returns a copy with every parameter forced into its bounds.
// PointSize zero (auto) stays zero.
func (c Config) clamped() Config {
	if c.PointSize > 0 {
		c.PointSize = clampInt(c.PointSize, MinPointSize, MaxPointSize)
	}
	c.Padding = clampInt(c.Padding, MinPadding, MaxPadding)
	c.AtlasWidth = clampInt(c.AtlasWidth, MinAtlasAxis, MaxAtlasAxis)
	c.AtlasHeight = clampInt(c.AtlasHeight, MinAtlasAxis, MaxAtlasAxis)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
