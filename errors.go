package sdfatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sdfatlas package.
var (
	// ErrEmptyCharset is returned when a charset resolves to zero usable
	// code points.
	ErrEmptyCharset = errors.New("sdfatlas: charset is empty")

	// ErrCharsetNotFound is returned when a charset specifier looks like
	// a file path but no such file exists.
	ErrCharsetNotFound = errors.New("sdfatlas: charset file not found")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sdfatlas: invalid config: %s %s", e.Field, e.Reason)
}

// OverflowError is returned when the charset cannot be packed into the
// atlas. PointSize is the sampling size that failed to pack: the
// requested size for a fixed-size run, or the minimum search bound when
// the automatic search finds no fitting size at all.
type OverflowError struct {
	PointSize   int
	AtlasWidth  int
	AtlasHeight int
	GlyphCount  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("sdfatlas: %d glyphs do not fit a %dx%d atlas at point size %d",
		e.GlyphCount, e.AtlasWidth, e.AtlasHeight, e.PointSize)
}
