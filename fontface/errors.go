package fontface

import "errors"

// Sentinel errors for fontface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontface: empty font data")
)
