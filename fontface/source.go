// Package fontface loads font files and exposes the measurement and
// rasterization capabilities the atlas pipeline needs, behind a pluggable
// parser backend.
package fontface

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared: one source serves every
// candidate point size of an auto-sizing run.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Configuration
	config sourceConfig
}

// sourceConfig holds FontSource configuration set via options.
type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// SourceOption configures a FontSource.
type SourceOption func(*sourceConfig)

// WithParser selects the font parsing backend by registry name
// ("ximage" or "gotext"). Unknown names fall back to the default.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// FamilyName returns the font family name, or "Unknown Font" if the font
// does not carry one.
func (s *FontSource) FamilyName() string {
	s.copyCheck()
	if name := s.parsed.FamilyName(); name != "" {
		return name
	}
	return "Unknown Font"
}

// StyleName returns the font style name, or "Regular" if the font does
// not carry one.
func (s *FontSource) StyleName() string {
	s.copyCheck()
	if name := s.parsed.StyleName(); name != "" {
		return name
	}
	return "Regular"
}

// Parsed returns the parsed font for measurement and rasterization.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("fontface: FontSource must not be copied by value")
	}
}
