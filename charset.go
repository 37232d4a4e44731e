package sdfatlas

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ResolveCharset turns a charset specifier into the ordered, deduplicated
// list of code points to include in the atlas.
//
// If the specifier names an existing file, its contents are the charset;
// UTF-8 and UTF-16 files are recognized by their byte order mark, BOM-less
// files are read as UTF-8. If the specifier merely looks like a path (a
// path separator or a .txt suffix) but no file exists, ResolveCharset
// returns ErrCharsetNotFound. Anything else is treated as a literal list
// of characters.
//
// Duplicates are dropped keeping the first occurrence, as are NUL and
// surrogate code points. An empty result yields ErrEmptyCharset.
func ResolveCharset(specifier string) ([]rune, error) {
	if info, err := os.Stat(specifier); err == nil && info.Mode().IsRegular() {
		raw, err := os.ReadFile(specifier)
		if err != nil {
			return nil, fmt.Errorf("sdfatlas: reading charset file: %w", err)
		}
		text, err := decodeCharsetFile(raw)
		if err != nil {
			return nil, fmt.Errorf("sdfatlas: decoding charset file: %w", err)
		}
		return dedupeRunes(text)
	}

	if looksLikePath(specifier) {
		return nil, fmt.Errorf("%w: %s", ErrCharsetNotFound, specifier)
	}

	return dedupeRunes(specifier)
}

// decodeCharsetFile converts a charset file's bytes to a string, honoring
// a UTF-8 or UTF-16 byte order mark when present.
func decodeCharsetFile(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func looksLikePath(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.HasSuffix(strings.ToLower(s), ".txt")
}

// dedupeRunes filters text down to the unique usable code points in first
// occurrence order. NUL never maps to a glyph, and surrogates are not
// valid scalar values.
func dedupeRunes(text string) ([]rune, error) {
	seen := make(map[rune]struct{}, len(text))
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if r == 0 {
			continue
		}
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}
	if len(runes) == 0 {
		return nil, ErrEmptyCharset
	}
	return runes, nil
}
