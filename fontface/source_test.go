package fontface

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}

	if source.FamilyName() == "" {
		t.Error("expected non-empty family name")
	}
	if source.StyleName() == "" {
		t.Error("expected non-empty style name")
	}
}

func TestNewFontSource_Empty(t *testing.T) {
	_, err := NewFontSource(nil)
	if err != ErrEmptyFontData {
		t.Errorf("expected ErrEmptyFontData, got %v", err)
	}
}

func TestNewFontSource_Garbage(t *testing.T) {
	_, err := NewFontSource([]byte("not a font"))
	if err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestFontSource_HasGlyph(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	parsed := source.Parsed()

	if !parsed.HasGlyph('A') {
		t.Error("expected 'A' to be present")
	}
	// goregular has no CJK coverage.
	if parsed.HasGlyph('一') {
		t.Error("expected U+4E00 to be absent")
	}
}

func TestFontSource_Metrics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}

	m := source.Parsed().Metrics(64)
	if m.Ascent <= 0 {
		t.Errorf("expected positive ascent, got %f", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("expected positive descent, got %f", m.Descent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("line height %f smaller than ascent+descent", m.LineHeight())
	}
}

func TestFontSource_CopyPanics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on copied FontSource")
		}
	}()

	copied := *source
	_ = copied.FamilyName()
}
