package sdfatlas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger has error level enabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("probe")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("log output missing message: %q", buf.String())
	}
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
}
