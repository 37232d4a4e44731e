package main

import "testing"

func TestParseAtlasSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"4096,4096", 4096, 4096, false},
		{"256, 128", 256, 128, false},
		{"512", 0, 0, true},
		{"a,b", 0, 0, true},
		{"0,256", 0, 0, true},
		{"256,-1", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseAtlasSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAtlasSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (w != tt.w || h != tt.h) {
			t.Errorf("parseAtlasSize(%q) = %d,%d, want %d,%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestParsePointSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"auto", 0, false},
		{"AUTO", 0, false},
		{" 64 ", 64, false},
		{"0", 0, true},
		{"-8", 0, true},
		{"big", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePointSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePointSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parsePointSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
