package sdf

import "math"

// insideThreshold is the coverage level above which a sample counts as
// inside the glyph. Fixed across a run so fields compose consistently.
const insideThreshold = 127

// Transform converts one glyph's coverage tile into the samples stored in
// the atlas. Implementations must be pure: same tile in, same tile out,
// no shared mutable state, so tiles can be transformed concurrently.
type Transform interface {
	// Apply transforms a width×height coverage tile (row-major, one byte
	// per pixel) and returns a new tile of identical dimensions.
	Apply(pix []byte, width, height int) []byte

	// Name returns the render-mode name ("sdf" or "raster").
	Name() string
}

// CoverageTransform is the identity transform: the atlas stores plain
// coverage. This is the "raster" render mode.
type CoverageTransform struct{}

// Apply implements Transform.Apply by copying the tile.
func (CoverageTransform) Apply(pix []byte, width, height int) []byte {
	out := make([]byte, len(pix))
	copy(out, pix)
	return out
}

// Name implements Transform.Name.
func (CoverageTransform) Name() string { return "raster" }

// DistanceTransform converts coverage into a signed distance field using
// the convention documented in the package comment.
type DistanceTransform struct {
	// Spread is the distance normalization radius in pixels.
	// Must be at least 1. Atlas generation uses the cell padding, so the
	// field reaches exactly to the cell border.
	Spread int
}

// Name implements Transform.Name.
func (t DistanceTransform) Name() string { return "sdf" }

// Apply implements Transform.Apply.
func (t DistanceTransform) Apply(pix []byte, width, height int) []byte {
	n := width * height
	out := make([]byte, n)
	if n == 0 {
		return out
	}

	spread := t.Spread
	if spread < 1 {
		spread = 1
	}

	inside := make([]bool, n)
	insideCount := 0
	for i, p := range pix {
		if p > insideThreshold {
			inside[i] = true
			insideCount++
		}
	}

	// Degenerate tiles have no boundary to measure against.
	if insideCount == 0 {
		return out
	}
	if insideCount == n {
		for i := range out {
			out[i] = 255
		}
		return out
	}

	distIn := squaredDistance(inside, width, height) // inside pixels: distance to nearest outside
	outside := make([]bool, n)
	for i, in := range inside {
		outside[i] = !in
	}
	distOut := squaredDistance(outside, width, height) // outside pixels: distance to nearest inside

	denom := 2 * float64(spread)
	for i := 0; i < n; i++ {
		signed := math.Sqrt(distIn[i]) - math.Sqrt(distOut[i])
		v := 0.5 + signed/denom
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out[i] = byte(v * 255.0)
	}
	return out
}
