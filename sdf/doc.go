// Package sdf converts glyph coverage bitmaps into single-channel signed
// distance fields for scalable text rendering.
//
// An SDF encodes, per pixel, the signed Euclidean distance to the nearest
// glyph boundary. A shader thresholds the field at the edge value to
// reconstruct crisp outlines at any scale, and offsets the threshold to
// render outlines, glow, or bold variants from the same texture.
//
// # Sign and spread convention
//
// The convention is fixed for every glyph of a run and matches what
// TextMeshPro-style shaders sample:
//
//   - coverage > 127 counts as inside the glyph
//   - value = clamp(0.5 + (distInside - distOutside) / (2*spread), 0, 1)
//   - stored byte-quantized: edge ≈ 0.5 (byte 127), inside > 0.5,
//     outside < 0.5, fully outside = 0, deep inside = 255
//   - spread is the search radius in pixels; one pixel of distance moves
//     the value by 1/(2*spread)
//
// Distances are exact Euclidean, computed with a two-pass per-axis
// squared-distance transform (Felzenszwalb/Huttenlocher), O(n) in the
// number of pixels. This stage dominates generation time for large
// charsets, so per-glyph tiles are transformed in parallel by the caller.
//
// # Render modes
//
// The Transform interface has two strategies: DistanceTransform (the
// "sdf" render mode) and CoverageTransform (the "raster" mode, an
// identity pass-through for plain alpha atlases). The pipeline selects
// one per run; there is no per-glyph branching.
package sdf
