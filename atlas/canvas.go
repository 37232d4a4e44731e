package atlas

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Canvas is the single-channel atlas pixel buffer.
//
// The buffer starts zeroed, which is the "fully outside" value of both
// render modes. Compositing runs single-threaded after packing is final:
// cells may abut but never overlap, and keeping the blit sequential
// avoids any concurrent-write question on the shared buffer.
type Canvas struct {
	width  int
	height int
	pix    []byte
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the raw samples (row-major, one byte per pixel).
func (c *Canvas) Pix() []byte { return c.pix }

// At returns the sample at (x, y). Out-of-bounds coordinates return 0.
func (c *Canvas) At(x, y int) byte {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Blit copies a tile of r.Width×r.Height samples into the canvas at r's
// position. Rows outside the canvas are clipped.
func (c *Canvas) Blit(tile []byte, r Rect) {
	for y := 0; y < r.Height; y++ {
		dstY := r.Y + y
		if dstY < 0 || dstY >= c.height {
			continue
		}
		for x := 0; x < r.Width; x++ {
			dstX := r.X + x
			if dstX < 0 || dstX >= c.width {
				continue
			}
			c.pix[dstY*c.width+dstX] = tile[y*r.Width+x]
		}
	}
}

// Image expands the canvas to an RGBA image with the samples in the
// alpha channel and black RGB, the layout TextMeshPro-style runtimes
// sample their atlas textures in.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, v := range c.pix {
		img.Pix[i*4+3] = v
	}
	return img
}

// EncodePNG writes the canvas as a lossless RGBA PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return c.EncodePNG(f)
}
