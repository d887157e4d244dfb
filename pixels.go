package spritekit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// PixelBuffer is a CPU-resident image in straight-alpha RGBA8 order,
// row-major, 4 bytes per pixel with no row padding. It is the only thing that
// may cross goroutines on its way to a Surface.
type PixelBuffer struct {
	Width, Height int
	Pix           []byte
}

// NewPixelBuffer allocates a transparent width×height buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}
}

// NewPixelBufferFromImage converts any image to a PixelBuffer. The result's
// origin is the image's Bounds().Min.
func NewPixelBufferFromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	pb := NewPixelBuffer(b.Dx(), b.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == 4*pb.Width {
		copy(pb.Pix, nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y):])
		return pb
	}
	xdraw.Draw(pb.NRGBA(), image.Rect(0, 0, pb.Width, pb.Height), img, b.Min, xdraw.Src)
	return pb
}

// NRGBA returns an *image.NRGBA view that shares Pix with the buffer.
func (p *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.Pix,
		Stride: 4 * p.Width,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// At returns the pixel at (x, y). Out-of-range coordinates return zero.
func (p *PixelBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return Color{}
	}
	i := 4 * (y*p.Width + x)
	return Color{p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]}
}

// Set writes the pixel at (x, y). Out-of-range coordinates are ignored.
func (p *PixelBuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	i := 4 * (y*p.Width + x)
	p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel inside r (clipped to the buffer) to c.
func (p *PixelBuffer) Fill(r Rect, c Color) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, p.Height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, p.Width); x++ {
			p.Set(x, y, c)
		}
	}
}

// ApplyColorKey makes every pixel whose RGB exactly equals key's RGB fully
// transparent. key.A is ignored. Returns the number of pixels keyed out.
func (p *PixelBuffer) ApplyColorKey(key Color) int {
	n := 0
	for i := 0; i+3 < len(p.Pix); i += 4 {
		if p.Pix[i] == key.R && p.Pix[i+1] == key.G && p.Pix[i+2] == key.B {
			p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = 0, 0, 0, 0
			n++
		}
	}
	return n
}

// WritePNG encodes the buffer to a PNG file at the given path.
func (p *PixelBuffer) WritePNG(path string) error {
	return writePNG(path, p.NRGBA())
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// RGBA implements color.Color so a Color can be used as an image/draw source.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}
