package spritekit

import (
	"image"
	"io"
	"io/fs"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// PixelSource produces pixel buffers from image files and text. It never
// touches the GPU, so it may run on any goroutine.
type PixelSource interface {
	// Decode loads and decodes the image at path.
	// Failures are reported as *DecodeError.
	Decode(path string) (*PixelBuffer, error)
	// Rasterize renders a single line of text in the given color.
	// Failures are reported as *RasterizeError.
	Rasterize(text string, c Color, f *Font) (*PixelBuffer, error)
}

// ImageSource is the standard PixelSource. It decodes PNG, JPEG, GIF, BMP and
// WebP files and rasterizes text with golang.org/x/image/font.
type ImageSource struct {
	fsys fs.FS
}

// NewImageSource returns an ImageSource that reads from fsys, or from the OS
// filesystem when fsys is nil.
func NewImageSource(fsys fs.FS) *ImageSource {
	return &ImageSource{fsys: fsys}
}

func (s *ImageSource) open(path string) (io.ReadCloser, error) {
	if s.fsys != nil {
		return s.fsys.Open(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Decode implements PixelSource.
func (s *ImageSource) Decode(path string) (*PixelBuffer, error) {
	f, err := s.open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	pb := NewPixelBufferFromImage(img)
	if pb.Width == 0 || pb.Height == 0 {
		return nil, &DecodeError{Path: path, Err: image.ErrFormat}
	}
	return pb, nil
}

// Rasterize implements PixelSource. The buffer is exactly as wide as the
// text's advance and one line tall; glyph coverage becomes alpha.
func (s *ImageSource) Rasterize(text string, c Color, f *Font) (*PixelBuffer, error) {
	if f == nil {
		return nil, &RasterizeError{Text: text, Err: ErrNoFont}
	}
	w, h := f.MeasureString(text)
	if w <= 0 || h <= 0 {
		return nil, &RasterizeError{Text: text, Err: ErrEmptyText}
	}

	pb := NewPixelBuffer(w, h)
	d := &font.Drawer{
		Dst:  pb.NRGBA(),
		Src:  image.NewUniform(Color{c.R, c.G, c.B, 255}),
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(text)
	return pb, nil
}
