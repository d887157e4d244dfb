package spritekit

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a sized font face used to rasterize text into pixel buffers.
// A Font is not safe for concurrent use.
type Font struct {
	face   font.Face
	size   float64
	ascent int
	height int
}

// LoadFont parses TrueType or OpenType data with golang.org/x/image's
// opentype parser and returns a face at the given size in points (72 DPI).
func LoadFont(data []byte, size float64) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("spritekit: failed to parse font data: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("spritekit: failed to create font face: %w", err)
	}
	return newFont(face, size), nil
}

// LoadTrueTypeFont parses TrueType data with the freetype rasterizer. Glyph
// coverage differs slightly from LoadFont; use whichever matches the art.
func LoadTrueTypeFont(data []byte, size float64) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("spritekit: failed to parse TTF data: %w", err)
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return newFont(face, size), nil
}

// LoadFontFile reads a font file from disk and calls LoadFont.
func LoadFontFile(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spritekit: read font %s: %w", path, err)
	}
	return LoadFont(data, size)
}

// DefaultFont returns the Go Regular font at the given size.
func DefaultFont(size float64) (*Font, error) {
	return LoadFont(goregular.TTF, size)
}

func newFont(face font.Face, size float64) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	return &Font{
		face:   face,
		size:   size,
		ascent: ascent,
		height: ascent + m.Descent.Ceil(),
	}
}

// Face returns the underlying font.Face.
func (f *Font) Face() font.Face {
	return f.face
}

// Size returns the point size the face was created with.
func (f *Font) Size() float64 {
	return f.size
}

// LineHeight returns the pixel height of one line (ascent + descent).
func (f *Font) LineHeight() int {
	return f.height
}

// MeasureString returns the pixel extent of a single line of text.
func (f *Font) MeasureString(s string) (width, height int) {
	return font.MeasureString(f.face, s).Ceil(), f.height
}

// Close releases the face's resources.
func (f *Font) Close() error {
	return f.face.Close()
}
