package spritekit

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for an atlas index outside [0, Len()).
	ErrOutOfRange = errors.New("spritekit: atlas index out of range")
	// ErrClipOutOfBounds is returned when an atlas frame exceeds its texture.
	ErrClipOutOfBounds = errors.New("spritekit: clip rect outside texture bounds")
	// ErrNoFont is returned when text is rasterized without an active font.
	ErrNoFont = errors.New("spritekit: no active font")
	// ErrEmptyText is returned when text has nothing to draw.
	ErrEmptyText = errors.New("spritekit: text has no drawable extent")
	// ErrNotLoaded is returned by operations that need a loaded texture.
	ErrNotLoaded = errors.New("spritekit: texture not loaded")
	// ErrContextClosed is returned by loads on a closed Context.
	ErrContextClosed = errors.New("spritekit: context closed")
)

// DecodeError reports a missing or undecodable image file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("spritekit: decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RasterizeError reports a text string that could not be rendered to pixels.
type RasterizeError struct {
	Text string
	Err  error
}

func (e *RasterizeError) Error() string {
	return fmt.Sprintf("spritekit: rasterize %q: %v", e.Text, e.Err)
}

func (e *RasterizeError) Unwrap() error { return e.Err }

// UploadError reports a pixel buffer the Surface could not turn into a texture.
type UploadError struct {
	Width, Height int
	Err           error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("spritekit: upload %dx%d: %v", e.Width, e.Height, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
