package spritekit

import (
	"errors"
	"log/slog"
)

var errEmptyBuffer = errors.New("empty pixel buffer")

// RenderOptions controls a single Texture.Render call. The zero value draws
// the whole texture unrotated and unflipped.
type RenderOptions struct {
	// Clip selects a sub-rectangle of the texture; the destination takes its size.
	Clip *Rect
	// Angle is the clockwise rotation in degrees.
	Angle float64
	// Pivot is the rotation center relative to the destination's top-left.
	// Nil rotates about the destination's center.
	Pivot *Point
	Flip  Flip
}

// Texture owns at most one GPU texture. It is either fully loaded
// (handle held, Width and Height > 0) or empty (no handle, zero size).
//
// Every load releases the previously held texture first, so a failed load
// leaves the Texture empty. Pair creation with a deferred Release, or rely on
// Context.Close, so the handle is destroyed on the owning goroutine.
type Texture struct {
	ctx    *Context
	handle TextureHandle
	loaded bool
	width  int
	height int
	mod    Color
	blend  BlendMode
}

// LoadFromFile decodes the image at path, keys out the context's ColorKey
// and uploads the result. Failures are *DecodeError or *UploadError.
func (t *Texture) LoadFromFile(path string) error {
	t.Release()
	if t.ctx.closed {
		return ErrContextClosed
	}

	pb, err := t.ctx.source.Decode(path)
	if err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			err = &DecodeError{Path: path, Err: err}
		}
		t.ctx.logger.Warn("texture load failed", "path", path, "err", err)
		return err
	}
	if key := t.ctx.ColorKey; key != nil {
		pb.ApplyColorKey(*key)
	}
	if err := t.upload(pb); err != nil {
		t.ctx.logger.Warn("texture upload failed", "path", path, "err", err)
		return err
	}
	t.ctx.logger.Info("texture loaded", "path", path, "w", t.width, "h", t.height)
	return nil
}

// LoadFromText renders text with the context's active font in color c and
// uploads the result. No color key is applied. Failures are
// *RasterizeError or *UploadError.
func (t *Texture) LoadFromText(text string, c Color) error {
	t.Release()
	if t.ctx.closed {
		return ErrContextClosed
	}

	f := t.ctx.font
	if f == nil {
		return &RasterizeError{Text: text, Err: ErrNoFont}
	}
	pb, err := t.ctx.source.Rasterize(text, c, f)
	if err != nil {
		var re *RasterizeError
		if !errors.As(err, &re) {
			err = &RasterizeError{Text: text, Err: err}
		}
		return err
	}
	return t.upload(pb)
}

// LoadFromPixels uploads a buffer produced elsewhere, for example decoded on
// a worker goroutine and handed to the draw goroutine. No color key is applied.
func (t *Texture) LoadFromPixels(pb *PixelBuffer) error {
	t.Release()
	if t.ctx.closed {
		return ErrContextClosed
	}
	return t.upload(pb)
}

// upload requires t to be empty.
func (t *Texture) upload(pb *PixelBuffer) error {
	if pb == nil || pb.Width <= 0 || pb.Height <= 0 {
		w, h := 0, 0
		if pb != nil {
			w, h = pb.Width, pb.Height
		}
		return &UploadError{Width: w, Height: h, Err: errEmptyBuffer}
	}
	h, err := t.ctx.surface.Upload(pb)
	if err != nil {
		var ue *UploadError
		if !errors.As(err, &ue) {
			err = &UploadError{Width: pb.Width, Height: pb.Height, Err: err}
		}
		return err
	}
	t.handle = h
	t.loaded = true
	t.width = pb.Width
	t.height = pb.Height
	t.mod = ColorWhite
	t.blend = BlendNormal
	return nil
}

// Release destroys the held GPU texture and resets t to empty. Calling
// Release on an empty texture is a no-op.
func (t *Texture) Release() {
	if !t.loaded {
		return
	}
	t.ctx.surface.Destroy(t.handle)
	*t = Texture{ctx: t.ctx}
}

// Render draws the texture with its top-left at (x, y). The destination is
// the clip's size when opts.Clip is set, the texture's size otherwise.
// Rendering an empty texture draws nothing.
func (t *Texture) Render(x, y int, opts RenderOptions) {
	if !t.loaded {
		t.log().Debug("render skipped: texture not loaded", "x", x, "y", y)
		return
	}
	dst := Rect{X: x, Y: y, W: t.width, H: t.height}
	if opts.Clip != nil {
		dst.W, dst.H = opts.Clip.W, opts.Clip.H
	}
	t.ctx.surface.Draw(t.handle, DrawCommand{
		Src:   opts.Clip,
		Dst:   dst,
		Angle: opts.Angle,
		Pivot: opts.Pivot,
		Flip:  opts.Flip,
		Mod:   t.mod,
		Blend: t.blend,
	})
}

// SetColorMod sets the RGB modulation applied when drawing.
func (t *Texture) SetColorMod(r, g, b uint8) error {
	if !t.loaded {
		return ErrNotLoaded
	}
	t.mod.R, t.mod.G, t.mod.B = r, g, b
	return nil
}

// SetAlphaMod sets the alpha modulation applied when drawing.
func (t *Texture) SetAlphaMod(a uint8) error {
	if !t.loaded {
		return ErrNotLoaded
	}
	t.mod.A = a
	return nil
}

// SetBlendMode sets the blend mode used when drawing.
func (t *Texture) SetBlendMode(mode BlendMode) error {
	if !t.loaded {
		return ErrNotLoaded
	}
	t.blend = mode
	return nil
}

// ColorMod returns the current modulation; A holds the alpha modulation.
func (t *Texture) ColorMod() Color { return t.mod }

// BlendMode returns the current blend mode.
func (t *Texture) BlendMode() BlendMode { return t.blend }

// Loaded reports whether t holds a GPU texture.
func (t *Texture) Loaded() bool { return t.loaded }

// Width returns the texture width in pixels, or 0 when empty.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels, or 0 when empty.
func (t *Texture) Height() int { return t.height }

// Size returns Width and Height.
func (t *Texture) Size() (w, h int) { return t.width, t.height }

func (t *Texture) log() *slog.Logger {
	if t.ctx == nil {
		return newNopLogger()
	}
	return t.ctx.logger
}

// Handle returns the held handle, or 0 when empty.
func (t *Texture) Handle() TextureHandle { return t.handle }
