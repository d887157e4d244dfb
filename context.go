package spritekit

import (
	"io"
	"log/slog"
)

// Context owns the Surface, the PixelSource and the active Font, and tracks
// every Texture created through it. It replaces process-wide renderer and
// font globals: textures and buttons receive a Context explicitly.
//
// A Context is not safe for concurrent use. All of its methods, and the
// methods of its textures, must run on the goroutine that owns the Surface.
type Context struct {
	surface Surface
	source  PixelSource
	font    *Font
	logger  *slog.Logger

	textures []*Texture
	closed   bool

	// ColorKey, when non-nil, is keyed out of every image loaded with
	// Texture.LoadFromFile. Defaults to MagicColorKey.
	ColorKey *Color
}

// NewContext creates a context drawing to surface and loading pixels from
// source. A nil source uses an ImageSource on the OS filesystem.
func NewContext(surface Surface, source PixelSource) *Context {
	if source == nil {
		source = NewImageSource(nil)
	}
	key := MagicColorKey
	return &Context{
		surface:  surface,
		source:   source,
		logger:   newNopLogger(),
		ColorKey: &key,
	}
}

// Surface returns the context's draw target.
func (c *Context) Surface() Surface {
	return c.surface
}

// Source returns the context's pixel source.
func (c *Context) Source() PixelSource {
	return c.source
}

// SetFont sets the active font used by Texture.LoadFromText. Nil clears it.
func (c *Context) SetFont(f *Font) {
	c.font = f
}

// Font returns the active font, or nil.
func (c *Context) Font() *Font {
	return c.font
}

// NewTexture creates an empty texture owned by this context. The texture is
// released by Close if the caller has not released it first.
func (c *Context) NewTexture() *Texture {
	t := &Texture{ctx: c}
	c.textures = append(c.textures, t)
	return t
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool {
	return c.closed
}

// Close releases every texture in reverse creation order, then closes the
// surface if it implements io.Closer. Calling Close again is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	for i := len(c.textures) - 1; i >= 0; i-- {
		c.textures[i].Release()
	}
	c.logger.Info("context closed", "textures", len(c.textures))
	c.textures = nil
	if closer, ok := c.surface.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
