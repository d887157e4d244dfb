package spritekit

// TextureHandle is an opaque reference to a GPU texture issued by a Surface.
// The zero handle is never issued.
type TextureHandle uint32

// Surface is the platform draw target. All of its methods must be called on
// the goroutine that owns the draw context.
type Surface interface {
	// Upload creates a GPU texture from pb. Failures are reported as *UploadError.
	Upload(pb *PixelBuffer) (TextureHandle, error)
	// Draw issues one textured-quad draw call. Unknown handles are ignored.
	Draw(h TextureHandle, cmd DrawCommand)
	// Destroy releases the texture. Unknown handles are ignored.
	Destroy(h TextureHandle)
}

// DrawCommand describes one draw call.
type DrawCommand struct {
	// Src is the source sub-rectangle in texture pixels; nil draws the whole texture.
	Src *Rect
	// Dst is the destination rectangle; Src is scaled to fit it.
	Dst Rect
	// Angle is the clockwise rotation in degrees.
	Angle float64
	// Pivot is the rotation center relative to Dst's top-left; nil means Dst's center.
	Pivot *Point
	Flip  Flip
	// Mod multiplies the texture's RGB by Mod.R/G/B and its alpha by Mod.A.
	Mod   Color
	Blend BlendMode
}
