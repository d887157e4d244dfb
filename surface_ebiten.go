package spritekit

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface is a Surface backed by Ebitengine images. Draw calls go to
// the target image set with SetTarget, normally the screen passed to
// ebiten.Game.Draw.
type EbitenSurface struct {
	target *ebiten.Image
	images map[TextureHandle]*ebiten.Image
	next   TextureHandle
	filter ebiten.Filter
	// MaxTextures caps the number of live textures; 0 means unlimited.
	MaxTextures int
}

// NewEbitenSurface creates a surface with linear texture filtering.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		images: make(map[TextureHandle]*ebiten.Image),
		filter: ebiten.FilterLinear,
	}
}

// SetTarget sets the image that subsequent Draw calls render into.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Target returns the current draw target.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.target
}

// SetFilter selects the sampling filter used when textures are scaled or rotated.
func (s *EbitenSurface) SetFilter(f ebiten.Filter) {
	s.filter = f
}

// Len returns the number of live textures.
func (s *EbitenSurface) Len() int {
	return len(s.images)
}

// Image returns the ebiten image for h, or nil.
func (s *EbitenSurface) Image(h TextureHandle) *ebiten.Image {
	return s.images[h]
}

var errTextureLimit = errors.New("texture limit reached")

// Upload implements Surface.
func (s *EbitenSurface) Upload(pb *PixelBuffer) (TextureHandle, error) {
	if pb == nil || pb.Width <= 0 || pb.Height <= 0 {
		w, h := 0, 0
		if pb != nil {
			w, h = pb.Width, pb.Height
		}
		return 0, &UploadError{Width: w, Height: h, Err: image.ErrFormat}
	}
	if s.MaxTextures > 0 && len(s.images) >= s.MaxTextures {
		return 0, &UploadError{Width: pb.Width, Height: pb.Height, Err: errTextureLimit}
	}
	img := ebiten.NewImageFromImage(pb.NRGBA())
	s.next++
	s.images[s.next] = img
	return s.next, nil
}

// Draw implements Surface.
func (s *EbitenSurface) Draw(h TextureHandle, cmd DrawCommand) {
	img := s.images[h]
	if img == nil || s.target == nil || cmd.Dst.Empty() {
		return
	}

	src := img
	b := img.Bounds()
	if cmd.Src != nil {
		r := image.Rect(cmd.Src.X, cmd.Src.Y, cmd.Src.X+cmd.Src.W, cmd.Src.Y+cmd.Src.H).Intersect(b)
		if r.Empty() {
			return
		}
		src = img.SubImage(r).(*ebiten.Image)
		b = r
	}

	var op ebiten.DrawImageOptions
	op.GeoM = affineGeoM(drawTransform(cmd, b.Dx(), b.Dy()))
	op.ColorScale.Scale(cmd.Mod.colorScale())
	op.Blend = cmd.Blend.EbitenBlend()
	op.Filter = s.filter
	s.target.DrawImage(src, &op)
}

// Destroy implements Surface.
func (s *EbitenSurface) Destroy(h TextureHandle) {
	img, ok := s.images[h]
	if !ok {
		return
	}
	img.Deallocate()
	delete(s.images, h)
}

// Close deallocates every remaining texture.
func (s *EbitenSurface) Close() error {
	for h, img := range s.images {
		img.Deallocate()
		delete(s.images, h)
	}
	return nil
}
