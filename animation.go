package spritekit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameAnimation steps through an atlas one tick at a time. Each frame is
// shown for ticksPerFrame calls to Step, then the animation wraps.
//
// There is no clock: the caller decides when to Step, usually once per frame.
type FrameAnimation struct {
	atlas         *Atlas
	ticksPerFrame int
	tick          int
}

// NewFrameAnimation creates an animation over atlas. ticksPerFrame below 1
// is treated as 1.
func NewFrameAnimation(atlas *Atlas, ticksPerFrame int) *FrameAnimation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &FrameAnimation{atlas: atlas, ticksPerFrame: ticksPerFrame}
}

// Step advances one tick.
func (a *FrameAnimation) Step() {
	a.tick++
	if a.tick/a.ticksPerFrame >= a.atlas.Len() {
		a.tick = 0
	}
}

// Frame returns the current frame index.
func (a *FrameAnimation) Frame() int {
	return a.tick / a.ticksPerFrame
}

// Clip returns the current frame's rectangle.
func (a *FrameAnimation) Clip() (Rect, error) {
	return a.atlas.At(a.Frame())
}

// Reset returns to the first tick of the first frame.
func (a *FrameAnimation) Reset() {
	a.tick = 0
}

// Tween animates one float64 value toward a target with a gween easing
// function. Call Update(dt) each frame; Done becomes true at the end.
//
// There is no global animation manager. Users call Update themselves.
type Tween struct {
	tween *gween.Tween
	apply func(float64)
	Done  bool
}

// Update advances the tween by dt seconds and applies the new value.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.apply(float64(val))
	t.Done = finished
}

// TweenFloat creates a Tween that animates *field to the given value.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		apply: func(v float64) { *field = v },
	}
}

// TweenAngle creates a Tween that animates opts.Angle (degrees).
func TweenAngle(opts *RenderOptions, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return TweenFloat(&opts.Angle, to, duration, fn)
}

// TweenAlpha creates a Tween that animates a texture's alpha modulation. The
// tween is a no-op while the texture is empty.
func TweenAlpha(tex *Texture, to uint8, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween: gween.New(float32(tex.ColorMod().A), float32(to), duration, fn),
		apply: func(v float64) {
			_ = tex.SetAlphaMod(clampByte(v))
		},
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
