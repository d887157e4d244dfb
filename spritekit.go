package spritekit

import "github.com/hajimehoshi/ebiten/v2"

// Color is an 8-bit straight-alpha RGBA color. When used as a color
// modulation, R/G/B scale the texture's channels and A scales its alpha.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default modulation (no color change, fully opaque).
var ColorWhite = Color{255, 255, 255, 255}

// MagicColorKey is the default color-key: pixels of exactly this RGB value
// become fully transparent when loaded from an image file.
var MagicColorKey = Color{R: 0, G: 255, B: 255, A: 255}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// colorScale returns the color as premultiplied float32 scale factors for
// ebiten.ColorScale.
func (c Color) colorScale() (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the far edges (X+W, Y+H) are considered inside, so the hit area
// is one pixel wider and taller than W×H.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Within reports whether r is non-negative and lies entirely inside a
// width×height pixel extent.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.X+r.W <= width && r.Y+r.H <= height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Flip mirrors a texture at draw time. Values can be combined with bitwise OR.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << (iota - 1) // mirror across the vertical axis
	FlipVertical                          // mirror across the horizontal axis
)

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventPointerMove EventType = iota // pointer moved
	EventPointerDown                  // pointer button pressed
	EventPointerUp                    // pointer button released
	EventKeyDown                      // keyboard key pressed
	EventQuit                         // window close requested
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is one input event. Pointer events carry the pointer position at the
// time of the event; key events carry Key.
type Event struct {
	Type   EventType
	X, Y   int
	Button MouseButton
	Key    ebiten.Key
}
