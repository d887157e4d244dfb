package spritekit

// ButtonState is a Button's interaction state. Its value is the index of the
// frame drawn for it in the button's atlas.
type ButtonState uint8

const (
	ButtonOut      ButtonState = iota // pointer outside the button
	ButtonHover                       // pointer moved inside
	ButtonPressed                     // button pressed inside
	ButtonReleased                    // button released inside
)

// ButtonStateCount is the number of atlas frames a button needs.
const ButtonStateCount = 4

func (s ButtonState) String() string {
	switch s {
	case ButtonOut:
		return "out"
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Button is a positioned hit box whose state selects one frame of a shared
// texture and atlas. Only HandleEvent changes its state.
type Button struct {
	pos           Point
	width, height int
	state         ButtonState
}

// NewButton creates a width×height button at (0, 0) in state ButtonOut.
func NewButton(width, height int) *Button {
	return &Button{width: width, height: height}
}

// SetPosition moves the button's top-left corner.
func (b *Button) SetPosition(x, y int) {
	b.pos = Point{x, y}
}

// Position returns the button's top-left corner.
func (b *Button) Position() Point {
	return b.pos
}

// Bounds returns the button's hit box. Hit tests include the far edges.
func (b *Button) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, W: b.width, H: b.height}
}

// State returns the current interaction state.
func (b *Button) State() ButtonState {
	return b.state
}

// HandleEvent updates the state from a pointer event. A pointer outside the
// bounds always yields ButtonOut; inside, move/down/up yield
// Hover/Pressed/Released. Other event types are ignored.
func (b *Button) HandleEvent(e Event) {
	switch e.Type {
	case EventPointerMove, EventPointerDown, EventPointerUp:
	default:
		return
	}

	if !b.Bounds().Contains(e.X, e.Y) {
		b.state = ButtonOut
		return
	}

	switch e.Type {
	case EventPointerMove:
		b.state = ButtonHover
	case EventPointerDown:
		b.state = ButtonPressed
	case EventPointerUp:
		b.state = ButtonReleased
	}
}

// Render draws the atlas frame for the current state at the button's
// position. Returns ErrOutOfRange if the atlas has no frame for the state.
func (b *Button) Render(tex *Texture, atlas *Atlas) error {
	clip, err := atlas.At(int(b.state))
	if err != nil {
		tex.log().Debug("button render skipped", "state", b.state.String(), "err", err)
		return err
	}
	tex.Render(b.pos.X, b.pos.Y, RenderOptions{Clip: &clip})
	return nil
}
