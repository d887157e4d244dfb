package spritekit

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Atlas is a fixed, ordered sequence of clip rectangles over one texture.
// The atlas and the texture are paired by the caller; ValidateFor checks
// that every frame fits the texture. An Atlas is immutable once built.
type Atlas struct {
	frames []Rect
	names  map[string]int
}

// NewAtlas builds an atlas from frames. The slice is copied.
func NewAtlas(frames ...Rect) *Atlas {
	return &Atlas{frames: append([]Rect(nil), frames...)}
}

// GridAtlas builds a row-major atlas of cols×rows frames, each frameW×frameH,
// starting at the texture origin.
func GridAtlas(frameW, frameH, cols, rows int) *Atlas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	frames := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			frames = append(frames, Rect{X: c * frameW, Y: r * frameH, W: frameW, H: frameH})
		}
	}
	return &Atlas{frames: frames}
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// At returns the frame at index i. Indices outside [0, Len()) return
// ErrOutOfRange.
func (a *Atlas) At(i int) (Rect, error) {
	if i < 0 || i >= len(a.frames) {
		return Rect{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(a.frames))
	}
	return a.frames[i], nil
}

// Frames returns a copy of every frame in order.
func (a *Atlas) Frames() []Rect {
	return append([]Rect(nil), a.frames...)
}

// Index returns the frame index for a name loaded by LoadAtlas.
func (a *Atlas) Index(name string) (int, bool) {
	i, ok := a.names[name]
	return i, ok
}

// Region returns the frame for a name loaded by LoadAtlas.
func (a *Atlas) Region(name string) (Rect, error) {
	i, ok := a.names[name]
	if !ok {
		return Rect{}, fmt.Errorf("%w: no frame named %q", ErrOutOfRange, name)
	}
	return a.frames[i], nil
}

// Validate reports the first frame that does not lie inside a width×height
// texture, wrapped in ErrClipOutOfBounds.
func (a *Atlas) Validate(width, height int) error {
	for i, f := range a.frames {
		if !f.Within(width, height) {
			return fmt.Errorf("%w: frame %d %+v exceeds %dx%d", ErrClipOutOfBounds, i, f, width, height)
		}
	}
	return nil
}

// ValidateFor validates the atlas against a loaded texture's size.
func (a *Atlas) ValidateFor(t *Texture) error {
	if !t.Loaded() {
		return ErrNotLoaded
	}
	return a.Validate(t.Width(), t.Height())
}

// LoadAtlas parses TexturePacker JSON describing a single texture.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array) with exactly one page. Frames are ordered by name.
// Rotated frames are not supported.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("spritekit: failed to parse atlas JSON: %w", err)
	}

	var frames map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("spritekit: failed to parse atlas textures array: %w", err)
		}
		if len(textures) != 1 {
			return nil, fmt.Errorf("spritekit: atlas has %d pages, want 1", len(textures))
		}
		frames = textures[0].Frames
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("spritekit: failed to parse atlas frames: %w", err)
		}
	default:
		return nil, fmt.Errorf("spritekit: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	names := make([]string, 0, len(frames))
	for name, f := range frames {
		if f.Rotated {
			return nil, fmt.Errorf("spritekit: atlas frame %q is rotated", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	atlas := &Atlas{
		frames: make([]Rect, len(names)),
		names:  make(map[string]int, len(names)),
	}
	for i, name := range names {
		f := frames[name].Frame
		atlas.frames[i] = Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
		atlas.names[name] = i
	}
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}
