package spritekit

import (
	"errors"
	"testing"
)

func TestAtlas_At(t *testing.T) {
	frames := []Rect{{0, 0, 100, 100}, {100, 0, 100, 100}, {0, 100, 100, 100}, {100, 100, 100, 100}}
	a := NewAtlas(frames...)

	tests := []struct {
		name    string
		index   int
		want    Rect
		wantErr bool
	}{
		{"first", 0, frames[0], false},
		{"last", 3, frames[3], false},
		{"negative", -1, Rect{}, true},
		{"length", 4, Rect{}, true},
		{"far past end", 100, Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.At(tt.index)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("At(%d) error = %v, want ErrOutOfRange", tt.index, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("At(%d): %v", tt.index, err)
			}
			if got != tt.want {
				t.Errorf("At(%d) = %+v, want %+v", tt.index, got, tt.want)
			}
		})
	}
}

func TestAtlas_Empty(t *testing.T) {
	a := NewAtlas()
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
	if _, err := a.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(0) on empty atlas = %v, want ErrOutOfRange", err)
	}
}

func TestAtlas_Immutable(t *testing.T) {
	frames := []Rect{{0, 0, 10, 10}}
	a := NewAtlas(frames...)
	frames[0].W = 99

	got, _ := a.At(0)
	if got.W != 10 {
		t.Error("atlas aliases the caller's slice")
	}

	out := a.Frames()
	out[0].H = 99
	got, _ = a.At(0)
	if got.H != 10 {
		t.Error("Frames() returned the internal slice")
	}
}

func TestGridAtlas(t *testing.T) {
	a := GridAtlas(64, 205, 4, 1)
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}
	for i := 0; i < 4; i++ {
		got, _ := a.At(i)
		want := Rect{X: i * 64, Y: 0, W: 64, H: 205}
		if got != want {
			t.Errorf("frame %d = %+v, want %+v", i, got, want)
		}
	}

	b := GridAtlas(100, 100, 2, 2)
	if got, _ := b.At(2); got != (Rect{0, 100, 100, 100}) {
		t.Errorf("row-major frame 2 = %+v", got)
	}
	if GridAtlas(10, 10, -1, 3).Len() != 0 {
		t.Error("negative cols should yield an empty atlas")
	}
}

func TestAtlas_Validate(t *testing.T) {
	a := GridAtlas(100, 100, 2, 2)
	if err := a.Validate(200, 200); err != nil {
		t.Errorf("Validate(200, 200) = %v", err)
	}
	if err := a.Validate(200, 199); !errors.Is(err, ErrClipOutOfBounds) {
		t.Errorf("Validate(200, 199) = %v, want ErrClipOutOfBounds", err)
	}
	if err := NewAtlas(Rect{-1, 0, 5, 5}).Validate(10, 10); !errors.Is(err, ErrClipOutOfBounds) {
		t.Errorf("negative origin = %v, want ErrClipOutOfBounds", err)
	}
}

func TestAtlas_ValidateFor(t *testing.T) {
	ctx, _ := newTestContext()
	tex := ctx.NewTexture()
	a := GridAtlas(100, 100, 2, 2)

	if err := a.ValidateFor(tex); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("ValidateFor(empty) = %v, want ErrNotLoaded", err)
	}
	if err := tex.LoadFromFile("dots.png"); err != nil {
		t.Fatal(err)
	}
	if err := a.ValidateFor(tex); err != nil {
		t.Errorf("ValidateFor(200x200) = %v", err)
	}
	if err := GridAtlas(64, 205, 4, 1).ValidateFor(tex); !errors.Is(err, ErrClipOutOfBounds) {
		t.Errorf("walker atlas on dots = %v, want ErrClipOutOfBounds", err)
	}
}

func TestLoadAtlas_Hash(t *testing.T) {
	data := []byte(`{
		"frames": {
			"b.png": {"frame": {"x": 10, "y": 0, "w": 10, "h": 20}},
			"a.png": {"frame": {"x": 0, "y": 0, "w": 10, "h": 20}}
		},
		"meta": {"image": "sheet.png"}
	}`)
	a, err := LoadAtlas(data)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	if i, ok := a.Index("a.png"); !ok || i != 0 {
		t.Errorf("Index(a.png) = %d, %v; want 0, true", i, ok)
	}
	r, err := a.Region("b.png")
	if err != nil {
		t.Fatal(err)
	}
	if r != (Rect{10, 0, 10, 20}) {
		t.Errorf("Region(b.png) = %+v", r)
	}
	if _, err := a.Region("c.png"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Region(missing) = %v, want ErrOutOfRange", err)
	}
}

func TestLoadAtlas_Array(t *testing.T) {
	data := []byte(`{"textures": [{"image": "sheet.png", "frames": {
		"hover": {"frame": {"x": 0, "y": 200, "w": 300, "h": 200}}
	}}]}`)
	a, err := LoadAtlas(data)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if got, _ := a.At(0); got != (Rect{0, 200, 300, 200}) {
		t.Errorf("At(0) = %+v", got)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{`},
		{"no frames", `{"meta": {}}`},
		{"two pages", `{"textures": [{"frames": {}}, {"frames": {}}]}`},
		{"rotated", `{"frames": {"x": {"frame": {"x": 0, "y": 0, "w": 1, "h": 1}, "rotated": true}}}`},
		{"bad frames", `{"frames": [1, 2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadAtlas([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
