package spritekit

import (
	"errors"
	"io/fs"
	"testing"
)

// --- Recording surface ---

type drawCall struct {
	handle TextureHandle
	cmd    DrawCommand
}

type fakeSurface struct {
	next       TextureHandle
	live       map[TextureHandle]*PixelBuffer
	uploads    int
	destroyed  []TextureHandle
	draws      []drawCall
	failUpload error
	closed     bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{live: make(map[TextureHandle]*PixelBuffer)}
}

func (s *fakeSurface) Upload(pb *PixelBuffer) (TextureHandle, error) {
	if s.failUpload != nil {
		return 0, s.failUpload
	}
	s.uploads++
	s.next++
	s.live[s.next] = pb
	return s.next, nil
}

func (s *fakeSurface) Draw(h TextureHandle, cmd DrawCommand) {
	s.draws = append(s.draws, drawCall{h, cmd})
}

func (s *fakeSurface) Destroy(h TextureHandle) {
	if _, ok := s.live[h]; !ok {
		panic("destroy of unknown or already destroyed handle")
	}
	delete(s.live, h)
	s.destroyed = append(s.destroyed, h)
}

func (s *fakeSurface) Close() error {
	s.closed = true
	return nil
}

// --- In-memory pixel source ---

type fakeSource struct {
	images map[string]*PixelBuffer
}

func (s *fakeSource) Decode(path string) (*PixelBuffer, error) {
	pb, ok := s.images[path]
	if !ok {
		return nil, &DecodeError{Path: path, Err: fs.ErrNotExist}
	}
	cp := *pb
	cp.Pix = append([]byte(nil), pb.Pix...)
	return &cp, nil
}

func (s *fakeSource) Rasterize(text string, c Color, f *Font) (*PixelBuffer, error) {
	if f == nil {
		return nil, &RasterizeError{Text: text, Err: ErrNoFont}
	}
	if text == "" {
		return nil, errors.New("nothing to draw")
	}
	pb := NewPixelBuffer(8*len(text), 16)
	pb.Fill(Rect{W: pb.Width, H: pb.Height}, c)
	return pb, nil
}

func solidBuffer(w, h int, c Color) *PixelBuffer {
	pb := NewPixelBuffer(w, h)
	pb.Fill(Rect{W: w, H: h}, c)
	return pb
}

// newTestContext returns a context over a recording surface and an
// in-memory source holding "foo.png" (64×205) and "dots.png" (200×200).
func newTestContext() (*Context, *fakeSurface) {
	surface := newFakeSurface()
	source := &fakeSource{images: map[string]*PixelBuffer{
		"foo.png":  solidBuffer(64, 205, RGB(10, 20, 30)),
		"dots.png": solidBuffer(200, 200, RGB(200, 0, 0)),
	}}
	return NewContext(surface, source), surface
}

// checkInvariant fails the test if t is neither fully loaded nor fully empty.
func checkInvariant(tb testing.TB, t *Texture) {
	tb.Helper()
	loaded := t.Loaded() && t.Handle() != 0
	sized := t.Width() > 0 && t.Height() > 0
	if loaded != sized {
		tb.Fatalf("texture invariant broken: handle=%d loaded=%v size=%dx%d",
			t.Handle(), t.Loaded(), t.Width(), t.Height())
	}
	if !t.Loaded() && (t.Handle() != 0 || t.Width() != 0 || t.Height() != 0) {
		tb.Fatalf("empty texture has leftover state: handle=%d size=%dx%d",
			t.Handle(), t.Width(), t.Height())
	}
}
