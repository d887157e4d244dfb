package spritekit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestContext_CloseReleasesInReverseOrder(t *testing.T) {
	ctx, surface := newTestContext()
	a, b, c := ctx.NewTexture(), ctx.NewTexture(), ctx.NewTexture()
	for _, tex := range []*Texture{a, b, c} {
		if err := tex.LoadFromFile("foo.png"); err != nil {
			t.Fatal(err)
		}
	}
	want := []TextureHandle{c.Handle(), b.Handle(), a.Handle()}

	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if len(surface.destroyed) != len(want) {
		t.Fatalf("destroyed = %v, want %v", surface.destroyed, want)
	}
	for i := range want {
		if surface.destroyed[i] != want[i] {
			t.Errorf("destroyed[%d] = %d, want %d", i, surface.destroyed[i], want[i])
		}
	}
	if !surface.closed {
		t.Error("surface not closed")
	}
	for _, tex := range []*Texture{a, b, c} {
		checkInvariant(t, tex)
		if tex.Loaded() {
			t.Error("texture still loaded after Close")
		}
	}
}

func TestContext_CloseSkipsReleased(t *testing.T) {
	ctx, surface := newTestContext()
	a := ctx.NewTexture()
	if err := a.LoadFromFile("foo.png"); err != nil {
		t.Fatal(err)
	}
	a.Release()
	ctx.NewTexture() // never loaded

	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if len(surface.destroyed) != 1 {
		t.Errorf("destroyed %d handles, want 1", len(surface.destroyed))
	}
}

func TestContext_CloseIdempotent(t *testing.T) {
	ctx, surface := newTestContext()
	if err := ctx.NewTexture().LoadFromFile("foo.png"); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if !ctx.Closed() {
		t.Error("Closed() = false")
	}
	if len(surface.destroyed) != 1 {
		t.Errorf("destroyed %d handles, want 1", len(surface.destroyed))
	}
}

func TestContext_Defaults(t *testing.T) {
	surface := newFakeSurface()
	ctx := NewContext(surface, nil)
	if _, ok := ctx.Source().(*ImageSource); !ok {
		t.Errorf("default source = %T, want *ImageSource", ctx.Source())
	}
	if ctx.Surface() != Surface(surface) {
		t.Error("Surface() does not return the surface passed in")
	}
	if ctx.ColorKey == nil || *ctx.ColorKey != MagicColorKey {
		t.Errorf("ColorKey = %v, want MagicColorKey", ctx.ColorKey)
	}
	if ctx.Font() != nil {
		t.Error("new context should have no font")
	}

	// Changing one context's key must not affect the package default.
	ctx.ColorKey.R = 1
	if MagicColorKey.R != 0 {
		t.Error("ColorKey aliases MagicColorKey")
	}
}

func TestContext_SetLogger(t *testing.T) {
	ctx, _ := newTestContext()
	var buf bytes.Buffer
	ctx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := ctx.NewTexture().LoadFromFile("foo.png"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "texture loaded") {
		t.Errorf("log = %q, want texture loaded record", buf.String())
	}

	ctx.SetLogger(nil)
	if ctx.Logger() == nil {
		t.Fatal("SetLogger(nil) should restore a usable logger")
	}
	buf.Reset()
	if err := ctx.NewTexture().LoadFromFile("foo.png"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("nop logger wrote %q", buf.String())
	}
}
