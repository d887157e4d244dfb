package spritekit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFrameAnimation_StepAndWrap(t *testing.T) {
	anim := NewFrameAnimation(GridAtlas(64, 205, 4, 1), 4)

	var frames []int
	for i := 0; i < 17; i++ {
		frames = append(frames, anim.Frame())
		anim.Step()
	}
	want := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
}

func TestFrameAnimation_Clip(t *testing.T) {
	anim := NewFrameAnimation(GridAtlas(64, 205, 4, 1), 0)
	anim.Step()
	anim.Step()
	clip, err := anim.Clip()
	if err != nil {
		t.Fatal(err)
	}
	if clip != (Rect{128, 0, 64, 205}) {
		t.Errorf("Clip = %+v, want third frame", clip)
	}
	anim.Reset()
	if anim.Frame() != 0 {
		t.Errorf("Frame after Reset = %d", anim.Frame())
	}
}

func TestTweenAngle(t *testing.T) {
	var opts RenderOptions
	tw := TweenAngle(&opts, 90, 1, ease.Linear)

	tw.Update(0.5)
	if math.Abs(opts.Angle-45) > 0.01 {
		t.Errorf("Angle at half time = %f, want 45", opts.Angle)
	}
	if tw.Done {
		t.Error("tween finished early")
	}

	tw.Update(0.6)
	if opts.Angle != 90 {
		t.Errorf("Angle at end = %f, want 90", opts.Angle)
	}
	if !tw.Done {
		t.Error("tween not done")
	}

	opts.Angle = 7
	tw.Update(1)
	if opts.Angle != 7 {
		t.Error("finished tween should not write")
	}
}

func TestTweenAlpha(t *testing.T) {
	ctx, surface := newTestContext()
	tex := ctx.NewTexture()
	if err := tex.LoadFromFile("foo.png"); err != nil {
		t.Fatal(err)
	}

	tw := TweenAlpha(tex, 0, 1, ease.Linear)
	tw.Update(0.5)
	if a := tex.ColorMod().A; a < 126 || a > 129 {
		t.Errorf("alpha at half time = %d, want ~128", a)
	}
	tw.Update(1)
	tex.Render(0, 0, RenderOptions{})
	if got := surface.draws[0].cmd.Mod.A; got != 0 {
		t.Errorf("drawn alpha = %d, want 0", got)
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{127.4, 127},
		{127.6, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampByte(tt.in); got != tt.want {
			t.Errorf("clampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
