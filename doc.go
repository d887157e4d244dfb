// Package spritekit is a small 2D texture toolkit for [Ebitengine]: a
// loadable texture resource with exact lifecycle rules, sprite-sheet clipping
// through an ordered atlas, affine presentation (rotation, flip, position)
// and a hit-tested button.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you and hands your [App] a [Context]:
//
//	type demo struct{ tex *spritekit.Texture }
//
//	func (d *demo) Load(ctx *spritekit.Context) error {
//		d.tex = ctx.NewTexture()
//		return d.tex.LoadFromFile("assets/dots.png")
//	}
//	func (d *demo) Update(*spritekit.Context, []spritekit.Event) error { return nil }
//	func (d *demo) Draw(*spritekit.Context) { d.tex.Render(0, 0, spritekit.RenderOptions{}) }
//
//	spritekit.Run(&demo{}, spritekit.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Textures
//
// A [Texture] is either loaded or empty. Every load releases the previous
// GPU texture first, so a failed load always leaves the texture empty.
// Images loaded from files have [MagicColorKey] keyed out to transparency
// unless [Context.ColorKey] is changed. [Context.Close] releases every
// texture it created, in reverse order, before closing the surface.
//
// # Atlases and buttons
//
// An [Atlas] is an immutable list of clip rectangles: build one with
// [NewAtlas], [GridAtlas] or [LoadAtlas] (TexturePacker JSON). A [Button]
// picks the atlas frame matching its [ButtonState].
//
// # Platform
//
// Drawing goes through the [Surface] interface and pixels come from a
// [PixelSource]. [EbitenSurface] and [ImageSource] are the standard
// implementations; tests can substitute their own.
//
// [Ebitengine]: https://ebitengine.org
package spritekit
