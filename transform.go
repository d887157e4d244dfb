package spritekit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// drawTransform computes the affine matrix that maps source pixels
// (0..srcW, 0..srcH) onto the destination described by cmd. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale(dst/src) -> Flip within Dst -> Rotate about Pivot -> Translate(Dst.X, Dst.Y)
func drawTransform(cmd DrawCommand, srcW, srcH int) [6]float64 {
	m := identityTransform
	if srcW <= 0 || srcH <= 0 {
		return m
	}
	dw, dh := float64(cmd.Dst.W), float64(cmd.Dst.H)

	m = multiplyAffine(scaleAffine(dw/float64(srcW), dh/float64(srcH)), m)

	if cmd.Flip&FlipHorizontal != 0 {
		m = multiplyAffine([6]float64{-1, 0, 0, 1, dw, 0}, m)
	}
	if cmd.Flip&FlipVertical != 0 {
		m = multiplyAffine([6]float64{1, 0, 0, -1, 0, dh}, m)
	}

	if cmd.Angle != 0 {
		px, py := dw/2, dh/2
		if cmd.Pivot != nil {
			px, py = float64(cmd.Pivot.X), float64(cmd.Pivot.Y)
		}
		m = multiplyAffine(translateAffine(-px, -py), m)
		m = multiplyAffine(rotateAffine(cmd.Angle*math.Pi/180), m)
		m = multiplyAffine(translateAffine(px, py), m)
	}

	return multiplyAffine(translateAffine(float64(cmd.Dst.X), float64(cmd.Dst.Y)), m)
}

func scaleAffine(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

func translateAffine(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

// rotateAffine rotates by theta radians; positive is clockwise on a Y-down screen.
func rotateAffine(theta float64) [6]float64 {
	sin, cos := math.Sincos(theta)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affineGeoM converts an affine matrix to an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// DrawBounds returns the axis-aligned bounding box of the quad cmd covers on
// screen after flip and rotation.
func DrawBounds(cmd DrawCommand) Rect {
	if cmd.Dst.Empty() {
		return Rect{X: cmd.Dst.X, Y: cmd.Dst.Y}
	}
	m := drawTransform(cmd, cmd.Dst.W, cmd.Dst.H)
	w, h := float64(cmd.Dst.W), float64(cmd.Dst.H)
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := transformPoint(m, c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	x0, y0 := int(math.Floor(minX+1e-9)), int(math.Floor(minY+1e-9))
	x1, y1 := int(math.Ceil(maxX-1e-9)), int(math.Ceil(maxY-1e-9))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
