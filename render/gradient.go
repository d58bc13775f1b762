// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
)

// vgradient is a vertical linear gradient in image space: top at Min.Y,
// bottom at Max.Y-1. Channels interpolate in straight alpha.
type vgradient struct {
	top, bottom color.NRGBA
	rect        image.Rectangle
}

func (g *vgradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *vgradient) Bounds() image.Rectangle { return g.rect }

func (g *vgradient) At(x, y int) color.Color {
	span := g.rect.Dy() - 1
	if span <= 0 {
		return g.top
	}

	t := float64(y-g.rect.Min.Y) / float64(span)
	switch {
	case t <= 0:
		return g.top
	case t >= 1:
		return g.bottom
	}

	return color.NRGBA{
		R: mix(g.top.R, g.bottom.R, t),
		G: mix(g.top.G, g.bottom.G, t),
		B: mix(g.top.B, g.bottom.B, t),
		A: mix(g.top.A, g.bottom.A, t),
	}
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
