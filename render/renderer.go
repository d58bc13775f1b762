// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"

	"github.com/ik5/audwave/waveform"
)

const (
	// HeightScale is the fraction of the surface a full-scale sample reaches.
	HeightScale = 0.8

	// MinOpacity is the opacity at or below which nothing is drawn.
	MinOpacity = 0.01

	// LoadingLineHeight is the thickness of the loading indicator in pixels.
	LoadingLineHeight = 2.0
)

// DefaultPassive is the base layer color: white at 30% alpha.
var DefaultPassive = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}

// Frame is everything the renderer needs to draw one image.
type Frame struct {
	// Profile is the displayed amplitude profile; nil when none was loaded.
	Profile waveform.Profile

	// Opacity scales the passive layer, in [0,1].
	Opacity float64

	// Progress is the played fraction in [0,1]; the accent layer covers it.
	Progress float64

	// Top and Bottom are the accent gradient stops.
	Top, Bottom color.NRGBA

	// Loading is set while a load is in flight.
	Loading bool
}

// Options tune a Renderer.
type Options struct {
	// Passive is the base layer color. Zero value means DefaultPassive.
	Passive color.NRGBA
}

// Renderer draws frames onto a fixed surface. It is not safe for
// concurrent use.
type Renderer struct {
	dst     draw.Image
	bounds  image.Rectangle
	w, h    float64
	passive color.NRGBA

	// mask holds the coverage of the current shape
	mask *image.RGBA
}

// New returns a Renderer that draws onto dst. A nil or empty surface is a
// configuration error.
func New(dst draw.Image, opts Options) (*Renderer, error) {
	if dst == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNoSurface)
	}

	b := dst.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %w (%dx%d)", ErrConfiguration, ErrInvalidSize, b.Dx(), b.Dy())
	}

	passive := opts.Passive
	if passive == (color.NRGBA{}) {
		passive = DefaultPassive
	}

	return &Renderer{
		dst:     dst,
		bounds:  b,
		w:       float64(b.Dx()),
		h:       float64(b.Dy()),
		passive: passive,
		mask:    image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy())),
	}, nil
}

// NewImage allocates an RGBA surface of the given size and a Renderer for it.
func NewImage(width, height int, opts Options) (*image.RGBA, *Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("%w: %w (%dx%d)", ErrConfiguration, ErrInvalidSize, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r, err := New(img, opts)
	if err != nil {
		return nil, nil, err
	}
	return img, r, nil
}

// Surface returns the destination image.
func (r *Renderer) Surface() draw.Image { return r.dst }

// Bounds returns the drawing area.
func (r *Renderer) Bounds() image.Rectangle { return r.bounds }

// Render clears the surface and draws f.
func (r *Renderer) Render(f Frame) error {
	draw.Draw(r.dst, r.bounds, image.Transparent, image.Point{}, draw.Src)

	if f.Profile == nil {
		if f.Loading {
			r.drawLoading()
		}
		return nil
	}

	if f.Opacity <= MinOpacity {
		return nil
	}

	if len(f.Profile) < 2 {
		return ErrShortProfile
	}

	r.rasterize(0, r.areaPath(f.Profile))

	base := r.passive
	base.A = uint8(math.Round(float64(base.A) * clamp01(f.Opacity)))
	draw.DrawMask(r.dst, r.bounds, image.NewUniform(base), image.Point{}, r.mask, image.Point{}, draw.Over)

	played := int(math.Round(r.w * clamp01(f.Progress)))
	if played == 0 {
		return nil
	}

	clip := image.Rect(0, 0, played, r.bounds.Dy())
	grad := &vgradient{top: f.Top, bottom: f.Bottom, rect: clip}
	draw.DrawMask(r.dst, clip.Add(r.bounds.Min), grad, clip.Min, r.mask, clip.Min, draw.Over)

	return nil
}

// areaPath builds the filled shape in canvas space, where y grows upward and
// the baseline is y=0.
func (r *Renderer) areaPath(p waveform.Profile) *canvas.Path {
	n := len(p)
	step := r.w / float64(n-1)
	px := func(i int) float64 { return float64(i) * step }
	py := func(i int) float64 { return clamp01(p[i]) * r.h * HeightScale }

	path := &canvas.Path{}
	path.MoveTo(0, 0)
	path.LineTo(px(0), py(0))
	for i := 0; i < n-1; i++ {
		path.QuadTo(
			px(i), py(i),
			(px(i)+px(i+1))/2,
			(py(i)+py(i+1))/2,
		)
	}
	path.LineTo(px(n-1), py(n-1))
	path.LineTo(r.w, 0)
	path.Close()

	return path
}

// rasterize replaces the mask with the coverage of path lifted by y.
func (r *Renderer) rasterize(y float64, path *canvas.Path) {
	draw.Draw(r.mask, r.mask.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := canvas.New(r.w, r.h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(color.White)
	ctx.DrawPath(0, y, path)

	c.Render(rasterizer.New(r.mask, 1))
}

func (r *Renderer) drawLoading() {
	r.rasterize((r.h-LoadingLineHeight)/2, canvas.Rectangle(r.w, LoadingLineHeight))

	line := r.passive
	line.A = 0xff
	draw.DrawMask(r.dst, r.bounds, image.NewUniform(line), image.Point{}, r.mask, image.Point{}, draw.Over)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
