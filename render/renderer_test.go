// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ik5/audwave/waveform"
)

var (
	testTop    = color.NRGBA{R: 0xff, A: 0xff}
	testBottom = color.NRGBA{R: 0xff, A: 0x1a}
)

func flat(v float64) waveform.Profile {
	p := waveform.NewProfile(waveform.Samples)
	for i := range p {
		p[i] = v
	}
	return p
}

func newTestRenderer(t *testing.T) (*image.RGBA, *Renderer) {
	t.Helper()

	img, r, err := NewImage(100, 100, Options{})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img, r
}

func blank(img *image.RGBA) bool {
	for _, b := range img.Pix {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestNew_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		new  func() error
		want error
	}{
		{
			name: "nil surface",
			new: func() error {
				_, err := New(nil, Options{})
				return err
			},
			want: ErrNoSurface,
		},
		{
			name: "empty surface",
			new: func() error {
				_, err := New(image.NewRGBA(image.Rect(0, 0, 0, 10)), Options{})
				return err
			},
			want: ErrInvalidSize,
		},
		{
			name: "zero height image",
			new: func() error {
				_, _, err := NewImage(10, 0, Options{})
				return err
			},
			want: ErrInvalidSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.new()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("error = %v, want it to wrap ErrConfiguration", err)
			}
		})
	}
}

func TestRender_NothingBelowMinOpacity(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	err := r.Render(Frame{Profile: flat(1), Opacity: MinOpacity, Progress: 1, Top: testTop, Bottom: testBottom})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !blank(img) {
		t.Error("surface not blank at minimum opacity")
	}
}

func TestRender_ClearsPreviousFrame(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	if err := r.Render(Frame{Profile: flat(1), Opacity: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if blank(img) {
		t.Fatal("first frame drew nothing")
	}

	if err := r.Render(Frame{Profile: flat(1), Opacity: 0}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !blank(img) {
		t.Error("surface not cleared by transparent frame")
	}
}

func TestRender_LoadingLine(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	// opacity does not affect the loading indicator
	if err := r.Render(Frame{Loading: true, Opacity: 0}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if a := img.RGBAAt(50, 49).A; a == 0 {
		t.Error("no loading line at mid height")
	}
	if a := img.RGBAAt(50, 10).A; a != 0 {
		t.Errorf("pixel far from the line has alpha %d", a)
	}
	if a := img.RGBAAt(50, 90).A; a != 0 {
		t.Errorf("pixel far from the line has alpha %d", a)
	}
}

func TestRender_NoProfileNotLoading(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	if err := r.Render(Frame{Opacity: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !blank(img) {
		t.Error("surface not blank without profile")
	}
}

func TestRender_AreaHeight(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	if err := r.Render(Frame{Profile: flat(1), Opacity: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// full scale reaches 80% of the height, so the top fifth stays empty
	if a := img.RGBAAt(50, 10).A; a != 0 {
		t.Errorf("pixel above the graph has alpha %d", a)
	}

	got := img.RGBAAt(50, 60)
	if d := int(got.A) - int(DefaultPassive.A); d < -2 || d > 2 {
		t.Errorf("passive alpha = %d, want about %d", got.A, DefaultPassive.A)
	}
}

func TestRender_OpacityScalesPassiveLayer(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	if err := r.Render(Frame{Profile: flat(1), Opacity: 0.5}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := int(DefaultPassive.A) / 2
	if d := int(img.RGBAAt(50, 60).A) - want; d < -2 || d > 2 {
		t.Errorf("alpha = %d, want about %d", img.RGBAAt(50, 60).A, want)
	}
}

func TestRender_ProgressClipsAccent(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	err := r.Render(Frame{
		Profile:  flat(1),
		Opacity:  1,
		Progress: 0.5,
		Top:      testTop,
		Bottom:   testBottom,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	played := img.RGBAAt(10, 60)
	if int(played.R) < int(played.G)+50 {
		t.Errorf("played pixel %v is not accent colored", played)
	}

	unplayed := img.RGBAAt(90, 60)
	if unplayed.R != unplayed.G {
		t.Errorf("unplayed pixel %v carries accent", unplayed)
	}
}

func TestRender_AccentIgnoresOpacity(t *testing.T) {
	t.Parallel()

	img, r := newTestRenderer(t)
	frame := Frame{Profile: flat(1), Opacity: 0.05, Progress: 1, Top: testTop, Bottom: testBottom}
	if err := r.Render(frame); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// gradient is solid near the top of the shape
	if a := img.RGBAAt(50, 22).A; a < 0xc0 {
		t.Errorf("accent alpha near top = %d, want nearly opaque", a)
	}
}

func TestRender_ShortProfile(t *testing.T) {
	t.Parallel()

	_, r := newTestRenderer(t)
	err := r.Render(Frame{Profile: waveform.Profile{1}, Opacity: 1})
	if !errors.Is(err, ErrShortProfile) {
		t.Errorf("error = %v, want ErrShortProfile", err)
	}
}

func TestRender_OffsetSurface(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(10, 10, 110, 110))
	r, err := New(img, Options{Passive: color.NRGBA{G: 0xff, A: 0xff}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Render(Frame{Profile: flat(1), Opacity: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := img.RGBAAt(60, 70); got.G < 0xf0 {
		t.Errorf("pixel inside graph = %v, want green", got)
	}
}

func TestVGradient(t *testing.T) {
	t.Parallel()

	g := &vgradient{
		top:    color.NRGBA{R: 200, A: 255},
		bottom: color.NRGBA{R: 0, A: 55},
		rect:   image.Rect(0, 0, 4, 11),
	}

	tests := []struct {
		y    int
		want color.NRGBA
	}{
		{y: 0, want: color.NRGBA{R: 200, A: 255}},
		{y: 5, want: color.NRGBA{R: 100, A: 155}},
		{y: 10, want: color.NRGBA{R: 0, A: 55}},
		{y: -3, want: color.NRGBA{R: 200, A: 255}},
	}
	for _, tt := range tests {
		if got := g.At(1, tt.y); got != tt.want {
			t.Errorf("At(1, %d) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	_, r, err := NewImage(800, 120, Options{})
	if err != nil {
		b.Fatal(err)
	}
	frame := Frame{
		Profile:  waveform.Generate(waveform.IntSeed(42)),
		Opacity:  1,
		Progress: 0.4,
		Top:      testTop,
		Bottom:   testBottom,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if err := r.Render(frame); err != nil {
			b.Fatal(err)
		}
	}
}
