// SPDX-License-Identifier: EPL-2.0

package visualizer

import (
	"context"
	"errors"
	"image"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ik5/audwave/render"
)

var errUnreachable = errors.New("dial tcp: network is unreachable")

type fakeSurface struct {
	mtx    sync.Mutex
	bounds image.Rectangle
	frames []render.Frame
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{bounds: image.Rect(0, 0, w, h)}
}

func (s *fakeSurface) Render(f render.Frame) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	f.Profile = f.Profile.Clone()
	s.frames = append(s.frames, f)
	return nil
}

func (s *fakeSurface) Bounds() image.Rectangle { return s.bounds }

func (s *fakeSurface) last() render.Frame {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.frames[len(s.frames)-1]
}

type fakeClock struct {
	mtx sync.Mutex
	t   time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mtx.Lock()
	c.t = c.t.Add(d)
	c.mtx.Unlock()
}

type fetchFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

type decodeFunc func(ctx context.Context, data []byte) ([]float32, error)

func (f decodeFunc) Decode(ctx context.Context, data []byte) ([]float32, error) { return f(ctx, data) }

// unreachable fails every fetch like a dead network.
var unreachable = fetchFunc(func(context.Context, string) ([]byte, error) {
	return nil, errUnreachable
})

// echoFetch returns the url as the payload.
var echoFetch = fetchFunc(func(_ context.Context, url string) ([]byte, error) {
	return []byte(url), nil
})

// levelDecoder decodes a payload into 1600 samples whose first half has
// the amplitude of the payload's first byte / 255 and whose second half is
// full scale.
var levelDecoder = decodeFunc(func(_ context.Context, data []byte) ([]float32, error) {
	if len(data) == 0 {
		return nil, errors.New("empty payload")
	}
	out := make([]float32, 1600)
	for i := range out {
		if i < 800 {
			out[i] = float32(data[0]) / 255
		} else {
			out[i] = 1
		}
	}
	return out, nil
})

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type fixture struct {
	v       *Visualizer
	surface *fakeSurface
	clock   *fakeClock
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	f := &fixture{surface: newFakeSurface(200, 40), clock: newFakeClock()}
	opts.Now = f.clock.Now
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}

	v, err := New(f.surface, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })

	f.v = v
	return f
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	if err := f.v.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

// settle ticks until the visualizer is Ready.
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	for range 500 {
		f.tick(t)
		if f.v.Phase() == Ready {
			return
		}
	}
	t.Fatalf("not ready after 500 ticks, phase %v", f.v.Phase())
}
