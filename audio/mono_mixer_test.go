// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/internal/audiotest"
)

func TestMonoMixer_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 10, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.8
		}
		return 0.2
	})
	mono := NewMonoMixer(src)

	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
	if mono.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", mono.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_GenericChannelCount(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 3, 4, func(_ int, ch int) float32 {
		return float32(ch) * 0.3
	})
	mono := NewMonoMixer(src)

	buf := make([]float32, 4)
	n, _ := mono.ReadSamples(buf)
	for i := range n {
		if math.Abs(float64(buf[i]-0.3)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.3", i, buf[i])
		}
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 5, 0.25)
	mono := NewMonoMixer(src)

	buf := make([]float32, 8)
	n, _ := mono.ReadSamples(buf)
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}
	if buf[0] != 0.25 {
		t.Errorf("buf[0] = %v, want 0.25", buf[0])
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	if n, err := mono.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func TestChannelPicker(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 6, func(i int, ch int) float32 {
		if ch == 0 {
			return float32(i) / 10
		}
		return -1
	})

	picker, err := NewChannelPicker(src, 0)
	if err != nil {
		t.Fatalf("NewChannelPicker() error = %v", err)
	}

	buf := make([]float32, 6)
	n, err := picker.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}
	for i := range n {
		want := float32(i) / 10
		if buf[i] != want {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestChannelPicker_InvalidChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 6)
	for _, ch := range []int{-1, 2} {
		if _, err := NewChannelPicker(src, ch); !errors.Is(err, ErrInvalidChannel) {
			t.Errorf("NewChannelPicker(%d) error = %v, want ErrInvalidChannel", ch, err)
		}
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		mono := NewMonoMixer(audiotest.NewSineSource(44100, 2, 4096, 440))
		_, _ = mono.ReadSamples(buf)
	}
}
