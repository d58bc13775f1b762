// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audwave/utils"
)

// Resampler streams src at a different sample rate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass is applied to incoming frames to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames per output frame

	// hist holds frames t-1, t0, t+1, t+2; pos is the fractional position
	// between hist[1] and hist[2].
	hist   [4][]float32
	real   [4]bool
	pos    float64
	primed bool
	eof    bool

	frame []float32

	lowpass bool
	lpState []float32
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     step,
		frame:    make([]float32, channels),
		lowpass:  step > 1.0,
		lpState:  make([]float32, channels),
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads one frame into dst, reporting false at end of stream.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		r.eof = true
		return false, nil
	}

	for c := range r.channels {
		v := r.frame[c]
		if r.lowpass {
			v = lowpassAlpha*v + (1-lowpassAlpha)*r.lpState[c]
			r.lpState[c] = v
		}
		dst[c] = v
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	// seed the filter with the first frame to avoid a warm-up ramp
	if r.lowpass {
		copy(r.lpState, r.frame)
		copy(r.hist[1], r.frame)
	}
	copy(r.hist[0], r.hist[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// fill loads slot i from the source, duplicating the previous slot at EOF.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.hist[i])
	if err != nil {
		return err
	}
	r.real[i] = ok
	if !ok {
		copy(r.hist[i], r.hist[i-1])
	}
	return nil
}

func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	if err := r.fill(3); err != nil {
		return err
	}
	if !r.real[1] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}
	if !r.real[1] {
		return 0, io.EOF
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
