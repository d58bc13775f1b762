// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Samples is the length of every profile produced by this package.
const Samples = 800

// SmoothRadius is the half-width of the moving-average window.
const SmoothRadius = 2

// Profile holds normalized amplitudes, index = position in the track.
type Profile []float64

// NewProfile returns an all-zero profile of length n.
func NewProfile(n int) Profile {
	return make(Profile, n)
}

// Clone returns an independent copy of p.
func (p Profile) Clone() Profile {
	if p == nil {
		return nil
	}
	out := make(Profile, len(p))
	copy(out, p)
	return out
}

// Max returns the largest value in p, or 0 for an empty profile.
func (p Profile) Max() float64 {
	var m float64
	for _, v := range p {
		if v > m {
			m = v
		}
	}
	return m
}

// IsZero reports whether every value is 0.
func (p Profile) IsZero() bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same length and identical values.
func (p Profile) Equal(q Profile) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if math.Float64bits(p[i]) != math.Float64bits(q[i]) {
			return false
		}
	}
	return true
}

// Smooth returns the symmetric moving average of p with the given radius.
// Windows are clamped at the edges: a partial window averages only the
// in-bounds neighbours.
func Smooth(p Profile, radius int) Profile {
	out := make(Profile, len(p))
	if radius <= 0 {
		copy(out, p)
		return out
	}

	for i := range p {
		lo := max(0, i-radius)
		hi := min(len(p)-1, i+radius)

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += p[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}

	return out
}
