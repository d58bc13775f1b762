// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/ik5/audwave/utils"
)

// LCG constants (the classic 233280 modulus generator).
const (
	lcgModulus    = 233280
	lcgMultiplier = 9301
	lcgIncrement  = 49297
)

const (
	walkStep     = 0.1
	walkFloor    = 0.1
	walkCeil     = 0.9
	fadeShare    = 0.1 // fraction of the profile ramped at each end
	peakExponent = 1.5
)

// Seed identifies a fallback waveform. The zero Seed is valid and equals
// IntSeed(0).
type Seed struct {
	value int64
	text  string
	isStr bool
}

// IntSeed seeds generation with n directly.
func IntSeed(n int64) Seed {
	return Seed{value: n}
}

// TextSeed seeds generation with the sum of the UTF-16 code units of s, so
// identifiers shared with web clients map to the same shape.
func TextSeed(s string) Seed {
	var sum int64
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int64(u)
	}
	return Seed{value: sum, text: s, isStr: true}
}

// Value returns the integer the LCG is started from.
func (s Seed) Value() int64 { return s.value }

// IsText reports whether s came from TextSeed.
func (s Seed) IsText() bool { return s.isStr }

func (s Seed) String() string {
	if s.isStr {
		return strconv.Quote(s.text)
	}
	return strconv.FormatInt(s.value, 10)
}

// LCG is the deterministic generator behind Generate.
type LCG struct {
	state int64
}

// NewLCG starts a generator at seed mod 233280 (kept non-negative).
func NewLCG(seed int64) *LCG {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &LCG{state: state}
}

// Next advances the generator and returns a value in [0,1).
func (g *LCG) Next() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / lcgModulus
}

// Generate returns the Samples-long fallback profile for seed.
func Generate(seed Seed) Profile {
	return GenerateN(seed, Samples)
}

// GenerateN synthesizes n values by a clamped random walk, fades both ends
// in and out over 10% of the length, sharpens with (v*env)^1.5 and smooths.
func GenerateN(seed Seed, n int) Profile {
	if n <= 0 {
		return Profile{}
	}

	rng := NewLCG(seed.value)
	out := NewProfile(n)

	y := rng.Next()
	for i := range out {
		y += (rng.Next() - 0.5) * walkStep
		y = utils.Clamp(y, walkFloor, walkCeil)
		out[i] = y
	}

	fade := float64(n) * fadeShare
	for i := range out {
		env := 1.0
		switch {
		case float64(i) < fade:
			env = float64(i) / fade
		case float64(i) >= float64(n)-fade:
			env = float64(n-1-i) / fade
		}
		out[i] = math.Pow(out[i]*env, peakExponent)
	}

	return Smooth(out, SmoothRadius)
}

// IsZero reports whether s is the zero Seed (equivalently IntSeed(0)).
func (s Seed) IsZero() bool {
	return !s.isStr && s.value == 0
}
