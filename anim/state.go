// SPDX-License-Identifier: EPL-2.0

package anim

import (
	"image/color"
	"math"

	"github.com/ik5/audwave/utils"
	"github.com/ik5/audwave/waveform"
)

// Per-tick decay rates and snap thresholds.
const (
	OpacityRate = 0.1
	OpacitySnap = 0.01

	ProfileRate = 0.15
	ProfileSnap = 0.001

	ColorRate      = 0.05
	ColorThreshold = 1.0

	// BottomAlpha is the opacity of the lower gradient stop.
	BottomAlpha = 0.1
)

// State holds the displayed (current) and goal (target) values of the
// waveform animation. It is not safe for concurrent use; the owner calls
// the setters and Advance from a single tick.
type State struct {
	opacity       float64
	targetOpacity float64

	current waveform.Profile
	target  waveform.Profile

	color       [3]float64
	targetColor [3]float64

	top    color.NRGBA
	bottom color.NRGBA
}

// NewState starts fully transparent, without a profile, showing accent.
func NewState(accent RGB) *State {
	s := &State{}
	s.color = channels(accent)
	s.targetColor = s.color
	s.refreshColors()
	return s
}

func channels(c RGB) [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// SetTargetOpacity sets the opacity goal, clamped to [0,1].
func (s *State) SetTargetOpacity(v float64) {
	s.targetOpacity = utils.Clamp(v, 0, 1)
}

// SetTargetProfile replaces the profile goal wholesale. p is copied.
func (s *State) SetTargetProfile(p waveform.Profile) {
	s.target = p.Clone()
}

// SetTargetColor retargets the accent without touching profile or opacity.
func (s *State) SetTargetColor(c RGB) {
	s.targetColor = channels(c)
}

// Advance moves every current value one step toward its target and reports
// whether anything changed.
func (s *State) Advance() bool {
	changed := s.advanceOpacity()
	if s.advanceProfile() {
		changed = true
	}
	if s.advanceColor() {
		changed = true
	}
	return changed
}

func (s *State) advanceOpacity() bool {
	diff := s.targetOpacity - s.opacity
	if diff == 0 {
		return false
	}

	if math.Abs(diff) <= OpacitySnap {
		s.opacity = s.targetOpacity
	} else {
		s.opacity += diff * OpacityRate
	}
	return true
}

func (s *State) advanceProfile() bool {
	if s.target == nil {
		return false
	}

	changed := false
	// a new load may change the length; never interpolate across lengths
	if len(s.current) != len(s.target) {
		s.current = waveform.NewProfile(len(s.target))
		changed = true
	}

	for i, goal := range s.target {
		diff := goal - s.current[i]
		if diff == 0 {
			continue
		}

		changed = true
		if math.Abs(diff) <= ProfileSnap {
			s.current[i] = goal
		} else {
			s.current[i] += diff * ProfileRate
		}
	}

	return changed
}

func (s *State) advanceColor() bool {
	changed := false
	for i := range s.color {
		if math.Abs(s.color[i]-s.targetColor[i]) > ColorThreshold {
			s.color[i] = utils.Lerp(s.color[i], s.targetColor[i], ColorRate)
			changed = true
		}
	}

	if changed {
		s.refreshColors()
	}
	return changed
}

func (s *State) refreshColors() {
	c := s.Color()
	s.top = c.NRGBA(0xff)
	s.bottom = c.NRGBA(uint8(math.Round(BottomAlpha * 0xff)))
}

// Opacity returns the current opacity.
func (s *State) Opacity() float64 { return s.opacity }

// TargetOpacity returns the opacity goal.
func (s *State) TargetOpacity() float64 { return s.targetOpacity }

// Profile returns the displayed profile. Callers must not modify it.
func (s *State) Profile() waveform.Profile { return s.current }

// Target returns the profile goal. Callers must not modify it.
func (s *State) Target() waveform.Profile { return s.target }

// HasProfile reports whether a target profile was ever set.
func (s *State) HasProfile() bool { return s.target != nil }

// Color returns the current accent rounded to whole channels.
func (s *State) Color() RGB {
	return RGB{
		R: uint8(math.Round(utils.Clamp(s.color[0], 0, 255))),
		G: uint8(math.Round(utils.Clamp(s.color[1], 0, 255))),
		B: uint8(math.Round(utils.Clamp(s.color[2], 0, 255))),
	}
}

// Colors returns the derived gradient stops: solid top, faint bottom.
func (s *State) Colors() (top, bottom color.NRGBA) {
	return s.top, s.bottom
}

// Settled reports whether Advance has nothing left to do.
func (s *State) Settled() bool {
	if s.opacity != s.targetOpacity {
		return false
	}
	if len(s.current) != len(s.target) {
		return false
	}
	for i := range s.target {
		if s.current[i] != s.target[i] {
			return false
		}
	}
	for i := range s.color {
		if math.Abs(s.color[i]-s.targetColor[i]) > ColorThreshold {
			return false
		}
	}
	return true
}
