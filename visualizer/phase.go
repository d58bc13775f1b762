// SPDX-License-Identifier: EPL-2.0

package visualizer

// Phase is the load state of a Visualizer.
type Phase int

const (
	// Empty means nothing was ever loaded.
	Empty Phase = iota
	// Loading means a request is in flight and nothing is shown.
	Loading
	// Sinking means the previous profile is easing to zero before the next
	// one may rise.
	Sinking
	// Decoded means the profile of real audio is rising.
	Decoded
	// FallbackGenerated means a procedural profile is rising.
	FallbackGenerated
	// Ready means the animation settled on the loaded profile.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Loading:
		return "loading"
	case Sinking:
		return "sinking"
	case Decoded:
		return "decoded"
	case FallbackGenerated:
		return "fallback"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// showing reports whether a profile is on screen in this phase.
func (p Phase) showing() bool {
	return p == Sinking || p == Decoded || p == FallbackGenerated || p == Ready
}
