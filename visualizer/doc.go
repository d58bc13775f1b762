// SPDX-License-Identifier: EPL-2.0

// Package visualizer runs a waveform display through its load phases:
//
//	Empty -> Loading -> Decoded | FallbackGenerated -> Ready
//
// A load that arrives while a profile is shown first passes through
// Sinking: the shown profile eases to zero for the sink delay before the
// new one may rise.
//
// Loads run on their own goroutine. Each accepted request gets a
// generation number and a UUID; a completion is applied by Tick only when
// its generation is still current, so a slow response to an old request
// can never replace a newer one. Superseded loads are canceled through
// their context.
//
// Fetch or decode failures are not errors to the caller. The visualizer
// logs them and shows a procedural profile seeded from the request.
//
// Tick is the single entry point that mutates the animation. Call it at a
// steady rate, directly or through a Driver.
package visualizer
