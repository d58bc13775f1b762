// SPDX-License-Identifier: EPL-2.0

// Package waveform builds fixed-length amplitude profiles.
//
// A Profile is a sequence of Samples values in [0,1], one per slice of the
// track, used as the height map of the waveform graph. Two producers exist:
//
//   - Reduce turns decoded PCM into a profile: mean absolute amplitude per
//     block, normalized to the loudest block, then smoothed.
//   - Generate derives a stable pseudo-waveform from a Seed when the audio
//     cannot be fetched or decoded. The same seed always produces the same
//     profile, so a track keeps its fallback shape across runs without any
//     stored state.
//
// Both functions are total: empty or degenerate input yields a zero or
// neutral profile instead of an error.
//
//	p := waveform.Reduce(samples)
//	if silent(p) {
//	    p = waveform.Generate(waveform.TextSeed(trackURL))
//	}
package waveform
