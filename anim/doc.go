// SPDX-License-Identifier: EPL-2.0

// Package anim holds the animated display state of a waveform: opacity,
// amplitude profile and accent color, each with a current and a target value.
//
// Advance moves every current value a fixed fraction toward its target,
// which gives an exponential ease-out when called at a steady frame rate:
//
//	opacity  += (target - opacity) * 0.1   snap when |diff| <= 0.01
//	sample_i += (target_i - sample_i) * 0.15 snap when |diff| <= 0.001
//	channel  lerp(channel, target, 0.05)    only while |diff| > 1
//
// The decay is per tick, not per second; the caller owns the cadence.
package anim
