// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared across packages.
package utils

// Lerp returns the linear interpolation (1-t)*a + t*b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// CubicInterpolate evaluates the Catmull-Rom segment between p1 and p2 at
// t in [0,1], with p0 and p3 as the outer neighbours.
func CubicInterpolate(p0, p1, p2, p3, t float32) float32 {
	c3 := 0.5 * (-p0 + 3*p1 - 3*p2 + p3)
	c2 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c1 := 0.5 * (p2 - p0)

	return ((c3*t+c2)*t+c1)*t + p1
}

// Float32ToInt16 converts a [-1,1] sample to 16-bit PCM, clamping out of
// range input. +1 maps to 32767.
func Float32ToInt16(x float32) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}
	return int16(x * 32767)
}
