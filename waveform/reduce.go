// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Reduce downsamples decoded PCM to a Samples-long profile.
func Reduce(samples []float32) Profile {
	return ReduceN(samples, Samples)
}

// ReduceN splits samples into n contiguous blocks of floor(len/n) values,
// takes the mean absolute amplitude of each, normalizes by the loudest block
// and smooths the result. Trailing samples past n*blockSize are ignored.
// Input shorter than n (block size 0) yields an all-zero profile, as does
// silence. Non-finite samples count as 0.
func ReduceN(samples []float32, n int) Profile {
	if n <= 0 {
		return Profile{}
	}

	out := NewProfile(n)
	block := len(samples) / n
	if block == 0 {
		return out
	}

	var peak float64
	for i := range n {
		var sum float64
		for _, s := range samples[i*block : (i+1)*block] {
			v := math.Abs(float64(s))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			sum += v
		}

		out[i] = sum / float64(block)
		peak = max(peak, out[i])
	}

	if peak == 0 {
		peak = 1
	}
	for i := range out {
		out[i] /= peak
	}

	return Smooth(out, SmoothRadius)
}
