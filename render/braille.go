// SPDX-License-Identifier: EPL-2.0

package render

import (
	"math"
	"strings"

	"github.com/ik5/audwave/waveform"
)

const brailleBase = 0x2800

// brailleBits maps a dot at (column, row) inside a cell to its bit:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille draws p as a filled area graph of cols x rows terminal cells.
// Every cell is a 2x4 dot grid, so the resolution is 2*cols by 4*rows.
// Samples are bucketed by peak so short transients stay visible.
func Braille(p waveform.Profile, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	dotCols := cols * 2
	dotRows := rows * 4
	levels := bucket(p, dotCols)

	out := make([]string, rows)
	var line strings.Builder
	for row := range rows {
		line.Reset()
		for col := range cols {
			var pattern uint
			for dx := range 2 {
				level := levels[col*2+dx] * HeightScale * float64(dotRows)
				for dy := range 4 {
					fromBottom := float64(dotRows - 1 - (row*4 + dy))
					if level > fromBottom {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}
			line.WriteRune(rune(brailleBase + pattern))
		}
		out[row] = line.String()
	}

	return out
}

// PlayedColumns returns how many of cols cells are covered by progress.
func PlayedColumns(cols int, progress float64) int {
	return int(math.Round(float64(cols) * clamp01(progress)))
}

func bucket(p waveform.Profile, n int) []float64 {
	out := make([]float64, n)
	if len(p) == 0 {
		return out
	}

	for i := range n {
		lo := i * len(p) / n
		hi := (i + 1) * len(p) / n
		if hi <= lo {
			hi = lo + 1
		}

		peak := 0.0
		for _, v := range p[lo:hi] {
			peak = max(peak, clamp01(v))
		}
		out[i] = peak
	}

	return out
}
