// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/ik5/audwave/utils"
)

// WAV16 encodes interleaved [-1,1] samples as a canonical 16-bit PCM WAV file.
func WAV16(sampleRate, channels int, samples []float32) []byte {
	const bitsPerSample = 16

	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	buf := bytes.NewBuffer(make([]byte, 0, len(header)+dataSize))
	buf.Write(header)

	pcm := make([]byte, 2)
	for _, s := range samples {
		binary.LittleEndian.PutUint16(pcm, uint16(utils.Float32ToInt16(s)))
		buf.Write(pcm)
	}

	return buf.Bytes()
}

// SineWAV returns seconds of a mono sine tone whose amplitude follows env
// (evaluated on [0,1) across the file).
func SineWAV(sampleRate int, seconds float64, freq float64, env func(pos float64) float64) []byte {
	total := int(float64(sampleRate) * seconds)
	samples := make([]float32, total)
	for i := range samples {
		pos := float64(i) / float64(total)
		t := float64(i) / float64(sampleRate)
		samples[i] = float32(env(pos) * math.Sin(2*math.Pi*freq*t))
	}

	return WAV16(sampleRate, 1, samples)
}
