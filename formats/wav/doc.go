// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into an audio.Source.
//
// Parsing is delegated to github.com/go-audio/wav, which walks every chunk
// (LIST, INFO, bext, ...) before the data chunk, so files written by DAWs and
// tagging tools decode as well as canonical 44-byte headers.
//
// # Supported Formats
//
//   - Integer PCM, 8/16/24/32-bit (WAVE_FORMAT_PCM and WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count and sample rate
//
// IEEE float WAV files are rejected with ErrOnlyPCMSupported.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile) ...
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Readers that cannot seek are buffered in memory first.
package wav
