// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-level building blocks shared by the
// decoders and the analysis pipeline.
//
// # Source
//
// Every decoder produces a Source of interleaved float32 samples in
// [-1, 1]. Processors wrap a Source and are Sources themselves, so they
// chain:
//
//	picker, _ := audio.NewChannelPicker(src, 0)
//	mono := audio.NewResampler(picker, 8000)
//	samples, err := audio.ReadAll(ctx, mono, 4096, 0)
//
// ReadSamples returns the number of float32 values written, not frames.
// io.EOF ends the stream.
//
// # Channels
//
// ChannelPicker keeps one channel, MonoMixer averages all of them. Picking
// the first channel is what the waveform analysis uses by default: it is
// cheaper and keeps transients that averaging out-of-phase channels would
// cancel.
//
// # Resampling
//
// Resampler converts the rate with cubic interpolation over a four frame
// history and applies a one-pole lowpass when downsampling.
//
// # Format detection
//
// Sniff recognises WAV, AIFF, Ogg Vorbis, Ogg Opus and MP3 from their
// first SniffLen bytes. A Registry maps the format keys to decoders, and
// Detect combines both:
//
//	reg := audio.NewRegistry()
//	reg.Register(audio.FormatWAV, wav.Decoder{})
//	format, dec, err := reg.Detect(header)
//
// Failures to decode wrap ErrDecode; unrecognised input is ErrUnknownFormat.
package audio
