// SPDX-License-Identifier: EPL-2.0

// Package audwave turns audio into an animated waveform display.
//
// The engine takes encoded audio bytes, decodes them through a format
// registry, reduces the signal to a fixed-length amplitude profile and
// animates that profile as a progress-masked area graph. When the audio
// cannot be fetched or decoded, a deterministic procedural profile takes
// its place so the display never stays empty.
//
// # Packages
//
//   - audio: Source interface, format sniffing Registry, Resampler,
//     MonoMixer and ChannelPicker
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/opus:
//     decoders backed by go-audio, go-mp3, oggvorbis and libopusfile
//   - waveform: Reduce (signal to profile) and Generate (seeded fallback)
//   - anim: eased opacity, profile and accent color
//   - render: area graph rasterizer and braille terminal preview
//   - fetch: HTTP and local file loader with retries
//   - visualizer: load state machine, tick loop, progress and seeking
//   - config: environment configuration
//
// # Quick Start
//
// Decode bytes into a profile with the bundled decoders:
//
//	codec := audwave.NewCodec(nil, audwave.CodecOptions{})
//	profile, err := codec.Profile(ctx, data)
//
// Or drive a full visualizer:
//
//	img, r, _ := render.NewImage(800, 120, render.Options{})
//	v, _ := visualizer.New(r, visualizer.Options{
//	    Fetcher: fetch.New(fetch.Options{}),
//	    Decoder: audwave.NewCodec(nil, audwave.CodecOptions{}),
//	})
//	v.Load(ctx, visualizer.LoadRequest{Source: "https://example.com/track.mp3"})
//
//	d := visualizer.NewDriver(v, time.Second/60, nil)
//	d.Start(ctx)
//	defer d.Stop()
//
// img now holds the latest frame.
//
// # Decoding
//
// Codec sniffs the container from the first audio.SniffLen bytes. By
// default only the first channel is analysed; CodecOptions.MixDown averages
// all channels instead, and CodecOptions.AnalysisRate resamples before the
// reduction to bound the work for long tracks.
package audwave
