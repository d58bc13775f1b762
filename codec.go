// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/waveform"
)

// DefaultMaxSamples caps a decode at 30 minutes of 48kHz mono.
const DefaultMaxSamples = 48000 * 60 * 30

// CodecOptions shape the analysis signal. Zero values keep the source rate,
// take the first channel and use DefaultMaxSamples.
type CodecOptions struct {
	// AnalysisRate resamples the mono signal before reduction; 0 disables.
	AnalysisRate int

	// MixDown averages all channels instead of taking the first one.
	MixDown bool

	// MaxSamples stops decoding after this many mono samples.
	MaxSamples int

	// BufSize is the read buffer in samples; 0 uses the source's hint.
	BufSize int
}

// Codec turns encoded audio bytes into a mono analysis signal. The format
// is sniffed from the leading bytes and decoded by the matching registry
// entry. A Codec is safe for concurrent use.
type Codec struct {
	registry *audio.Registry
	opts     CodecOptions
}

// NewCodec returns a Codec using reg, or DefaultRegistry when reg is nil.
func NewCodec(reg *audio.Registry, opts CodecOptions) *Codec {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = DefaultMaxSamples
	}
	return &Codec{registry: reg, opts: opts}
}

// Open sniffs data and returns the decoded multi-channel source along with
// its format key. The caller closes the source.
func (c *Codec) Open(data []byte) (audio.Source, string, error) {
	header := data[:min(len(data), audio.SniffLen)]

	format, dec, err := c.registry.Detect(header)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("%w: %s: %w", audio.ErrDecode, format, err)
	}

	return src, format, nil
}

// Decode returns the mono analysis signal of data. Every failure wraps
// audio.ErrDecode.
func (c *Codec) Decode(ctx context.Context, data []byte) ([]float32, error) {
	src, format, err := c.Open(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	samples, err := collectMono(ctx, src, c.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, format, err)
	}
	return samples, nil
}

// Profile decodes data and reduces it to a waveform.Profile.
func (c *Codec) Profile(ctx context.Context, data []byte) (waveform.Profile, error) {
	samples, err := c.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return waveform.Reduce(samples), nil
}

// ProfileFromSource reduces an already decoded source. It reads src to the
// end but does not close it.
func ProfileFromSource(ctx context.Context, src audio.Source, opts CodecOptions) (waveform.Profile, error) {
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = DefaultMaxSamples
	}

	samples, err := collectMono(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return waveform.Reduce(samples), nil
}

// collectMono builds the pipeline channel select -> resample and drains it.
func collectMono(ctx context.Context, src audio.Source, opts CodecOptions) ([]float32, error) {
	var mono audio.Source
	if opts.MixDown {
		mono = audio.NewMonoMixer(src)
	} else {
		picker, err := audio.NewChannelPicker(src, 0)
		if err != nil {
			return nil, err
		}
		mono = picker
	}

	if opts.AnalysisRate > 0 && opts.AnalysisRate != mono.SampleRate() {
		mono = audio.NewResampler(mono, opts.AnalysisRate)
	}

	bufSize := opts.BufSize
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}

	return audio.ReadAll(ctx, mono, bufSize, opts.MaxSamples)
}
