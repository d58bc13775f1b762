// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages all channels of src into a single channel.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	frames, err := readFrames(m.src, &m.tmp, len(dst))
	if frames == 0 {
		return 0, err
	}

	inv := float32(1.0) / float32(channels)
	for f := range frames {
		var sum float32
		base := f * channels
		for c := range channels {
			sum += m.tmp[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}

// ChannelPicker exposes a single channel of an interleaved source.
type ChannelPicker struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelPicker returns a mono view of channel ch of src.
func NewChannelPicker(src Source, ch int) (*ChannelPicker, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, src.Channels())
	}

	return &ChannelPicker{
		src:     src,
		channel: ch,
		tmp:     make([]float32, 4096),
	}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) BufSize() int    { return p.src.BufSize() }
func (p *ChannelPicker) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		return p.src.ReadSamples(dst)
	}

	frames, err := readFrames(p.src, &p.tmp, len(dst))
	for f := range frames {
		dst[f] = p.tmp[f*channels+p.channel]
	}

	return frames, err
}

// readFrames reads up to maxFrames whole frames of src into *tmp, growing it
// when needed, and returns the number of complete frames read.
func readFrames(src Source, tmp *[]float32, maxFrames int) (int, error) {
	channels := src.Channels()
	needed := maxFrames * channels

	if cap(*tmp) < needed {
		*tmp = make([]float32, max(needed, 8192))
	}
	*tmp = (*tmp)[:needed]

	n, err := src.ReadSamples(*tmp)
	if n == 0 {
		return 0, err
	}

	return n / channels, err
}
