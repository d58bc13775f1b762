// SPDX-License-Identifier: EPL-2.0

//go:build !nolibopusfile

package opus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audwave/audio"
	hopus "gopkg.in/hraban/opus.v2"
)

// streamReader is the part of opus.Stream used by source, for testing.
type streamReader interface {
	ReadFloat32(pcm []float32) (int, error)
	Close() error
}

type source struct {
	stream   streamReader
	channels int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 5760 * s.channels } // 120ms at 48kHz

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples returns interleaved values; the binding counts per channel.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		return 0, nil
	}

	n, err := s.stream.ReadFloat32(dst[:len(dst)-len(dst)%s.channels])
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n * s.channels, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading opus data: %w", err)
	}

	channels, err := headChannels(data)
	if err != nil {
		return nil, err
	}

	stream, err := hopus.NewStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{stream: stream, channels: channels}, nil
}
