// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwave/audio"
)

type mockOggReader struct {
	sampleRate int
	channels   int
	data       []float32
	offset     int
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really a vorbis stream")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, data: in},
		sampleRate: 48000,
		channels:   2,
		bufSize:    4096,
	}

	// ReadAll rounds the odd buffer up to whole frames
	got, err := audio.ReadAll(context.Background(), src, 5, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("got %d samples, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestSource_TinyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 2, data: []float32{1, 1}}, channels: 2}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(len 1) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt page")
	src := &source{dec: &mockOggReader{channels: 1, err: boom}, channels: 1}

	if _, err := audio.ReadAll(context.Background(), src, 16, 0); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want corrupt page", err)
	}
}
