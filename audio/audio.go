// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Format keys used by the registry and the sniffer.
const (
	FormatWAV    = "wav"
	FormatAIFF   = "aiff"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg"
	FormatOpus   = "opus"
)

// SniffLen is the number of leading bytes Sniff looks at.
const SniffLen = 36

// Sniff guesses the container format from the first bytes of a stream.
func Sniff(header []byte) (string, bool) {
	switch {
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return FormatWAV, true
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return FormatAIFF, true
	case len(header) >= 4 && bytes.Equal(header[:4], []byte("OggS")):
		// first page carries the codec identification header at offset 28
		if len(header) >= 36 && bytes.Equal(header[28:36], []byte("OpusHead")) {
			return FormatOpus, true
		}
		return FormatVorbis, true
	case len(header) >= 3 && bytes.Equal(header[:3], []byte("ID3")):
		return FormatMP3, true
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return FormatMP3, true
	}

	return "", false
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	return out
}

// Detect sniffs header and returns the registered decoder for it.
func (r *Registry) Detect(header []byte) (string, Decoder, error) {
	format, ok := Sniff(header)
	if !ok {
		return "", nil, ErrUnknownFormat
	}

	d, ok := r.Get(format)
	if !ok {
		return format, nil, ErrNoDecoder
	}

	return format, d, nil
}
