// SPDX-License-Identifier: EPL-2.0

// Package opus decodes Ogg Opus streams with gopkg.in/hraban/opus.v2.
//
// The binding links against libopus and libopusfile through cgo. Building
// with the nolibopusfile tag (the same tag the binding honours) drops the
// stream decoder; Decode then fails with ErrUnavailable and callers fall
// back like for any other decode error.
//
// Opus always decodes at 48kHz. The binding does not expose the channel
// count, so it is read from the OpusHead packet on the first Ogg page.
package opus

import "errors"

// SampleRate is the fixed Opus output rate.
const SampleRate = 48000

var (
	// ErrNotOpus indicates the stream does not start with an OpusHead page.
	ErrNotOpus = errors.New("not an Ogg Opus stream")

	// ErrUnavailable is returned when built without libopusfile.
	ErrUnavailable = errors.New("opus decoding not compiled in")
)

// headChannels returns the channel count declared by the OpusHead packet at
// the start of an Ogg stream.
func headChannels(data []byte) (int, error) {
	// 27-byte page header, 1 segment table entry, then the packet
	const head = 28
	if len(data) < head+10 || string(data[:4]) != "OggS" || string(data[head:head+8]) != "OpusHead" {
		return 0, ErrNotOpus
	}

	channels := int(data[head+9])
	if channels == 0 {
		return 0, ErrNotOpus
	}
	return channels, nil
}
