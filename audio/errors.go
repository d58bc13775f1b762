// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode wraps every failure to turn encoded bytes into samples.
	ErrDecode = errors.New("audio decode failed")

	// ErrUnknownFormat is returned when the container cannot be sniffed.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrNoDecoder is returned when the sniffed format has no registered decoder.
	ErrNoDecoder = errors.New("no decoder registered for format")

	// ErrInvalidChannel is returned when a channel index is out of range.
	ErrInvalidChannel = errors.New("channel index out of range")
)
