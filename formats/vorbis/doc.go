// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Channel count and sample rate come from the identification header;
// samples are float32 in [-1,1], interleaved.
//
//	src, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
package vorbis
