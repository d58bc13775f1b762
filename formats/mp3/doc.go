// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels: go-mp3 duplicates mono streams
// into stereo. Samples come out as float32 in [-1,1] at the file's native
// sample rate (typically 44.1kHz or 48kHz).
//
//	src, err := mp3.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    // not an MP3 stream or truncated header
//	}
//	left, _ := audio.NewChannelPicker(src, 0)
package mp3
