// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF/AIFC files with github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is supported; samples are normalized to
// float32 in [-1,1] according to the bit depth. Readers that cannot seek are
// buffered in memory because the underlying decoder jumps between chunks.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF stream
//	}
package aiff
