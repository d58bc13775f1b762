// SPDX-License-Identifier: EPL-2.0

package audwave_test

import (
	"context"
	"fmt"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/internal/audiotest"
)

// Example_profile decodes an in-memory WAV file into an amplitude profile.
func Example_profile() {
	// two seconds of a tone that fades in
	data := audiotest.SineWAV(8000, 2, 220, func(pos float64) float64 { return pos })

	codec := audwave.NewCodec(nil, audwave.CodecOptions{})
	profile, err := codec.Profile(context.Background(), data)
	if err != nil {
		fmt.Printf("profile error: %v\n", err)
		return
	}

	fmt.Println(len(profile), profile[0] < profile[len(profile)-1])
	// Output: 800 true
}

// Example_unknownFormat shows that undecodable input is reported, not guessed.
func Example_unknownFormat() {
	codec := audwave.NewCodec(nil, audwave.CodecOptions{})
	_, err := codec.Decode(context.Background(), []byte("definitely not audio"))

	fmt.Println(err)
	// Output: audio decode failed: unknown audio format
}
