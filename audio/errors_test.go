// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrInvalidDstSize, ErrDecode, ErrUnknownFormat, ErrNoDecoder, ErrInvalidChannel}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrDecode_Wrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %s: %w", ErrDecode, FormatMP3, ErrUnknownFormat)
	if !errors.Is(err, ErrDecode) {
		t.Error("errors.Is() failed for wrapped ErrDecode")
	}
	if !errors.Is(err, ErrUnknownFormat) {
		t.Error("errors.Is() failed for the inner cause")
	}
}
