// SPDX-License-Identifier: EPL-2.0

//go:build nolibopusfile

package opus

import (
	"io"

	"github.com/ik5/audwave/audio"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	return nil, ErrUnavailable
}
