// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// ReadAll drains src into a single slice. Reading stops early once limit
// values were collected (limit <= 0 means no limit) or ctx is done.
func ReadAll(ctx context.Context, src Source, bufSize int, limit int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}
	// keep reads frame aligned
	if ch := src.Channels(); ch > 1 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	out := make([]float32, 0, bufSize*4)
	buf := make([]float32, bufSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		// a source that keeps returning nothing would spin forever
		if n == 0 {
			return out, nil
		}
	}
}
