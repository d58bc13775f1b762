// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	// ErrConfiguration is the parent of every construction error.
	ErrConfiguration = errors.New("render: invalid configuration")

	// ErrNoSurface means no destination image was supplied.
	ErrNoSurface = errors.New("render: no drawing surface")

	// ErrInvalidSize means the destination has zero width or height.
	ErrInvalidSize = errors.New("render: surface has no area")

	// ErrShortProfile means the profile has fewer than two samples.
	ErrShortProfile = errors.New("render: profile needs at least two samples")
)
