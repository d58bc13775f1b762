// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNoChannels is returned for streams whose identification header
// declares zero channels.
var ErrNoChannels = errors.New("vorbis stream has no channels")
