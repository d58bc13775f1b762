// SPDX-License-Identifier: EPL-2.0

package visualizer

import "errors"

var (
	// ErrEmptySource is logged when a load names no source.
	ErrEmptySource = errors.New("empty source")

	// ErrNoFetcher is logged when a remote source is loaded without a Fetcher.
	ErrNoFetcher = errors.New("no fetcher configured")

	// ErrNoDecoder is logged when fetched bytes cannot be decoded for lack of a Decoder.
	ErrNoDecoder = errors.New("no decoder configured")

	// ErrRunning is returned by Driver.Start when the loop is already running.
	ErrRunning = errors.New("driver already running")
)
