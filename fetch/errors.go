// SPDX-License-Identifier: EPL-2.0

package fetch

import "errors"

var (
	// ErrFetch wraps every failure returned by Client.Fetch.
	ErrFetch = errors.New("fetch failed")

	// ErrTooLarge means the body exceeded Options.MaxBytes.
	ErrTooLarge = errors.New("response body too large")

	// ErrStatus means the server answered with a non-2xx status.
	ErrStatus = errors.New("unexpected status")

	// ErrEmptyURL means Fetch was called without a location.
	ErrEmptyURL = errors.New("empty url")
)
