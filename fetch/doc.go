// SPDX-License-Identifier: EPL-2.0

// Package fetch loads encoded audio for analysis.
//
// Remote sources are fetched with GET, each attempt bounded by a timeout.
// Transport errors, 429 and 5xx answers are retried with exponential
// backoff, honoring Retry-After. Local paths and file URLs are read
// directly. Every error wraps ErrFetch.
package fetch
