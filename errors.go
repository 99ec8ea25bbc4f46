// SPDX-License-Identifier: EPL-2.0

package sublimix

import "errors"

// Pipeline error taxonomy.  Every failure returned by Render or Process
// wraps exactly one of these, with the underlying cause chained behind it,
// so callers can classify without string matching:
//
//	if errors.Is(err, sublimix.ErrInvalidConfiguration) { ... }
//
// All pipeline errors are terminal for the job.  Inputs are deterministic,
// so retrying reproduces the same failure; retry policy belongs to the
// caller, not here.
var (
	// ErrInvalidConfiguration: carrier frequency out of range, non-positive
	// binaural frequencies, non-finite gains, or a sample rate that cannot
	// represent the requested carrier band.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMalformedInput: a decoded buffer with zero length, non-finite
	// samples, an invalid channel count, or mismatched input sample rates.
	ErrMalformedInput = errors.New("malformed input")

	// ErrChannelMismatch: track channel layouts that cannot be reconciled
	// by mono duplication.
	ErrChannelMismatch = errors.New("channel mismatch")

	// ErrExportFailure: the final buffer could not be serialized into a
	// valid container.
	ErrExportFailure = errors.New("export failure")
)
