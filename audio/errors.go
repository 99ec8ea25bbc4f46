// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyBuffer         = errors.New("buffer has no samples")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidChannelCount = errors.New("channel count must be 1 or 2")
	ErrRaggedFrames        = errors.New("sample count is not a multiple of channel count")
	ErrNonFiniteSample     = errors.New("buffer contains non-finite samples")

	ErrInvalidCarrier  = errors.New("carrier frequency must be positive")
	ErrCarrierAliasing = errors.New("sample rate too low for carrier band")
	ErrInvalidTone     = errors.New("tone frequency must be positive and below Nyquist")

	ErrInvalidTargetLength = errors.New("target length must be positive")
	ErrInvalidTargetRate   = errors.New("target sample rate must be positive")

	ErrLengthMismatch     = errors.New("tracks differ in frame count")
	ErrSampleRateMismatch = errors.New("tracks differ in sample rate")
	ErrChannelMismatch    = errors.New("tracks differ in channel layout")
)
