// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// GenerateBinaural synthesizes a two-channel sine pair for frequency
// entrainment: the left channel runs at leftHz, the right at rightHz, and
// the listener perceives a beat at |rightHz - leftHz|.
//
// Both channels are evaluated analytically from sample zero over the whole
// requested length, so the phase is continuous everywhere and the beat
// frequency is exact regardless of buffer length.  The output always has
// two channels and unit peak amplitude; the caller applies gain.
func GenerateBinaural(leftHz, rightHz float64, frames, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidTargetLength, frames)
	}
	nyquist := float64(sampleRate) / 2
	for _, hz := range []float64{leftHz, rightHz} {
		if hz <= 0 || math.IsNaN(hz) || hz >= nyquist {
			return nil, fmt.Errorf("%w: got %g Hz at %d Hz sample rate", ErrInvalidTone, hz, sampleRate)
		}
	}

	out := NewBuffer(sampleRate, 2, frames)

	leftStep := 2 * math.Pi * leftHz / float64(sampleRate)
	rightStep := 2 * math.Pi * rightHz / float64(sampleRate)

	for f := 0; f < frames; f++ {
		n := float64(f)
		out.Data[2*f] = float32(math.Sin(leftStep * n))
		out.Data[2*f+1] = float32(math.Sin(rightStep * n))
	}

	return out, nil
}
