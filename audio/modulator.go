// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Modulate shifts buf into the carrier band using double-sideband amplitude
// modulation: every sample is multiplied by a cosine at carrierHz evaluated
// on the buffer's own timebase.
//
// The spectrum of the input is copied to carrierHz with sidebands extending
// plus/minus the occupied bandwidth of the input, so the harmonic content
// survives intact, merely relocated in frequency.  bandwidthHz is the
// bandwidth the caller assumes the input occupies (4 kHz is a safe bound for
// speech) and is only used for the sampling-theorem check:
//
//	SampleRate >= 2 * (carrierHz + bandwidthHz)
//
// When the check fails Modulate returns ErrCarrierAliasing instead of
// silently folding the sidebands back into the audible band.  Modulate never
// resamples.
//
// Stereo input is modulated per channel with the same carrier phase, keeping
// the channels coherent.  The input is not mutated.
func Modulate(buf *Buffer, carrierHz, bandwidthHz float64) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if carrierHz <= 0 || math.IsNaN(carrierHz) || math.IsInf(carrierHz, 0) {
		return nil, fmt.Errorf("%w: got %g Hz", ErrInvalidCarrier, carrierHz)
	}
	if bandwidthHz < 0 || math.IsNaN(bandwidthHz) || math.IsInf(bandwidthHz, 0) {
		return nil, fmt.Errorf("%w: negative bandwidth %g Hz", ErrInvalidCarrier, bandwidthHz)
	}
	if float64(buf.SampleRate) < 2*(carrierHz+bandwidthHz) {
		return nil, fmt.Errorf("%w: %d Hz cannot represent %g Hz + %g Hz sidebands",
			ErrCarrierAliasing, buf.SampleRate, carrierHz, bandwidthHz)
	}

	out := NewBuffer(buf.SampleRate, buf.Channels, buf.Frames())

	// Phase advance per frame.  Accumulating frame indices in float64 keeps
	// the carrier phase-accurate over long buffers.
	step := 2 * math.Pi * carrierHz / float64(buf.SampleRate)

	frames := buf.Frames()
	for f := 0; f < frames; f++ {
		carrier := float32(math.Cos(step * float64(f)))
		base := f * buf.Channels
		for c := 0; c < buf.Channels; c++ {
			out.Data[base+c] = buf.Data[base+c] * carrier
		}
	}

	return out, nil
}

// Demodulate reverses Modulate for verification purposes: it multiplies by
// the same carrier and low-pass filters the product with a moving average,
// recovering the baseband signal at half amplitude plus residue near twice
// the carrier.  It is primarily useful in tests confirming that modulation
// is linear and phase coherent.
func Demodulate(buf *Buffer, carrierHz float64) (*Buffer, error) {
	product, err := Modulate(buf, carrierHz, 0)
	if err != nil {
		return nil, err
	}

	// Moving-average low pass.  The window spans roughly one carrier cycle,
	// which nulls the 2*carrierHz image while barely touching speech-band
	// content.
	window := int(float64(product.SampleRate)/carrierHz + 0.5)
	if window < 1 {
		window = 1
	}

	out := NewBuffer(product.SampleRate, product.Channels, product.Frames())
	frames := product.Frames()
	for c := 0; c < product.Channels; c++ {
		var sum float64
		for f := 0; f < frames; f++ {
			sum += float64(product.Data[f*product.Channels+c])
			if f >= window {
				sum -= float64(product.Data[(f-window)*product.Channels+c])
			}
			n := window
			if f < window {
				n = f + 1
			}
			// The 2x factor undoes the cos^2 halving of the baseband term.
			out.Data[f*out.Channels+c] = float32(2 * sum / float64(n))
		}
	}

	return out, nil
}
