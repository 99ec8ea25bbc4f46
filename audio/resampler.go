// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/dadantech/sublimix/utils"
)

// Resample converts buf to targetRate using Catmull-Rom cubic interpolation.
// Channel count is preserved.  When downsampling, a simple one-pole low-pass
// runs over the source first as basic anti-aliasing.
//
// Resampling is never applied implicitly by the pipeline; callers must ask
// for it explicitly, typically to bring inputs to a common working rate
// before processing.
func Resample(buf *Buffer, targetRate int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTargetRate, targetRate)
	}
	if targetRate == buf.SampleRate {
		return buf.Clone(), nil
	}

	ratio := float64(buf.SampleRate) / float64(targetRate)
	src := buf

	// One-pole low-pass before decimation.  Crude next to a proper FIR, but
	// it knocks down the worst of the fold-back energy.
	if ratio > 1.0 {
		const alpha = float32(0.5)
		filtered := NewBuffer(buf.SampleRate, buf.Channels, buf.Frames())
		state := make([]float32, buf.Channels)
		for f := 0; f < buf.Frames(); f++ {
			for c := 0; c < buf.Channels; c++ {
				i := f*buf.Channels + c
				state[c] = alpha*buf.Data[i] + (1-alpha)*state[c]
				filtered.Data[i] = state[c]
			}
		}
		src = filtered
	}

	srcFrames := src.Frames()
	outFrames := int(float64(srcFrames) / ratio)
	if outFrames < 1 {
		outFrames = 1
	}
	out := NewBuffer(targetRate, src.Channels, outFrames)

	// sampleAt clamps frame indices to the valid range so the edges reuse
	// their neighbors, same trick as duplicating edge frames in a streaming
	// resampler.
	sampleAt := func(frame, ch int) float32 {
		if frame < 0 {
			frame = 0
		}
		if frame >= srcFrames {
			frame = srcFrames - 1
		}
		return src.Data[frame*src.Channels+ch]
	}

	for f := 0; f < outFrames; f++ {
		pos := float64(f) * ratio
		i := int(pos)
		frac := float32(pos - float64(i))
		for c := 0; c < src.Channels; c++ {
			out.Data[f*src.Channels+c] = utils.CubicInterpolate(
				sampleAt(i-1, c),
				sampleAt(i, c),
				sampleAt(i+1, c),
				sampleAt(i+2, c),
				frac,
			)
		}
	}

	return out, nil
}
