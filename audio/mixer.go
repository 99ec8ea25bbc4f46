// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/dadantech/sublimix/utils"
)

// MixGains holds the per-track gains, in decibels, applied before summing.
type MixGains struct {
	Background float64
	Voice      float64
	Binaural   float64
}

// Mix linearly combines the background track, the modulated voice track and
// an optional binaural tone (binaural may be nil).  All present tracks must
// already be aligned to the same frame count and sample rate; Align is the
// tool for that.
//
// Channel layout is reconciled by duplication: when any present track is
// stereo the output is stereo and mono tracks contribute the same signal to
// both channels.  Otherwise the output follows the background track.
//
// Each gain is converted from dB to a linear multiplier, the scaled tracks
// are summed sample-wise, and if the summed peak exceeds 1.0 the whole mix
// is scaled down uniformly so the peak lands exactly on 1.0.  Uniform
// rescaling avoids clipping distortion while preserving the balance the
// caller chose between tracks.
func Mix(background, voice, binaural *Buffer, gains MixGains) (*Buffer, error) {
	if err := background.Validate(); err != nil {
		return nil, err
	}
	if err := voice.Validate(); err != nil {
		return nil, err
	}
	for _, g := range []float64{gains.Background, gains.Voice, gains.Binaural} {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, fmt.Errorf("%w: non-finite gain %g dB", ErrNonFiniteSample, g)
		}
	}

	tracks := []*Buffer{background, voice}
	linear := []float32{
		float32(utils.DBToGain(gains.Background)),
		float32(utils.DBToGain(gains.Voice)),
	}
	if binaural != nil {
		if err := binaural.Validate(); err != nil {
			return nil, err
		}
		tracks = append(tracks, binaural)
		linear = append(linear, float32(utils.DBToGain(gains.Binaural)))
	}

	frames := background.Frames()
	channels := background.Channels
	for _, t := range tracks {
		if t.Frames() != frames {
			return nil, fmt.Errorf("%w: %d vs %d frames", ErrLengthMismatch, t.Frames(), frames)
		}
		if t.SampleRate != background.SampleRate {
			return nil, fmt.Errorf("%w: %d vs %d Hz", ErrSampleRateMismatch, t.SampleRate, background.SampleRate)
		}
		if t.Channels > channels {
			channels = t.Channels
		}
	}

	out := NewBuffer(background.SampleRate, channels, frames)
	for i, t := range tracks {
		g := linear[i]
		switch {
		case t.Channels == channels:
			for j, s := range t.Data {
				out.Data[j] += s * g
			}
		case t.Channels == 1 && channels == 2:
			for f := 0; f < frames; f++ {
				s := t.Data[f] * g
				out.Data[2*f] += s
				out.Data[2*f+1] += s
			}
		default:
			return nil, fmt.Errorf("%w: cannot place %d channels into %d", ErrChannelMismatch, t.Channels, channels)
		}
	}

	if peak := out.Peak(); peak > 1.0 {
		scale := 1.0 / peak
		for j := range out.Data {
			s := out.Data[j] * scale
			// float32 rounding can push the peak sample a hair past 1.0.
			if s > 1.0 {
				s = 1.0
			} else if s < -1.0 {
				s = -1.0
			}
			out.Data[j] = s
		}
	}

	return out, nil
}
