// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/dadantech/sublimix/audio"
)

// Buffer builders for tests that work on decoded buffers rather than
// streaming sources.  Only external test packages may use these; in-package
// audio tests would create an import cycle through this package.

// SineBuffer returns a buffer holding a sine tone at the given frequency
// and peak amplitude, identical on every channel.
func SineBuffer(sampleRate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, channels, frames)
	step := 2 * math.Pi * frequency / float64(sampleRate)
	for f := 0; f < frames; f++ {
		s := float32(amplitude * math.Sin(step*float64(f)))
		for c := 0; c < channels; c++ {
			buf.Data[f*channels+c] = s
		}
	}
	return buf
}

// SilentBuffer returns an all-zero buffer.
func SilentBuffer(sampleRate, channels, frames int) *audio.Buffer {
	return audio.NewBuffer(sampleRate, channels, frames)
}

// ConstantBuffer returns a buffer where every sample holds value.
func ConstantBuffer(sampleRate, channels, frames int, value float32) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, channels, frames)
	for i := range buf.Data {
		buf.Data[i] = value
	}
	return buf
}

// GoertzelPower measures the normalized spectral power of one channel at
// the given frequency using the Goertzel algorithm.  Handy for asserting
// where modulation moved the energy without pulling in an FFT dependency.
func GoertzelPower(buf *audio.Buffer, channel int, frequency float64) float64 {
	frames := buf.Frames()
	if frames == 0 {
		return 0
	}

	w := 2 * math.Pi * frequency / float64(buf.SampleRate)
	coeff := 2 * math.Cos(w)

	var s0, s1, s2 float64
	for f := 0; f < frames; f++ {
		s0 = float64(buf.Data[f*buf.Channels+channel]) + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}

	power := s1*s1 + s2*s2 - coeff*s1*s2
	return power / float64(frames)
}

// ZeroCrossings counts positive-going zero crossings on one channel, which
// approximates frequency * duration for a clean tone.
func ZeroCrossings(buf *audio.Buffer, channel int) int {
	frames := buf.Frames()
	count := 0
	for f := 1; f < frames; f++ {
		prev := buf.Data[(f-1)*buf.Channels+channel]
		cur := buf.Data[f*buf.Channels+channel]
		if prev <= 0 && cur > 0 {
			count++
		}
	}
	return count
}
