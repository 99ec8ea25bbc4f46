// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer is a fully decoded block of PCM audio.  Samples are stored
// interleaved as float32 in the range [-1.0, 1.0]:
//
//	mono:   [s0, s1, s2, ...]
//	stereo: [L0, R0, L1, R1, ...]
//
// Every pipeline stage consumes and produces Buffers.  A Buffer is a plain
// value; stages never mutate their input and always allocate fresh output,
// so Buffers can be shared between goroutines without coordination.
type Buffer struct {
	Data       []float32
	SampleRate int
	Channels   int
}

// NewBuffer allocates a zeroed (silent) buffer of the given shape.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	return &Buffer{
		Data:       make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration returns the playback time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Sample returns the sample at the given frame and channel.
func (b *Buffer) Sample(frame, channel int) float32 {
	return b.Data[frame*b.Channels+channel]
}

// Peak returns the largest absolute sample value in the buffer.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, s := range b.Data {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Data:       make([]float32, len(b.Data)),
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
	}
	copy(out.Data, b.Data)
	return out
}

// Validate checks the Buffer invariants: a positive sample rate, one or two
// channels, at least one whole frame, and finite sample values.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Data) == 0 {
		return ErrEmptyBuffer
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels != 1 && b.Channels != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannelCount, b.Channels)
	}
	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples over %d channels", ErrRaggedFrames, len(b.Data), b.Channels)
	}
	for i, s := range b.Data {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: sample %d", ErrNonFiniteSample, i)
		}
	}
	return nil
}
