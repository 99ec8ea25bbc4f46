// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dadantech/sublimix/audio"
	"github.com/dadantech/sublimix/internal/audiotest"
)

func TestResample_SameRateIsACopy(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(48000, 2, 4800, 440, 0.5)

	got, err := audio.Resample(src, 48000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for i := range src.Data {
		if got.Data[i] != src.Data[i] {
			t.Fatalf("copy differs at sample %d", i)
		}
	}
	got.Data[0] = -1
	if src.Data[0] == -1 {
		t.Error("output aliases the input")
	}
}

func TestResample_Upsample(t *testing.T) {
	t.Parallel()

	const toneHz = 440
	src := audiotest.SineBuffer(24000, 1, 24000, toneHz, 0.5)

	got, err := audio.Resample(src, 48000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if got.SampleRate != 48000 {
		t.Fatalf("SampleRate = %d, want 48000", got.SampleRate)
	}
	if got.Frames() != 48000 {
		t.Fatalf("Frames() = %d, want 48000", got.Frames())
	}

	// The tone frequency must survive the rate change: one second of a
	// 440 Hz tone counts 440 upward crossings at either rate.
	crossings := audiotest.ZeroCrossings(got, 0)
	if crossings < 439 || crossings > 441 {
		t.Errorf("crossings = %d, want ~440", crossings)
	}
}

func TestResample_Downsample(t *testing.T) {
	t.Parallel()

	const toneHz = 440
	src := audiotest.SineBuffer(48000, 1, 48000, toneHz, 0.5)

	got, err := audio.Resample(src, 22050)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if got.SampleRate != 22050 {
		t.Fatalf("SampleRate = %d, want 22050", got.SampleRate)
	}

	wantFrames := 22050
	if diff := got.Frames() - wantFrames; diff < -1 || diff > 1 {
		t.Fatalf("Frames() = %d, want ~%d", got.Frames(), wantFrames)
	}

	crossings := audiotest.ZeroCrossings(got, 0)
	if crossings < 438 || crossings > 442 {
		t.Errorf("crossings = %d, want ~440", crossings)
	}

	// The output must not blow past the input's amplitude.
	if peak := got.Peak(); float64(peak) > 0.55 {
		t.Errorf("Peak() = %g, want <= ~0.5", peak)
	}
}

func TestResample_StereoPreservesChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(44100, 2, 44100, 300, 0.4)

	got, err := audio.Resample(src, 48000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if got.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", got.Channels)
	}

	// Identical input channels stay identical through interpolation.
	for f := 0; f < got.Frames(); f++ {
		if got.Sample(f, 0) != got.Sample(f, 1) {
			t.Fatalf("channels diverge at frame %d", f)
		}
	}
}

func TestResample_Validation(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(48000, 1, 480, 440, 0.5)

	tests := []struct {
		name    string
		buf     *audio.Buffer
		rate    int
		wantErr error
	}{
		{"zero target rate", src, 0, audio.ErrInvalidTargetRate},
		{"negative target rate", src, -44100, audio.ErrInvalidTargetRate},
		{"nil buffer", nil, 48000, audio.ErrEmptyBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := audio.Resample(tt.buf, tt.rate)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resample() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResample_OutputIsFinite(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(48000, 1, 1000, 15000, 0.9)

	got, err := audio.Resample(src, 44100)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for i, s := range got.Data {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			t.Fatalf("non-finite sample at %d: %g", i, s)
		}
	}
}
