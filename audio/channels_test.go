// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"testing"

	"github.com/dadantech/sublimix/audio"
	"github.com/dadantech/sublimix/internal/audiotest"
)

func TestDownmix(t *testing.T) {
	t.Parallel()

	stereo := &audio.Buffer{
		Data:       []float32{0.2, 0.4, -0.6, 0.2, 1, -1},
		SampleRate: 48000,
		Channels:   2,
	}

	got := audio.Downmix(stereo)
	if got.Channels != 1 {
		t.Fatalf("Downmix() channels = %d, want 1", got.Channels)
	}
	want := []float32{0.3, -0.2, 0}
	for i, w := range want {
		if diff := got.Data[i] - w; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("frame %d = %g, want %g", i, got.Data[i], w)
		}
	}

	mono := audiotest.ConstantBuffer(48000, 1, 4, 0.5)
	passthrough := audio.Downmix(mono)
	if passthrough.Channels != 1 || len(passthrough.Data) != 4 {
		t.Errorf("mono passthrough reshaped: %d ch, %d samples", passthrough.Channels, len(passthrough.Data))
	}
	passthrough.Data[0] = -1
	if mono.Data[0] != 0.5 {
		t.Error("mono passthrough aliases the input")
	}
}

func TestToStereo(t *testing.T) {
	t.Parallel()

	mono := &audio.Buffer{
		Data:       []float32{0.1, -0.2, 0.3},
		SampleRate: 44100,
		Channels:   1,
	}

	got := audio.ToStereo(mono)
	if got.Channels != 2 {
		t.Fatalf("ToStereo() channels = %d, want 2", got.Channels)
	}
	if got.Frames() != 3 {
		t.Fatalf("ToStereo() frames = %d, want 3", got.Frames())
	}
	for f := 0; f < 3; f++ {
		if got.Sample(f, 0) != mono.Data[f] || got.Sample(f, 1) != mono.Data[f] {
			t.Errorf("frame %d = (%g, %g), want both %g", f, got.Sample(f, 0), got.Sample(f, 1), mono.Data[f])
		}
	}

	stereo := audiotest.ConstantBuffer(44100, 2, 4, 0.5)
	passthrough := audio.ToStereo(stereo)
	passthrough.Data[0] = -1
	if stereo.Data[0] != 0.5 {
		t.Error("stereo passthrough aliases the input")
	}
}
