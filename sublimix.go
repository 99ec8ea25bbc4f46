// SPDX-License-Identifier: EPL-2.0

package sublimix

import (
	"errors"
	"fmt"

	"github.com/dadantech/sublimix/audio"
	"github.com/dadantech/sublimix/formats/wav"
)

// Job carries everything one rendering run needs: the two decoded input
// tracks and the processing parameters.  A Job is consumed whole and
// discarded; the pipeline keeps no state between invocations, so identical
// jobs always produce bit-identical output.
type Job struct {
	Voice  *audio.Buffer
	Music  *audio.Buffer
	Config ProcessingConfig
}

// Render runs the full processing pipeline and returns the mixed buffer:
//
//  1. the voice track is amplitude-modulated into the carrier band
//  2. the modulated voice (and the binaural tone, when enabled) is aligned
//     to the music track's length, looping with click-free seams
//  3. all tracks are summed at their configured gains with uniform
//     overload protection
//
// The music track is the length reference: the output duration equals the
// music duration exactly, in samples.  Both inputs must share a sample
// rate; Render never resamples on its own (use audio.Resample first when
// the rates differ).
func Render(job Job) (*audio.Buffer, error) {
	if err := job.Config.Validate(); err != nil {
		return nil, err
	}
	if err := job.Voice.Validate(); err != nil {
		return nil, fmt.Errorf("%w: voice: %w", ErrMalformedInput, err)
	}
	if err := job.Music.Validate(); err != nil {
		return nil, fmt.Errorf("%w: music: %w", ErrMalformedInput, err)
	}
	if job.Voice.SampleRate != job.Music.SampleRate {
		return nil, fmt.Errorf("%w: voice at %d Hz, music at %d Hz: %w",
			ErrMalformedInput, job.Voice.SampleRate, job.Music.SampleRate, audio.ErrSampleRateMismatch)
	}

	cfg := job.Config

	modulated, err := audio.Modulate(job.Voice, cfg.CarrierFreq, cfg.VoiceBandwidth)
	if err != nil {
		if errors.Is(err, audio.ErrCarrierAliasing) || errors.Is(err, audio.ErrInvalidCarrier) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	targetFrames := job.Music.Frames()
	modulated, err = audio.Align(modulated, targetFrames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var binaural *audio.Buffer
	if cfg.BinauralEnabled {
		binaural, err = audio.GenerateBinaural(
			cfg.BinauralLeftFreq, cfg.BinauralRightFreq,
			targetFrames, job.Music.SampleRate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
	}

	mix, err := audio.Mix(job.Music, modulated, binaural, audio.MixGains{
		Background: cfg.BackgroundGainDB,
		Voice:      cfg.SubliminalGainDB,
		Binaural:   cfg.BinauralGainDB,
	})
	if err != nil {
		if errors.Is(err, audio.ErrChannelMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrChannelMismatch, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return mix, nil
}

// Process is the high-level entry point: it renders the job and serializes
// the result into a lossless WAV container at the output bit depth the
// config resolves to.  Either the complete encoded container is returned or
// an error with nothing written; there is no partial output.
func Process(job Job) ([]byte, error) {
	mix, err := Render(job)
	if err != nil {
		return nil, err
	}

	data, err := wav.Encode(mix, job.Config.bitDepth())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailure, err)
	}

	return data, nil
}
