// SPDX-License-Identifier: EPL-2.0

// Package sublimix renders "silent subliminal" audio: it takes a spoken
// affirmation track and a background-music track and produces a single
// lossless output in which the affirmation is shifted above the audible
// band yet remains physically present, optionally joined by a binaural
// beat for frequency entrainment.
//
// # Pipeline
//
// The pipeline is a pure function over its inputs:
//
//	voice  --Modulate--> +
//	music  -----------> Align --> Mix --> Encode --> bytes
//	tone   --Generate--> +
//
// The voice is multiplied by a near-ultrasonic cosine carrier
// (double-sideband amplitude modulation), aligned to the music track's
// length, and summed with the music and the optional tone at configured
// gains.  The music track defines the output duration exactly.
//
// # Quick Start
//
//	voice, _ := audio.ReadAll(voiceSource)
//	music, _ := audio.ReadAll(musicSource)
//
//	out, err := sublimix.Process(sublimix.Job{
//	    Voice:  voice,
//	    Music:  music,
//	    Config: sublimix.DefaultConfig(),
//	})
//	if err != nil {
//	    // errors.Is against the taxonomy in errors.go
//	}
//	os.WriteFile("render.wav", out, 0o644)
//
// Render returns the mixed buffer instead of encoded bytes when the caller
// wants to inspect or post-process the result.
//
// # Configuration
//
// ProcessingConfig holds the per-job parameters; DefaultConfig supplies the
// classic recipe (17.5 kHz carrier, voice at -23 dB, 430/434 Hz theta
// beat) and LoadConfig overlays a YAML preset on top of it.  Validation
// runs before any audio is touched.
//
// # Guarantees
//
//   - output duration equals the music duration, sample-exact
//   - the mix never clips: overload is handled by uniform rescaling
//   - modulation refuses sample rates that would alias the carrier band
//   - no process-wide state: concurrent jobs need no coordination
//
// Subpackages: audio (processing primitives), formats/wav, formats/mp3,
// formats/vorbis, formats/aiff (codecs), utils (numeric helpers).
package sublimix
