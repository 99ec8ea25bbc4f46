// SPDX-License-Identifier: EPL-2.0

// Package audio provides the signal-processing primitives of the sublimix
// pipeline.
//
// The central type is Buffer, a fully decoded block of interleaved float32
// PCM in [-1.0, 1.0].  Every processing stage is a pure function from
// Buffers to a fresh Buffer:
//
//   - Modulate shifts a voice track into a near-ultrasonic carrier band
//     using double-sideband amplitude modulation
//   - GenerateBinaural synthesizes a stereo sine pair for entrainment
//   - Align loops or truncates a track to an exact frame count with
//     click-free seams
//   - Mix sums gain-scaled tracks with uniform overload protection
//   - Resample, Downmix, ToStereo and Normalize condition inputs on
//     explicit request
//
// # Source Interface
//
// Decoded input arrives through the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders (see the formats subpackages) implement Source, and
// ReadAll collects a Source into a Buffer for processing.  The Registry
// maps format names to decoders for extension-based lookup.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The normalized format makes intermediate stages immune to clipping; only
// Mix enforces the [-1, 1] bound, and only on its final output.
//
// # Purity and Concurrency
//
// No function in this package mutates its input or touches shared state.
// Buffers are freshly allocated per call, so independent jobs can run on
// separate goroutines without coordination.
//
// # Error Handling
//
// Validation failures return sentinel errors from errors.go, wrapped with
// context via fmt.Errorf("%w").  Streaming sources return io.EOF when
// drained:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
