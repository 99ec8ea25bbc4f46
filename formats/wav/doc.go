// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF) decoding and lossless PCM encoding.
//
// Both directions are built on the github.com/go-audio/wav library.
//
// # Decoding WAV Files
//
// Use the Decoder to read PCM WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder accepts 16, 24 and 32-bit PCM, mono or stereo, at any sample
// rate.  Readers that do not implement io.ReadSeeker are buffered into
// memory first, which go-audio requires.
//
// # Encoding WAV Files
//
// Encode serializes an audio.Buffer into a complete in-memory WAV
// container:
//
//	data, err := wav.Encode(buffer, 24)
//	if err != nil {
//	    // Handle error
//	}
//	os.WriteFile("out.wav", data, 0o644)
//
// Supported bit depths are 16 and 24.  The output preserves the buffer's
// sample rate and channel count exactly; content above the audible band
// survives as long as the sample rate covers it.  Re-encoding the result
// to a lossy codec discards ultrasonic content and defeats the point of
// the container choice.
package wav
