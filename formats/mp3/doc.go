// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("voice.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always decodes to stereo 16-bit PCM, so the Source reports two
// channels regardless of the file's original layout.  Use audio.Downmix
// after audio.ReadAll to fold the result to mono, which the voice path of
// the pipeline typically wants.
//
// MP3 is lossy on input, which is acceptable: the spoken affirmation only
// needs its speech band intact before modulation.  Lossy output is a
// different matter; see the wav package.
package mp3
