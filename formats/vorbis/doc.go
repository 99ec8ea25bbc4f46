// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into the pipeline's float32 sample format.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("music.ogg")
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
// The decoder reports the channel count and sample rate stored in the
// file.  Stereo samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Collect the stream with audio.ReadAll to obtain an audio.Buffer for the
// processing stages.
package vorbis
