// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// seamFadeMs is the length of the linear ramp applied on both sides of a
// loop seam.  A few milliseconds is enough to remove the click caused by
// the phase discontinuity without being audible as a dropout.
const seamFadeMs = 5

// Align reconciles a track's length with targetFrames:
//
//   - shorter tracks are looped by concatenation until they cover the
//     target, then truncated; each loop seam is faded to silence over a
//     few milliseconds on both sides so the splice is click free
//   - longer tracks are truncated (no time stretching)
//   - equal-length tracks are copied through unchanged
//
// The output always has exactly targetFrames frames.  The input is not
// mutated.
func Align(buf *Buffer, targetFrames int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if targetFrames <= 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidTargetLength, targetFrames)
	}

	srcFrames := buf.Frames()
	out := NewBuffer(buf.SampleRate, buf.Channels, targetFrames)

	if srcFrames >= targetFrames {
		copy(out.Data, buf.Data[:targetFrames*buf.Channels])
		return out, nil
	}

	fadeFrames := buf.SampleRate * seamFadeMs / 1000
	if fadeFrames > srcFrames/2 {
		fadeFrames = srcFrames / 2
	}

	// Tile full and partial copies of the source.  Copies that touch a seam
	// get a fade-out on their tail and a fade-in on their head so adjacent
	// copies both approach zero at the splice point.
	for start := 0; start < targetFrames; start += srcFrames {
		n := srcFrames
		if start+n > targetFrames {
			n = targetFrames - start
		}
		copy(out.Data[start*buf.Channels:], buf.Data[:n*buf.Channels])

		firstCopy := start == 0
		lastCopy := start+srcFrames >= targetFrames

		for i := 0; i < fadeFrames && i < n; i++ {
			// Fade-in at the head of every copy after the first.
			if !firstCopy {
				g := float32(i) / float32(fadeFrames)
				for c := 0; c < buf.Channels; c++ {
					out.Data[(start+i)*buf.Channels+c] *= g
				}
			}
			// Fade-out at the tail of every copy before the last.
			if !lastCopy && n == srcFrames {
				g := float32(i) / float32(fadeFrames)
				for c := 0; c < buf.Channels; c++ {
					out.Data[(start+n-1-i)*buf.Channels+c] *= g
				}
			}
		}
	}

	return out, nil
}
