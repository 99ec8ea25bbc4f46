// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix folds a stereo buffer down to mono by averaging the channels.
// Mono input is copied through unchanged.
func Downmix(buf *Buffer) *Buffer {
	if buf.Channels == 1 {
		return buf.Clone()
	}

	frames := buf.Frames()
	out := NewBuffer(buf.SampleRate, 1, frames)
	for f := 0; f < frames; f++ {
		out.Data[f] = (buf.Data[2*f] + buf.Data[2*f+1]) * 0.5
	}
	return out
}

// ToStereo duplicates a mono buffer into both channels of a stereo buffer.
// Stereo input is copied through unchanged.
func ToStereo(buf *Buffer) *Buffer {
	if buf.Channels == 2 {
		return buf.Clone()
	}

	frames := buf.Frames()
	out := NewBuffer(buf.SampleRate, 2, frames)
	for f := 0; f < frames; f++ {
		out.Data[2*f] = buf.Data[f]
		out.Data[2*f+1] = buf.Data[f]
	}
	return out
}
