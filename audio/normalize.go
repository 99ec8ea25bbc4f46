// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/dadantech/sublimix/utils"

// Normalize scales the buffer so its peak sits at targetDB relative to full
// scale (0 dBFS).  Silent buffers are returned unchanged, matching the
// behavior of normalizing digital silence.  The input is not mutated.
func Normalize(buf *Buffer, targetDB float64) *Buffer {
	peak := buf.Peak()
	if peak == 0 {
		return buf.Clone()
	}

	gain := float32(utils.DBToGain(targetDB)) / peak
	out := buf.Clone()
	for i := range out.Data {
		out.Data[i] *= gain
	}
	return out
}
