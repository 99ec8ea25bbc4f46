// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToGain converts a decibel value to a linear amplitude multiplier.
// 0 dB maps to 1.0, -6 dB to roughly 0.5, -inf dB to 0.
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// GainToDB converts a linear amplitude multiplier to decibels.
// Non-positive gains return -Inf.
func GainToDB(gain float64) float64 {
	if gain <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(gain)
}
