package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt24 scales x to a signed 24-bit PCM value stored in an int32.
func Float32ToInt24(x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 8388607 = 2^23 - 1, positive max of 24-bit PCM
	return int32(x * 8388607.0)
}
