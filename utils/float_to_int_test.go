// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"positive full scale", 1, 32767},
		{"negative full scale", -1, -32767},
		{"half", 0.5, 16383},
		{"clamped above", 1.5, 32767},
		{"clamped below", -2, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%g) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"zero", 0, 0},
		{"positive full scale", 1, 8388607},
		{"negative full scale", -1, -8388607},
		{"clamped above", 2, 8388607},
		{"clamped below", -3, -8388607},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt24(tt.in); got != tt.want {
				t.Errorf("Float32ToInt24(%g) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	// 24-bit output must stay inside the signed 24-bit range.
	for _, in := range []float32{-1, -0.5, 0, 0.5, 1} {
		got := Float32ToInt24(in)
		if got > 8388607 || got < -8388608 {
			t.Errorf("Float32ToInt24(%g) = %d, out of 24-bit range", in, got)
		}
	}
}
