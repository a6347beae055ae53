// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"max positive", 1, math.MaxInt16},
		{"max negative", -1, math.MinInt16},
		{"half positive", 0.5, 16384},
		{"half negative", -0.5, -16384},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -100, math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int32
	}{
		{"zero", 0, 0},
		{"max positive", 1, 1<<23 - 1},
		{"max negative", -1, -1 << 23},
		{"quarter", 0.25, 1 << 21},
		{"clamp", 3, 1<<23 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt24(tt.input); got != tt.want {
				t.Errorf("Float32ToInt24(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		if got := Float32ToInt16(Int16ToFloat32(int16(v))); got != int16(v) {
			t.Fatalf("round trip of %d = %d", v, got)
		}
	}
}

func TestInt24RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int32{-1 << 23, -1234567, -1, 0, 1, 255, 0x7FFF00, 1<<23 - 1} {
		if got := Float32ToInt24(Int24ToFloat32(v)); got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
}
