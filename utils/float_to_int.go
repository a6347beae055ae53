// SPDX-License-Identifier: EPL-2.0

package utils

const (
	scale16 = 32768.0
	scale24 = 8388608.0
)

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 scales x by 2^15 and clamps to the int16 range, so that
// Int16ToFloat32 round-trips every int16 exactly.
func Float32ToInt16(x float32) int16 {
	v := clamp(x) * scale16
	if v > 32767 {
		return 32767
	}
	return int16(v)
}

// Float32ToInt24 scales x by 2^23 and clamps to the signed 24-bit range.
func Float32ToInt24(x float32) int32 {
	v := float64(clamp(x)) * scale24
	if v > 8388607 {
		return 8388607
	}
	return int32(v)
}

func Int16ToFloat32(v int16) float32 {
	return float32(v) / scale16
}

// Int24ToFloat32 converts a sign-extended 24-bit value.
func Int24ToFloat32(v int32) float32 {
	return float32(float64(v) / scale24)
}
