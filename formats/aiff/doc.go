// SPDX-License-Identifier: EPL-2.0

// Package aiff exports samples as AIFF files through github.com/go-audio/aiff.
//
//	f, _ := os.Create("tone.aiff")
//	defer f.Close()
//
//	err := (aiff.Encoder{}).Encode(f, src, 24)
//
// 16 and 24-bit output are supported. Like WAV, the destination must be
// seekable.
package aiff
