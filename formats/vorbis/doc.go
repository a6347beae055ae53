// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes the Ogg Vorbis samples of SF3 banks.
//
// SF3 is SF2 with the smpl chunk holding one Ogg Vorbis stream per sample.
// A sample header flagged as compressed gives the byte range of its stream,
// which the sf2 package exposes as Sample.Data. This package uses
// github.com/jfreymuth/oggvorbis to turn that range into an audio.Source:
//
//	src, err := vorbis.NewSource(sample.Data)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The sample rate and channel count come from the stream, not the header.
//
// # Channel Layout
//
// For stereo streams, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples only fills whole frames, so dst should be a multiple of the
// channel count.
package vorbis
