// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to render samples.
//
// This package contains:
//   - Source interface for decoded audio
//   - Decoder and Encoder interfaces, with a Registry of encoders by format
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Interleave for joining the two halves of a stereo sample
//   - Pump for handing a Source to a go-audio encoder
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Sources chain: a
// Resampler or MonoMixer wraps another Source and closes it on Close.
//
// # Resampling
//
// The Resampler uses Catmull-Rom cubic interpolation and a one-pole
// low-pass when downsampling:
//
//	resampled := audio.NewResampler(source, 44100)
//
// # Stereo Pairs
//
// SoundFont stereo samples are stored as two mono samples that point at each
// other. Interleave joins them, left first:
//
//	stereo, err := audio.Interleave(left, right)
//
// # Encoding
//
// Pump converts a Source to go-audio IntBuffers of 16 or 24 bits, which is
// what the WAV and AIFF encoders consume:
//
//	err := audio.Pump(src, 16, 0, enc.Write)
package audio
