// SPDX-License-Identifier: EPL-2.0

// Package pcm streams raw SoundFont sample data as an audio.Source.
//
// SF2 stores samples headerless: mono, 16-bit, little-endian, in the smpl
// chunk. SoundFont 2.04 adds an optional sm24 chunk holding one extra low
// byte per frame. Give the sample's slice of both to the Decoder:
//
//	src, err := pcm.Decoder{SampleRate: 44100, Low: sample.Data24}.Decode(bytes.NewReader(sample.Data))
//
// or use NewSource for the same thing. Without Low every frame is read as
// 16-bit; frames past the end of Low are too.
package pcm
