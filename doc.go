// SPDX-License-Identifier: EPL-2.0

// Package sfbank turns the samples of a decoded SoundFont into audio.
//
// The sf2 package decodes a bank; this package reads its samples back as
// audio.Source streams and exports them through the format encoders:
//
//	bank, err := sf2.Open("piano.sf2")
//	if err != nil {
//	    // Handle error
//	}
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//
//	err = sfbank.ExportSample(f, bank, 0, sfbank.ExportOptions{})
//
// # Sample Sources
//
// SampleSource picks the decoder a sample needs:
//   - PCM samples via formats/pcm, 24-bit when the bank carries sm24 data
//   - SF3 Ogg Vorbis samples via formats/vorbis
//
// ROM samples have no data in the file and cannot be read.
//
// # Export Pipeline
//
// ExportSample builds a pipeline from the audio package before encoding:
//
//	sample (or Interleave(left, right) with Stereo)
//	  -> Resampler   when SampleRate is set
//	  -> MonoMixer   when Mono is set
//	  -> Encoder     looked up by Format in the Registry
//
// Encoders returns the default registry with "wav" and "aiff". Register
// more audio.Encoder implementations on a registry of your own and pass it
// in ExportOptions.
package sfbank
