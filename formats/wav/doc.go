// SPDX-License-Identifier: EPL-2.0

// Package wav exports samples as WAV files.
//
// The Encoder is an audio.Encoder built on github.com/go-audio/wav. It
// pulls the whole source through audio.Pump and writes 16 or 24-bit
// integer PCM:
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//
//	if err := (wav.Encoder{}).Encode(f, src, 16); err != nil {
//	    // Handle error
//	}
//
// The header sizes are patched once the data is written, so the
// destination has to be an io.WriteSeeker.
package wav
