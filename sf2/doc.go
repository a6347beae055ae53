// SPDX-License-Identifier: EPL-2.0

// Package sf2 decodes SoundFont 2 sample banks.
//
// A SoundFont is a RIFF sfbk stream with three lists: INFO (metadata),
// sdta (the raw sample data) and pdta (the tables that tie presets,
// instruments and samples together). Decode reads all of it into a Bank.
//
// # Naming
//
// The names follow a synthesizer's point of view rather than the file
// format's:
//   - Instrument is an SF2 preset (phdr), addressed by MIDI bank and program
//   - Layer is an SF2 instrument (inst)
//   - Sample is a sample header (shdr) with its slice of the sample data
//
// Instrument regions point at layers and layer regions point at samples,
// both by index into the Bank's slices. A zone that names no layer or
// sample becomes the Global region of its owner.
//
// # Decoding
//
//	bank, err := sf2.Open("piano.sf2")
//	if err != nil {
//	    return err
//	}
//	inst, ok := bank.Preset(0, 0)
//	if ok {
//	    for _, r := range inst.Regions {
//	        layer := bank.RegionLayer(r)
//	        ...
//	    }
//	}
//
// Decoder carries the options. Charset converts names written in a legacy
// code page:
//
//	d := sf2.Decoder{Charset: japanese.ShiftJIS}
//	bank, err := d.Open("gm.sf2")
//
// # Errors
//
// A failed decode never returns a Bank. Truncated input is reported as
// ErrUnexpectedEOF, kept apart from ErrMalformedTable and the dangling
// reference errors that describe a file which is complete but inconsistent.
// All errors carry context and match their sentinel through errors.Is.
//
// # SF3
//
// Samples flagged VorbisSample hold Ogg Vorbis streams. Their Start and End
// are byte offsets into the sample data and their loop points are already
// relative to the sample.
package sf2
