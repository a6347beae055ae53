// SPDX-License-Identifier: EPL-2.0

package sfbank

import (
	"github.com/ik5/sfbank/audio"
	"github.com/ik5/sfbank/formats/pcm"
	"github.com/ik5/sfbank/formats/vorbis"
	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/sf2"
	"github.com/pkg/errors"
)

func lookup(bank *sf2.Bank, sample int) (*sf2.Sample, error) {
	if bank == nil || sample < 0 || sample >= len(bank.Samples) {
		return nil, errors.Wrapf(ErrNoSample, "sample %d", sample)
	}
	return bank.Samples[sample], nil
}

// SampleSource returns the audio of a bank's sample. PCM samples are read
// as 16-bit, or 24-bit when the bank has sm24 data. SF3 samples are
// decoded from Ogg Vorbis and take their rate from the stream.
func SampleSource(bank *sf2.Bank, sample int) (audio.Source, error) {
	s, err := lookup(bank, sample)
	if err != nil {
		return nil, err
	}
	if s.SampleType.IsROM() {
		return nil, errors.Wrapf(ErrROMSample, "%q", s.Name)
	}

	if s.SampleType.IsCompressed() {
		log.Debugf("sample %d %q: vorbis, %d bytes", sample, s.Name, len(s.Data))
		src, err := vorbis.NewSource(s.Data)
		return src, errors.Wrapf(err, "%q", s.Name)
	}

	if s.Frames() == 0 {
		return nil, errors.Wrapf(ErrEmptySample, "%q", s.Name)
	}
	log.Debugf("sample %d %q: %d frames, 24-bit: %v", sample, s.Name, s.Frames(), s.Data24 != nil)
	src, err := pcm.NewSource(s.Data, s.Data24, int(s.SampleRate))
	return src, errors.Wrapf(err, "%q", s.Name)
}
