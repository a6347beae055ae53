// SPDX-License-Identifier: EPL-2.0

package sfbank

import (
	"io"

	"github.com/ik5/sfbank/audio"
	"github.com/ik5/sfbank/formats/aiff"
	"github.com/ik5/sfbank/formats/wav"
	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/sf2"
	"github.com/pkg/errors"
)

// Encoders returns a registry holding the wav and aiff encoders.
func Encoders() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Encoder{})
	r.Register("aiff", aiff.Encoder{})
	return r
}

// ExportOptions controls ExportSample. The zero value writes a 16-bit WAV
// file of the sample at its own rate.
type ExportOptions struct {
	// Format is a key of Registry, "wav" when empty.
	Format string

	// BitDepth is 16 or 24, 16 when zero.
	BitDepth int

	// SampleRate resamples the output when non-zero.
	SampleRate int

	// Stereo writes the sample together with its linked partner, left
	// channel first.
	Stereo bool

	// Mono downmixes to one channel. With Stereo it mixes the pair.
	Mono bool

	// Registry to look Format up in, Encoders() when nil.
	Registry *audio.Registry
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Format == "" {
		o.Format = "wav"
	}
	if o.BitDepth == 0 {
		o.BitDepth = 16
	}
	if o.Registry == nil {
		o.Registry = Encoders()
	}
	return o
}

// stereoPair returns the left and right sample indexes of sample's pair.
func stereoPair(bank *sf2.Bank, sample int) (left, right int, err error) {
	s, err := lookup(bank, sample)
	if err != nil {
		return 0, 0, err
	}
	link := int(s.SampleLink)
	if link == sample || link >= len(bank.Samples) {
		return 0, 0, errors.Wrapf(ErrNoStereoPair, "%q links to %d", s.Name, link)
	}
	switch {
	case s.SampleType&sf2.LeftSample != 0:
		return sample, link, nil
	case s.SampleType&sf2.RightSample != 0:
		return link, sample, nil
	}
	return 0, 0, errors.Wrapf(ErrNoStereoPair, "%q is %s", s.Name, s.SampleType)
}

// ExportSource builds the source ExportSample encodes: the sample, or its
// stereo pair, resampled and downmixed as opts asks.
func ExportSource(bank *sf2.Bank, sample int, opts ExportOptions) (audio.Source, error) {
	var src audio.Source
	if opts.Stereo {
		li, ri, err := stereoPair(bank, sample)
		if err != nil {
			return nil, err
		}
		left, err := SampleSource(bank, li)
		if err != nil {
			return nil, err
		}
		right, err := SampleSource(bank, ri)
		if err != nil {
			left.Close()
			return nil, err
		}
		st, err := audio.Interleave(left, right)
		if err != nil {
			left.Close()
			right.Close()
			return nil, errors.Wrapf(err, "samples %d and %d", li, ri)
		}
		src = st
	} else {
		var err error
		if src, err = SampleSource(bank, sample); err != nil {
			return nil, err
		}
	}

	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		log.Infof("resampling %d Hz to %d Hz", src.SampleRate(), opts.SampleRate)
		src = audio.NewResampler(src, opts.SampleRate)
	}
	if opts.Mono {
		src = audio.NewMonoMixer(src)
	}
	return src, nil
}

// ExportSample writes a bank's sample to w as an audio file.
func ExportSample(w io.WriteSeeker, bank *sf2.Bank, sample int, opts ExportOptions) (err error) {
	opts = opts.withDefaults()
	enc, ok := opts.Registry.Get(opts.Format)
	if !ok {
		return errors.Wrapf(ErrUnknownFormat, "%q", opts.Format)
	}

	src, err := ExportSource(bank, sample, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); err == nil {
			err = errors.WithStack(cerr)
		}
	}()

	log.Infof("exporting sample %d as %d-bit %s, %d channel(s) at %d Hz",
		sample, opts.BitDepth, opts.Format, src.Channels(), src.SampleRate())
	return enc.Encode(w, src, opts.BitDepth)
}
