// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"

	"github.com/ik5/sfbank/audio"
	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

// oggReader is the part of oggvorbis.Reader the source uses, so tests can
// stand in for it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	closer     io.Closer
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return errors.WithStack(s.closer.Close())
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	// The reader wants whole frames and counts values, not frames.
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:want])
	if err == io.EOF {
		return n, io.EOF
	}
	if err != nil {
		return n, errors.Wrap(err, "vorbis")
	}
	return n, nil
}

var _ audio.Decoder = Decoder{}

// Decoder reads an Ogg Vorbis stream, such as the data of an SF3 sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(ErrNotVorbis, "%s", err)
	}

	s := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s, nil
}

// NewSource is Decode over an in-memory stream.
func NewSource(data []byte) (audio.Source, error) {
	return Decoder{}.Decode(bytes.NewReader(data))
}
