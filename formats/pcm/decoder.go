// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ik5/sfbank/audio"
	"github.com/ik5/sfbank/utils"
	"github.com/pkg/errors"
)

type source struct {
	r          io.Reader
	sampleRate int
	low        []byte
	frame      int // index of the next frame, into low
	buf        []byte
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 1 }

func (s *source) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return errors.WithStack(c.Close())
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	buf := s.buf[:len(dst)*2]
	// A trailing odd byte at the end of the stream is dropped.
	n, err := io.ReadFull(s.r, buf)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		s.eof = true
	case err != nil:
		return 0, errors.WithStack(err)
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		if s.frame < len(s.low) {
			dst[i] = utils.Int24ToFloat32(int32(v)<<8 | int32(s.low[s.frame]))
		} else {
			dst[i] = utils.Int16ToFloat32(v)
		}
		s.frame++
	}

	if s.eof {
		return samples, io.EOF
	}
	return samples, nil
}

var _ audio.Decoder = Decoder{}

// Decoder reads mono 16-bit little-endian PCM, the layout of an SF2 smpl
// chunk. When Low is set, Low[i] supplies the least significant byte of
// frame i and the source yields 24-bit precision.
type Decoder struct {
	SampleRate int
	Low        []byte
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate <= 0 {
		return nil, errors.Wrapf(ErrInvalidSampleRate, "got %d", d.SampleRate)
	}
	return &source{
		r:          r,
		sampleRate: d.SampleRate,
		low:        d.Low,
		buf:        make([]byte, 4096),
	}, nil
}

// NewSource is Decode over an in-memory sample.
func NewSource(data, low []byte, sampleRate int) (audio.Source, error) {
	return Decoder{SampleRate: sampleRate, Low: low}.Decode(bytes.NewReader(data))
}
