// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/pkg/errors"
)

// Stereo joins two mono sources into one interleaved two-channel source.
type Stereo struct {
	left, right       Source
	lbuf, rbuf        []float32
	leftEOF, rightEOF bool
}

// Interleave pairs left and right. Both must be mono at the same rate. The
// shorter side is padded with silence until the longer one ends.
func Interleave(left, right Source) (*Stereo, error) {
	if left.Channels() != 1 || right.Channels() != 1 {
		return nil, errors.Wrapf(ErrChannelMismatch, "got %d and %d channels", left.Channels(), right.Channels())
	}
	if left.SampleRate() != right.SampleRate() {
		return nil, errors.Wrapf(ErrRateMismatch, "got %d and %d Hz", left.SampleRate(), right.SampleRate())
	}
	return &Stereo{left: left, right: right}, nil
}

func (s *Stereo) SampleRate() int { return s.left.SampleRate() }
func (s *Stereo) Channels() int   { return 2 }

func (s *Stereo) Close() error {
	lerr := s.left.Close()
	rerr := s.right.Close()
	if lerr != nil {
		return errors.WithStack(lerr)
	}
	return errors.WithStack(rerr)
}

// fill reads from src until buf is full or src ends.
func fill(src Source, buf []float32, eof *bool) (int, error) {
	got := 0
	for got < len(buf) && !*eof {
		n, err := src.ReadSamples(buf[got:])
		got += n
		if err == io.EOF {
			*eof = true
		} else if err != nil {
			return got, errors.WithStack(err)
		}
		if n == 0 && err == nil {
			break
		}
	}
	return got, nil
}

func (s *Stereo) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.leftEOF && s.rightEOF {
		return 0, io.EOF
	}

	frames := len(dst) / 2
	if cap(s.lbuf) < frames {
		s.lbuf = make([]float32, frames)
		s.rbuf = make([]float32, frames)
	}
	l, r := s.lbuf[:frames], s.rbuf[:frames]

	ln, err := fill(s.left, l, &s.leftEOF)
	if err != nil {
		return 0, err
	}
	rn, err := fill(s.right, r, &s.rightEOF)
	if err != nil {
		return 0, err
	}

	n := max(ln, rn)
	clear(l[ln:n])
	clear(r[rn:n])
	for i := range n {
		dst[2*i] = l[i]
		dst[2*i+1] = r[i]
	}
	if s.leftEOF && s.rightEOF {
		return 2 * n, io.EOF
	}
	return 2 * n, nil
}
