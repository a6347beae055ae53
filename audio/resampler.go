// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/sfbank/utils"
	"github.com/pkg/errors"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. When downsampling, input frames go through a one-pole low-pass
// first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[1] is source frame base; window[0] and window[2:] are its
	// neighbours, with the edge frames repeated past either end.
	window [4][]float32
	base   int
	pos    float64
	primed bool

	in    []float32
	inPos int
	inLen int
	read  int // frames taken from src so far
	eof   bool

	lowpass bool
	state   []float32
}

const filterAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	ch := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: ch,
		in:       make([]float32, ch*1024),
		lowpass:  step > 1,
		state:    make([]float32, ch),
	}
	for i := range r.window {
		r.window[i] = make([]float32, ch)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	return errors.WithStack(r.src.Close())
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for empty := 0; r.inPos == r.inLen; empty++ {
		if r.eof {
			return false, nil
		}
		if empty == 100 {
			return false, errors.WithStack(io.ErrNoProgress)
		}
		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, errors.WithStack(err)
		}
	}

	frame := r.in[r.inPos : r.inPos+r.channels]
	r.inPos += r.channels
	if r.lowpass {
		if r.read == 0 {
			copy(r.state, frame)
		}
		for c, v := range frame {
			r.state[c] = filterAlpha*v + (1-filterAlpha)*r.state[c]
		}
		frame = r.state
	}
	copy(dst, frame)
	r.read++
	return true, nil
}

// advance slides the window one frame forward.
func (r *Resampler) advance() error {
	w := &r.window
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
	ok, err := r.pull(w[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(w[3], w[2])
	}
	r.base++
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true
	w := &r.window
	ok, err := r.pull(w[1])
	if err != nil || !ok {
		return err
	}
	copy(w[0], w[1])
	for i := 2; i < 4; i++ {
		ok, err := r.pull(w[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(w[i], w[i-1])
		}
	}
	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}
		if r.eof && r.base >= r.read {
			return written, io.EOF
		}

		x := float32(r.pos)
		w := &r.window
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(w[0][c], w[1][c], w[2][c], w[3][c], x)
		}
		written += r.channels
		r.pos += r.step
	}
	return written, nil
}
