// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sfbank/utils"
	"github.com/pkg/errors"
)

// DefaultPumpFrames is the number of frames Pump converts per write.
const DefaultPumpFrames = 4096

// Pump reads src to the end and hands it to write as integer PCM of the
// given bit depth, frames at a time. The buffer passed to write is reused
// between calls.
func Pump(src Source, bitDepth, frames int, write func(*goaudio.IntBuffer) error) error {
	var conv func(float32) int
	switch bitDepth {
	case 16:
		conv = func(v float32) int { return int(utils.Float32ToInt16(v)) }
	case 24:
		conv = func(v float32) int { return int(utils.Float32ToInt24(v)) }
	default:
		return errors.Wrapf(ErrUnsupportedBitDepth, "got %d", bitDepth)
	}
	if frames <= 0 {
		frames = DefaultPumpFrames
	}

	ch := src.Channels()
	fbuf := make([]float32, frames*ch)
	ibuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: ch, SampleRate: src.SampleRate()},
		Data:           make([]int, 0, len(fbuf)),
		SourceBitDepth: bitDepth,
	}

	for empty := 0; ; {
		n, err := src.ReadSamples(fbuf)
		n -= n % ch
		if n > 0 {
			empty = 0
			ibuf.Data = ibuf.Data[:n]
			for i, v := range fbuf[:n] {
				ibuf.Data[i] = conv(v)
			}
			if werr := write(ibuf); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			if empty++; empty == 100 {
				return errors.WithStack(io.ErrNoProgress)
			}
		}
	}
}
