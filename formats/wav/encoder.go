// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/sfbank/audio"
	"github.com/pkg/errors"
)

const formatPCM = 1

// Encoder writes a source as an integer PCM WAV file.
type Encoder struct {
	// Frames per write, audio.DefaultPumpFrames when zero.
	Frames int
}

func (e Encoder) Encode(w io.WriteSeeker, src audio.Source, bitDepth int) error {
	if w == nil {
		return ErrNotSeekable
	}
	if bitDepth != 16 && bitDepth != 24 {
		return errors.Wrapf(audio.ErrUnsupportedBitDepth, "got %d", bitDepth)
	}
	ch := src.Channels()
	if ch < 1 {
		return ErrNoChannels
	}

	enc := wav.NewEncoder(w, src.SampleRate(), bitDepth, ch, formatPCM)
	wrote := false
	err := audio.Pump(src, bitDepth, e.Frames, func(buf *goaudio.IntBuffer) error {
		wrote = true
		return enc.Write(buf)
	})
	if err != nil {
		return errors.Wrap(err, "wav")
	}

	// The header goes out with the first buffer.
	if !wrote {
		empty := &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: ch, SampleRate: src.SampleRate()},
			SourceBitDepth: bitDepth,
		}
		if err := enc.Write(empty); err != nil {
			return errors.Wrap(err, "wav")
		}
	}
	return errors.Wrap(enc.Close(), "wav")
}
