// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sfbank/audio"
	"github.com/pkg/errors"
)

// Encoder writes a source as a big-endian AIFF file.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, src audio.Source, bitDepth int) error {
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

	enc := aiff.NewEncoder(w, src.SampleRate(), bitDepth, ch)
	wrote := false
	err := audio.Pump(src, bitDepth, 0, func(buf *goaudio.IntBuffer) error {
		wrote = true
		return enc.Write(buf)
	})
	if err != nil {
		return errors.Wrap(err, "aiff")
	}
	if !wrote {
		err = enc.Write(&goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: ch, SampleRate: src.SampleRate()},
			SourceBitDepth: bitDepth,
		})
		if err != nil {
			return errors.Wrap(err, "aiff")
		}
	}
	return errors.Wrap(enc.Close(), "aiff")
}
