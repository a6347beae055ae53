// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"context"
	"io"
	"net/http"
	"os"
	"slices"

	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/riff"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// DefaultChunkSize is the increment used to copy sample data when
// Decoder.ChunkSize is zero.
const DefaultChunkSize = 64 << 10

// Decoder reads SoundFont banks. The zero value is ready to use.
type Decoder struct {
	// Charset decodes INFO strings and record names. Nil passes the
	// bytes through unchanged.
	Charset encoding.Encoding

	// ChunkSize bounds each copy step when loading smpl and sm24.
	ChunkSize int
}

// Decode reads a bank with the default Decoder.
func Decode(r io.Reader) (*Bank, error) {
	return Decoder{}.Decode(r)
}

// Open decodes the file at path with the default Decoder.
func Open(path string) (*Bank, error) {
	return Decoder{}.Open(path)
}

// OpenURL fetches url and decodes the response body with the default
// Decoder.
func OpenURL(ctx context.Context, url string) (*Bank, error) {
	return Decoder{}.OpenURL(ctx, url)
}

// Open decodes the file at path.
func (d Decoder) Open(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return d.Decode(f)
}

// OpenURL fetches url with a GET request bound to ctx and decodes the
// response body. A non-2xx status is an error.
func (d Decoder) OpenURL(ctx context.Context, url string) (*Bank, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Errorf("sf2: GET %s: %s", url, resp.Status)
	}
	return d.Decode(resp.Body)
}

// Decode reads a whole bank from r. If r is an io.Closer it is closed
// before Decode returns, on success and on failure. No Bank is returned
// with an error.
func (d Decoder) Decode(r io.Reader) (bank *Bank, err error) {
	root, err := riff.NewReader(r)
	if err != nil {
		if c, ok := r.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil {
				log.Warnf("closing source: %v", cerr)
			}
		}
		return nil, err
	}
	defer func() {
		if cerr := root.Close(); cerr != nil && err == nil {
			bank, err = nil, cerr
		}
	}()

	if !root.Valid() || root.ID() != riff.RIFF {
		return nil, errors.Wrapf(ErrNotRIFF, "first chunk is %q", root.ID().String())
	}
	if root.Type() != ckSfbk {
		return nil, errors.Wrapf(ErrNotSoundFont, "RIFF type is %q", root.Type().String())
	}
	log.Debugf("RIFF %s, %d bytes", root.Type(), root.Size())

	st := &decodeState{d: d, bank: &Bank{Info: defaultInfo()}}
	log.Enter()
	defer log.Leave()
	err = root.Each(func(ck *riff.Reader) error {
		if ck.ID() != riff.LIST {
			log.Debugf("skipping %s chunk, %d bytes", ck.ID(), ck.Size())
			return nil
		}
		log.Debugf("LIST %s, %d bytes at 0x%X", ck.Type(), ck.Size(), ck.Offset())
		log.Enter()
		defer log.Leave()
		switch ck.Type() {
		case ckINFO:
			return st.readInfo(ck)
		case ckSdta:
			return st.readSdta(ck)
		case ckPdta:
			return st.readPdta(ck)
		default:
			log.Debugf("ignoring unknown LIST type %s", ck.Type())
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	if err := st.finish(); err != nil {
		return nil, err
	}
	return st.bank, nil
}

// decodeState is the scratch space of one Decode call.
type decodeState struct {
	d    Decoder
	bank *Bank
}

func (st *decodeState) text(s string) string {
	if st.d.Charset == nil || s == "" {
		return s
	}
	out, err := st.d.Charset.NewDecoder().String(s)
	if err != nil {
		log.Warnf("cannot decode %q: %s", s, err)
		return s
	}
	return out
}

func (st *decodeState) readInfo(list *riff.Reader) error {
	info := &st.bank.Info
	return list.Each(func(ck *riff.Reader) error {
		log.Debugf("%s, %d bytes", ck.ID(), ck.Size())
		switch ck.ID() {
		case ckIfil, ckIver:
			major, err := ck.ReadUint16()
			if err != nil {
				return err
			}
			minor, err := ck.ReadUint16()
			if err != nil {
				return err
			}
			v := Version{int(major), int(minor)}
			if ck.ID() == ckIfil {
				info.Version = v
			} else {
				info.ROMVersion = v
			}
			return nil
		}

		var dst *string
		switch ck.ID() {
		case ckIsng:
			dst = &info.TargetEngine
		case ckINAM:
			dst = &info.Name
		case ckIrom:
			dst = &info.ROMName
		case ckICRD:
			dst = &info.CreationDate
		case ckIENG:
			dst = &info.Engineers
		case ckIPRD:
			dst = &info.Product
		case ckICOP:
			dst = &info.Copyright
		case ckICMT:
			dst = &info.Comments
		case ckISFT:
			dst = &info.Tools
		default:
			log.Debugf("ignoring INFO chunk %s", ck.ID())
			return nil
		}
		s, err := ck.ReadString(int(ck.Remaining()))
		if err != nil {
			return err
		}
		*dst = st.text(s)
		return nil
	})
}

func (st *decodeState) readSdta(list *riff.Reader) error {
	return list.Each(func(ck *riff.Reader) error {
		log.Debugf("%s, %d bytes at 0x%X", ck.ID(), ck.Size(), ck.Offset())
		switch ck.ID() {
		case ckSmpl:
			data, err := st.readBlob(ck)
			if err != nil {
				return err
			}
			st.bank.SampleData = data
		case ckSm24:
			data, err := st.readBlob(ck)
			if err != nil {
				return err
			}
			st.bank.SampleData24 = data
		default:
			log.Debugf("ignoring sdta chunk %s", ck.ID())
		}
		return nil
	})
}

// readBlob copies the rest of ck into a new buffer, growing it one step at
// a time so a lying size field cannot force a huge allocation up front.
func (st *decodeState) readBlob(ck *riff.Reader) ([]byte, error) {
	step := int64(st.d.ChunkSize)
	if step <= 0 {
		step = DefaultChunkSize
	}
	data := make([]byte, 0, min(ck.Remaining(), step))
	for ck.Remaining() > 0 {
		n := int(min(ck.Remaining(), step))
		start := len(data)
		data = slices.Grow(data, n)[:start+n]
		if err := ck.ReadFull(data[start:]); err != nil {
			return nil, err
		}
	}
	return data, nil
}
