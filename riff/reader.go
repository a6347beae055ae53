// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// source is the cursor shared by a root Reader and all of its descendants.
type source struct {
	r   io.Reader
	off int64
}

// Reader is a bounded view over the body of one chunk.
//
// Every read is checked against the chunk's remaining length and then
// forwarded to the parent chunk, which applies its own bound, down to the
// underlying stream. A Reader never reads past the end of its chunk even
// when the stream has more data.
type Reader struct {
	src    *source
	parent *Reader
	closer io.Closer

	id       FourCC
	listType FourCC
	size     uint32
	avail    int64
	valid    bool

	last    *Reader
	pending *Reader
	scratch [8]byte
}

// NewReader reads the first chunk header from r and returns a Reader bounded
// to that chunk. Leading zero padding is skipped. If r holds nothing but
// padding, the returned Reader is the empty sentinel: Valid reports false,
// ID is empty and Size is 0.
//
// When r is an io.Closer, Close on the returned Reader closes it.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{
		src:   &source{r: r},
		avail: math.MaxUint32,
	}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	return rd, nil
}

func newChild(parent *Reader) (*Reader, error) {
	rd := &Reader{
		src:    parent.src,
		parent: parent,
		avail:  math.MaxUint32,
	}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	return rd, nil
}

func (r *Reader) readHeader() error {
	start := r.src.off
	b := r.scratch[:1]
	for {
		n, err := r.Read(b)
		if n == 1 {
			if b[0] != 0 {
				break
			}
			continue
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			r.avail = 0
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
	}

	hdr := r.scratch[:8]
	if _, err := io.ReadFull(r, hdr[1:]); err != nil {
		return errors.Wrapf(ErrMalformedStream, "chunk header truncated at 0x%X", start)
	}
	r.id = fourCCFromBytes(hdr[:4])
	r.size = binary.LittleEndian.Uint32(hdr[4:8])
	r.avail = int64(r.size)
	r.valid = true
	if r.parent != nil && r.avail > r.parent.avail {
		return errors.Wrapf(ErrMalformedStream, "%s chunk of %d bytes at 0x%X overruns its parent by %d bytes",
			r.id, r.size, start, r.avail-r.parent.avail)
	}

	if r.id.IsContainer() {
		if r.avail < 4 {
			return errors.Wrapf(ErrMalformedStream, "%s chunk of %d bytes has no room for a type at 0x%X", r.id, r.size, start)
		}
		t := r.scratch[:4]
		if _, err := io.ReadFull(r, t); err != nil {
			return errors.Wrapf(ErrMalformedStream, "%s type truncated at 0x%X", r.id, start)
		}
		r.listType = fourCCFromBytes(t)
	}
	return nil
}

// ID is the chunk code. It is empty for the sentinel Reader.
func (r *Reader) ID() FourCC { return r.id }

// Type is the sub-type of a RIFF or LIST chunk, empty otherwise.
func (r *Reader) Type() FourCC { return r.listType }

// Size is the length declared in the chunk header.
func (r *Reader) Size() uint32 { return r.size }

// Valid is false for the sentinel produced when only padding was left.
func (r *Reader) Valid() bool { return r.valid }

// Remaining is the number of unread bytes left inside the chunk.
func (r *Reader) Remaining() int64 { return r.avail }

// Offset is the absolute position of the shared cursor in the stream.
func (r *Reader) Offset() int64 { return r.src.off }

// Read implements io.Reader, bounded to the chunk body. It returns io.EOF at
// the chunk boundary and io.ErrUnexpectedEOF when the stream ends before it.
func (r *Reader) Read(p []byte) (int, error) {
	if r.avail == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if int64(len(p)) > r.avail {
		p = p[:r.avail]
	}

	var (
		n   int
		err error
	)
	if r.parent != nil {
		n, err = r.parent.Read(p)
	} else {
		n, err = r.src.r.Read(p)
		r.src.off += int64(n)
	}
	r.avail -= int64(n)

	if err == io.EOF && r.avail > 0 {
		err = io.ErrUnexpectedEOF
	}
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadFull fills p from the chunk body. It fails with ErrUnexpectedEOF,
// without consuming anything, when the chunk holds fewer than len(p) bytes.
func (r *Reader) ReadFull(p []byte) error {
	if int64(len(p)) > r.avail {
		return errors.Wrapf(ErrUnexpectedEOF, "%s: need %d bytes, %d left at 0x%X", r.id, len(p), r.avail, r.src.off)
	}
	if _, err := io.ReadFull(r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.Wrapf(ErrUnexpectedEOF, "%s: stream ended at 0x%X", r.id, r.src.off)
		}
		return errors.WithStack(err)
	}
	return nil
}

func (r *Reader) fill(n int) ([]byte, error) {
	b := r.scratch[:n]
	if err := r.ReadFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// stringStep bounds each allocation of ReadString, so a declared length
// only costs memory once the bytes have actually arrived.
const stringStep = 4 << 10

// ReadString reads n bytes and returns them up to the first NUL.
func (r *Reader) ReadString(n int) (string, error) {
	if n < 0 {
		return "", errors.Errorf("riff: negative string length %d", n)
	}
	if int64(n) > r.avail {
		return "", errors.Wrapf(ErrUnexpectedEOF, "%s: need %d bytes, %d left at 0x%X", r.id, n, r.avail, r.src.off)
	}
	b := make([]byte, 0, min(n, stringStep))
	for len(b) < n {
		start := len(b)
		k := min(n-start, stringStep)
		b = slices.Grow(b, k)[:start+k]
		if err := r.ReadFull(b[start:]); err != nil {
			return "", err
		}
	}
	for i, c := range b {
		if c == 0 {
			return string(b[:i]), nil
		}
	}
	return string(b), nil
}

// Finish skips whatever is left of the chunk body. Calling it again is a
// no-op.
func (r *Reader) Finish() error {
	if err := r.finishLast(); err != nil {
		return err
	}
	r.pending = nil
	if r.avail == 0 {
		return nil
	}
	want := r.avail
	n, err := io.CopyN(io.Discard, r, want)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.Wrapf(ErrUnexpectedEOF, "%s: skipped %d of %d bytes", r.id, n, want)
		}
		return errors.WithStack(err)
	}
	return nil
}

func (r *Reader) finishLast() error {
	if r.last == nil {
		return nil
	}
	last := r.last
	r.last = nil
	return last.Finish()
}

// HasNext finishes the previously returned child and reports whether
// another child follows. Trailing padding does not count: when HasNext
// reports true, Next returns that child.
func (r *Reader) HasNext() (bool, error) {
	ck, err := r.peek()
	if err != nil {
		return false, err
	}
	return ck != nil, nil
}

// peek opens the next child header without handing the child out yet. It
// returns nil once the body is exhausted or only padding remains.
func (r *Reader) peek() (*Reader, error) {
	if err := r.finishLast(); err != nil {
		return nil, err
	}
	if r.pending != nil {
		return r.pending, nil
	}
	if r.avail == 0 {
		return nil, nil
	}
	ck, err := newChild(r)
	if err != nil {
		return nil, err
	}
	if !ck.valid {
		return nil, nil
	}
	r.pending = ck
	return ck, nil
}

// Next finishes the previously returned child and opens the following one.
// It returns io.EOF once the body is exhausted or only padding remains.
func (r *Reader) Next() (*Reader, error) {
	ck, err := r.peek()
	if err != nil {
		return nil, err
	}
	if ck == nil {
		return nil, io.EOF
	}
	r.pending = nil
	r.last = ck
	return ck, nil
}

// Each calls fn for every remaining child chunk in stream order. Children
// are finished before the next one is opened, whatever fn consumed.
func (r *Reader) Each(fn func(*Reader) error) error {
	for {
		ck, err := r.Next()
		if err == io.EOF {
			return r.finishLast()
		}
		if err != nil {
			return err
		}
		if err := fn(ck); err != nil {
			return err
		}
	}
}

// Close releases the Reader. A child is finished; the root closes the
// stream it was created from when that stream is an io.Closer.
func (r *Reader) Close() error {
	if r.parent != nil {
		return r.Finish()
	}
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return errors.WithStack(c.Close())
}
