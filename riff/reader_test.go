// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"runtime"
	"testing"

	goriff "github.com/go-audio/riff"
	"github.com/ik5/sfbank/internal/sf2test"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestNewReader_Header(t *testing.T) {
	t.Parallel()

	data := sf2test.RIFF("sfbk", sf2test.Chunk("abcd", []byte{1, 2, 3, 4}))

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if !r.Valid() {
		t.Fatal("Valid() = false, want true")
	}
	if r.ID() != RIFF {
		t.Errorf("ID() = %q, want RIFF", r.ID())
	}
	if r.Type() != NewFourCC("sfbk") {
		t.Errorf("Type() = %q, want sfbk", r.Type())
	}
	if r.Size() != uint32(len(data)-8) {
		t.Errorf("Size() = %d, want %d", r.Size(), len(data)-8)
	}
	// the sub-type is part of the body
	if r.Remaining() != int64(len(data)-12) {
		t.Errorf("Remaining() = %d, want %d", r.Remaining(), len(data)-12)
	}
}

func TestNewReader_LeadingPadding(t *testing.T) {
	t.Parallel()

	data := append([]byte{0, 0, 0}, sf2test.Chunk("data", []byte{9, 9})...)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if r.ID() != NewFourCC("data") {
		t.Errorf("ID() = %q, want data", r.ID())
	}
	if r.Size() != 2 {
		t.Errorf("Size() = %d, want 2", r.Size())
	}
	if r.Type() != 0 {
		t.Errorf("Type() = %q, want empty for a leaf chunk", r.Type())
	}
}

func TestNewReader_Sentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"only padding", []byte{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewReader(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("NewReader() error = %v, want nil", err)
			}
			if r.Valid() {
				t.Error("Valid() = true, want false")
			}
			if r.ID() != 0 || r.ID().String() != "" {
				t.Errorf("ID() = %q, want empty", r.ID())
			}
			if r.Size() != 0 || r.Remaining() != 0 {
				t.Errorf("Size() = %d, Remaining() = %d, want 0", r.Size(), r.Remaining())
			}
			if _, err := r.Next(); err != io.EOF {
				t.Errorf("Next() error = %v, want io.EOF", err)
			}
		})
	}
}

func TestNewReader_MalformedHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated fourcc", []byte("RIF")},
		{"truncated size", []byte("RIFF\x10\x00")},
		{"truncated type", []byte("LIST\x08\x00\x00\x00IN")},
		{"list too short for type", []byte("LIST\x02\x00\x00\x00ab")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewReader(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("NewReader() error = %v, want ErrMalformedStream", err)
			}
		})
	}
}

func TestReader_Primitives(t *testing.T) {
	t.Parallel()

	body := new(bytes.Buffer)
	body.WriteByte(0xFE)
	binary.Write(body, binary.LittleEndian, int8(-3))
	binary.Write(body, binary.LittleEndian, uint16(0xBEEF))
	binary.Write(body, binary.LittleEndian, int16(-1234))
	binary.Write(body, binary.LittleEndian, uint32(0xDEADBEEF))
	binary.Write(body, binary.LittleEndian, int32(-123456))
	binary.Write(body, binary.LittleEndian, uint64(0x0102030405060708))
	binary.Write(body, binary.LittleEndian, int64(-9876543210))
	body.Write([]byte("abc\x00zz"))
	body.Write([]byte("wxyz"))

	r, err := NewReader(bytes.NewReader(sf2test.Chunk("prim", body.Bytes())))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if v, err := r.ReadByte(); err != nil || v != 0xFE {
		t.Errorf("ReadByte() = %v, %v, want 0xFE", v, err)
	}
	if v, err := r.ReadInt8(); err != nil || v != -3 {
		t.Errorf("ReadInt8() = %v, %v, want -3", v, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0xBEEF {
		t.Errorf("ReadUint16() = %#x, %v, want 0xBEEF", v, err)
	}
	if v, err := r.ReadInt16(); err != nil || v != -1234 {
		t.Errorf("ReadInt16() = %v, %v, want -1234", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadUint32() = %#x, %v, want 0xDEADBEEF", v, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -123456 {
		t.Errorf("ReadInt32() = %v, %v, want -123456", v, err)
	}
	if v, err := r.ReadUint64(); err != nil || v != 0x0102030405060708 {
		t.Errorf("ReadUint64() = %#x, %v", v, err)
	}
	if v, err := r.ReadInt64(); err != nil || v != -9876543210 {
		t.Errorf("ReadInt64() = %v, %v, want -9876543210", v, err)
	}
	if s, err := r.ReadString(6); err != nil || s != "abc" {
		t.Errorf("ReadString(6) = %q, %v, want \"abc\"", s, err)
	}
	if s, err := r.ReadString(4); err != nil || s != "wxyz" {
		t.Errorf("ReadString(4) = %q, %v, want \"wxyz\"", s, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
	if _, err := r.ReadByte(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadByte() past end error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReader_ReadIsBoundedByChunk(t *testing.T) {
	t.Parallel()

	// the stream carries more bytes than the chunk declares
	data := append(sf2test.Chunk("tiny", []byte{1, 2}), 3, 4, 5, 6)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := r.ReadUint32(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ReadUint32() error = %v, want ErrUnexpectedEOF", err)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2 after a refused read", r.Remaining())
	}
	if v, err := r.ReadUint16(); err != nil || v != 0x0201 {
		t.Errorf("ReadUint16() = %#x, %v, want 0x0201", v, err)
	}

	buf := make([]byte, 8)
	if n, err := r.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("Read() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestReader_StreamTruncated(t *testing.T) {
	t.Parallel()

	// declares 8 bytes, holds 3
	data := []byte("data\x08\x00\x00\x00\x01\x02\x03")

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := r.ReadUint64(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadUint64() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReader_FinishOnTruncatedStream(t *testing.T) {
	t.Parallel()

	data := []byte("data\x10\x00\x00\x00\x01\x02")

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if err := r.Finish(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("Finish() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReader_NextFinishesPreviousChild(t *testing.T) {
	t.Parallel()

	data := sf2test.List("test",
		sf2test.Chunk("aaaa", []byte{1, 2, 3, 4, 5, 6}),
		sf2test.Chunk("bbbb", []byte{7, 8}),
	)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if first.ID() != NewFourCC("aaaa") {
		t.Fatalf("first ID() = %q, want aaaa", first.ID())
	}
	if _, err := first.ReadByte(); err != nil {
		t.Fatalf("ReadByte() error = %v", err)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if second.ID() != NewFourCC("bbbb") {
		t.Fatalf("second ID() = %q, want bbbb", second.ID())
	}
	if first.Remaining() != 0 {
		t.Errorf("first Remaining() = %d, want 0 once the sibling is opened", first.Remaining())
	}
	if v, err := second.ReadUint16(); err != nil || v != 0x0807 {
		t.Errorf("second ReadUint16() = %#x, %v, want 0x0807", v, err)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestReader_HasNext(t *testing.T) {
	t.Parallel()

	data := sf2test.List("test", sf2test.Chunk("only", []byte{1, 2}))

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	ok, err := r.HasNext()
	if err != nil || !ok {
		t.Fatalf("HasNext() = %v, %v, want true", ok, err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	// the child is unread; HasNext must skip it
	ok, err = r.HasNext()
	if err != nil || ok {
		t.Errorf("HasNext() = %v, %v, want false", ok, err)
	}
}

func TestReader_OddChunkPadding(t *testing.T) {
	t.Parallel()

	data := sf2test.List("test",
		sf2test.Chunk("odd ", []byte{1, 2, 3}),
		sf2test.Chunk("next", []byte{4, 5}),
	)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	var ids []string
	err = r.Each(func(ck *Reader) error {
		ids = append(ids, ck.ID().String())
		return nil
	})
	if err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	if len(ids) != 2 || ids[0] != "odd " || ids[1] != "next" {
		t.Errorf("children = %q, want [\"odd \" \"next\"]", ids)
	}
}

func TestReader_TrailingPaddingEndsChildren(t *testing.T) {
	t.Parallel()

	body := append([]byte("test"), sf2test.Chunk("data", []byte{1, 2})...)
	body = append(body, 0, 0, 0, 0)
	data := sf2test.Chunk("LIST", body)

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF after padding", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReader_HasNextIgnoresPadByte(t *testing.T) {
	t.Parallel()

	// the pad byte after "odd " is the last byte of the list body
	data := sf2test.List("test", sf2test.Chunk("odd ", []byte{1, 2, 3}))

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	ok, err := r.HasNext()
	if err != nil || !ok {
		t.Fatalf("HasNext() = %v, %v, want true", ok, err)
	}
	ok, err = r.HasNext()
	if err != nil || !ok {
		t.Fatalf("second HasNext() = %v, %v, want true", ok, err)
	}
	ck, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if ck.ID().String() != "odd " || ck.Remaining() != 3 {
		t.Fatalf("Next() = %q with %d bytes, want \"odd \" with 3", ck.ID(), ck.Remaining())
	}

	ok, err = r.HasNext()
	if err != nil || ok {
		t.Errorf("HasNext() = %v, %v, want false with only a pad byte left", ok, err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReader_ChildLargerThanParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size uint32
	}{
		{"one byte over", 3},
		{"near 2 GiB", 0x7FFFFFF0},
		{"max size", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := []byte("big ")
			raw = binary.LittleEndian.AppendUint32(raw, tt.size)
			raw = append(raw, 'a', 'b')
			data := sf2test.List("test", raw)

			r, err := NewReader(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("NewReader() error = %v", err)
			}

			_, err = r.Next()
			if !errors.Is(err, ErrMalformedStream) {
				t.Fatalf("Next() error = %v, want ErrMalformedStream", err)
			}
			if errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("oversized child also reported as truncation: %v", err)
			}
		})
	}
}

func TestReader_ReadStringBeyondChunk(t *testing.T) {
	t.Parallel()

	data := sf2test.Chunk("name", []byte("abcd"))

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := r.ReadString(10); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ReadString(10) error = %v, want ErrUnexpectedEOF", err)
	}
	if r.Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4 after a refused read", r.Remaining())
	}
	if _, err := r.ReadString(-1); err == nil {
		t.Error("ReadString(-1) error = nil")
	}
	if s, err := r.ReadString(4); err != nil || s != "abcd" {
		t.Errorf("ReadString(4) = %q, %v, want abcd", s, err)
	}
}

// Not parallel: it measures allocations.
func TestReader_ReadStringOnLyingSize(t *testing.T) {
	// declares almost 2 GiB, holds four bytes
	data := []byte("INAM\xf0\xff\xff\x7fab\x00\x00")

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err = r.ReadString(int(r.Remaining()))
	runtime.ReadMemStats(&after)

	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadString() error = %v, want ErrUnexpectedEOF", err)
	}
	if delta := after.TotalAlloc - before.TotalAlloc; delta > 1<<20 {
		t.Errorf("ReadString() allocated %d bytes for a 4-byte body", delta)
	}
}

func TestReader_Containment(t *testing.T) {
	t.Parallel()

	data := sf2test.Minimal().Bytes()
	// trailing bytes outside the RIFF chunk must never be touched
	stream := append(append([]byte{}, data...), []byte("JUNKJUNK")...)

	r, err := NewReader(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	lists := 0
	err = r.Each(func(list *Reader) error {
		lists++
		start := list.Offset() - 12
		if err := list.Each(func(*Reader) error { return nil }); err != nil {
			return err
		}
		if consumed := list.Offset() - start - 8; consumed != int64(list.Size()) {
			t.Errorf("%s %s consumed %d bytes, declared %d", list.ID(), list.Type(), consumed, list.Size())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	if lists != 3 {
		t.Errorf("visited %d lists, want 3", lists)
	}
	if r.Offset() != int64(len(data)) {
		t.Errorf("Offset() = %d, want %d", r.Offset(), len(data))
	}
}

func TestReader_FinishIsIdempotent(t *testing.T) {
	t.Parallel()

	r, err := NewReader(bytes.NewReader(sf2test.Chunk("data", []byte{1, 2, 3, 4})))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	for i := range 2 {
		if err := r.Finish(); err != nil {
			t.Fatalf("Finish() #%d error = %v", i+1, err)
		}
	}
	if r.Offset() != 12 {
		t.Errorf("Offset() = %d, want 12", r.Offset())
	}
}

func TestReader_CloseClosesSource(t *testing.T) {
	t.Parallel()

	src := &closeRecorder{Reader: bytes.NewReader(sf2test.Chunk("data", []byte{1, 2}))}

	r, err := NewReader(src)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the underlying stream")
	}
}

func TestReader_MatchesGoAudioRiff(t *testing.T) {
	t.Parallel()

	data := sf2test.Minimal().Bytes()

	ref := goriff.New(bytes.NewReader(data))
	if err := ref.ParseHeaders(); err != nil {
		t.Fatalf("reference ParseHeaders() error = %v", err)
	}

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if r.ID().Bytes() != ref.ID {
		t.Errorf("ID() = %q, reference %q", r.ID(), ref.ID[:])
	}
	if r.Size() != ref.Size {
		t.Errorf("Size() = %d, reference %d", r.Size(), ref.Size)
	}
	if r.Type().Bytes() != ref.Format {
		t.Errorf("Type() = %q, reference %q", r.Type(), ref.Format[:])
	}

	for {
		want, err := ref.NextChunk()
		if err != nil {
			break
		}
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v, reference has %q", err, want.ID[:])
		}
		if got.ID().Bytes() != want.ID || int(got.Size()) != want.Size {
			t.Errorf("chunk %q/%d, reference %q/%d", got.ID(), got.Size(), want.ID[:], want.Size)
		}
		want.Drain()
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestFourCC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"RIFF", "RIFF"},
		{"sfbk", "sfbk"},
		{"ab", "ab  "},
		{"toolong", "tool"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := NewFourCC(tt.in).String(); got != tt.want {
				t.Errorf("NewFourCC(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if NewFourCC("RIFF") != RIFF || NewFourCC("LIST") != LIST {
		t.Error("container constants do not match their codes")
	}
	if !LIST.IsContainer() || NewFourCC("smpl").IsContainer() {
		t.Error("IsContainer() mismatch")
	}
}
