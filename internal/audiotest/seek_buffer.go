// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io"
)

// SeekBuffer is an in-memory io.ReadWriteSeeker, for encoders that patch
// their headers after writing the data.
type SeekBuffer struct {
	data   []byte
	offset int64
}

func (b *SeekBuffer) Bytes() []byte { return b.data }

func (b *SeekBuffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	copy(b.data[b.offset:], p)
	b.offset = end
	return len(p), nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.offset + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position")
	}
	b.offset = next
	return next, nil
}
