// SPDX-License-Identifier: EPL-2.0

package riff

import "encoding/binary"

// FourCC is a four character chunk code packed in stream order, so that
// 'R'<<24|'I'<<16|'F'<<8|'F' is the code stored as "RIFF".
type FourCC uint32

// Container codes. Chunks with one of these codes carry a sub-type and nest
// further chunks.
const (
	RIFF FourCC = 'R'<<24 | 'I'<<16 | 'F'<<8 | 'F'
	LIST FourCC = 'L'<<24 | 'I'<<16 | 'S'<<8 | 'T'
)

// NewFourCC packs the first four bytes of s. Shorter codes are padded with
// spaces, as RIFF writers do.
func NewFourCC(s string) FourCC {
	b := [4]byte{' ', ' ', ' ', ' '}
	copy(b[:], s)
	return fourCCFromBytes(b[:])
}

func fourCCFromBytes(b []byte) FourCC {
	return FourCC(binary.BigEndian.Uint32(b))
}

// Bytes returns the code as it appears in the stream.
func (c FourCC) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(c))
	return b
}

// IsContainer reports whether chunks of this code hold nested chunks.
func (c FourCC) IsContainer() bool {
	return c == RIFF || c == LIST
}

func (c FourCC) String() string {
	if c == 0 {
		return ""
	}
	b := c.Bytes()
	return string(b[:])
}
