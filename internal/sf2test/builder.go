// SPDX-License-Identifier: EPL-2.0

// Package sf2test builds synthetic RIFF and SoundFont 2 streams for tests.
package sf2test

import (
	"bytes"
	"encoding/binary"
)

// Chunk encodes one chunk. Odd-sized bodies get a zero pad byte that is not
// counted in the declared size.
func Chunk(id string, body []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)
	if len(body)%2 == 1 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// List encodes a LIST chunk of the given sub-type.
func List(typ string, children ...[]byte) []byte {
	return container("LIST", typ, children)
}

// RIFF encodes the outermost RIFF chunk.
func RIFF(typ string, children ...[]byte) []byte {
	return container("RIFF", typ, children)
}

func container(id, typ string, children [][]byte) []byte {
	body := new(bytes.Buffer)
	body.WriteString(typ)
	for _, c := range children {
		body.Write(c)
	}
	return Chunk(id, body.Bytes())
}

// ZString pads s with NULs to n bytes, truncating it if needed.
func ZString(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

// Text encodes an INFO string chunk, NUL terminated and padded to even size.
func Text(id, s string) []byte {
	n := len(s) + 1
	if n%2 == 1 {
		n++
	}
	return Chunk(id, ZString(s, n))
}

// Version encodes an ifil or iver chunk.
func Version(id string, major, minor uint16) []byte {
	return Chunk(id, le(major, minor))
}

func le(values ...any) []byte {
	buf := new(bytes.Buffer)
	for _, v := range values {
		binary.Write(buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}
