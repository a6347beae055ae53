// SPDX-License-Identifier: EPL-2.0

package riff

import "github.com/pkg/errors"

var (
	// ErrUnexpectedEOF is returned when a read asks for more bytes than the
	// current chunk (or the underlying stream) still holds.
	ErrUnexpectedEOF = errors.New("unexpected end of data")

	// ErrMalformedStream is returned when a chunk header cannot be parsed,
	// e.g. the stream ends in the middle of a FourCC or a length field.
	ErrMalformedStream = errors.New("malformed RIFF stream")
)
