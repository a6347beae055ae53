// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"github.com/ik5/sfbank/riff"
	"github.com/pkg/errors"
)

var (
	// ErrNotRIFF indicates the outermost chunk is not a RIFF chunk.
	ErrNotRIFF = errors.New("not a valid RIFF stream")

	// ErrNotSoundFont indicates a RIFF stream whose type is not sfbk.
	ErrNotSoundFont = errors.New("not a valid SoundFont")

	// ErrMalformedTable indicates a pdta table that is internally
	// inconsistent: a size that is not a multiple of the record length,
	// a missing terminal record, or bag offsets that run past the table.
	ErrMalformedTable = errors.New("malformed table")

	// ErrSampleOutOfRange indicates a sample header whose data range lies
	// outside the smpl blob. It is a kind of ErrMalformedTable.
	ErrSampleOutOfRange = errors.Wrap(ErrMalformedTable, "sample outside sample data")

	// ErrDanglingReference indicates a generator that names a sample or
	// instrument which does not exist.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrDanglingSample is the ErrDanglingReference raised by a sampleID
	// generator.
	ErrDanglingSample = errors.Wrap(ErrDanglingReference, "sample")

	// ErrDanglingLayer is the ErrDanglingReference raised by an instrument
	// generator.
	ErrDanglingLayer = errors.Wrap(ErrDanglingReference, "layer")

	// ErrUnexpectedEOF indicates the stream was cut off. It is the same
	// value as riff.ErrUnexpectedEOF.
	ErrUnexpectedEOF = riff.ErrUnexpectedEOF

	// ErrMalformedStream indicates a chunk header that cannot be trusted,
	// such as a chunk declaring more bytes than its parent holds. It is the
	// same value as riff.ErrMalformedStream.
	ErrMalformedStream = riff.ErrMalformedStream
)
