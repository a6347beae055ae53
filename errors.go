// SPDX-License-Identifier: EPL-2.0

package sfbank

import "github.com/pkg/errors"

var (
	// ErrNoSample indicates a sample index outside the bank.
	ErrNoSample = errors.New("no such sample")

	// ErrROMSample indicates a sample whose data lives in a ROM, not the file.
	ErrROMSample = errors.New("sample data is in ROM")

	// ErrEmptySample indicates a sample without a single frame of data.
	ErrEmptySample = errors.New("sample has no data")

	// ErrNoStereoPair indicates a stereo export of a sample that is not
	// linked to a usable left or right partner.
	ErrNoStereoPair = errors.New("sample has no stereo partner")

	// ErrUnknownFormat indicates an export format with no registered encoder.
	ErrUnknownFormat = errors.New("unknown export format")
)
