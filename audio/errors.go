// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/pkg/errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnsupportedBitDepth = errors.New("bit depth must be 16 or 24")
	ErrChannelMismatch     = errors.New("both sides of a stereo pair must be mono")
	ErrRateMismatch        = errors.New("both sides of a stereo pair must share a sample rate")
)
