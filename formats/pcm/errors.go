// SPDX-License-Identifier: EPL-2.0

package pcm

import "github.com/pkg/errors"

var (
	// ErrInvalidSampleRate indicates a Decoder without a positive sample rate
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
