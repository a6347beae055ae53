// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/pkg/errors"

var (
	// ErrNotSeekable indicates the destination cannot be rewound to patch
	// the header sizes
	ErrNotSeekable = errors.New("WAV output must be seekable")

	// ErrNoChannels indicates a source without channels
	ErrNoChannels = errors.New("source has no channels")
)
