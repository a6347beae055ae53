// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/pkg/errors"

var (
	// ErrNotSeekable indicates the destination cannot be rewound to patch
	// the frame count and chunk sizes
	ErrNotSeekable = errors.New("AIFF output must be seekable")

	// ErrNoChannels indicates a source without channels
	ErrNoChannels = errors.New("source has no channels")
)
