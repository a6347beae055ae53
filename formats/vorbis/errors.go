// SPDX-License-Identifier: EPL-2.0

package vorbis

import "github.com/pkg/errors"

var (
	// ErrNotVorbis indicates the data is not an Ogg Vorbis stream
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
)
