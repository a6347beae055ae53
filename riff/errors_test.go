// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrUnexpectedEOF", ErrUnexpectedEOF, "unexpected end of data"},
		{"ErrMalformedStream", ErrMalformedStream, "malformed RIFF stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrUnexpectedEOF, ErrMalformedStream) || errors.Is(ErrMalformedStream, ErrUnexpectedEOF) {
		t.Error("truncation and malformed header errors must not match each other")
	}

	wrapped := fmt.Errorf("reading phdr: %w", ErrUnexpectedEOF)
	if !errors.Is(wrapped, ErrUnexpectedEOF) {
		t.Error("errors.Is(wrapped, ErrUnexpectedEOF) = false, want true")
	}
}
