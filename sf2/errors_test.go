// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"errors"
	"testing"

	"github.com/ik5/sfbank/riff"
)

func TestErrors_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		kindOf error
	}{
		{"ErrSampleOutOfRange", ErrSampleOutOfRange, ErrMalformedTable},
		{"ErrDanglingSample", ErrDanglingSample, ErrDanglingReference},
		{"ErrDanglingLayer", ErrDanglingLayer, ErrDanglingReference},
		{"ErrUnexpectedEOF", ErrUnexpectedEOF, riff.ErrUnexpectedEOF},
		{"ErrMalformedStream", ErrMalformedStream, riff.ErrMalformedStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.kindOf) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kindOf)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotRIFF, ErrNotSoundFont, ErrMalformedTable, ErrDanglingReference, ErrUnexpectedEOF, ErrMalformedStream}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true", a, b)
			}
		}
	}
	if errors.Is(ErrDanglingSample, ErrDanglingLayer) {
		t.Error("sample and layer references must stay apart")
	}
}
