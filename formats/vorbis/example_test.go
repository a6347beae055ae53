// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"errors"
	"fmt"

	"github.com/ik5/sfbank/formats/vorbis"
)

// Example shows what happens when a compressed sample holds no Vorbis stream.
func Example() {
	// SF3 sample data should start with an Ogg page.
	data := []byte{0x00, 0x40, 0x00, 0xC0}

	_, err := vorbis.NewSource(data)
	fmt.Println("not vorbis:", errors.Is(err, vorbis.ErrNotVorbis))

	// Output:
	// not vorbis: true
}
