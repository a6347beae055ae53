// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"log"

	"github.com/ik5/sfbank/formats/pcm"
	"github.com/ik5/sfbank/formats/wav"
	"github.com/ik5/sfbank/internal/audiotest"
)

// Example writes a two-frame SoundFont sample as a 16-bit WAV file.
func Example() {
	src, err := pcm.NewSource([]byte{0x00, 0x40, 0x00, 0xC0}, nil, 22050)
	if err != nil {
		log.Fatal(err)
	}

	out := &audiotest.SeekBuffer{}
	if err := (wav.Encoder{}).Encode(out, src, 16); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d bytes, %q\n", len(out.Bytes()), out.Bytes()[8:12])

	// Output:
	// 48 bytes, "WAVE"
}
