// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SampleType is the sfSampleType bit set of a sample header.
type SampleType uint16

const (
	MonoSample       SampleType = 0x0001
	RightSample      SampleType = 0x0002
	LeftSample       SampleType = 0x0004
	LinkedSample     SampleType = 0x0008
	VorbisSample     SampleType = 0x0010
	ROMSample        SampleType = 0x8000
	sampleTypeLayout            = MonoSample | RightSample | LeftSample | LinkedSample
)

// IsROM reports whether the sample data lives in a ROM outside the file.
func (t SampleType) IsROM() bool { return t&ROMSample != 0 }

// IsCompressed reports whether the sample holds an SF3 Ogg Vorbis stream.
func (t SampleType) IsCompressed() bool { return t&VorbisSample != 0 }

func (t SampleType) String() string {
	var parts []string
	switch t & sampleTypeLayout {
	case MonoSample:
		parts = append(parts, "mono")
	case RightSample:
		parts = append(parts, "right")
	case LeftSample:
		parts = append(parts, "left")
	case LinkedSample:
		parts = append(parts, "linked")
	case 0:
	default:
		parts = append(parts, fmt.Sprintf("0x%X", uint16(t&sampleTypeLayout)))
	}
	if t.IsCompressed() {
		parts = append(parts, "vorbis")
	}
	if t.IsROM() {
		parts = append(parts, "rom")
	}
	if rest := t &^ (sampleTypeLayout | VorbisSample | ROMSample); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint16(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

func (t SampleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Sample is one entry of the shdr table, with its slice of the sample data.
type Sample struct {
	Name string `json:"name"`

	// Start and End are the raw shdr bounds: frame indexes into smpl, or
	// byte offsets for compressed samples.
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`

	// Data is the sample's range of smpl. It aliases Bank.SampleData.
	Data []byte `json:"-"`

	// Data24 is the sample's range of sm24, nil when the bank has none.
	Data24 []byte `json:"-"`

	// LoopStart and LoopEnd are relative to Start. A negative relative
	// position is reported as -1.
	LoopStart int64 `json:"loopStart"`
	LoopEnd   int64 `json:"loopEnd"`

	SampleRate      uint32     `json:"sampleRate"`
	OriginalPitch   uint8      `json:"originalPitch"`
	PitchCorrection int8       `json:"pitchCorrection"`
	SampleLink      uint16     `json:"sampleLink"`
	SampleType      SampleType `json:"sampleType"`
}

// Frames is the number of 16-bit frames the sample holds. It is 0 for
// compressed samples.
func (s *Sample) Frames() int {
	if s.SampleType.IsCompressed() {
		return 0
	}
	return len(s.Data) / 2
}

func (s *Sample) String() string {
	loop := "no loop"
	if s.LoopStart >= 0 && s.LoopEnd > s.LoopStart {
		loop = fmt.Sprintf("loop %d-%d", s.LoopStart, s.LoopEnd)
	}
	size := fmt.Sprintf("%d frames", s.Frames())
	if s.SampleType.IsCompressed() {
		size = fmt.Sprintf("%d bytes", len(s.Data))
	}
	return fmt.Sprintf("Sample %q: %s @ %d Hz, key %d%+dc, %s, %s",
		s.Name, size, s.SampleRate, s.OriginalPitch, s.PitchCorrection, loop, s.SampleType)
}

// relativeLoop converts an absolute loop point into one relative to start.
func relativeLoop(point, start uint32) int64 {
	v := int64(point) - int64(start)
	if v < 0 {
		return -1
	}
	return v
}
