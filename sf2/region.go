// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"fmt"
	"slices"
	"strings"
)

// Modulator is one pmod/imod record.
type Modulator struct {
	Source       uint16 `json:"source"`
	Destination  uint16 `json:"destination"`
	Amount       int16  `json:"amount"`
	AmountSource uint16 `json:"amountSource"`
	Transform    uint16 `json:"transform"`
}

func (m Modulator) String() string {
	return fmt.Sprintf("mod 0x%04X -> 0x%04X x %d (amt 0x%04X, trans %d)",
		m.Source, m.Destination, m.Amount, m.AmountSource, m.Transform)
}

// Region is a zone: generator amounts keyed by operator plus modulators
// in table order.
type Region struct {
	Generators map[Generator]int16 `json:"generators"`
	Modulators []Modulator         `json:"modulators,omitempty"`
}

func newRegion() Region {
	return Region{Generators: map[Generator]int16{}}
}

// Generator returns the amount of op and whether the region sets it.
func (r *Region) Generator(op Generator) (int16, bool) {
	v, ok := r.Generators[op]
	return v, ok
}

// KeyRange returns the keyRange generator as a lo/hi pair, 0-127 when unset.
func (r *Region) KeyRange() (lo, hi uint8) {
	return r.byteRange(GenKeyRange)
}

// VelocityRange returns the velRange generator as a lo/hi pair, 0-127 when
// unset.
func (r *Region) VelocityRange() (lo, hi uint8) {
	return r.byteRange(GenVelRange)
}

func (r *Region) byteRange(op Generator) (lo, hi uint8) {
	v, ok := r.Generators[op]
	if !ok {
		return 0, 127
	}
	u := uint16(v)
	return uint8(u), uint8(u >> 8)
}

func (r *Region) String() string {
	ops := make([]Generator, 0, len(r.Generators))
	for op := range r.Generators {
		ops = append(ops, op)
	}
	slices.Sort(ops)

	var b strings.Builder
	for i, op := range ops {
		if i > 0 {
			b.WriteString(" ")
		}
		v := r.Generators[op]
		if op.isRange() {
			fmt.Fprintf(&b, "%s=%d-%d", op, uint8(uint16(v)), uint8(uint16(v)>>8))
		} else {
			fmt.Fprintf(&b, "%s=%d", op, v)
		}
	}
	for _, m := range r.Modulators {
		b.WriteString("\n" + m.String())
	}
	return b.String()
}

// InstrumentRegion is a preset zone that plays one Layer.
type InstrumentRegion struct {
	Region
	Layer int `json:"layer"`
}

// LayerRegion is an instrument zone that plays one Sample.
type LayerRegion struct {
	Region
	Sample int `json:"sample"`
}
