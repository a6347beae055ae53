// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"github.com/ik5/sfbank/internal/log"
	"github.com/pkg/errors"
)

// finish runs once every chunk has been read: it slices sample data and
// turns id generators into indexes.
func (st *decodeState) finish() error {
	if err := st.sliceSamples(); err != nil {
		return err
	}
	if err := st.resolveLayers(); err != nil {
		return err
	}
	return st.resolveInstruments()
}

func (st *decodeState) sliceSamples() error {
	b := st.bank
	for i, s := range b.Samples {
		if s.SampleType.IsROM() {
			continue
		}
		lo, hi := int64(s.Start)*2, int64(s.End)*2
		if s.SampleType.IsCompressed() {
			lo, hi = int64(s.Start), int64(s.End)
		}
		if hi < lo || hi > int64(len(b.SampleData)) {
			return errors.Wrapf(ErrSampleOutOfRange, "sample %d %q: bytes %d-%d of %d", i, s.Name, lo, hi, len(b.SampleData))
		}
		s.Data = b.SampleData[lo:hi:hi]

		if b.SampleData24 == nil || s.SampleType.IsCompressed() {
			continue
		}
		if int64(s.End) > int64(len(b.SampleData24)) {
			log.Warnf("sample %d %q: sm24 holds %d bytes, need %d; ignoring it", i, s.Name, len(b.SampleData24), s.End)
			continue
		}
		s.Data24 = b.SampleData24[s.Start:s.End:s.End]
	}
	return nil
}

// splitGlobal removes every zone without the id generator op from zones.
// The last one removed is returned as the global zone.
func splitGlobal[Z any](owner string, zones []Z, region func(Z) *Region, op Generator) ([]Z, *Region) {
	var global *Region
	found := 0
	kept := zones[:0]
	for _, z := range zones {
		r := region(z)
		if _, ok := r.Generators[op]; ok {
			kept = append(kept, z)
			continue
		}
		global = &Region{Generators: r.Generators, Modulators: r.Modulators}
		found++
	}
	if found > 1 {
		log.Warnf("%s has %d global zones; keeping the last", owner, found)
	}
	clear(zones[len(kept):])
	return kept, global
}

func (st *decodeState) resolveLayers() error {
	b := st.bank
	for li, l := range b.Layers {
		regions, global := splitGlobal(l.Name, l.Regions, func(r *LayerRegion) *Region { return &r.Region }, GenSampleID)
		l.Regions, l.Global = regions, global
		for ri, r := range l.Regions {
			id := int(uint16(r.Generators[GenSampleID]))
			if id >= len(b.Samples) {
				return errors.Wrapf(ErrDanglingSample, "layer %d %q region %d: sample %d of %d", li, l.Name, ri, id, len(b.Samples))
			}
			delete(r.Generators, GenSampleID)
			r.Sample = id
		}
	}
	return nil
}

func (st *decodeState) resolveInstruments() error {
	b := st.bank
	for ii, inst := range b.Instruments {
		regions, global := splitGlobal(inst.Name, inst.Regions, func(r *InstrumentRegion) *Region { return &r.Region }, GenInstrument)
		inst.Regions, inst.Global = regions, global
		for ri, r := range inst.Regions {
			id := int(uint16(r.Generators[GenInstrument]))
			if id >= len(b.Layers) {
				return errors.Wrapf(ErrDanglingLayer, "instrument %d %q region %d: layer %d of %d", ii, inst.Name, ri, id, len(b.Layers))
			}
			delete(r.Generators, GenInstrument)
			r.Layer = id
		}
	}
	return nil
}
