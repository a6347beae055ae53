// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/riff"
	"github.com/pkg/errors"
)

// fieldReader reads consecutive record fields and keeps the first error.
type fieldReader struct {
	r   *riff.Reader
	err error
}

func (f *fieldReader) u8() uint8 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.ReadByte()
	f.err = err
	return v
}

func (f *fieldReader) i8() int8 { return int8(f.u8()) }

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.ReadUint16()
	f.err = err
	return v
}

func (f *fieldReader) i16() int16 { return int16(f.u16()) }

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.ReadUint32()
	f.err = err
	return v
}

func (f *fieldReader) str(n int) string {
	if f.err != nil {
		return ""
	}
	s, err := f.r.ReadString(n)
	f.err = err
	return s
}

// records returns how many size-byte records fill the rest of ck.
func records(ck *riff.Reader, size int) (int, error) {
	n := ck.Remaining()
	if n%int64(size) != 0 {
		return 0, errors.Wrapf(ErrMalformedTable, "%s: %d bytes is not a multiple of %d at 0x%X", ck.ID(), n, size, ck.Offset())
	}
	return int(n / int64(size)), nil
}

// headerRecords is records for tables that end with a terminal record.
func headerRecords(ck *riff.Reader, size int) (int, error) {
	count, err := records(ck, size)
	if err != nil {
		return 0, err
	}
	if count < 2 {
		return 0, errors.Wrapf(ErrMalformedTable, "%s: %d records, need at least 2 at 0x%X", ck.ID(), count, ck.Offset())
	}
	return count, nil
}

// zoneTable rebuilds the zones of one hdr/bag/mod/gen family.
//
// bagIndex holds the bag offset of every header record, terminal included.
// After the bag table is read, gens[i] and mods[i] name the region that
// owns generator or modulator record i, or nil for records that belong to
// no zone.
type zoneTable struct {
	name     string
	bagIndex []int
	gens     []*Region
	mods     []*Region
}

// readBags walks the bag table and calls newZone for every zone of every
// header record, in order. owner is the index of the header record.
func (z *zoneTable) readBags(ck *riff.Reader, newZone func(owner int) *Region) error {
	count, err := records(ck, bagSize)
	if err != nil {
		return err
	}
	if len(z.bagIndex) == 0 {
		return errors.Wrapf(ErrMalformedTable, "%s: no %s headers before the bag table", ck.ID(), z.name)
	}

	f := &fieldReader{r: ck}
	next := func(zone *Region) error {
		if count == 0 {
			return errors.Wrapf(ErrMalformedTable, "%s: ran out of bag records at 0x%X", ck.ID(), ck.Offset())
		}
		count--
		gen, mod := int(f.u16()), int(f.u16())
		if f.err != nil {
			return f.err
		}
		for len(z.gens) < gen {
			z.gens = append(z.gens, zone)
		}
		for len(z.mods) < mod {
			z.mods = append(z.mods, zone)
		}
		return nil
	}

	// The first record only opens the first zone; whatever precedes its
	// offsets belongs to nobody.
	if err := next(nil); err != nil {
		return err
	}
	for range z.bagIndex[0] {
		if err := next(nil); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(z.bagIndex); i++ {
		zones := z.bagIndex[i+1] - z.bagIndex[i]
		if zones < 0 {
			return errors.Wrapf(ErrMalformedTable, "%s %d: bag index %d is below the previous %d", z.name, i+1, z.bagIndex[i+1], z.bagIndex[i])
		}
		for range zones {
			if err := next(newZone(i)); err != nil {
				return err
			}
		}
	}
	if count != 0 {
		log.Debugf("%s: %d trailing bag records", ck.ID(), count)
	}
	return nil
}

func (z *zoneTable) readMods(ck *riff.Reader) error {
	count, err := records(ck, modSize)
	if err != nil {
		return err
	}
	if count < len(z.mods) {
		return errors.Wrapf(ErrMalformedTable, "%s: %d records, bags reference %d at 0x%X", ck.ID(), count, len(z.mods), ck.Offset())
	}
	f := &fieldReader{r: ck}
	for _, zone := range z.mods {
		m := Modulator{
			Source:       f.u16(),
			Destination:  f.u16(),
			Amount:       f.i16(),
			AmountSource: f.u16(),
			Transform:    f.u16(),
		}
		if f.err != nil {
			return f.err
		}
		if zone != nil {
			zone.Modulators = append(zone.Modulators, m)
		}
	}
	return nil
}

func (z *zoneTable) readGens(ck *riff.Reader) error {
	count, err := records(ck, genSize)
	if err != nil {
		return err
	}
	if count < len(z.gens) {
		return errors.Wrapf(ErrMalformedTable, "%s: %d records, bags reference %d at 0x%X", ck.ID(), count, len(z.gens), ck.Offset())
	}
	f := &fieldReader{r: ck}
	for _, zone := range z.gens {
		op, amount := Generator(f.u16()), f.i16()
		if f.err != nil {
			return f.err
		}
		if zone != nil {
			zone.Generators[op] = amount
		}
	}
	return nil
}

func (st *decodeState) readPdta(list *riff.Reader) error {
	presets := &zoneTable{name: "preset"}
	layers := &zoneTable{name: "instrument"}
	b := st.bank

	return list.Each(func(ck *riff.Reader) error {
		log.Debugf("%s, %d bytes at 0x%X", ck.ID(), ck.Size(), ck.Offset())
		switch ck.ID() {
		case ckPhdr:
			return st.readPresetHeaders(ck, presets)
		case ckPbag:
			return presets.readBags(ck, func(owner int) *Region {
				r := &InstrumentRegion{Region: newRegion(), Layer: -1}
				inst := b.Instruments[owner]
				inst.Regions = append(inst.Regions, r)
				return &r.Region
			})
		case ckPmod:
			return presets.readMods(ck)
		case ckPgen:
			return presets.readGens(ck)
		case ckInst:
			return st.readInstrumentHeaders(ck, layers)
		case ckIbag:
			return layers.readBags(ck, func(owner int) *Region {
				r := &LayerRegion{Region: newRegion(), Sample: -1}
				l := b.Layers[owner]
				l.Regions = append(l.Regions, r)
				return &r.Region
			})
		case ckImod:
			return layers.readMods(ck)
		case ckIgen:
			return layers.readGens(ck)
		case ckShdr:
			return st.readSampleHeaders(ck)
		default:
			log.Debugf("ignoring pdta chunk %s", ck.ID())
			return nil
		}
	})
}

func (st *decodeState) readPresetHeaders(ck *riff.Reader, z *zoneTable) error {
	count, err := headerRecords(ck, phdrSize)
	if err != nil {
		return err
	}
	f := &fieldReader{r: ck}
	insts := make([]*Instrument, 0, count-1)
	z.bagIndex = make([]int, 0, count)
	for i := range count {
		inst := &Instrument{
			Name:   f.str(20),
			Preset: f.u16(),
			Bank:   f.u16(),
		}
		bag := f.u16()
		inst.Library = f.u32()
		inst.Genre = f.u32()
		inst.Morphology = f.u32()
		if f.err != nil {
			return f.err
		}
		z.bagIndex = append(z.bagIndex, int(bag))
		if i < count-1 {
			inst.Name = st.text(inst.Name)
			insts = append(insts, inst)
		}
	}
	st.bank.Instruments = insts
	return nil
}

func (st *decodeState) readInstrumentHeaders(ck *riff.Reader, z *zoneTable) error {
	count, err := headerRecords(ck, instSize)
	if err != nil {
		return err
	}
	f := &fieldReader{r: ck}
	layers := make([]*Layer, 0, count-1)
	z.bagIndex = make([]int, 0, count)
	for i := range count {
		name, bag := f.str(20), f.u16()
		if f.err != nil {
			return f.err
		}
		z.bagIndex = append(z.bagIndex, int(bag))
		if i < count-1 {
			layers = append(layers, &Layer{Name: st.text(name)})
		}
	}
	st.bank.Layers = layers
	return nil
}

func (st *decodeState) readSampleHeaders(ck *riff.Reader) error {
	count, err := headerRecords(ck, shdrSize)
	if err != nil {
		return err
	}
	f := &fieldReader{r: ck}
	samples := make([]*Sample, 0, count-1)
	for i := range count {
		s := &Sample{Name: f.str(20), Start: f.u32(), End: f.u32()}
		loopStart, loopEnd := f.u32(), f.u32()
		s.SampleRate = f.u32()
		s.OriginalPitch = f.u8()
		s.PitchCorrection = f.i8()
		s.SampleLink = f.u16()
		s.SampleType = SampleType(f.u16())
		if f.err != nil {
			return f.err
		}
		if i == count-1 {
			break
		}
		s.Name = st.text(s.Name)
		if s.SampleType.IsCompressed() {
			s.LoopStart, s.LoopEnd = int64(loopStart), int64(loopEnd)
		} else {
			s.LoopStart = relativeLoop(loopStart, s.Start)
			s.LoopEnd = relativeLoop(loopEnd, s.Start)
		}
		samples = append(samples, s)
	}
	st.bank.Samples = samples
	return nil
}
