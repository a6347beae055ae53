// SPDX-License-Identifier: EPL-2.0

package sf2test

import "bytes"

// Generator operators used by the fixtures.
const (
	GenInstrument uint16 = 41
	GenKeyRange   uint16 = 43
	GenSampleID   uint16 = 53
)

type PresetHeader struct {
	Name       string
	Preset     uint16
	Bank       uint16
	BagIndex   uint16
	Library    uint32
	Genre      uint32
	Morphology uint32
}

type InstHeader struct {
	Name     string
	BagIndex uint16
}

type Bag struct {
	Gen uint16
	Mod uint16
}

type Gen struct {
	Op     uint16
	Amount int16
}

type Mod struct {
	Src       uint16
	Dest      uint16
	Amount    int16
	AmountSrc uint16
	Transform uint16
}

type SampleHeader struct {
	Name       string
	Start      uint32
	End        uint32
	LoopStart  uint32
	LoopEnd    uint32
	SampleRate uint32
	Pitch      uint8
	Correction int8
	Link       uint16
	Type       uint16
}

func PHDR(recs ...PresetHeader) []byte {
	buf := new(bytes.Buffer)
	for _, r := range recs {
		buf.Write(ZString(r.Name, 20))
		buf.Write(le(r.Preset, r.Bank, r.BagIndex, r.Library, r.Genre, r.Morphology))
	}
	return Chunk("phdr", buf.Bytes())
}

func INST(recs ...InstHeader) []byte {
	buf := new(bytes.Buffer)
	for _, r := range recs {
		buf.Write(ZString(r.Name, 20))
		buf.Write(le(r.BagIndex))
	}
	return Chunk("inst", buf.Bytes())
}

func Bags(id string, recs ...Bag) []byte {
	buf := new(bytes.Buffer)
	for _, r := range recs {
		buf.Write(le(r.Gen, r.Mod))
	}
	return Chunk(id, buf.Bytes())
}

// Gens encodes a generator table followed by the zero terminal record.
func Gens(id string, recs ...Gen) []byte {
	buf := new(bytes.Buffer)
	for _, r := range append(recs, Gen{}) {
		buf.Write(le(r.Op, r.Amount))
	}
	return Chunk(id, buf.Bytes())
}

// Mods encodes a modulator table followed by the zero terminal record.
func Mods(id string, recs ...Mod) []byte {
	buf := new(bytes.Buffer)
	for _, r := range append(recs, Mod{}) {
		buf.Write(le(r.Src, r.Dest, r.Amount, r.AmountSrc, r.Transform))
	}
	return Chunk(id, buf.Bytes())
}

func SHDR(recs ...SampleHeader) []byte {
	buf := new(bytes.Buffer)
	for _, r := range recs {
		buf.Write(ZString(r.Name, 20))
		buf.Write(le(r.Start, r.End, r.LoopStart, r.LoopEnd, r.SampleRate, r.Pitch, r.Correction, r.Link, r.Type))
	}
	return Chunk("shdr", buf.Bytes())
}

// Font describes a whole SoundFont. Header, bag and sample tables must list
// their terminal records explicitly; generator and modulator tables get one
// appended.
type Font struct {
	Info [][]byte
	Smpl []byte
	Sm24 []byte

	Presets []PresetHeader
	PBags   []Bag
	PMods   []Mod
	PGens   []Gen

	Insts []InstHeader
	IBags []Bag
	IMods []Mod
	IGens []Gen

	Samples []SampleHeader
}

// SDTA encodes the sample data list.
func (f *Font) SDTA() []byte {
	children := [][]byte{Chunk("smpl", f.Smpl)}
	if f.Sm24 != nil {
		children = append(children, Chunk("sm24", f.Sm24))
	}
	return List("sdta", children...)
}

// PDTA encodes the preset data list in the canonical chunk order.
func (f *Font) PDTA() []byte {
	return List("pdta",
		PHDR(f.Presets...),
		Bags("pbag", f.PBags...),
		Mods("pmod", f.PMods...),
		Gens("pgen", f.PGens...),
		INST(f.Insts...),
		Bags("ibag", f.IBags...),
		Mods("imod", f.IMods...),
		Gens("igen", f.IGens...),
		SHDR(f.Samples...),
	)
}

// Bytes encodes the font as RIFF sfbk with INFO, sdta and pdta lists.
func (f *Font) Bytes() []byte {
	return RIFF("sfbk", List("INFO", f.Info...), f.SDTA(), f.PDTA())
}

// Minimal returns a font with one preset pointing at one instrument, which
// plays one sample spanning the whole 4-byte smpl blob.
func Minimal() *Font {
	return &Font{
		Info: [][]byte{
			Version("ifil", 2, 1),
			Text("isng", "EMU8000"),
			Text("INAM", "Minimal"),
		},
		Smpl: []byte{0x00, 0x40, 0x00, 0xC0},
		Presets: []PresetHeader{
			{Name: "Piano", Preset: 0, Bank: 0, BagIndex: 0},
			{Name: "EOP", BagIndex: 1},
		},
		PBags: []Bag{{0, 0}, {1, 0}},
		PGens: []Gen{{Op: GenInstrument, Amount: 0}},
		Insts: []InstHeader{
			{Name: "Piano Layer", BagIndex: 0},
			{Name: "EOI", BagIndex: 1},
		},
		IBags: []Bag{{0, 0}, {1, 0}},
		IGens: []Gen{{Op: GenSampleID, Amount: 0}},
		Samples: []SampleHeader{
			{Name: "Tone", Start: 0, End: 2, LoopStart: 0, LoopEnd: 1, SampleRate: 22050, Pitch: 60, Type: 1},
			{Name: "EOS"},
		},
	}
}
