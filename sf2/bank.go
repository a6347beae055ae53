// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"fmt"
	"strings"
)

// Version is a major.minor pair from ifil or iver. Both parts are -1 when
// the chunk is absent.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

func (v Version) String() string {
	if v.Major < 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Info holds the INFO list.
type Info struct {
	Version      Version `json:"version"`
	TargetEngine string  `json:"targetEngine"`
	Name         string  `json:"name"`
	ROMName      string  `json:"romName,omitempty"`
	ROMVersion   Version `json:"romVersion"`
	CreationDate string  `json:"creationDate,omitempty"`
	Engineers    string  `json:"engineers,omitempty"`
	Product      string  `json:"product,omitempty"`
	Copyright    string  `json:"copyright,omitempty"`
	Comments     string  `json:"comments,omitempty"`
	Tools        string  `json:"tools,omitempty"`
}

func defaultInfo() Info {
	return Info{
		Version:      Version{-1, -1},
		ROMVersion:   Version{-1, -1},
		TargetEngine: "EMU8000",
		Name:         "untitled",
	}
}

// Instrument is a preset: a MIDI bank/program pair and the layers it plays.
type Instrument struct {
	Name       string              `json:"name"`
	Preset     uint16              `json:"preset"`
	Bank       uint16              `json:"bank"`
	Library    uint32              `json:"library"`
	Genre      uint32              `json:"genre"`
	Morphology uint32              `json:"morphology"`
	Regions    []*InstrumentRegion `json:"regions"`
	Global     *Region             `json:"global,omitempty"`
}

// Layer is an SF2 instrument: the zones that map keys to samples.
type Layer struct {
	Name    string         `json:"name"`
	Regions []*LayerRegion `json:"regions"`
	Global  *Region        `json:"global,omitempty"`
}

// Bank is a decoded SoundFont. It is not modified after Decode returns.
type Bank struct {
	Info

	// SampleData is the smpl blob, 16-bit little-endian frames.
	SampleData []byte `json:"-"`

	// SampleData24 is the sm24 blob, nil when absent.
	SampleData24 []byte `json:"-"`

	Instruments []*Instrument `json:"instruments"`
	Layers      []*Layer      `json:"layers"`
	Samples     []*Sample     `json:"samples"`
}

// RegionSample returns the sample played by r, or nil if r does not
// belong to b.
func (b *Bank) RegionSample(r *LayerRegion) *Sample {
	if r == nil || r.Sample < 0 || r.Sample >= len(b.Samples) {
		return nil
	}
	return b.Samples[r.Sample]
}

// RegionLayer returns the layer played by r, or nil if r does not belong
// to b.
func (b *Bank) RegionLayer(r *InstrumentRegion) *Layer {
	if r == nil || r.Layer < 0 || r.Layer >= len(b.Layers) {
		return nil
	}
	return b.Layers[r.Layer]
}

// Preset finds the instrument with the given MIDI bank and program.
func (b *Bank) Preset(bank, preset uint16) (*Instrument, bool) {
	for _, inst := range b.Instruments {
		if inst.Bank == bank && inst.Preset == preset {
			return inst, true
		}
	}
	return nil, false
}

func (b *Bank) String() string {
	head := fmt.Sprintf("SoundFont %q v%s (%s)", b.Name, b.Version, b.TargetEngine)
	var meta []string
	for _, kv := range [][2]string{
		{"ROM", b.ROMName},
		{"Created", b.CreationDate},
		{"Engineers", b.Engineers},
		{"Product", b.Product},
		{"Copyright", b.Copyright},
		{"Comments", b.Comments},
		{"Tools", b.Tools},
	} {
		if kv[1] != "" {
			meta = append(meta, kv[0]+": "+kv[1])
		}
	}

	var insts, layers, samples []string
	for i, inst := range b.Instruments {
		insts = append(insts, b.instrumentString(i, inst))
	}
	for i, l := range b.Layers {
		layers = append(layers, b.layerString(i, l))
	}
	for i, s := range b.Samples {
		samples = append(samples, fmt.Sprintf("%03d %s", i, s))
	}

	parts := []string{head}
	if len(meta) != 0 {
		parts = append(parts, indent(strings.Join(meta, "\n"), "\t"))
	}
	parts = append(parts,
		indent(section("Instruments", insts), "\t"),
		indent(section("Layers", layers), "\t"),
		indent(section("Samples", samples), "\t"),
	)
	return strings.Join(parts, "\n")
}

func (inst *Instrument) String() string {
	return fmt.Sprintf("Instrument %03d:%03d %q (%d regions)", inst.Bank, inst.Preset, inst.Name, len(inst.Regions))
}

func (l *Layer) String() string {
	return fmt.Sprintf("Layer %q (%d regions)", l.Name, len(l.Regions))
}

func (b *Bank) instrumentString(i int, inst *Instrument) string {
	var sub []string
	if inst.Global != nil {
		sub = append(sub, "Global: "+inst.Global.String())
	}
	for _, r := range inst.Regions {
		name := "?"
		if l := b.RegionLayer(r); l != nil {
			name = l.Name
		}
		line := fmt.Sprintf("Region -> layer %d %q", r.Layer, name)
		if g := r.Region.String(); g != "" {
			line += ": " + g
		}
		sub = append(sub, line)
	}
	return joinTree(fmt.Sprintf("%03d %s", i, inst), sub)
}

func (b *Bank) layerString(i int, l *Layer) string {
	var sub []string
	if l.Global != nil {
		sub = append(sub, "Global: "+l.Global.String())
	}
	for _, r := range l.Regions {
		name := "?"
		if s := b.RegionSample(r); s != nil {
			name = s.Name
		}
		line := fmt.Sprintf("Region -> sample %d %q", r.Sample, name)
		if g := r.Region.String(); g != "" {
			line += ": " + g
		}
		sub = append(sub, line)
	}
	return joinTree(fmt.Sprintf("%03d %s", i, l), sub)
}

func section(title string, items []string) string {
	return joinTree(fmt.Sprintf("%s (%d):", title, len(items)), items)
}

func joinTree(head string, children []string) string {
	if len(children) == 0 {
		return head
	}
	return head + "\n" + indent(strings.Join(children, "\n"), "\t")
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
