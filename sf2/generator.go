// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"fmt"
	"strconv"
)

// Generator is an SF2 generator operator.
type Generator uint16

const (
	GenStartAddrsOffset Generator = iota
	GenEndAddrsOffset
	GenStartloopAddrsOffset
	GenEndloopAddrsOffset
	GenStartAddrsCoarseOffset
	GenModLfoToPitch
	GenVibLfoToPitch
	GenModEnvToPitch
	GenInitialFilterFc
	GenInitialFilterQ
	GenModLfoToFilterFc
	GenModEnvToFilterFc
	GenEndAddrsCoarseOffset
	GenModLfoToVolume
	GenUnused1
	GenChorusEffectsSend
	GenReverbEffectsSend
	GenPan
	GenUnused2
	GenUnused3
	GenUnused4
	GenDelayModLFO
	GenFreqModLFO
	GenDelayVibLFO
	GenFreqVibLFO
	GenDelayModEnv
	GenAttackModEnv
	GenHoldModEnv
	GenDecayModEnv
	GenSustainModEnv
	GenReleaseModEnv
	GenKeynumToModEnvHold
	GenKeynumToModEnvDecay
	GenDelayVolEnv
	GenAttackVolEnv
	GenHoldVolEnv
	GenDecayVolEnv
	GenSustainVolEnv
	GenReleaseVolEnv
	GenKeynumToVolEnvHold
	GenKeynumToVolEnvDecay
	GenInstrument
	GenReserved1
	GenKeyRange
	GenVelRange
	GenStartloopAddrsCoarseOffset
	GenKeynum
	GenVelocity
	GenInitialAttenuation
	GenReserved2
	GenEndloopAddrsCoarseOffset
	GenCoarseTune
	GenFineTune
	GenSampleID
	GenSampleModes
	GenReserved3
	GenScaleTuning
	GenExclusiveClass
	GenOverridingRootKey
	GenUnused5
	GenEndOper
)

var generatorNames = [...]string{
	"startAddrsOffset",
	"endAddrsOffset",
	"startloopAddrsOffset",
	"endloopAddrsOffset",
	"startAddrsCoarseOffset",
	"modLfoToPitch",
	"vibLfoToPitch",
	"modEnvToPitch",
	"initialFilterFc",
	"initialFilterQ",
	"modLfoToFilterFc",
	"modEnvToFilterFc",
	"endAddrsCoarseOffset",
	"modLfoToVolume",
	"unused1",
	"chorusEffectsSend",
	"reverbEffectsSend",
	"pan",
	"unused2",
	"unused3",
	"unused4",
	"delayModLFO",
	"freqModLFO",
	"delayVibLFO",
	"freqVibLFO",
	"delayModEnv",
	"attackModEnv",
	"holdModEnv",
	"decayModEnv",
	"sustainModEnv",
	"releaseModEnv",
	"keynumToModEnvHold",
	"keynumToModEnvDecay",
	"delayVolEnv",
	"attackVolEnv",
	"holdVolEnv",
	"decayVolEnv",
	"sustainVolEnv",
	"releaseVolEnv",
	"keynumToVolEnvHold",
	"keynumToVolEnvDecay",
	"instrument",
	"reserved1",
	"keyRange",
	"velRange",
	"startloopAddrsCoarseOffset",
	"keynum",
	"velocity",
	"initialAttenuation",
	"reserved2",
	"endloopAddrsCoarseOffset",
	"coarseTune",
	"fineTune",
	"sampleID",
	"sampleModes",
	"reserved3",
	"scaleTuning",
	"exclusiveClass",
	"overridingRootKey",
	"unused5",
	"endOper",
}

func (g Generator) String() string {
	if int(g) < len(generatorNames) {
		return generatorNames[g]
	}
	return fmt.Sprintf("gen%d", uint16(g))
}

// MarshalText lets generator maps encode with operator names as keys.
func (g Generator) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText accepts both operator names and the genN form.
func (g *Generator) UnmarshalText(b []byte) error {
	s := string(b)
	for i, name := range generatorNames {
		if name == s {
			*g = Generator(i)
			return nil
		}
	}
	if len(s) > 3 && s[:3] == "gen" {
		v, err := strconv.ParseUint(s[3:], 10, 16)
		if err == nil {
			*g = Generator(v)
			return nil
		}
	}
	return fmt.Errorf("sf2: unknown generator %q", s)
}

// isRange reports whether the amount is a lo/hi byte pair.
func (g Generator) isRange() bool {
	return g == GenKeyRange || g == GenVelRange
}
