// SPDX-License-Identifier: EPL-2.0

package sf2

import "github.com/ik5/sfbank/riff"

const (
	ckSfbk riff.FourCC = 's'<<24 | 'f'<<16 | 'b'<<8 | 'k'
	ckINFO riff.FourCC = 'I'<<24 | 'N'<<16 | 'F'<<8 | 'O'
	ckSdta riff.FourCC = 's'<<24 | 'd'<<16 | 't'<<8 | 'a'
	ckPdta riff.FourCC = 'p'<<24 | 'd'<<16 | 't'<<8 | 'a'

	// INFO
	ckIfil riff.FourCC = 'i'<<24 | 'f'<<16 | 'i'<<8 | 'l'
	ckIsng riff.FourCC = 'i'<<24 | 's'<<16 | 'n'<<8 | 'g'
	ckINAM riff.FourCC = 'I'<<24 | 'N'<<16 | 'A'<<8 | 'M'
	ckIrom riff.FourCC = 'i'<<24 | 'r'<<16 | 'o'<<8 | 'm'
	ckIver riff.FourCC = 'i'<<24 | 'v'<<16 | 'e'<<8 | 'r'
	ckICRD riff.FourCC = 'I'<<24 | 'C'<<16 | 'R'<<8 | 'D'
	ckIENG riff.FourCC = 'I'<<24 | 'E'<<16 | 'N'<<8 | 'G'
	ckIPRD riff.FourCC = 'I'<<24 | 'P'<<16 | 'R'<<8 | 'D'
	ckICOP riff.FourCC = 'I'<<24 | 'C'<<16 | 'O'<<8 | 'P'
	ckICMT riff.FourCC = 'I'<<24 | 'C'<<16 | 'M'<<8 | 'T'
	ckISFT riff.FourCC = 'I'<<24 | 'S'<<16 | 'F'<<8 | 'T'

	// sdta
	ckSmpl riff.FourCC = 's'<<24 | 'm'<<16 | 'p'<<8 | 'l'
	ckSm24 riff.FourCC = 's'<<24 | 'm'<<16 | '2'<<8 | '4'

	// pdta
	ckPhdr riff.FourCC = 'p'<<24 | 'h'<<16 | 'd'<<8 | 'r'
	ckPbag riff.FourCC = 'p'<<24 | 'b'<<16 | 'a'<<8 | 'g'
	ckPmod riff.FourCC = 'p'<<24 | 'm'<<16 | 'o'<<8 | 'd'
	ckPgen riff.FourCC = 'p'<<24 | 'g'<<16 | 'e'<<8 | 'n'
	ckInst riff.FourCC = 'i'<<24 | 'n'<<16 | 's'<<8 | 't'
	ckIbag riff.FourCC = 'i'<<24 | 'b'<<16 | 'a'<<8 | 'g'
	ckImod riff.FourCC = 'i'<<24 | 'm'<<16 | 'o'<<8 | 'd'
	ckIgen riff.FourCC = 'i'<<24 | 'g'<<16 | 'e'<<8 | 'n'
	ckShdr riff.FourCC = 's'<<24 | 'h'<<16 | 'd'<<8 | 'r'
)

// Record sizes of the pdta tables, in bytes.
const (
	phdrSize = 38
	instSize = 22
	bagSize  = 4
	modSize  = 10
	genSize  = 4
	shdrSize = 46
)
