// This file is part of LegacyVideo.
//
// LegacyVideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LegacyVideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LegacyVideo.  If not, see <https://www.gnu.org/licenses/>.

package tables

import (
	"image/color"
	"math"
)

// Entry is a single palette entry. Values are 6-bit DAC values (0 to 63).
type Entry struct {
	R, G, B uint8
}

// Palette is an ordered list of palette entries. No more than 256 entries.
type Palette []Entry

// DAC values are 6-bit.
const dacMax = 63

// Colors returns the palette as a color.Palette. The 6-bit DAC values are
// expanded to 8-bit by replicating the top bits into the bottom bits.
func (pal Palette) Colors() color.Palette {
	c := make(color.Palette, len(pal))
	for i, e := range pal {
		c[i] = color.RGBA{R: expand6(e.R), G: expand6(e.G), B: expand6(e.B), A: 255}
	}
	return c
}

func expand6(v uint8) uint8 {
	return v<<2 | v>>4
}

// DitherPalette creates the palette that indexes produced by the quantisation
// tables refer to. The gamma is the same gamma given to Build().
func DitherPalette(gamma float64) Palette {
	pal := make(Palette, NumColours)

	dac := func(q, levels int) uint8 {
		return uint8(math.Round(math.Pow(float64(q)/float64(levels-1), gamma) * dacMax))
	}

	for i := range pal {
		r := i / (BlueLevels * GreenLevels)
		g := (i / BlueLevels) % GreenLevels
		b := i % BlueLevels
		pal[i] = Entry{
			R: dac(r, RedLevels),
			G: dac(g, GreenLevels),
			B: dac(b, BlueLevels),
		}
	}

	return pal
}

// RGB332 truncates a colour to an 8-bit palette index. Red occupies the top
// three bits, green the next three and blue the bottom two.
func RGB332(r, g, b uint8) uint8 {
	return r&0xe0 | (g&0xe0)>>3 | b>>6
}

// RGB332Palette creates the 256 entry palette that RGB332() indexes refer to.
func RGB332Palette() Palette {
	pal := make(Palette, 256)
	for i := range pal {
		pal[i] = Entry{
			R: uint8((i >> 5) * dacMax / 7),
			G: uint8(((i >> 2) & 0x07) * dacMax / 7),
			B: uint8((i & 0x03) * dacMax / 3),
		}
	}
	return pal
}
