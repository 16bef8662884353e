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
	"fmt"
	"math"
)

// Number of quantisation levels for each colour channel.
const (
	RedLevels   = 7
	GreenLevels = 9
	BlueLevels  = 4
)

// NumColours is the number of palette entries used by the dithering palette.
const NumColours = RedLevels * GreenLevels * BlueLevels

// Default values for the Config type.
const (
	DefaultPaletteGamma = 1.5
	DefaultDitherBits   = 6
)

// MaxDitherBits is the number of bits of the raw dither matrix levels.
const MaxDitherBits = 6

// Config contains the constants from which the tables are built.
type Config struct {
	// gamma applied to the palette. the dithering gamma is derived from this
	// value
	PaletteGamma float64

	// dithering strength. the number of distinguishable thresholds in the
	// dither matrix is 1<<DitherBits
	DitherBits int
}

// DefaultConfig returns the Config used by the original hardware backend.
func DefaultConfig() Config {
	return Config{
		PaletteGamma: DefaultPaletteGamma,
		DitherBits:   DefaultDitherBits,
	}
}

// DitherGamma returns the gamma applied to the dither thresholds.
func (cfg Config) DitherGamma() float64 {
	return 2.0 / cfg.PaletteGamma
}

func (cfg Config) String() string {
	return fmt.Sprintf("gamma %.2f, dither bits %d", cfg.PaletteGamma, cfg.DitherBits)
}

// Validate returns an error if the Config cannot be used to build tables.
func (cfg Config) Validate() error {
	if cfg.DitherBits < 1 || cfg.DitherBits > MaxDitherBits {
		return fmt.Errorf("dither bits must be between 1 and %d (%d)", MaxDitherBits, cfg.DitherBits)
	}
	if math.IsNaN(cfg.PaletteGamma) || math.IsInf(cfg.PaletteGamma, 0) || cfg.PaletteGamma <= 0.0 {
		return fmt.Errorf("palette gamma must be positive (%v)", cfg.PaletteGamma)
	}
	return nil
}

// Tables are built by the Build() function and are read-only afterwards.
type Tables struct {
	Config Config

	// raw dither matrix levels, 0 to 63, indexed by [y][x]
	Levels [8][8]uint8

	// dither thresholds after rescaling to the dithering strength, indexed
	// by [y][x]
	Matrix [8][8]uint8

	// the Matrix in a position-indexed form. see Threshold()
	Flat [64]uint8

	// channel quantisation tables, indexed by [value][threshold]. entries are
	// pre-multiplied so the sum of the three tables is a palette index
	Red   [256][256]uint8
	Green [256][256]uint8
	Blue  [256][256]uint8

	// the palette that palette indexes produced by the tables refer to
	Palette Palette
}

// level returns the raw dither level at position x, y. the bits of x and x^y
// are interleaved in reverse order to produce a value between 0 and 63.
func level(x, y int) uint8 {
	xy := x ^ y
	return uint8((x&4)/4 + (x&2)*2 + (x&1)*16 + (xy&4)/2 + (xy&2)*4 + (xy&1)*32)
}

// Build the tables from the supplied Config.
func Build(cfg Config) (*Tables, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tbl := &Tables{Config: cfg}

	// dither matrix. the rescaled threshold keeps only the top DitherBits of
	// the level and spreads the result over the range of a byte
	shift := MaxDitherBits - cfg.DitherBits
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			l := level(x, y)
			tbl.Levels[y][x] = l
			tbl.Matrix[y][x] = (l >> shift) << (8 - cfg.DitherBits)
			tbl.Flat[y<<3|x] = tbl.Matrix[y][x]
		}
	}

	// gamma curves. ptab maps a channel value to the display-biased value
	// and dtab maps a threshold to the fractional offset added before
	// truncation
	var ptab, dtab [256]float64
	ditExp := 1.0 / cfg.DitherGamma()
	palExp := 1.0 / cfg.PaletteGamma
	for n := 0; n < 256; n++ {
		ptab[n] = math.Pow(float64(n)/255.0, palExp)
		// the offset is never negative. at the top threshold the curve
		// dips just below zero, which would pull a full channel down a level
		dtab[n] = max(0, (255.0/256.0)-math.Pow(float64(n)/256.0, ditExp))
	}

	quantise := func(n, d int, levels int) uint8 {
		q := int(ptab[n]*float64(levels-1) + dtab[d])
		return uint8(min(levels-1, q))
	}

	for n := 0; n < 256; n++ {
		for d := 0; d < 256; d++ {
			tbl.Blue[n][d] = quantise(n, d, BlueLevels)
			tbl.Green[n][d] = quantise(n, d, GreenLevels) * BlueLevels
			tbl.Red[n][d] = quantise(n, d, RedLevels) * BlueLevels * GreenLevels
		}
	}

	tbl.Palette = DitherPalette(cfg.PaletteGamma)

	return tbl, nil
}

// Threshold returns the dither threshold for the pixel at x, y.
func (tbl *Tables) Threshold(x, y int) uint8 {
	return tbl.Flat[(y&7)<<3|(x&7)]
}

// Index returns the dithered palette index for a colour with the threshold d.
func (tbl *Tables) Index(r, g, b, d uint8) uint8 {
	return tbl.Red[r][d] + tbl.Green[g][d] + tbl.Blue[b][d]
}
