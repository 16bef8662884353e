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

package platform_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/tables"
	"github.com/jetsetilly/legacyvideo/test"
)

type clock struct{ v uint32 }

func (c *clock) Tick() uint32 { return c.v }

func TestTextMode(t *testing.T) {
	mem := platform.NewMemory(nil)
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, mem.Decode() == nil, true)

	w, h := mem.Dimensions()
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)

	test.DemandSuccess(t, mem.SetDisplayMode(320, 200, 8, mode.Palettised))
	test.ExpectEquality(t, mem.TextMode, false)
	w, h = mem.Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	mem.RestoreTextMode()
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, mem.Stats().ModeChanges, 1)
}

func TestUnsupportedModes(t *testing.T) {
	mem := platform.NewMemory(nil)

	err := mem.SetDisplayMode(320, 240, 4, mode.Planar)
	test.ExpectEquality(t, curated.Is(err, platform.UnsupportedDisplayMode), true)
	err = mem.SetDisplayMode(320, 240, 12, mode.Linear)
	test.ExpectEquality(t, curated.Is(err, platform.UnsupportedDisplayMode), true)
	err = mem.SetDisplayMode(1280, 1024, 32, mode.Linear)
	test.ExpectEquality(t, curated.Is(err, platform.UnsupportedDisplayMode), true)
	err = mem.SetDisplayMode(320, 200, 1, mode.Monochrome)
	test.ExpectEquality(t, curated.Is(err, platform.UnsupportedDisplayMode), true)

	mem.Refuse = func(_ int, _ int, depth int, _ mode.Layout) bool {
		return depth == 24
	}
	err = mem.SetDisplayMode(320, 240, 24, mode.Linear)
	test.ExpectEquality(t, curated.Is(err, platform.UnsupportedDisplayMode), true)
	test.ExpectSuccess(t, mem.SetDisplayMode(320, 240, 32, mode.Linear))

	test.ExpectEquality(t, mem.TextMode, false)
	test.ExpectEquality(t, mem.Stats().ModeChanges, 1)
}

func TestPalette(t *testing.T) {
	mem := platform.NewMemory(nil)
	mem.WritePaletteEntry(1, 63, 0xff, 32)
	r, g, b := mem.PaletteEntry(1)
	test.ExpectEquality(t, r, uint8(63))
	test.ExpectEquality(t, g, uint8(63))
	test.ExpectEquality(t, b, uint8(32))
	test.ExpectEquality(t, mem.Stats().PaletteWrites, 1)
}

func TestPaletteDecode(t *testing.T) {
	mem := platform.NewMemory(nil)
	test.DemandSuccess(t, mem.SetDisplayMode(320, 240, 8, mode.Palettised))

	pal := tables.RGB332Palette()
	for i, e := range pal {
		mem.WritePaletteEntry(i, e.R, e.G, e.B)
	}

	row := make([]byte, 256)
	for i := range row {
		row[i] = uint8(i)
	}
	mem.Write(0, row)

	cols := pal.Colors()
	img := mem.Decode()
	for i := range row {
		test.ExpectEquality(t, color.Color(img.RGBAAt(i, 0)), cols[i])
	}

	// a palette change is seen by the next decode without rewriting video
	// memory
	mem.WritePaletteEntry(0x03, 63, 0, 0)
	img = mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(3, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(3, 0).B, uint8(0x00))
	test.ExpectEquality(t, color.Color(img.RGBAAt(2, 0)), cols[2])
}

func TestPlanarWrites(t *testing.T) {
	mem := platform.NewMemory(nil)
	test.DemandSuccess(t, mem.SetDisplayMode(320, 240, 8, mode.Planar))
	mem.WritePaletteEntry(5, 63, 63, 63)

	mem.SelectPlanes(0x01 | 0x04)
	mem.Write(0, []byte{5, 5})
	test.ExpectEquality(t, mem.Peek(0, 0), uint8(5))
	test.ExpectEquality(t, mem.Peek(1, 0), uint8(0))
	test.ExpectEquality(t, mem.Peek(2, 1), uint8(5))
	test.ExpectEquality(t, mem.Stats().Bytes, 4)
	test.ExpectEquality(t, mem.Stats().Writes, 1)

	img := mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 0).R, uint8(0x00))
	test.ExpectEquality(t, img.RGBAAt(2, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(4, 0).R, uint8(0xff))

	// moving the start address moves the visible page
	mem.SetStart(0x4b00)
	test.ExpectEquality(t, mem.Start(), 0x4b00)
	img = mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0x00))
}

func TestLinearDecode(t *testing.T) {
	mem := platform.NewMemory(nil)

	test.DemandSuccess(t, mem.SetDisplayMode(320, 240, 16, mode.Linear))
	mem.Write(0, []byte{0x00, 0xf8, 0xe0, 0x07, 0x1f, 0x00})
	img := mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(2, 0).B, uint8(0xff))

	test.DemandSuccess(t, mem.SetDisplayMode(320, 240, 24, mode.Linear))
	mem.Write(3, []byte{0x10, 0x20, 0x30})
	img = mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0x00))
	test.ExpectEquality(t, img.RGBAAt(1, 0).R, uint8(0x30))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(0x20))
	test.ExpectEquality(t, img.RGBAAt(1, 0).B, uint8(0x10))
}

func TestMonochromeDecode(t *testing.T) {
	mem := platform.NewMemory(nil)
	test.DemandSuccess(t, mem.SetDisplayMode(640, 400, 1, mode.Monochrome))

	// row 1 is in the second bank
	mem.Poke(0x2000, 0x80)
	img := mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(0, 1).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 1).R, uint8(0x00))
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0x00))
}

func TestTick(t *testing.T) {
	mem := platform.NewMemory(nil)
	test.ExpectEquality(t, mem.Tick(), uint32(0))
	mem.Advance(3)
	test.ExpectEquality(t, mem.Tick(), uint32(3))

	clk := &clock{v: 100}
	mem = platform.NewMemory(clk)
	test.ExpectEquality(t, mem.Tick(), uint32(100))
	mem.Advance(3)
	test.ExpectEquality(t, mem.Tick(), uint32(100))
}
