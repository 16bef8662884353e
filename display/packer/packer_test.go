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

package packer_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/packer"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/shadow"
	"github.com/jetsetilly/legacyvideo/display/tables"
	"github.com/jetsetilly/legacyvideo/test"
)

// recorder is a Surface that counts how many times each byte of each plane
// is written.
type recorder struct {
	mask   uint8
	counts [4][mode.PlaneSize]int
	starts []int
}

func (rec *recorder) SelectPlanes(mask uint8) {
	rec.mask = mask
}

func (rec *recorder) Write(offset int, data []byte) {
	for p := 0; p < 4; p++ {
		if rec.mask&(1<<p) != 0 {
			for i := range data {
				rec.counts[p][offset+i]++
			}
		}
	}
}

func (rec *recorder) Poke(offset int, _ byte) {
	rec.Write(offset, []byte{0})
}

func (rec *recorder) SetStart(offset int) {
	rec.starts = append(rec.starts, offset)
}

func flat(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// every pixel is different from its neighbours.
func pattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 0xff})
		}
	}
	return img
}

// activate sets the mode on a new Memory and returns a Packer for it.
func activate(t *testing.T, cfg mode.Config) (mode.Descriptor, *platform.Memory, packer.Packer, *shadow.Buffer) {
	t.Helper()

	desc, err := mode.Select(cfg)
	test.DemandSuccess(t, err)

	tbl, err := tables.Build(tables.DefaultConfig())
	test.DemandSuccess(t, err)

	mem := platform.NewMemory(nil)
	test.DemandSuccess(t, mem.SetDisplayMode(desc.Width, desc.Height, desc.Depth, desc.Layout))

	shd := shadow.NewBuffer(desc.Size)
	pck, err := packer.New(desc, tbl, shd)
	test.DemandSuccess(t, err)

	return desc, mem, pck, shd
}

func TestNew(t *testing.T) {
	desc, err := mode.Select(mode.Config{ID: mode.VESA8, Dither: true})
	test.DemandSuccess(t, err)
	_, err = packer.New(desc, nil, nil)
	test.ExpectEquality(t, curated.Is(err, packer.MissingTables), true)

	desc, err = mode.Select(mode.Config{ID: mode.ModeX, Dither: true})
	test.DemandSuccess(t, err)
	_, err = packer.New(desc, nil, nil)
	test.ExpectEquality(t, curated.Is(err, packer.MissingTables), true)

	desc, err = mode.Select(mode.Config{ID: mode.Hercules})
	test.DemandSuccess(t, err)
	_, err = packer.New(desc, nil, nil)
	test.ExpectEquality(t, curated.Is(err, packer.MissingShadow), true)

	// undithered modes do not need tables
	desc, err = mode.Select(mode.Config{ID: mode.VESA16})
	test.DemandSuccess(t, err)
	_, err = packer.New(desc, nil, nil)
	test.ExpectSuccess(t, err)

	_, err = packer.New(mode.Descriptor{Kind: mode.Kind(99)}, nil, nil)
	test.ExpectEquality(t, curated.Is(err, packer.UnsupportedKind), true)
}

func TestEncoders(t *testing.T) {
	b := make([]uint8, 4)

	packer.Encode15(b, 0xff, 0x80, 0x08)
	test.ExpectEquality(t, b[0], uint8(0x01))
	test.ExpectEquality(t, b[1], uint8(0x7e))

	packer.Encode16(b, 0xff, 0x80, 0x08)
	test.ExpectEquality(t, b[0], uint8(0x01))
	test.ExpectEquality(t, b[1], uint8(0xfc))

	packer.Encode24(b, 0x10, 0x20, 0x30)
	test.ExpectEquality(t, b[0], uint8(0x30))
	test.ExpectEquality(t, b[1], uint8(0x20))
	test.ExpectEquality(t, b[2], uint8(0x10))

	b[3] = 0xff
	packer.Encode32(b, 0x10, 0x20, 0x30)
	test.ExpectEquality(t, b[0], uint8(0x30))
	test.ExpectEquality(t, b[2], uint8(0x10))
	test.ExpectEquality(t, b[3], uint8(0x00))
}

// a flat colour that the linear format represents exactly is decoded back
// to the same colour for every pixel.
func TestLinearFlatColour(t *testing.T) {
	for _, e := range []struct {
		id mode.ID
		c  color.RGBA
	}{
		{mode.VESA15, color.RGBA{R: 0xff, G: 0x84, B: 0x00, A: 0xff}},
		{mode.VESA16, color.RGBA{R: 0x84, G: 0x82, B: 0xff, A: 0xff}},
		{mode.VESA24, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}},
		{mode.VESA32, color.RGBA{R: 0xfe, G: 0x01, B: 0x80, A: 0xff}},
	} {
		desc, mem, pck, _ := activate(t, mode.Config{ID: e.id})
		pck.Pack(flat(desc.SourceWidth, desc.SourceHeight, e.c), mem)

		img := mem.Decode()
		for y := 0; y < desc.Height; y++ {
			for x := 0; x < desc.Width; x++ {
				test.DemandEquality(t, img.RGBAAt(x, y), e.c, e.id, x, y)
			}
		}
	}
}

func TestLinearNative(t *testing.T) {
	for _, id := range []mode.ID{mode.VESA24, mode.VESA32} {
		desc, mem, pck, _ := activate(t, mode.Config{ID: id, Native: true})
		test.DemandEquality(t, desc.Width, desc.SourceWidth*2)

		src := pattern(desc.SourceWidth, desc.SourceHeight)
		pck.Pack(src, mem)

		img := mem.Decode()
		for y := 0; y < desc.Height; y++ {
			for x := 0; x < desc.Width; x++ {
				test.DemandEquality(t, img.RGBAAt(x, y), src.RGBAAt(x/2, y/2), id, x, y)
			}
		}
	}
}

func TestPalettisedTruncation(t *testing.T) {
	desc, mem, pck, _ := activate(t, mode.Config{ID: mode.Mode13h})
	pck.Pack(flat(desc.SourceWidth, desc.SourceHeight, color.RGBA{R: 0xff, A: 0xff}), mem)

	for o := 0; o < desc.Width*desc.Height; o++ {
		test.DemandEquality(t, mem.Peek(0, o), uint8(0xe0))
	}
	test.ExpectEquality(t, mem.Stats().Writes, desc.Height)
}

func TestPalettisedNative(t *testing.T) {
	desc, mem, pck, _ := activate(t, mode.Config{ID: mode.VESA8, Native: true})

	src := pattern(desc.SourceWidth, desc.SourceHeight)
	pck.Pack(src, mem)

	for y := 0; y < desc.Height; y++ {
		for x := 0; x < desc.Width; x++ {
			c := src.RGBAAt(x/2, y/2)
			test.DemandEquality(t, mem.Peek(0, y*desc.Pitch+x), tables.RGB332(c.R, c.G, c.B), x, y)
		}
	}
}

func TestPalettisedDither(t *testing.T) {
	desc, mem, pck, _ := activate(t, mode.Config{ID: mode.VESA8, Dither: true})

	tbl, err := tables.Build(tables.DefaultConfig())
	test.DemandSuccess(t, err)

	src := pattern(desc.SourceWidth, desc.SourceHeight)
	pck.Pack(src, mem)

	for y := 0; y < desc.Height; y++ {
		for x := 0; x < desc.Width; x++ {
			c := src.RGBAAt(x, y)
			test.DemandEquality(t, mem.Peek(0, y*desc.Pitch+x), tbl.Index(c.R, c.G, c.B, tbl.Threshold(x, y)), x, y)
		}
	}
}

func TestPlanarCoverage(t *testing.T) {
	desc, err := mode.Select(mode.Config{ID: mode.ModeX, Dither: true})
	test.DemandSuccess(t, err)
	tbl, err := tables.Build(tables.DefaultConfig())
	test.DemandSuccess(t, err)
	pck, err := packer.New(desc, tbl, nil)
	test.DemandSuccess(t, err)

	rec := &recorder{}
	pck.Pack(pattern(desc.SourceWidth, desc.SourceHeight), rec)

	// every pixel of the first page is written exactly once
	for y := 0; y < desc.Height; y++ {
		for x := 0; x < desc.Width; x++ {
			test.DemandEquality(t, rec.counts[x&3][y*desc.Pitch+x>>2], 1, x, y)
		}
	}

	// and nothing outside of the first page is written
	for p := 0; p < 4; p++ {
		for o := packer.Pages[1]; o < mode.PlaneSize; o++ {
			test.DemandEquality(t, rec.counts[p][o], 0, p, o)
		}
	}
}

func TestPlanarPages(t *testing.T) {
	desc, mem, pck, _ := activate(t, mode.Config{ID: mode.ModeX})
	src := pattern(desc.SourceWidth, desc.SourceHeight)

	for i := 0; i < 4; i++ {
		pck.Pack(src, mem)
		test.ExpectEquality(t, mem.Start(), packer.Pages[i%3], i)

		// the visible page always shows the most recent frame
		img := mem.Decode()
		for y := 0; y < desc.Height; y += 17 {
			for x := 0; x < desc.Width; x += 13 {
				c := src.RGBAAt(x, y)
				idx := tables.RGB332(c.R, c.G, c.B)
				test.DemandEquality(t, mem.Peek(x&3, mem.Start()+y*desc.Pitch+x>>2), idx, i, x, y)
				test.DemandEquality(t, img.RGBAAt(x, y).A, uint8(0xff))
			}
		}
	}
}

func TestMonochromeKernel(t *testing.T) {
	_, mem, pck, _ := activate(t, mode.Config{ID: mode.Hercules})

	// component sum of 300 sits between the kernel values of the first row
	pck.Pack(flat(mode.SourceWidth, mode.SourceHeight, color.RGBA{R: 100, G: 100, B: 100, A: 0xff}), mem)
	test.ExpectEquality(t, mem.Peek(0, packer.MonochromeOffset(0, 0)), uint8(0xaa))
	test.ExpectEquality(t, mem.Peek(0, packer.MonochromeOffset(79, 0)), uint8(0xaa))

	// second row of the kernel is 585 225 675 315
	test.ExpectEquality(t, mem.Peek(0, packer.MonochromeOffset(0, 1)), uint8(0x44))
}

func TestMonochromeShadow(t *testing.T) {
	_, mem, pck, shd := activate(t, mode.Config{ID: mode.Hercules})

	// a black frame matches the cleared video memory
	black := flat(mode.SourceWidth, mode.SourceHeight, color.RGBA{A: 0xff})
	pck.Pack(black, mem)
	test.ExpectEquality(t, mem.Stats().Writes, 0)

	white := flat(mode.SourceWidth, mode.SourceHeight, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	pck.Pack(white, mem)
	test.ExpectEquality(t, mem.Stats().Writes, mode.HerculesPitch*mode.HerculesHeight)
	test.ExpectEquality(t, shd.Writes(), mode.HerculesPitch*mode.HerculesHeight)

	// identical frame produces no writes
	mem.ResetStats()
	pck.Pack(white, mem)
	test.ExpectEquality(t, mem.Stats().Writes, 0)

	img := mem.Decode()
	test.ExpectEquality(t, img.RGBAAt(639, 399).R, uint8(0xff))

	// a frame differing in one source pixel writes only the bytes that
	// sample that pixel
	white.SetRGBA(0, 0, color.RGBA{A: 0xff})
	pck.Pack(white, mem)
	test.ExpectEquality(t, mem.Stats().Writes > 0, true)
	test.ExpectEquality(t, mem.Stats().Writes <= 2, true)
}
