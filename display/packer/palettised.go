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

package packer

import (
	"image"

	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/tables"
)

// Offsets of the three display pages in the planar layout. Each page is one
// 320x240 screen's worth of plane memory.
var Pages = [3]int{0x0000, 0x4b00, 0x9600}

// planar packs the frame into four planes. Pixel x of a row is in plane x&3 at
// byte offset x>>2.
type planar struct {
	index  indexer
	width  int
	height int
	pitch  int

	// the page that the next call to Pack() will write to
	page int

	buf []uint8
}

func newPlanar(desc mode.Descriptor, tbl *tables.Tables) *planar {
	pck := &planar{
		index:  truncate,
		width:  desc.Width,
		height: desc.Height,
		pitch:  desc.Pitch,
		buf:    make([]uint8, desc.Pitch),
	}
	if desc.Kind == mode.KindPlanarDither {
		pck.index = ditherer(tbl)
	}
	return pck
}

// Pack implements the Packer interface. Each call writes to the next of the
// three pages and then makes that page visible.
func (pck *planar) Pack(src *image.RGBA, dst platform.Surface) {
	base := Pages[pck.page]

	for plane := 0; plane < 4; plane++ {
		dst.SelectPlanes(1 << plane)
		for y := 0; y < pck.height; y++ {
			pix := row(src, y)
			for i, x := 0, plane; x < pck.width; i, x = i+1, x+4 {
				p := pix[x*4:]
				pck.buf[i] = pck.index(p[0], p[1], p[2], x, y)
			}
			dst.Write(base+y*pck.pitch, pck.buf)
		}
	}

	dst.SetStart(base)
	pck.page = (pck.page + 1) % len(Pages)
}

// palettised packs the frame into one byte per pixel.
type palettised struct {
	index  indexer
	width  int
	height int
	pitch  int
	native bool
	buf    []uint8
}

func newPalettised(desc mode.Descriptor, tbl *tables.Tables) *palettised {
	pck := &palettised{
		index:  truncate,
		width:  desc.SourceWidth,
		height: desc.SourceHeight,
		pitch:  desc.Pitch,
		native: desc.Native,
		buf:    make([]uint8, desc.Pitch),
	}
	if desc.Kind == mode.KindPalettised8Dither {
		pck.index = ditherer(tbl)
	}
	return pck
}

// Pack implements the Packer interface.
func (pck *palettised) Pack(src *image.RGBA, dst platform.Surface) {
	for y := 0; y < pck.height; y++ {
		pix := row(src, y)
		if pck.native {
			for x := 0; x < pck.width; x++ {
				p := pix[x*4:]
				v := pck.index(p[0], p[1], p[2], x, y)
				pck.buf[x*2] = v
				pck.buf[x*2+1] = v
			}
			dst.Write(y*2*pck.pitch, pck.buf)
			dst.Write((y*2+1)*pck.pitch, pck.buf)
		} else {
			for x := 0; x < pck.width; x++ {
				p := pix[x*4:]
				pck.buf[x] = pck.index(p[0], p[1], p[2], x, y)
			}
			dst.Write(y*pck.pitch, pck.buf)
		}
	}
}
