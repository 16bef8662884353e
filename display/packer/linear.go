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
)

// encoder writes the pixel r, g, b to the start of dst.
type encoder func(dst []uint8, r, g, b uint8)

// Encode15 writes a 15bpp pixel as two little-endian bytes.
func Encode15(dst []uint8, r, g, b uint8) {
	v := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
	dst[0] = uint8(v)
	dst[1] = uint8(v >> 8)
}

// Encode16 writes a 16bpp pixel as two little-endian bytes.
func Encode16(dst []uint8, r, g, b uint8) {
	v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	dst[0] = uint8(v)
	dst[1] = uint8(v >> 8)
}

// Encode24 writes a 24bpp pixel. Blue is the lowest byte.
func Encode24(dst []uint8, r, g, b uint8) {
	dst[0] = b
	dst[1] = g
	dst[2] = r
}

// Encode32 writes a 32bpp pixel. Blue is the lowest byte and the highest byte
// is unused.
func Encode32(dst []uint8, r, g, b uint8) {
	dst[0] = b
	dst[1] = g
	dst[2] = r
	dst[3] = 0
}

// linear packs the frame into direct colour pixels.
type linear struct {
	encode encoder
	bpp    int
	width  int
	height int
	pitch  int
	native bool
	buf    []uint8
}

func newLinear(desc mode.Descriptor) *linear {
	pck := &linear{
		bpp:    mode.BytesPerPixel(desc.Depth),
		width:  desc.SourceWidth,
		height: desc.SourceHeight,
		pitch:  desc.Pitch,
		native: desc.Native,
		buf:    make([]uint8, desc.Pitch),
	}

	switch desc.Kind {
	case mode.KindLinear15:
		pck.encode = Encode15
	case mode.KindLinear16:
		pck.encode = Encode16
	case mode.KindLinear24:
		pck.encode = Encode24
	default:
		pck.encode = Encode32
	}

	return pck
}

// Pack implements the Packer interface.
func (pck *linear) Pack(src *image.RGBA, dst platform.Surface) {
	for y := 0; y < pck.height; y++ {
		pix := row(src, y)
		if pck.native {
			for x := 0; x < pck.width; x++ {
				p := pix[x*4:]
				o := x * 2 * pck.bpp
				pck.encode(pck.buf[o:], p[0], p[1], p[2])
				copy(pck.buf[o+pck.bpp:o+pck.bpp*2], pck.buf[o:o+pck.bpp])
			}
			dst.Write(y*2*pck.pitch, pck.buf)
			dst.Write((y*2+1)*pck.pitch, pck.buf)
		} else {
			for x := 0; x < pck.width; x++ {
				p := pix[x*4:]
				pck.encode(pck.buf[x*pck.bpp:], p[0], p[1], p[2])
			}
			dst.Write(y*pck.pitch, pck.buf)
		}
	}
}
