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

package platform

import (
	"image"
	"image/color"

	"github.com/jetsetilly/legacyvideo/display/mode"
)

// Dimensions returns the resolution of the current mode. Returns zero values
// while in text mode.
func (mem *Memory) Dimensions() (int, int) {
	if mem.TextMode {
		return 0, 0
	}
	return mem.width, mem.height
}

// Decode the visible page of video memory into a new image. Returns nil
// while in text mode.
func (mem *Memory) Decode() *image.RGBA {
	if mem.TextMode {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, mem.width, mem.height))
	mem.DecodeInto(img)
	return img
}

// DecodeInto is the same as Decode() except that the pixels are written to an
// existing image. The image must have the same dimensions as the current
// mode.
func (mem *Memory) DecodeInto(img *image.RGBA) {
	if mem.TextMode {
		return
	}

	if mem.paletteDirty {
		mem.colors = mem.palette.Colors()
		mem.paletteDirty = false
	}

	for y := 0; y < mem.height; y++ {
		row := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		for x := 0; x < mem.width; x++ {
			c := mem.pixel(x, y)
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 0xff
		}
	}
}

func (mem *Memory) paletteColor(idx uint8) color.RGBA {
	return mem.colors[idx].(color.RGBA)
}

// expand a channel of fewer than eight bits to eight bits.
func expand(v uint16, bits int) uint8 {
	v <<= 8 - bits
	return uint8(v | v>>bits)
}

func (mem *Memory) pixel(x, y int) color.RGBA {
	switch mem.layout {
	case mode.Planar:
		return mem.paletteColor(mem.planes[x&3][mem.start+y*mem.pitch+x>>2])

	case mode.Palettised:
		return mem.paletteColor(mem.vram[mem.start+y*mem.pitch+x])

	case mode.Linear:
		o := mem.start + y*mem.pitch + x*mode.BytesPerPixel(mem.depth)
		switch mem.depth {
		case 15:
			v := uint16(mem.vram[o]) | uint16(mem.vram[o+1])<<8
			return color.RGBA{
				R: expand((v>>10)&0x1f, 5),
				G: expand((v>>5)&0x1f, 5),
				B: expand(v&0x1f, 5),
				A: 0xff,
			}
		case 16:
			v := uint16(mem.vram[o]) | uint16(mem.vram[o+1])<<8
			return color.RGBA{
				R: expand(v>>11, 5),
				G: expand((v>>5)&0x3f, 6),
				B: expand(v&0x1f, 5),
				A: 0xff,
			}
		default:
			return color.RGBA{R: mem.vram[o+2], G: mem.vram[o+1], B: mem.vram[o], A: 0xff}
		}

	case mode.Monochrome:
		o := mem.start + (y&3)*mode.HerculesBankSize + (y>>2)*mem.pitch + x>>3
		if mem.vram[o]&(0x80>>(x&7)) != 0 {
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return color.RGBA{A: 0xff}
	}

	return color.RGBA{A: 0xff}
}
