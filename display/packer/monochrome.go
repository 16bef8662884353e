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
	"github.com/jetsetilly/legacyvideo/display/shadow"
)

// Kernel is the 4x4 ordered dither kernel used by the monochrome packer. The
// values are compared against the sum of the red, green and blue components
// of a source pixel, indexed by (y&3)<<2 | (bit&3).
var Kernel = [16]int{
	45, 405, 135, 495,
	585, 225, 675, 315,
	180, 540, 90, 450,
	720, 360, 630, 270,
}

// MonochromeOffset returns the video memory offset of byte x in row y of the
// Hercules graphics page. Rows are interleaved over four banks.
func MonochromeOffset(x, y int) int {
	return (y&3)*mode.HerculesBankSize + (y>>2)*mode.HerculesPitch + x
}

// monochrome packs the frame into one bit per pixel. the source frame is
// scaled to the Hercules resolution by sampling. two horizontal output pixels
// share each source column.
type monochrome struct {
	shadow    *shadow.Buffer
	srcHeight int
}

func newMonochrome(desc mode.Descriptor, shd *shadow.Buffer) *monochrome {
	return &monochrome{
		shadow:    shd,
		srcHeight: desc.SourceHeight,
	}
}

// Pack implements the Packer interface. Only bytes that differ from the
// previous call are written to the surface.
func (pck *monochrome) Pack(src *image.RGBA, dst platform.Surface) {
	for y := 0; y < mode.HerculesHeight; y++ {
		pix := row(src, y*pck.srcHeight/mode.HerculesHeight)
		kernel := Kernel[(y&3)<<2:]

		for x := 0; x < mode.HerculesPitch; x++ {
			var v uint8
			for i := 0; i < 8; i++ {
				p := pix[(x*4+i/2)*4:]
				if int(p[0])+int(p[1])+int(p[2]) > kernel[i&3] {
					v |= 0x80 >> i
				}
			}

			o := MonochromeOffset(x, y)
			if pck.shadow.Update(o, v) {
				dst.Poke(o, v)
			}
		}
	}
}
