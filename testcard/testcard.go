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

// Package testcard draws a moving test pattern. It stands in for a renderer
// when the display backend is run on its own.
//
// The pattern is made up of colour bars across the top half of the frame, a
// grey ramp, a smooth colour gradient that scrolls with the frame number and
// a white box that bounces around the lower half.
package testcard

import (
	"image"
	"image/color"
)

// colour bars in the traditional order.
var bars = []color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// size of the bouncing box in pixels.
const boxSize = 16

// Draw the test pattern for frame number n.
func Draw(img *image.RGBA, n int) {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()

	barsEnd := h / 2
	rampEnd := barsEnd + h/8

	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			var c color.RGBA
			switch {
			case y < barsEnd:
				c = bars[x*len(bars)/w]
			case y < rampEnd:
				v := uint8(x * 255 / max(1, w-1))
				c = color.RGBA{R: v, G: v, B: v, A: 0xff}
			default:
				c = color.RGBA{
					R: uint8(x + n),
					G: uint8(y*2 - n),
					B: uint8((x + y + n*2) / 2),
					A: 0xff,
				}
			}
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	// box bounces between the edges of the lower area
	bx := bounce(n*3, w-boxSize)
	by := rampEnd + bounce(n*2, h-rampEnd-boxSize)
	for y := by; y < by+boxSize && y < h; y++ {
		for x := bx; x < bx+boxSize && x < w; x++ {
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, bars[0])
		}
	}
}

// bounce returns a position between zero and limit that moves back and forth
// as v increases.
func bounce(v int, limit int) int {
	if limit <= 0 {
		return 0
	}
	v %= limit * 2
	if v > limit {
		return limit*2 - v
	}
	return v
}
