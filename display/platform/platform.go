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
	"github.com/jetsetilly/legacyvideo/display/mode"
)

// Platform is the set of hardware operations the display backend requires.
type Platform interface {
	// set the hardware to the given resolution, depth and memory layout.
	// video memory is cleared
	SetDisplayMode(width int, height int, depth int, layout mode.Layout) error

	// write one palette entry. components are 6-bit DAC values
	WritePaletteEntry(index int, r, g, b uint8)

	// the writable surface for the current mode
	Surface() Surface

	// free running tick. safe to call from any goroutine
	Tick() uint32

	// return the display to its state before SetDisplayMode()
	RestoreTextMode()
}

// Surface is the writable video memory of the current mode.
type Surface interface {
	// select which planes receive subsequent writes. bit n of the mask
	// selects plane n. ignored by non-planar layouts
	SelectPlanes(mask uint8)

	// write data to video memory starting at offset
	Write(offset int, data []byte)

	// write a single byte to video memory
	Poke(offset int, v byte)

	// set the offset of the first visible byte. used for page flipping
	SetStart(offset int)
}

// Flusher is implemented by platforms that need to be told when a
// presentation has completed. Viewers use this to update the host display.
type Flusher interface {
	Flush()
}

// Clock is a source of ticks. The pacer.Timer type satisfies this interface.
type Clock interface {
	Tick() uint32
}
