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
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/tables"
)

// Sentinel error patterns returned by Memory.
const (
	UnsupportedDisplayMode = "unsupported display mode: %s"
)

// Size of the linear framebuffer. Large enough for 640x480 at 32bpp.
const linearSize = 640 * 480 * 4

// Stats are counters of activity on a Memory instance.
type Stats struct {
	// number of calls to Write() and Poke()
	Writes int

	// number of bytes written by Write() and Poke(). a write to more than
	// one plane is counted once per plane
	Bytes int

	// number of calls to WritePaletteEntry()
	PaletteWrites int

	// number of calls to SetStart()
	StartChanges int

	// number of successful calls to SetDisplayMode()
	ModeChanges int
}

// Memory is an emulated video adapter. It implements both the Platform and
// the Surface interfaces.
//
// Memory is not safe for concurrent use, with the exception of the Tick()
// function.
type Memory struct {
	// the current mode. TextMode is true before the first SetDisplayMode()
	// and after RestoreTextMode()
	TextMode bool
	width    int
	height   int
	depth    int
	layout   mode.Layout
	pitch    int

	// video memory. the planes are used by the planar layout and the vram
	// slice by every other layout
	planes    [4][]uint8
	planeMask uint8
	vram      []uint8
	start     int

	// 6-bit DAC values. colors is the decoded form of the palette and is
	// rebuilt by DecodeInto() when paletteDirty is set
	palette      tables.Palette
	colors       color.Palette
	paletteDirty bool

	stats Stats

	// if clock is nil the tick is advanced with Advance()
	clock Clock
	tick  atomic.Uint32

	// refuse a mode. used to simulate hardware that does not support a mode
	Refuse func(width int, height int, depth int, layout mode.Layout) bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The clock can be nil.
func NewMemory(clock Clock) *Memory {
	mem := &Memory{
		TextMode: true,
		clock:    clock,
		palette:  make(tables.Palette, 256),
	}
	mem.paletteDirty = true
	for i := range mem.planes {
		mem.planes[i] = make([]uint8, mode.PlaneSize)
	}
	mem.vram = make([]uint8, linearSize)
	return mem
}

func (mem *Memory) String() string {
	if mem.TextMode {
		return "text mode"
	}
	return fmt.Sprintf("%dx%dx%d %s", mem.width, mem.height, mem.depth, mem.layout)
}

// SetDisplayMode implements the Platform interface.
func (mem *Memory) SetDisplayMode(width int, height int, depth int, layout mode.Layout) error {
	desc := fmt.Sprintf("%dx%dx%d %s", width, height, depth, layout)

	if mem.Refuse != nil && mem.Refuse(width, height, depth, layout) {
		return curated.Errorf(UnsupportedDisplayMode, desc)
	}

	switch layout {
	case mode.Planar, mode.Palettised:
		if depth != 8 {
			return curated.Errorf(UnsupportedDisplayMode, desc)
		}
	case mode.Linear:
		if depth != 15 && depth != 16 && depth != 24 && depth != 32 {
			return curated.Errorf(UnsupportedDisplayMode, desc)
		}
	case mode.Monochrome:
		if depth != 1 || width != mode.HerculesWidth || height != mode.HerculesHeight {
			return curated.Errorf(UnsupportedDisplayMode, desc)
		}
	default:
		return curated.Errorf(UnsupportedDisplayMode, desc)
	}

	pitch := mode.Pitch(width, depth, layout)
	size := pitch * height
	if layout == mode.Planar {
		if size > mode.PlaneSize {
			return curated.Errorf(UnsupportedDisplayMode, desc)
		}
	} else if size > len(mem.vram) {
		return curated.Errorf(UnsupportedDisplayMode, desc)
	}

	mem.TextMode = false
	mem.width = width
	mem.height = height
	mem.depth = depth
	mem.layout = layout
	mem.pitch = pitch
	mem.start = 0
	mem.planeMask = 0x0f

	for i := range mem.planes {
		clear(mem.planes[i])
	}
	clear(mem.vram)

	mem.stats.ModeChanges++

	return nil
}

// WritePaletteEntry implements the Platform interface.
func (mem *Memory) WritePaletteEntry(index int, r, g, b uint8) {
	mem.stats.PaletteWrites++
	mem.palette[index&0xff] = tables.Entry{R: r & 0x3f, G: g & 0x3f, B: b & 0x3f}
	mem.paletteDirty = true
}

// PaletteEntry returns the palette entry at index.
func (mem *Memory) PaletteEntry(index int) (r, g, b uint8) {
	e := mem.palette[index&0xff]
	return e.R, e.G, e.B
}

// Surface implements the Platform interface.
func (mem *Memory) Surface() Surface {
	return mem
}

// Tick implements the Platform interface.
func (mem *Memory) Tick() uint32 {
	if mem.clock != nil {
		return mem.clock.Tick()
	}
	return mem.tick.Load()
}

// Advance the tick. Has no effect if the Memory was created with a clock.
func (mem *Memory) Advance(n uint32) {
	mem.tick.Add(n)
}

// RestoreTextMode implements the Platform interface.
func (mem *Memory) RestoreTextMode() {
	mem.TextMode = true
}

// SelectPlanes implements the Surface interface.
func (mem *Memory) SelectPlanes(mask uint8) {
	mem.planeMask = mask & 0x0f
}

// Write implements the Surface interface.
func (mem *Memory) Write(offset int, data []byte) {
	mem.stats.Writes++
	if mem.layout == mode.Planar {
		for p := range mem.planes {
			if mem.planeMask&(1<<p) != 0 {
				mem.stats.Bytes += copy(mem.planes[p][offset:], data)
			}
		}
		return
	}
	mem.stats.Bytes += copy(mem.vram[offset:], data)
}

// Poke implements the Surface interface.
func (mem *Memory) Poke(offset int, v byte) {
	mem.stats.Writes++
	if mem.layout == mode.Planar {
		for p := range mem.planes {
			if mem.planeMask&(1<<p) != 0 {
				mem.planes[p][offset] = v
				mem.stats.Bytes++
			}
		}
		return
	}
	mem.vram[offset] = v
	mem.stats.Bytes++
}

// SetStart implements the Surface interface.
func (mem *Memory) SetStart(offset int) {
	mem.stats.StartChanges++
	mem.start = offset
}

// Start returns the current display start address.
func (mem *Memory) Start() int {
	return mem.start
}

// Peek returns the byte at offset in the plane. The plane argument is ignored
// by non-planar layouts.
func (mem *Memory) Peek(plane int, offset int) uint8 {
	if mem.layout == mode.Planar {
		return mem.planes[plane&0x03][offset]
	}
	return mem.vram[offset]
}

// Stats returns the activity counters.
func (mem *Memory) Stats() Stats {
	return mem.stats
}

// ResetStats sets all activity counters to zero.
func (mem *Memory) ResetStats() {
	mem.stats = Stats{}
}
