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

// Package shadow keeps a copy of the bytes most recently written to video
// memory so that unchanged bytes need not be written again. The monochrome
// pack routine uses it because writes to the Hercules adapter are slow.
package shadow

// Buffer is a copy of video memory. The zero state of the buffer matches the
// cleared state of video memory after a mode change.
type Buffer struct {
	data   []uint8
	writes int
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(size int) *Buffer {
	return &Buffer{
		data: make([]uint8, size),
	}
}

// Len returns the size of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset the buffer to its cleared state.
func (b *Buffer) Reset() {
	clear(b.data)
	b.writes = 0
}

// Update stores v at pos and returns true if the value differs from the
// previously stored value, in which case the caller should write the value to
// video memory.
func (b *Buffer) Update(pos int, v uint8) bool {
	if b.data[pos] == v {
		return false
	}
	b.data[pos] = v
	b.writes++
	return true
}

// Peek returns the stored value at pos.
func (b *Buffer) Peek(pos int) uint8 {
	return b.data[pos]
}

// Writes returns the number of changes recorded by Update() since the last
// Reset().
func (b *Buffer) Writes() int {
	return b.writes
}
