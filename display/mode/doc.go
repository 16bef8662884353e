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

// Package mode describes the video modes supported by the display backend
// and selects one from a user supplied Config.
//
// A Descriptor is immutable once selected. It carries everything the rest of
// the backend needs to know about the surface: the hardware resolution and
// depth, the memory layout, the resolution of the frame that the renderer
// should produce and the pack routine (the Kind) that converts one to the
// other.
//
// Select() is the only place where combinations of options are validated. The
// pack routines assume that the geometry of the Descriptor is correct.
package mode
