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

// Package platform defines the hardware capabilities that the display backend
// depends on.
//
// The Platform interface is what the backend uses to set the display mode,
// write palette entries, read the free running tick and restore text mode
// when it is finished. Pixels are written through the Surface interface.
//
// Memory is an emulation of the video adapter. It keeps video memory, the
// palette and the display start address in ordinary Go values and can decode
// the visible page back into an image. The viewers and the tests are built on
// top of it.
package platform
