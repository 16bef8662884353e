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

// Package viewer contains implementations of platform.Platform that show the
// contents of an emulated video adapter on the host. Each viewer embeds a
// platform.Memory and displays the decoded visible page every time a
// presentation completes.
//
// Viewers are found in the sub-packages:
//
//	sdlview   an SDL window using the SDL renderer
//	glview    an SDL window using OpenGL 2.1
//	termview  ANSI colour output to the controlling terminal
//	digest    no output. a running hash of every presented frame
package viewer

import "github.com/jetsetilly/legacyvideo/display/platform"

// Viewer is implemented by all viewers.
type Viewer interface {
	platform.Platform
	platform.Flusher

	// Service handles events from the host. It returns false if the user has
	// asked to quit.
	Service() bool

	// Destroy releases all host resources.
	Destroy()
}
