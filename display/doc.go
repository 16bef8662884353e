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

// Package display is the presentation backend. It takes the true colour
// frame produced by a renderer and delivers it to legacy display hardware
// through the platform.Platform interface.
//
// Activate() selects and sets a video mode and returns an ActiveMode. The
// renderer draws into the image returned by ActiveMode.Frame() and the frame
// is delivered with Present(). The host's main loop is driven by Pace(), which
// runs game logic iterations to keep up with the hardware tick and tells each
// iteration whether it should render.
//
// The Backend type wraps an ActiveMode for hosts that expect a fixed set of
// entry points: initialise, shutdown, present, pace and query.
//
// Errors returned by Activate() are one of two kinds. A ConfigurationError
// means the requested combination of options is not supported. No hardware
// state is touched in that case. A HardwareInitError means the platform
// refused the video mode and is fatal to the caller.
package display
