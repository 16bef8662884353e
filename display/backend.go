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

package display

import (
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/logger"
)

// Backend presents the ActiveMode through the entry points a host engine
// expects. Only one mode is active at a time.
type Backend struct {
	plt    platform.Platform
	active *ActiveMode
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(plt platform.Platform) *Backend {
	return &Backend{
		plt: plt,
	}
}

// Initialise a video mode. Any currently active mode is closed first, but
// only once the new Config has been found to be valid.
func (bck *Backend) Initialise(cfg Config) error {
	if _, err := validate(cfg); err != nil {
		logger.Log(logger.Allow, "display", err)
		return err
	}

	bck.Shutdown()

	m, err := Activate(bck.plt, cfg)
	if err != nil {
		return err
	}
	bck.active = m

	return nil
}

// Shutdown the active mode. Does nothing if there is no active mode.
func (bck *Backend) Shutdown() {
	if bck.active == nil {
		return
	}
	bck.active.Close()
	bck.active = nil
}

// Active returns the active mode or nil if there is no active mode.
func (bck *Backend) Active() *ActiveMode {
	return bck.active
}

// PresentFrame delivers the active mode's frame to the hardware.
func (bck *Backend) PresentFrame() {
	if bck.active == nil {
		return
	}
	bck.active.Present()
}

// Pace runs game logic iterations. See ActiveMode.Pace().
func (bck *Backend) Pace(iter func(render bool)) int {
	if bck.active == nil {
		return 0
	}
	return bck.active.Pace(iter)
}

// Dimensions returns the resolution that the renderer should draw at. Returns
// zero values if there is no active mode.
func (bck *Backend) Dimensions() (int, int) {
	if bck.active == nil {
		return 0, 0
	}
	return bck.active.Dimensions()
}

// StartFrame returns true if the current iteration should be rendered. Always
// true if there is no active mode.
func (bck *Backend) StartFrame() bool {
	if bck.active == nil {
		return true
	}
	return bck.active.Rendering()
}
