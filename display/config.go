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
	"fmt"

	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/tables"
)

// Sentinel error patterns.
const (
	ConfigurationError = "display: configuration error: %v"
	HardwareInitError  = "display: hardware initialisation: %v"
)

// Config for Activate().
type Config struct {
	Mode      mode.Config
	Tables    tables.Config
	Frameskip int
}

// DefaultConfig returns a Config for an undithered Mode X display with a
// frameskip budget of one.
func DefaultConfig() Config {
	return Config{
		Mode:      mode.Config{ID: mode.ModeX},
		Tables:    tables.DefaultConfig(),
		Frameskip: 1,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s (frameskip %d)", cfg.Mode, cfg.Frameskip)
}
