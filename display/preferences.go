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
	"time"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/display/tables"
	"github.com/jetsetilly/legacyvideo/prefs"
	"github.com/jetsetilly/legacyvideo/resources"
)

// Preferences for the display backend.
type Preferences struct {
	dsk *prefs.Disk

	Mode         prefs.String
	Dither       prefs.Bool
	Native       prefs.Bool
	Frameskip    prefs.Int
	DitherBits   prefs.Int
	PaletteGamma prefs.Float

	// rate of the hardware tick in hertz. 30 or 25
	TickRate prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences loads the preferences from the default location.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	return LoadPreferences(pth)
}

// LoadPreferences loads the preferences from the named file. A missing file
// is not an error.
func LoadPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Mode.SetHookPre(func(v prefs.Value) error {
		_, err := mode.ParseID(fmt.Sprintf("%v", v))
		return err
	})
	p.Frameskip.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("frameskip cannot be negative")
		}
		return nil
	})
	p.DitherBits.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > tables.MaxDitherBits {
			return fmt.Errorf("dither bits must be between 1 and %d", tables.MaxDitherBits)
		}
		return nil
	})
	p.PaletteGamma.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return fmt.Errorf("palette gamma must be positive")
		}
		return nil
	})
	p.TickRate.SetHookPre(func(v prefs.Value) error {
		_, err := pacer.Period(v.(int))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}

	err = p.dsk.Add("display.mode", &p.Mode)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.dither", &p.Dither)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.native", &p.Native)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.frameskip", &p.Frameskip)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.ditherbits", &p.DitherBits)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.palettegamma", &p.PaletteGamma)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}
	err = p.dsk.Add("display.tickrate", &p.TickRate)
	if err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("display: preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	cfg := DefaultConfig()
	_ = p.Mode.Set(cfg.Mode.ID.String())
	_ = p.Dither.Set(cfg.Mode.Dither)
	_ = p.Native.Set(cfg.Mode.Native)
	_ = p.Frameskip.Set(cfg.Frameskip)
	_ = p.DitherBits.Set(cfg.Tables.DitherBits)
	_ = p.PaletteGamma.Set(cfg.Tables.PaletteGamma)
	_ = p.TickRate.Set(30)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns the preferences as a Config for Activate().
func (p *Preferences) Config() (Config, error) {
	id, err := mode.ParseID(p.Mode.String())
	if err != nil {
		return Config{}, curated.Errorf(ConfigurationError, err)
	}

	return Config{
		Mode: mode.Config{
			ID:     id,
			Dither: p.Dither.Get().(bool),
			Native: p.Native.Get().(bool),
		},
		Tables: tables.Config{
			PaletteGamma: p.PaletteGamma.Get().(float64),
			DitherBits:   p.DitherBits.Get().(int),
		},
		Frameskip: p.Frameskip.Get().(int),
	}, nil
}

// Period returns the tick period for the TickRate preference.
func (p *Preferences) Period() (time.Duration, error) {
	return pacer.Period(p.TickRate.Get().(int))
}
