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

package display_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/legacyvideo/display"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/prefs"
	"github.com/jetsetilly/legacyvideo/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := display.LoadPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	cfg, err := p.Config()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg, display.DefaultConfig())

	period, err := p.Period()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, period, pacer.NTSCPeriod)
}

func TestPreferencesSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := display.LoadPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Mode.Set("vesa8"))
	test.ExpectSuccess(t, p.Native.Set(true))
	test.ExpectSuccess(t, p.Dither.Set(true))
	test.ExpectSuccess(t, p.Frameskip.Set(3))
	test.ExpectSuccess(t, p.DitherBits.Set(4))
	test.ExpectSuccess(t, p.TickRate.Set(25))
	test.DemandSuccess(t, p.Save())

	p, err = display.LoadPreferences(fn)
	test.DemandSuccess(t, err)

	cfg, err := p.Config()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Mode, mode.Config{ID: mode.VESA8, Dither: true, Native: true})
	test.ExpectEquality(t, cfg.Frameskip, 3)
	test.ExpectEquality(t, cfg.Tables.DitherBits, 4)

	period, err := p.Period()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, period, pacer.PALPeriod)
}

func TestPreferencesValidation(t *testing.T) {
	p, err := display.LoadPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Mode.Set("cga"))
	test.ExpectFailure(t, p.Frameskip.Set(-1))
	test.ExpectFailure(t, p.DitherBits.Set(0))
	test.ExpectFailure(t, p.DitherBits.Set(7))
	test.ExpectFailure(t, p.PaletteGamma.Set(0.0))
	test.ExpectFailure(t, p.TickRate.Set(60))

	// failed sets leave the previous value in place
	test.ExpectEquality(t, p.Mode.String(), mode.ModeX.String())
	test.ExpectEquality(t, p.TickRate.Get().(int), 30)
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("display.mode::hercules; display.frameskip::2")
	defer prefs.PopCommandLineStack()

	p, err := display.LoadPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	cfg, err := p.Config()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Mode.ID, mode.Hercules)
	test.ExpectEquality(t, cfg.Frameskip, 2)
}
