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
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/tables"
	"github.com/jetsetilly/legacyvideo/logger"
	"github.com/jetsetilly/legacyvideo/test"
)

func config(id mode.ID, dither bool, native bool) display.Config {
	cfg := display.DefaultConfig()
	cfg.Mode = mode.Config{ID: id, Dither: dither, Native: native}
	return cfg
}

func fill(m *display.ActiveMode, c color.RGBA) {
	frame := m.Frame()
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			frame.SetRGBA(x, y, c)
		}
	}
}

func TestConfigurationError(t *testing.T) {
	mem := platform.NewMemory(nil)

	for _, cfg := range []display.Config{
		config(mode.ModeX, false, true),
		config(mode.VESA16, true, false),
		config(mode.Undefined, false, false),
	} {
		_, err := display.Activate(mem, cfg)
		test.ExpectEquality(t, curated.Is(err, display.ConfigurationError), true, cfg)
	}

	cfg := config(mode.VESA8, true, false)
	cfg.Tables.DitherBits = 0
	_, err := display.Activate(mem, cfg)
	test.ExpectEquality(t, curated.Is(err, display.ConfigurationError), true)

	cfg = config(mode.VESA8, false, false)
	cfg.Frameskip = -1
	_, err = display.Activate(mem, cfg)
	test.ExpectEquality(t, curated.Is(err, display.ConfigurationError), true)

	// hardware has not been touched
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, mem.Stats(), platform.Stats{})
}

func TestTablesIgnoredWithoutDither(t *testing.T) {
	mem := platform.NewMemory(nil)
	cfg := config(mode.VESA8, false, false)
	cfg.Tables.DitherBits = 0

	m, err := display.Activate(mem, cfg)
	test.DemandSuccess(t, err)
	m.Close()
}

func TestHardwareInitError(t *testing.T) {
	mem := platform.NewMemory(nil)
	mem.Refuse = func(_ int, _ int, _ int, _ mode.Layout) bool {
		return true
	}

	_, err := display.Activate(mem, config(mode.VESA32, false, false))
	test.ExpectEquality(t, curated.Is(err, display.HardwareInitError), true)
	test.ExpectEquality(t, curated.Has(err, platform.UnsupportedDisplayMode), true)
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, mem.Stats().PaletteWrites, 0)
}

func TestPalette(t *testing.T) {
	for _, e := range []struct {
		cfg     display.Config
		entries int
	}{
		{config(mode.ModeX, false, false), 256},
		{config(mode.ModeX, true, false), tables.NumColours},
		{config(mode.Mode13h, true, false), tables.NumColours},
		{config(mode.VESA8, false, true), 256},
		{config(mode.VESA16, false, false), 0},
		{config(mode.Hercules, false, false), 0},
	} {
		mem := platform.NewMemory(nil)
		m, err := display.Activate(mem, e.cfg)
		test.DemandSuccess(t, err, e.cfg)
		test.ExpectEquality(t, mem.Stats().PaletteWrites, e.entries, e.cfg)
		test.ExpectEquality(t, len(m.Palette()), e.entries, e.cfg)

		// presenting does not write to the palette
		m.Present()
		test.ExpectEquality(t, mem.Stats().PaletteWrites, e.entries, e.cfg)
		m.Close()
	}

	mem := platform.NewMemory(nil)
	m, err := display.Activate(mem, config(mode.ModeX, true, false))
	test.DemandSuccess(t, err)
	r, g, b := mem.PaletteEntry(tables.NumColours - 1)
	test.ExpectEquality(t, r, uint8(63))
	test.ExpectEquality(t, g, uint8(63))
	test.ExpectEquality(t, b, uint8(63))
	m.Close()
}

func TestPresent(t *testing.T) {
	mem := platform.NewMemory(nil)
	m, err := display.Activate(mem, config(mode.VESA32, false, true))
	test.DemandSuccess(t, err)

	w, h := m.Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 240)
	test.ExpectEquality(t, m.Descriptor().Width, 640)

	c := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	fill(m, c)
	m.Present()

	img := mem.Decode()
	test.ExpectEquality(t, img.Bounds().Dx(), 640)
	test.ExpectEquality(t, img.RGBAAt(0, 0), c)
	test.ExpectEquality(t, img.RGBAAt(639, 479), c)
	test.ExpectEquality(t, m.Snapshot().Presented, 1)

	m.Close()
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, m.Frame() == nil, true)

	// presenting after close does nothing
	mem.ResetStats()
	m.Present()
	test.ExpectEquality(t, mem.Stats().Writes, 0)
	m.Close()
}

func TestMonochromeDiff(t *testing.T) {
	mem := platform.NewMemory(nil)
	m, err := display.Activate(mem, config(mode.Hercules, false, false))
	test.DemandSuccess(t, err)

	fill(m, color.RGBA{R: 0x80, G: 0x40, B: 0xc0, A: 0xff})
	m.Present()
	test.ExpectInequality(t, mem.Stats().Writes, 0)

	mem.ResetStats()
	m.Present()
	test.ExpectEquality(t, mem.Stats().Writes, 0)

	m.Close()
}

func TestPace(t *testing.T) {
	mem := platform.NewMemory(nil)
	mem.Advance(10)

	cfg := config(mode.VESA16, false, false)
	cfg.Frameskip = 1
	m, err := display.Activate(mem, cfg)
	test.DemandSuccess(t, err)

	var renders []bool
	iter := func(render bool) {
		renders = append(renders, render)
	}

	test.ExpectEquality(t, m.Pace(iter), 0)

	mem.Advance(3)
	test.ExpectEquality(t, m.Pace(iter), 3)
	test.DemandEquality(t, len(renders), 3)
	test.ExpectEquality(t, renders[0], false)
	test.ExpectEquality(t, renders[1], true)
	test.ExpectEquality(t, renders[2], true)
	test.ExpectEquality(t, m.Rendering(), true)

	m.SetFrameskip(0)
	renders = renders[:0]
	mem.Advance(100)
	test.ExpectEquality(t, m.Pace(iter), 100)
	test.ExpectEquality(t, renders[98], false)
	test.ExpectEquality(t, renders[99], true)

	m.Close()
	mem.Advance(5)
	test.ExpectEquality(t, m.Pace(iter), 0)
}

func TestBackend(t *testing.T) {
	mem := platform.NewMemory(nil)
	bck := display.NewBackend(mem)

	// uninitialised backend
	w, h := bck.Dimensions()
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)
	test.ExpectEquality(t, bck.StartFrame(), true)
	test.ExpectEquality(t, bck.Pace(func(bool) {}), 0)
	bck.PresentFrame()
	bck.Shutdown()
	test.ExpectEquality(t, mem.Stats(), platform.Stats{})

	test.DemandSuccess(t, bck.Initialise(config(mode.Mode13h, true, false)))
	w, h = bck.Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)
	bck.PresentFrame()
	test.ExpectEquality(t, mem.Stats().Writes, 200)

	// a bad configuration leaves the active mode alone
	err := bck.Initialise(config(mode.Mode13h, false, true))
	test.ExpectEquality(t, curated.Is(err, display.ConfigurationError), true)
	test.ExpectEquality(t, mem.TextMode, false)
	test.ExpectEquality(t, bck.Active() != nil, true)
	test.ExpectEquality(t, mem.Stats().ModeChanges, 1)

	// a good configuration replaces it
	test.DemandSuccess(t, bck.Initialise(config(mode.Hercules, false, false)))
	test.ExpectEquality(t, mem.Stats().ModeChanges, 2)
	w, h = mem.Dimensions()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 400)

	bck.Shutdown()
	test.ExpectEquality(t, mem.TextMode, true)
	test.ExpectEquality(t, bck.Active() == nil, true)
	bck.Shutdown()
	test.ExpectEquality(t, mem.TextMode, true)
}

func TestActivationLogged(t *testing.T) {
	logger.Clear()

	mem := platform.NewMemory(nil)
	m, err := display.Activate(mem, config(mode.Hercules, false, false))
	test.DemandSuccess(t, err)
	m.Close()

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectEquality(t, strings.Contains(tw.String(), "activated Hercules"), true)
	test.ExpectEquality(t, strings.Contains(tw.String(), "shadow buffer allocated (33 kB)"), true)
}
