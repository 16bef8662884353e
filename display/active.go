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
	"image"

	"github.com/dustin/go-humanize"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/display/packer"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/shadow"
	"github.com/jetsetilly/legacyvideo/display/tables"
	"github.com/jetsetilly/legacyvideo/logger"
)

// memory used by the three channel quantisation tables.
const tablesSize = 3 * 256 * 256

// ActiveMode is a video mode that has been set on the platform. It is not
// safe for concurrent use.
type ActiveMode struct {
	plt  platform.Platform
	desc mode.Descriptor

	// nil if the mode does not dither
	tbl *tables.Tables

	// nil if the mode does not use a palette
	palette tables.Palette

	// nil unless the mode is monochrome
	shadow *shadow.Buffer

	pck   packer.Packer
	pacer *pacer.Pacer
	frame *image.RGBA

	presented int
	closed    bool
}

// validate the Config and return the Descriptor it selects. no hardware is
// touched.
func validate(cfg Config) (mode.Descriptor, error) {
	desc, err := mode.Select(cfg.Mode)
	if err != nil {
		return mode.Descriptor{}, curated.Errorf(ConfigurationError, err)
	}
	if desc.Dither && desc.Kind != mode.KindMonochrome {
		if err := cfg.Tables.Validate(); err != nil {
			return mode.Descriptor{}, curated.Errorf(ConfigurationError, err)
		}
	}
	if cfg.Frameskip < 0 {
		return mode.Descriptor{}, curated.Errorf(ConfigurationError, fmt.Errorf("frameskip cannot be negative (%d)", cfg.Frameskip))
	}
	return desc, nil
}

// Activate a video mode on the platform. The Config is validated before the
// platform is touched.
func Activate(plt platform.Platform, cfg Config) (*ActiveMode, error) {
	desc, err := validate(cfg)
	if err != nil {
		return nil, err
	}

	err = plt.SetDisplayMode(desc.Width, desc.Height, desc.Depth, desc.Layout)
	if err != nil {
		logger.Logf(logger.Allow, "display", "platform refused %s: %v", desc, err)
		return nil, curated.Errorf(HardwareInitError, err)
	}

	m := &ActiveMode{
		plt:  plt,
		desc: desc,
	}

	// colour tables and palette
	switch desc.Kind {
	case mode.KindPlanarDither, mode.KindPalettised8Dither:
		// tables configuration has already been validated
		m.tbl, err = tables.Build(cfg.Tables)
		if err != nil {
			plt.RestoreTextMode()
			return nil, curated.Errorf(ConfigurationError, err)
		}
		m.palette = m.tbl.Palette
		logger.Logf(logger.Allow, "display", "colour tables built (%s, %s)", cfg.Tables, humanize.Bytes(tablesSize))
	case mode.KindPlanar, mode.KindPalettised8:
		m.palette = tables.RGB332Palette()
	}

	for i, e := range m.palette {
		plt.WritePaletteEntry(i, e.R, e.G, e.B)
	}

	if desc.Kind == mode.KindMonochrome {
		m.shadow = shadow.NewBuffer(desc.Size)
		logger.Logf(logger.Allow, "display", "shadow buffer allocated (%s)", humanize.Bytes(uint64(desc.Size)))
	}

	m.pck, err = packer.New(desc, m.tbl, m.shadow)
	if err != nil {
		plt.RestoreTextMode()
		return nil, curated.Errorf(ConfigurationError, err)
	}

	m.frame = image.NewRGBA(image.Rect(0, 0, desc.SourceWidth, desc.SourceHeight))

	m.pacer = pacer.NewPacer(plt, cfg.Frameskip)
	m.pacer.Start()

	logger.Logf(logger.Allow, "display", "activated %s", desc)
	logger.Logf(logger.Allow, "display", "frame buffer %s, surface %s",
		humanize.Bytes(uint64(len(m.frame.Pix))), humanize.Bytes(uint64(desc.Size)))

	return m, nil
}

func (m *ActiveMode) String() string {
	return m.desc.String()
}

// Descriptor returns the Descriptor of the active mode.
func (m *ActiveMode) Descriptor() mode.Descriptor {
	return m.desc
}

// Dimensions returns the resolution that the renderer should draw at.
func (m *ActiveMode) Dimensions() (int, int) {
	return m.desc.SourceWidth, m.desc.SourceHeight
}

// Frame returns the image that the renderer should draw into. The same image
// is returned on every call. Returns nil after Close().
func (m *ActiveMode) Frame() *image.RGBA {
	return m.frame
}

// Palette returns the palette written to the hardware. Returns nil for modes
// that do not use a palette.
func (m *ActiveMode) Palette() tables.Palette {
	return m.palette
}

// Present the current contents of the frame to the hardware.
func (m *ActiveMode) Present() {
	if m.closed {
		return
	}

	m.pck.Pack(m.frame, m.plt.Surface())
	m.presented++

	if f, ok := m.plt.(platform.Flusher); ok {
		f.Flush()
	}
}

// Pace runs the iteration function once for every tick that has elapsed since
// the previous call. See the pacer package for details.
func (m *ActiveMode) Pace(iter func(render bool)) int {
	if m.closed {
		return 0
	}
	return m.pacer.Pace(iter)
}

// Rendering returns true if the most recent iteration run by Pace() was
// flagged for rendering.
func (m *ActiveMode) Rendering() bool {
	if m.closed {
		return true
	}
	return m.pacer.Rendering()
}

// SetFrameskip changes the frameskip budget.
func (m *ActiveMode) SetFrameskip(budget int) {
	m.pacer.SetBudget(budget)
}

// Close the active mode and return the platform to text mode. Safe to call
// more than once.
func (m *ActiveMode) Close() {
	if m.closed {
		return
	}
	m.closed = true

	m.plt.RestoreTextMode()

	iterations, renders := m.pacer.Stats()
	logger.Logf(logger.Allow, "display", "closed %s after %d presents (%d iterations, %d rendered)",
		m.desc.ID, m.presented, iterations, renders)

	m.frame = nil
	m.shadow = nil
	m.tbl = nil
	m.pck = nil
	m.pacer.Stop()
}

// Snapshot is a summary of the state of an ActiveMode.
type Snapshot struct {
	Descriptor    mode.Descriptor
	Palette       int
	Frameskip     int
	Pacer         string
	Presented     int
	Iterations    uint64
	Renders       uint64
	ShadowWrites  int
	TablesInUse   bool
	ShadowInUse   bool
	FrameByteSize int
}

// Snapshot returns a summary of the current state of the ActiveMode.
func (m *ActiveMode) Snapshot() Snapshot {
	s := Snapshot{
		Descriptor:  m.desc,
		Palette:     len(m.palette),
		Frameskip:   m.pacer.Budget(),
		Pacer:       m.pacer.String(),
		Presented:   m.presented,
		TablesInUse: m.tbl != nil,
		ShadowInUse: m.shadow != nil,
	}
	s.Iterations, s.Renders = m.pacer.Stats()
	if m.shadow != nil {
		s.ShadowWrites = m.shadow.Writes()
	}
	if m.frame != nil {
		s.FrameByteSize = len(m.frame.Pix)
	}
	return s
}
