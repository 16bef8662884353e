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

package mode

import (
	"fmt"

	"github.com/jetsetilly/legacyvideo/curated"
)

// Sentinel error patterns returned by Select().
const (
	UnsupportedMode        = "unsupported video mode: %v"
	UnsupportedCombination = "%v does not support %s"
)

// Resolution of the frame produced by the renderer for all modes other than
// Mode13h.
const (
	SourceWidth  = 320
	SourceHeight = 240
)

// Geometry of the Hercules graphics page.
const (
	HerculesWidth    = 640
	HerculesHeight   = 400
	HerculesPitch    = HerculesWidth / 8
	HerculesBankSize = 0x2000

	// both graphics pages are cleared when the mode is set
	HerculesMemory = 0x10000
)

// Size of each bit plane in the planar layout.
const PlaneSize = 0x10000

// Config is the user's choice of video mode.
type Config struct {
	ID ID

	// dither colours when the mode has fewer colours than the source
	Dither bool

	// present the source frame at twice the resolution with each pixel
	// replicated to a 2x2 block
	Native bool
}

func (cfg Config) String() string {
	s := cfg.ID.String()
	if cfg.Native {
		s = fmt.Sprintf("%s native", s)
	}
	if cfg.Dither {
		s = fmt.Sprintf("%s dithered", s)
	}
	return s
}

// Descriptor is the result of a successful Select().
type Descriptor struct {
	ID ID

	// resolution and depth of the hardware surface. Depth is in bits per
	// pixel
	Width  int
	Height int
	Depth  int

	Layout Layout
	Native bool
	Dither bool

	// resolution of the frame the renderer should produce
	SourceWidth  int
	SourceHeight int

	// number of bytes between the start of one row and the next. in the
	// planar layout this is the pitch of a single plane
	Pitch int

	// number of bytes of video memory used by one page of the surface. in the
	// planar layout this is the size of a single plane
	Size int

	Kind Kind
}

func (desc Descriptor) String() string {
	return fmt.Sprintf("%s %dx%dx%d %s (source %dx%d)", desc.ID,
		desc.Width, desc.Height, desc.Depth, desc.Kind,
		desc.SourceWidth, desc.SourceHeight)
}

// Pitch returns the number of bytes in a row of video memory for the width,
// depth and layout.
func Pitch(width int, depth int, layout Layout) int {
	switch layout {
	case Planar:
		return width / 4
	case Palettised:
		return width
	case Linear:
		return width * BytesPerPixel(depth)
	case Monochrome:
		return width / 8
	}
	return 0
}

// BytesPerPixel returns the number of bytes used by a pixel in the linear
// layout. 15bpp pixels occupy two bytes.
func BytesPerPixel(depth int) int {
	return (depth + 7) / 8
}

// Select a Descriptor for the Config. Returns an error if the mode is not
// recognised or the options are not supported by the mode.
func Select(cfg Config) (Descriptor, error) {
	desc := Descriptor{
		ID:           cfg.ID,
		Native:       cfg.Native,
		Dither:       cfg.Dither,
		Width:        SourceWidth,
		Height:       SourceHeight,
		SourceWidth:  SourceWidth,
		SourceHeight: SourceHeight,
	}

	switch cfg.ID {
	case ModeX, Mode13h:
		if cfg.Native {
			return Descriptor{}, curated.Errorf(UnsupportedCombination, cfg.ID, "native resolution")
		}
		desc.Depth = 8
		if cfg.ID == ModeX {
			desc.Layout = Planar
			desc.Kind = KindPlanar
			if cfg.Dither {
				desc.Kind = KindPlanarDither
			}
		} else {
			desc.Height = 200
			desc.SourceHeight = 200
			desc.Layout = Palettised
			desc.Kind = KindPalettised8
			if cfg.Dither {
				desc.Kind = KindPalettised8Dither
			}
		}

	case VESA8:
		desc.Depth = 8
		desc.Layout = Palettised
		desc.Kind = KindPalettised8
		if cfg.Dither {
			desc.Kind = KindPalettised8Dither
		}

	case VESA15, VESA16, VESA24, VESA32:
		if cfg.Dither {
			return Descriptor{}, curated.Errorf(UnsupportedCombination, cfg.ID, "dithering")
		}
		desc.Layout = Linear
		switch cfg.ID {
		case VESA15:
			desc.Depth = 15
			desc.Kind = KindLinear15
		case VESA16:
			desc.Depth = 16
			desc.Kind = KindLinear16
		case VESA24:
			desc.Depth = 24
			desc.Kind = KindLinear24
		case VESA32:
			desc.Depth = 32
			desc.Kind = KindLinear32
		}

	case Hercules:
		if cfg.Native {
			return Descriptor{}, curated.Errorf(UnsupportedCombination, cfg.ID, "native resolution")
		}

		// the monochrome pack routine always uses its own dither kernel
		desc.Dither = true
		desc.Width = HerculesWidth
		desc.Height = HerculesHeight
		desc.Depth = 1
		desc.Layout = Monochrome
		desc.Kind = KindMonochrome

	default:
		return Descriptor{}, curated.Errorf(UnsupportedMode, cfg.ID)
	}

	if cfg.Native {
		desc.Width *= 2
		desc.Height *= 2
	}

	desc.Pitch = Pitch(desc.Width, desc.Depth, desc.Layout)

	if desc.Layout == Monochrome {
		desc.Size = HerculesBankSize * 4
	} else {
		desc.Size = desc.Pitch * desc.Height
	}

	return desc, nil
}
