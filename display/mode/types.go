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
	"strings"
)

// ID identifies one of the supported video modes.
type ID int

// List of valid ID values.
const (
	Undefined ID = iota
	Mode13h
	ModeX
	VESA8
	VESA15
	VESA16
	VESA24
	VESA32
	Hercules
)

// IDs lists every valid ID in order.
var IDs = []ID{Mode13h, ModeX, VESA8, VESA15, VESA16, VESA24, VESA32, Hercules}

func (id ID) String() string {
	switch id {
	case Mode13h:
		return "Mode13h"
	case ModeX:
		return "ModeX"
	case VESA8:
		return "VESA8"
	case VESA15:
		return "VESA15"
	case VESA16:
		return "VESA16"
	case VESA24:
		return "VESA24"
	case VESA32:
		return "VESA32"
	case Hercules:
		return "Hercules"
	}
	return "undefined"
}

// ParseID converts a string to an ID. The comparison is case insensitive.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for _, id := range IDs {
		if strings.EqualFold(s, id.String()) {
			return id, nil
		}
	}
	return Undefined, fmt.Errorf("unrecognised video mode: %s", s)
}

// Layout describes how the video memory for a mode is arranged.
type Layout int

// List of valid Layout values.
const (
	// four bit planes with four pixels sharing each address. a write is
	// directed to one or more planes by the plane mask
	Planar Layout = iota

	// one byte per pixel. each byte is an index into the palette
	Palettised

	// two, three or four bytes per pixel holding the colour directly
	Linear

	// one bit per pixel with rows interleaved over four banks
	Monochrome
)

func (l Layout) String() string {
	switch l {
	case Planar:
		return "planar"
	case Palettised:
		return "palettised"
	case Linear:
		return "linear"
	case Monochrome:
		return "monochrome"
	}
	return "unknown layout"
}

// Kind selects the pack routine for a Descriptor.
type Kind int

// List of valid Kind values.
const (
	KindPlanar Kind = iota
	KindPlanarDither
	KindPalettised8
	KindPalettised8Dither
	KindLinear15
	KindLinear16
	KindLinear24
	KindLinear32
	KindMonochrome
)

func (k Kind) String() string {
	switch k {
	case KindPlanar:
		return "planar"
	case KindPlanarDither:
		return "planar (dithered)"
	case KindPalettised8:
		return "8bpp"
	case KindPalettised8Dither:
		return "8bpp (dithered)"
	case KindLinear15:
		return "15bpp"
	case KindLinear16:
		return "16bpp"
	case KindLinear24:
		return "24bpp"
	case KindLinear32:
		return "32bpp"
	case KindMonochrome:
		return "monochrome"
	}
	return "unknown kind"
}
