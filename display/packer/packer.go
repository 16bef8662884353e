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

// Package packer converts a true colour source frame into the memory format
// of a video mode and writes it to a platform.Surface.
//
// There is one Packer implementation for each family of video modes. New()
// chooses the implementation from the Kind field of a mode.Descriptor. The
// packers do not check the geometry of the source frame or the surface. The
// Descriptor is assumed to be correct and the source frame to have the
// Descriptor's SourceWidth and SourceHeight.
//
// Each packer prepares whole rows of output before writing them to the
// surface, with the exception of the monochrome packer which writes
// individual bytes and only when the byte differs from the shadow buffer.
package packer

import (
	"image"

	"github.com/jetsetilly/legacyvideo/curated"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/display/shadow"
	"github.com/jetsetilly/legacyvideo/display/tables"
)

// Sentinel error patterns returned by New().
const (
	UnsupportedKind = "packer: unsupported kind: %v"
	MissingTables   = "packer: %v requires colour tables"
	MissingShadow   = "packer: %v requires a shadow buffer"
)

// Packer converts a source frame and writes it to a surface.
type Packer interface {
	Pack(src *image.RGBA, dst platform.Surface)
}

// New returns the Packer for the Descriptor. The tables are required for the
// dithered kinds and the shadow buffer for the monochrome kind. Either may be
// nil otherwise.
func New(desc mode.Descriptor, tbl *tables.Tables, shd *shadow.Buffer) (Packer, error) {
	switch desc.Kind {
	case mode.KindPlanar, mode.KindPlanarDither:
		if desc.Kind == mode.KindPlanarDither && tbl == nil {
			return nil, curated.Errorf(MissingTables, desc.Kind)
		}
		return newPlanar(desc, tbl), nil

	case mode.KindPalettised8, mode.KindPalettised8Dither:
		if desc.Kind == mode.KindPalettised8Dither && tbl == nil {
			return nil, curated.Errorf(MissingTables, desc.Kind)
		}
		return newPalettised(desc, tbl), nil

	case mode.KindLinear15, mode.KindLinear16, mode.KindLinear24, mode.KindLinear32:
		return newLinear(desc), nil

	case mode.KindMonochrome:
		if shd == nil {
			return nil, curated.Errorf(MissingShadow, desc.Kind)
		}
		return newMonochrome(desc, shd), nil
	}

	return nil, curated.Errorf(UnsupportedKind, desc.Kind)
}

// row returns the pixels of row y of the image. four bytes per pixel.
func row(src *image.RGBA, y int) []uint8 {
	i := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
	return src.Pix[i : i+src.Rect.Dx()*4]
}

// indexer converts a pixel at position x, y to a palette index.
type indexer func(r, g, b uint8, x, y int) uint8

func truncate(r, g, b uint8, _, _ int) uint8 {
	return tables.RGB332(r, g, b)
}

func ditherer(tbl *tables.Tables) indexer {
	return func(r, g, b uint8, x, y int) uint8 {
		return tbl.Index(r, g, b, tbl.Threshold(x, y))
	}
}
