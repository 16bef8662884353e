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

// Package tables builds the colour reduction data used by the pack routines
// that target palettised surfaces.
//
// The data is made up of an 8x8 ordered dither matrix, a gamma corrected
// palette and three channel quantisation tables. Packing a dithered pixel is
// then the sum of three table lookups:
//
//	idx := tbl.Red[r][d] + tbl.Green[g][d] + tbl.Blue[b][d]
//
// where d is the dither threshold for the pixel's position.
//
// The palette has 7 levels of red, 9 levels of green and 4 levels of blue,
// for a total of 252 colours. Red is the most significant digit of the
// palette index and blue the least.
//
// Building the tables is a pure function of the Config. Building twice with
// the same Config produces identical tables.
package tables
