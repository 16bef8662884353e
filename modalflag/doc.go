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

// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the concept of modes, which are keywords on the command
// line that select a set of flags and sub-modes.
//
// A typical command line for the legacyvideo program looks like:
//
//	legacyvideo DIGEST -mode vesa16 -frames 120
//
// In this case DIGEST is the mode and everything that follows is an argument
// to that mode. Modes can be nested, each call to NewMode() begins a new
// layer:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DIGEST", "PERFORMANCE", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 2, "window scaling")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. If the first
// argument is not a recognised sub-mode then the default is selected and the
// argument is left in place for the next layer to parse.
//
// Sub-mode keywords are case insensitive and are always reported in upper
// case by the Mode() and Path() functions.
package modalflag
