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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that raise errors
// the caller is expected to act upon should export the pattern as a const
// string. For example:
//
//	const UnsupportedMode = "unsupported mode: %s"
//
//	err := curated.Errorf(UnsupportedMode, "VGA")
//
//	if curated.Is(err, UnsupportedMode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is formed by passing a curated error as one of
// the placeholder values of another curated error.
//
//	f := curated.Errorf("display: %v", err)
//
//	if curated.Has(f, UnsupportedMode) {
//		fmt.Println("true")
//	}
//
// Note that curated.Is(f, UnsupportedMode) is false because f was created
// with a different pattern.
//
// The Error() function normalises the error chain so that it does not
// contain duplicate adjacent parts. Parts are separated by the sub-string
// ": ", as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). In practice this means a message is never printed as:
//
//	display: display: unsupported mode: VGA
//
// Curated errors also implement Unwrap() so uncurated errors placed in the
// values list can be found with the errors.Is() and errors.As() functions of
// the standard library.
package curated
