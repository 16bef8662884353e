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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions stop the test immediately. Use the Demand form when
// later parts of a test depend on the value being correct, for example when
// checking the length of a slice before iterating over it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> always success
//
// The nil case is not obvious but it follows from how errors usually work in
// Go. A nil error value arrives at the function as an untyped nil and so must
// be counted as a success.
//
// The optional tags argument is printed before the failure message and is
// useful for identifying an iteration in a table driven test.
package test
