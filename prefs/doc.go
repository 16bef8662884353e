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

// Package prefs facilitates the storing of preferential values. Values are
// typed (Bool, String, Int, Float) and are safe to read from any goroutine.
//
// Values are associated with a key by adding them to a Disk instance. The
// Disk type handles loading from and saving to the preferences file. The
// file is a plain text file of "key :: value" lines. Entries in the file that
// are not known to a particular Disk instance are preserved when that
// instance saves.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. Command line values are consumed the next
// time a Disk with a matching key is loaded.
package prefs
