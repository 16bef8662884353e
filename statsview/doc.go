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

// Package statsview serves runtime statistics over HTTP while the program is
// running. The server is only included when the program is built with the
// statsview build tag:
//
//	go build -tags statsview .
//
// Charts of heap usage, goroutine counts and GC pauses are then available at
// localhost:12640/debug/statsview and the standard pprof endpoints at
// localhost:12640/debug/pprof/
//
// Without the build tag Launch() does nothing and Available() returns false.
package statsview
