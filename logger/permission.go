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

package logger

// Permission decides whether a log request results in a new entry.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts a plain function to the Permission interface.
type PermissionFunc func() bool

func (f PermissionFunc) AllowLogging() bool {
	return f()
}

// Allow and Deny are fixed permissions.
var (
	Allow Permission = PermissionFunc(func() bool { return true })
	Deny  Permission = PermissionFunc(func() bool { return false })
)
