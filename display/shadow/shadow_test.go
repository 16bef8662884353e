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

package shadow_test

import (
	"testing"

	"github.com/jetsetilly/legacyvideo/display/shadow"
	"github.com/jetsetilly/legacyvideo/test"
)

func TestUpdate(t *testing.T) {
	b := shadow.NewBuffer(16)
	test.ExpectEquality(t, b.Len(), 16)

	// buffer starts cleared so writing zero is not a change
	test.ExpectEquality(t, b.Update(0, 0x00), false)
	test.ExpectEquality(t, b.Update(0, 0x80), true)
	test.ExpectEquality(t, b.Update(0, 0x80), false)
	test.ExpectEquality(t, b.Peek(0), uint8(0x80))
	test.ExpectEquality(t, b.Update(15, 0xff), true)
	test.ExpectEquality(t, b.Writes(), 2)

	b.Reset()
	test.ExpectEquality(t, b.Writes(), 0)
	test.ExpectEquality(t, b.Peek(0), uint8(0x00))
	test.ExpectEquality(t, b.Update(0, 0x80), true)
}
