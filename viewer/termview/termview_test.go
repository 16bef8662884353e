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

package termview

import (
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/legacyvideo/display"
	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/test"
)

func TestRender(t *testing.T) {
	tw := &test.Writer{}
	vw := newViewer(platform.NewMemory(nil), tw, 40)

	cfg := display.DefaultConfig()
	cfg.Mode = mode.Config{ID: mode.VESA32}
	m, err := display.Activate(vw, cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(tw.String(), clearScreen+hideCursor), true)

	frame := m.Frame()
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			if y < 120 {
				frame.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				frame.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	tw.Clear()
	m.Present()

	cols, rows := vw.cells()
	test.ExpectEquality(t, cols, 40)
	test.ExpectEquality(t, rows, 15)

	out := tw.String()
	test.ExpectEquality(t, strings.HasPrefix(out, cursorHome), true)
	test.ExpectEquality(t, strings.Count(out, upperHalf), cols*rows)
	test.ExpectEquality(t, strings.Count(out, "\r\n"), rows)
	test.ExpectEquality(t, strings.Contains(out, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m"), true)
	test.ExpectEquality(t, strings.Contains(out, "\x1b[38;2;0;0;255m\x1b[48;2;0;0;255m"), true)

	tw.Clear()
	m.Close()
	test.ExpectEquality(t, strings.HasSuffix(tw.String(), showCursor), true)

	// nothing is drawn in text mode
	tw.Clear()
	vw.Flush()
	test.ExpectEquality(t, tw.String(), "")

	test.ExpectEquality(t, vw.Service(), true)
}
