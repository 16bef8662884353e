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

// Package termview shows the emulated video adapter on the controlling
// terminal using ANSI 24-bit colour escape sequences. Each character cell
// shows two vertically adjacent pixels with the upper half block character.
//
// The terminal is put into raw mode when a display mode is set and restored
// when the adapter returns to text mode. Pressing q or escape asks the
// program to quit.
package termview

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/pkg/term"

	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/logger"
)

// the device opened by NewViewer().
const tty = "/dev/tty"

// ANSI sequences.
const (
	cursorHome   = "\x1b[H"
	clearScreen  = "\x1b[2J"
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	resetColours = "\x1b[0m"
	upperHalf    = "▀"
)

// Viewer is an implementation of platform.Platform.
type Viewer struct {
	*platform.Memory

	// nil if the viewer is writing to something other than a terminal
	term *term.Term
	out  io.Writer

	// number of character columns used to show the image
	columns int

	img *image.RGBA
	buf bytes.Buffer

	quit atomic.Bool
}

// NewViewer opens the controlling terminal and returns a new Viewer. The
// image is scaled to fit the number of columns.
func NewViewer(mem *platform.Memory, columns int) (*Viewer, error) {
	t, err := term.Open(tty)
	if err != nil {
		return nil, fmt.Errorf("termview: %w", err)
	}

	vw := newViewer(mem, t, columns)
	vw.term = t

	// keypresses are checked for in the background
	go func() {
		b := make([]byte, 1)
		for {
			n, err := t.Read(b)
			if err != nil {
				return
			}
			if n > 0 && (b[0] == 'q' || b[0] == 0x1b || b[0] == 0x03) {
				vw.quit.Store(true)
			}
		}
	}()

	return vw, nil
}

func newViewer(mem *platform.Memory, out io.Writer, columns int) *Viewer {
	return &Viewer{
		Memory:  mem,
		out:     out,
		columns: max(8, columns),
	}
}

// SetDisplayMode implements the platform.Platform interface.
func (vw *Viewer) SetDisplayMode(width int, height int, depth int, layout mode.Layout) error {
	err := vw.Memory.SetDisplayMode(width, height, depth, layout)
	if err != nil {
		return err
	}

	if vw.term != nil {
		err = vw.term.SetRaw()
		if err != nil {
			logger.Log(logger.Allow, "termview", err)
		}
	}

	vw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	io.WriteString(vw.out, clearScreen+hideCursor)

	return nil
}

// RestoreTextMode implements the platform.Platform interface.
func (vw *Viewer) RestoreTextMode() {
	vw.Memory.RestoreTextMode()
	io.WriteString(vw.out, resetColours+clearScreen+cursorHome+showCursor)
	if vw.term != nil {
		err := vw.term.Restore()
		if err != nil {
			logger.Log(logger.Allow, "termview", err)
		}
	}
}

// Flush implements the platform.Flusher interface.
func (vw *Viewer) Flush() {
	if vw.img == nil || vw.TextMode {
		return
	}
	vw.Memory.DecodeInto(vw.img)
	vw.render()
	_, err := vw.out.Write(vw.buf.Bytes())
	if err != nil {
		logger.Log(logger.Allow, "termview", err)
	}
}

// size of the image in character cells. the height accounts for two pixels
// per cell and for character cells being roughly twice as tall as they are
// wide.
func (vw *Viewer) cells() (int, int) {
	w := vw.img.Rect.Dx()
	h := vw.img.Rect.Dy()
	cols := min(vw.columns, w)
	rows := (h * cols / w) / 2
	return cols, max(1, rows)
}

func (vw *Viewer) render() {
	vw.buf.Reset()
	vw.buf.WriteString(cursorHome)

	w := vw.img.Rect.Dx()
	h := vw.img.Rect.Dy()
	cols, rows := vw.cells()

	var b []byte
	for r := 0; r < rows; r++ {
		top := (r * 2) * h / (rows * 2)
		bottom := (r*2 + 1) * h / (rows * 2)
		for c := 0; c < cols; c++ {
			x := c * w / cols
			ut := vw.img.RGBAAt(x, top)
			lb := vw.img.RGBAAt(x, bottom)

			b = b[:0]
			b = append(b, "\x1b[38;2;"...)
			b = appendRGB(b, ut.R, ut.G, ut.B)
			b = append(b, "m\x1b[48;2;"...)
			b = appendRGB(b, lb.R, lb.G, lb.B)
			b = append(b, 'm')
			vw.buf.Write(b)
			vw.buf.WriteString(upperHalf)
		}
		vw.buf.WriteString(resetColours)
		vw.buf.WriteString("\r\n")
	}
}

func appendRGB(b []byte, r, g, bl uint8) []byte {
	b = strconv.AppendUint(b, uint64(r), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(g), 10)
	b = append(b, ';')
	return strconv.AppendUint(b, uint64(bl), 10)
}

// Service implements the viewer.Viewer interface.
func (vw *Viewer) Service() bool {
	return !vw.quit.Load()
}

// Destroy implements the viewer.Viewer interface.
func (vw *Viewer) Destroy() {
	if vw.term != nil {
		_ = vw.term.Restore()
		_ = vw.term.Close()
		vw.term = nil
	}
}
