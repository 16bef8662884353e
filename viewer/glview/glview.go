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

// Package glview shows the emulated video adapter in an SDL window with an
// OpenGL 2.1 context. The decoded page is uploaded as a texture and drawn
// over the whole window with nearest neighbour filtering.
//
// As with all SDL and OpenGL code, the Viewer must only be used from the main
// thread.
package glview

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/logger"
	"github.com/jetsetilly/legacyvideo/version"
)

// Viewer is an implementation of platform.Platform.
type Viewer struct {
	*platform.Memory

	scale int

	window    *sdl.Window
	glContext sdl.GLContext
	texture   uint32

	img *image.RGBA

	// the texture is recreated on the next Flush() after a mode change
	createTexture bool
}

// NewViewer is the preferred method of initialisation for the Viewer type.
func NewViewer(mem *platform.Memory, scale int) (*Viewer, error) {
	vw := &Viewer{
		Memory: mem,
		scale:  max(1, scale),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("glview: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	vw.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(640*vw.scale), int32(480*vw.scale),
		uint32(sdl.WINDOW_HIDDEN)|uint32(sdl.WINDOW_OPENGL))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("glview: %w", err)
	}

	vw.glContext, err = vw.window.GLCreateContext()
	if err != nil {
		vw.Destroy()
		return nil, fmt.Errorf("glview: %w", err)
	}

	err = vw.window.GLMakeCurrent(vw.glContext)
	if err != nil {
		vw.Destroy()
		return nil, fmt.Errorf("glview: %w", err)
	}

	_ = sdl.GLSetSwapInterval(1)

	err = gl.Init()
	if err != nil {
		vw.Destroy()
		return nil, fmt.Errorf("glview: %w", err)
	}

	logger.Logf(logger.Allow, "glview", "OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.GenTextures(1, &vw.texture)
	gl.BindTexture(gl.TEXTURE_2D, vw.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return vw, nil
}

// SetDisplayMode implements the platform.Platform interface.
func (vw *Viewer) SetDisplayMode(width int, height int, depth int, layout mode.Layout) error {
	err := vw.Memory.SetDisplayMode(width, height, depth, layout)
	if err != nil {
		return err
	}

	vw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	vw.createTexture = true

	vw.window.SetTitle(fmt.Sprintf("%s [%s]", version.ApplicationName, vw.Memory))
	vw.window.Show()

	return nil
}

// RestoreTextMode implements the platform.Platform interface.
func (vw *Viewer) RestoreTextMode() {
	vw.Memory.RestoreTextMode()
	vw.window.Hide()
}

// Flush implements the platform.Flusher interface.
func (vw *Viewer) Flush() {
	if vw.img == nil || vw.TextMode {
		return
	}

	vw.Memory.DecodeInto(vw.img)

	w := int32(vw.img.Rect.Dx())
	h := int32(vw.img.Rect.Dy())

	gl.BindTexture(gl.TEXTURE_2D, vw.texture)
	if vw.createTexture {
		vw.createTexture = false
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, w, h, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(vw.img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, w, h,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(vw.img.Pix))
	}

	dw, dh := vw.window.GLGetDrawableSize()
	gl.Viewport(0, 0, dw, dh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// texture origin is the top of the image
	gl.Enable(gl.TEXTURE_2D)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()
	gl.Disable(gl.TEXTURE_2D)

	vw.window.GLSwap()
}

// Service implements the viewer.Viewer interface.
func (vw *Viewer) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Destroy implements the viewer.Viewer interface.
func (vw *Viewer) Destroy() {
	if vw.texture != 0 {
		gl.DeleteTextures(1, &vw.texture)
		vw.texture = 0
	}
	if vw.glContext != nil {
		sdl.GLDeleteContext(vw.glContext)
		vw.glContext = nil
	}
	if vw.window != nil {
		_ = vw.window.Destroy()
		vw.window = nil
	}
	sdl.Quit()
}
