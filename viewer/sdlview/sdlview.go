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

// Package sdlview shows the emulated video adapter in an SDL window. The
// window is hidden while the adapter is in text mode.
//
// SDL requires that all calls are made from the main thread. The Viewer
// should therefore be created and used by the main goroutine only.
package sdlview

import (
	"fmt"
	"image"

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

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the decoded visible page. dimensions match the texture
	img *image.RGBA
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
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	// window is sized and shown when a display mode is set
	vw.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	vw.renderer, err = sdl.CreateRenderer(vw.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		vw.Destroy()
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	return vw, nil
}

// SetDisplayMode implements the platform.Platform interface.
func (vw *Viewer) SetDisplayMode(width int, height int, depth int, layout mode.Layout) error {
	err := vw.Memory.SetDisplayMode(width, height, depth, layout)
	if err != nil {
		return err
	}

	vw.destroyTexture()

	// texture is the same size as the video mode. the renderer scales it to
	// fit the window
	vw.texture, err = vw.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}
	vw.img = image.NewRGBA(image.Rect(0, 0, width, height))

	// every mode is shown with a 4:3 aspect ratio
	w := int32(320 * 2 * vw.scale)
	h := int32(240 * 2 * vw.scale)
	vw.window.SetSize(w, h)
	err = vw.renderer.SetLogicalSize(int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}

	vw.window.SetTitle(fmt.Sprintf("%s [%s]", version.ApplicationName, vw.Memory))
	vw.window.Show()

	logger.Logf(logger.Allow, "sdlview", "window %dx%d for %dx%dx%d", w, h, width, height, depth)

	return nil
}

// RestoreTextMode implements the platform.Platform interface.
func (vw *Viewer) RestoreTextMode() {
	vw.Memory.RestoreTextMode()
	vw.destroyTexture()
	vw.window.Hide()
}

// Flush implements the platform.Flusher interface.
func (vw *Viewer) Flush() {
	if vw.texture == nil || vw.TextMode {
		return
	}

	vw.Memory.DecodeInto(vw.img)

	pixels, pitch, err := vw.texture.Lock(nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlview", err)
		return
	}
	rowSize := vw.img.Rect.Dx() * 4
	for y := 0; y < vw.img.Rect.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+rowSize], vw.img.Pix[y*vw.img.Stride:])
	}
	vw.texture.Unlock()

	err = vw.renderer.Copy(vw.texture, nil, nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlview", err)
		return
	}
	vw.renderer.Present()
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

func (vw *Viewer) destroyTexture() {
	if vw.texture != nil {
		_ = vw.texture.Destroy()
		vw.texture = nil
	}
}

// Destroy implements the viewer.Viewer interface.
func (vw *Viewer) Destroy() {
	vw.destroyTexture()
	if vw.renderer != nil {
		_ = vw.renderer.Destroy()
		vw.renderer = nil
	}
	if vw.window != nil {
		_ = vw.window.Destroy()
		vw.window = nil
	}
	sdl.Quit()
}
