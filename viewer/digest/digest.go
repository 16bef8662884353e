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

// Package digest is a viewer that shows nothing. Instead it keeps a running
// SHA-1 fingerprint of every frame presented to the emulated video adapter.
// The fingerprint of each frame is chained with the fingerprint of the
// previous frame, so the final Hash() is a summary of the whole sequence.
//
// It is used for regression testing of the pack routines: the same sequence
// of source frames presented in the same mode should always produce the same
// hash.
package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/legacyvideo/display/mode"
	"github.com/jetsetilly/legacyvideo/display/platform"
)

// Video is an implementation of platform.Platform.
type Video struct {
	*platform.Memory

	digest [sha1.Size]byte

	// the previous digest followed by the RGB values of the visible page
	pixels []byte

	img    *image.RGBA
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem *platform.Memory) *Video {
	return &Video{Memory: mem}
}

// Hash returns the current fingerprint as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames included in the fingerprint.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest sets the fingerprint to its initial value.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// SetDisplayMode implements the platform.Platform interface.
func (dig *Video) SetDisplayMode(width int, height int, depth int, layout mode.Layout) error {
	err := dig.Memory.SetDisplayMode(width, height, depth, layout)
	if err != nil {
		return err
	}
	dig.img = image.NewRGBA(image.Rect(0, 0, width, height))
	dig.pixels = make([]byte, len(dig.digest)+width*height*3)
	return nil
}

// Flush implements the platform.Flusher interface.
func (dig *Video) Flush() {
	if dig.img == nil || dig.TextMode {
		return
	}

	dig.Memory.DecodeInto(dig.img)

	// chain fingerprints by copying the previous fingerprint to the head of
	// the pixel data
	i := copy(dig.pixels, dig.digest[:])
	for p := 0; p < len(dig.img.Pix); p += 4 {
		dig.pixels[i] = dig.img.Pix[p]
		dig.pixels[i+1] = dig.img.Pix[p+1]
		dig.pixels[i+2] = dig.img.Pix[p+2]
		i += 3
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}

// Service implements the viewer.Viewer interface.
func (dig *Video) Service() bool {
	return true
}

// Destroy implements the viewer.Viewer interface.
func (dig *Video) Destroy() {
}
