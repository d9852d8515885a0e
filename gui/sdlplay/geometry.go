// This file is part of Dashboy.
//
// Dashboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dashboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dashboy.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/tinworth/dashboy/hardware"
)

// the screen texture is larger than the screen itself. power-of-two
// dimensions with the screen image in the top-left corner
const (
	textureWidth  = 256
	textureHeight = 256
)

// texture coordinates of the bottom-right corner of the screen image
const (
	texRight  = float32(hardware.ScreenWidth) / textureWidth
	texBottom = float32(hardware.ScreenHeight) / textureHeight
)

// Vertex is one corner of the screen quad. Position is in drawable pixels
// with the origin at the top-left of the viewport.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
}

// Projection returns a column-major 3x3 matrix mapping top-left origin
// pixel coordinates to normalised device coordinates. The Y axis is flipped
// so that pixel space reads the same way as the frame buffer.
func Projection(width int32, height int32) [9]float32 {
	var proj [9]float32
	proj[0] = 2.0 / float32(width)
	proj[4] = -2.0 / float32(height)
	proj[6] = -1.0
	proj[7] = 1.0
	proj[8] = 1.0
	return proj
}

// Letterbox returns the largest rectangle with the screen's aspect ratio
// that fits the viewport, centred on both axes. Values are in the same
// pixel space as Projection.
func Letterbox(viewportW int32, viewportH int32) (x float32, y float32, w float32, h float32) {
	vw := float32(viewportW)
	vh := float32(viewportH)

	if vw*hardware.ScreenHeight > vh*hardware.ScreenWidth {
		// viewport is wider than the screen. height constrains, bars at the
		// sides
		h = vh
		w = vh * hardware.ScreenWidth / hardware.ScreenHeight
	} else {
		w = vw
		h = vw * hardware.ScreenHeight / hardware.ScreenWidth
	}

	x = (vw - w) / 2
	y = (vh - h) / 2
	return x, y, w, h
}

// ScreenQuad returns the four vertices of the letterboxed screen quad,
// ordered for a triangle strip.
func ScreenQuad(viewportW int32, viewportH int32) [4]Vertex {
	x, y, w, h := Letterbox(viewportW, viewportH)

	return [4]Vertex{
		{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{0, texBottom}},
		{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{texRight, 0}},
		{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{texRight, texBottom}},
	}
}
