// This file is part of Gramarye.
//
// Gramarye is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gramarye is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gramarye.  If not, see <https://www.gnu.org/licenses/>.

package sdlrender

import (
	"github.com/jetsetilly/gramarye/render"
)

// driver is the interface to the graphics library. The Renderer type
// translates commands into calls to the driver. Coordinates and sizes are
// passed through unchanged from the command, conversion to the types used by
// the library is the responsibility of the driver.
type driver interface {
	// called before openWindow(). flags that must be set before the window is
	// created are applied here
	configure(cfg windowConfig) error
	openWindow(width int32, height int32, title string, cfg windowConfig) error
	closeWindow()

	// size of the window in screen coordinates
	screenSize() (int32, int32)

	// size of the drawable area in pixels
	outputSize() (int32, int32)

	clear(col render.Color)
	present()

	// pollEvents updates the input state with all pending events
	pollEvents(state *inputState)

	fillRect(r render.Rect, col render.Color)
	strokeRect(r render.Rect, col render.Color)
	fillCircle(centre render.Vec2, radius float32, col render.Color)
	fillTriangle(v1 render.Vec2, v2 render.Vec2, v3 render.Vec2, col render.Color)
	drawTexture(tex *texture, src render.Rect, dest render.Rect, origin render.Vec2, rotation float32, tint render.Color)
	drawText(fnt *font, text string, pos render.Vec2, size float32, spacing float32, tint render.Color)

	beginMode3D(cam render.Camera3D)
	endMode3D()

	loadTexture(path string) (*texture, error)
	unloadTexture(tex *texture)
	loadFont(path string, size int) (*font, error)
	defaultFont(size int) (*font, error)
	unloadFont(fnt *font)
}
