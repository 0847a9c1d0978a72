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

package render

// Texture is an opaque handle to a texture loaded by a Renderer. Only the
// Renderer that created the handle can draw it.
type Texture interface {
	Width() int
	Height() int
}

// Font is an opaque handle to a font loaded by a Renderer.
type Font interface {
	// the size at which the font was loaded. Text drawn at a different size
	// is scaled
	BaseSize() int
}

// Renderer is implemented by rendering backends. A Renderer is not safe for
// concurrent use and in practice must only be used from the main thread.
type Renderer interface {
	// Init creates the window. The flags are applied before the window is
	// created. The frame rate target is 60 frames per second.
	Init(width int, height int, title string, flags WindowFlags) error

	// Close destroys the window. All textures and fonts should have been
	// unloaded by this point. Outstanding resources are not tracked.
	Close()

	// BeginFrame and EndFrame bracket all drawing for a single frame. Drawing
	// outside of a frame is undefined.
	BeginFrame()
	EndFrame()

	// ExecuteCommand draws a single command. Unknown command types are
	// ignored.
	ExecuteCommand(cmd Command)

	// ExecuteCommands draws the commands in order. The order is the painter's
	// order: a later command draws over an earlier command.
	ExecuteCommands(cmds []Command)

	// LoadTexture loads an image from the filesystem. The handle is nil if an
	// error occurred.
	LoadTexture(path string) (Texture, error)

	// UnloadTexture releases the texture. A nil texture is ignored.
	UnloadTexture(tex Texture)

	// LoadFont loads a font from the filesystem at the given size. The handle
	// is nil if an error occurred.
	LoadFont(path string, size float32) (Font, error)

	// UnloadFont releases the font. A nil font is ignored.
	UnloadFont(font Font)

	// ShouldClose returns true if the window has received a close request.
	ShouldClose() bool

	// DeltaTime is the time in seconds taken by the previous frame.
	DeltaTime() float32

	// MousePosition in window coordinates.
	MousePosition() Vec2

	// WindowSize in window (screen) coordinates.
	WindowSize() Vec2

	// RenderWidth and RenderHeight are the size of the drawable area in
	// physical pixels. This differs from the screen size on high-DPI
	// displays.
	RenderWidth() int
	RenderHeight() int

	// ScreenWidth and ScreenHeight are the size of the window in screen
	// coordinates.
	ScreenWidth() int
	ScreenHeight() int

	// WorldToScreen and ScreenToWorld convert through the camera and the
	// aspect-fit viewport. Both return the zero vector if either the camera
	// or the viewport is nil.
	WorldToScreen(cam *Camera2D, fit *AspectFit, world Vec2) Vec2
	ScreenToWorld(cam *Camera2D, fit *AspectFit, screen Vec2) Vec2

	// CameraZoom returns the zoom of the camera or 1.0 if cam is nil.
	CameraZoom(cam *Camera2D) float32

	// AspectFitScale returns the scale of the viewport or 1.0 if fit is nil.
	AspectFitScale(fit *AspectFit) float32
}
