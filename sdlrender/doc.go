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

// Package sdlrender implements the render.Renderer and input.Provider
// interfaces with SDL2. Drawing uses the SDL renderer API, with SDL_image for
// textures, SDL_ttf for fonts and SDL2_gfx for circles and triangles. The 3D mode commands
// load the camera matrices into the GL context of the SDL renderer, which
// means 3D mode requires the "opengl" render driver.
//
// Commands are executed immediately and in order. There is no batching or
// reordering. Commands that can't be drawn, such as a texture command with
// no texture or a text command with no text, are silently ignored. Command
// types that are reserved for a higher level compositor (layers, clipping,
// UI and debug markers, custom commands) are also ignored.
//
// SDL requires that window and event functions are called from the main
// thread. The Renderer and InputProvider must therefore only be used from
// the main thread. Compile with the "assertions" build tag to have this
// checked at runtime.
//
// Input queries are answered from a snapshot of the events that arrived
// during the previous frame. The snapshot is taken by EndFrame(). A key or
// button is reported as pressed only for the frame after it went down.
package sdlrender
