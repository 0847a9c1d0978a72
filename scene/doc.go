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

// Package scene is a small demonstration scene. Each frame the scene is
// updated from an input.Provider and then produces the list of
// render.Commands that draw it. The list uses every command type understood
// by a render.Renderer, and some that a Renderer is allowed to ignore.
//
// The world is drawn through a render.Camera2D and fitted to the window with
// a render.AspectFit. The controls are:
//
//	W A S D       move the player one tile
//	arrow keys    pan the camera
//	mouse wheel   zoom the camera
//	left click    drop a marker in the world
//	right click   remove all markers
//	space         toggle the 3D section of the frame
//	F3            toggle the debug overlay
//	escape        quit
package scene
