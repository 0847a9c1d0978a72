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

// Package render is the backend agnostic rendering abstraction. A host
// application builds a list of Command values every frame and hands them to
// an implementation of the Renderer interface, which executes them in order
// against a concrete graphics library.
//
// The package also defines the view types shared between the host and the
// backend: Camera2D (a zoomable, pannable view of the world), AspectFit (a
// letterboxed mapping of a fixed logical resolution into the window) and
// Camera3D (a perspective camera used between Begin3D and End3D commands).
//
// The WorldToScreen() and ScreenToWorld() functions convert coordinates
// through both the camera and the aspect-fit viewport:
//
//	logical = (world - camera.Position) * camera.Zoom
//	screen  = fit.Dest.Origin() + logical * fit.Scale
//
// The two functions are inverses of each other provided that the camera zoom
// and the viewport scale are not zero. A zero zoom or scale produces infinite
// or NaN results. A nil camera or nil viewport produces the zero vector,
// which callers must not mistake for a meaningful coordinate.
//
// Texture and Font are opaque handles. They are created by the Renderer's
// LoadTexture() and LoadFont() functions and must be passed to the matching
// UnloadTexture() and UnloadFont() functions exactly once. There is no
// reference counting.
package render
