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

import "github.com/chewxy/math32"

// Camera2D is a view of the 2D world. The camera Position is the world
// coordinate that appears at the top-left of the logical screen.
type Camera2D struct {
	Position Vec2
	Zoom     float32

	// limits for SetZoom(). a zero MaxZoom means there is no limit
	MinZoom float32
	MaxZoom float32

	// world units per second at a zoom of 1.0
	Speed float32

	// size of the logical screen
	LogicalSize Vec2
}

// NewCamera2D returns a camera at the world origin with a zoom of 1.0.
func NewCamera2D(logicalSize Vec2) Camera2D {
	return Camera2D{
		Zoom:        1.0,
		MinZoom:     0.25,
		MaxZoom:     4.0,
		Speed:       200.0,
		LogicalSize: logicalSize,
	}
}

// SetZoom changes the zoom, clamped to MinZoom and MaxZoom.
func (cam *Camera2D) SetZoom(zoom float32) {
	if zoom < cam.MinZoom {
		zoom = cam.MinZoom
	}
	if cam.MaxZoom > 0 && zoom > cam.MaxZoom {
		zoom = cam.MaxZoom
	}
	cam.Zoom = zoom
}

// Pan moves the camera in the direction dir for dt seconds. The distance
// moved is independent of the zoom level when measured in screen pixels.
func (cam *Camera2D) Pan(dir Vec2, dt float32) {
	if cam.Zoom == 0 {
		return
	}
	cam.Position = cam.Position.Add(dir.Scale(cam.Speed * dt / cam.Zoom))
}

// AspectFit maps a fixed logical resolution into a window of any size. The
// logical screen is scaled uniformly and centred, leaving letterbox bars
// where the aspect ratios differ.
type AspectFit struct {
	// area of the window occupied by the logical screen
	Dest Rect

	// uniform scale from logical to window coordinates
	Scale float32
}

// NewAspectFit calculates the largest uniformly scaled area of size logical
// that fits in window. The area is centred in the window.
//
// If either dimension of the logical size is zero then the scale will be
// infinite or NaN.
func NewAspectFit(logical Vec2, window Vec2) AspectFit {
	scale := math32.Min(window.X/logical.X, window.Y/logical.Y)
	w := logical.X * scale
	h := logical.Y * scale
	return AspectFit{
		Dest: Rect{
			X:      (window.X - w) / 2,
			Y:      (window.Y - h) / 2,
			Width:  w,
			Height: h,
		},
		Scale: scale,
	}
}

// WorldToScreen converts a world coordinate to a window coordinate. The zero
// vector is returned if either cam or fit is nil.
func WorldToScreen(cam *Camera2D, fit *AspectFit, world Vec2) Vec2 {
	if cam == nil || fit == nil {
		return Vec2{}
	}
	logical := world.Sub(cam.Position).Scale(cam.Zoom)
	return fit.Dest.Origin().Add(logical.Scale(fit.Scale))
}

// ScreenToWorld converts a window coordinate to a world coordinate. The zero
// vector is returned if either cam or fit is nil.
//
// The zoom of the camera and the scale of the viewport must not be zero.
func ScreenToWorld(cam *Camera2D, fit *AspectFit, screen Vec2) Vec2 {
	if cam == nil || fit == nil {
		return Vec2{}
	}
	logical := screen.Sub(fit.Dest.Origin()).Div(fit.Scale)
	return logical.Div(cam.Zoom).Add(cam.Position)
}

// CameraZoom returns the zoom of the camera or 1.0 if cam is nil.
func CameraZoom(cam *Camera2D) float32 {
	if cam == nil {
		return 1.0
	}
	return cam.Zoom
}

// AspectFitScale returns the scale of the viewport or 1.0 if fit is nil.
func AspectFitScale(fit *AspectFit) float32 {
	if fit == nil {
		return 1.0
	}
	return fit.Scale
}
