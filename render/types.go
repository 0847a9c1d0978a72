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

import "fmt"

// Vec2 is a two dimensional vector or point.
type Vec2 struct {
	X float32
	Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s. There is no check for a zero divisor.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Vec3 is a three dimensional vector or point.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Rect is an axis aligned rectangle. The meaning of the fields depends on the
// command type it is used with. For circles, Width is the radius and Height
// is ignored.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f, %.2f, %.2f x %.2f]", r.X, r.Y, r.Width, r.Height)
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Color is a non-premultiplied RGBA colour. It implements the color.Color
// interface from the image/color package.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	// color.Color wants alpha-premultiplied values
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Commonly used colours.
var (
	Black    = Color{R: 0, G: 0, B: 0, A: 255}
	White    = Color{R: 255, G: 255, B: 255, A: 255}
	Red      = Color{R: 230, G: 41, B: 55, A: 255}
	Green    = Color{R: 0, G: 228, B: 48, A: 255}
	Blue     = Color{R: 0, G: 121, B: 241, A: 255}
	Yellow   = Color{R: 253, G: 249, B: 0, A: 255}
	Gray     = Color{R: 130, G: 130, B: 130, A: 255}
	DarkGray = Color{R: 80, G: 80, B: 80, A: 255}
	OffWhite = Color{R: 245, G: 245, B: 245, A: 255}
	Blank    = Color{}
)
