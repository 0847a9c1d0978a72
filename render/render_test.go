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

package render_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/test"
)

func TestDefaultCamera3D(t *testing.T) {
	cam := render.DefaultCamera3D()
	test.ExpectEquality(t, cam.Position, render.Vec3{X: 0, Y: 0, Z: 10})
	test.ExpectEquality(t, cam.Target, render.Vec3{})
	test.ExpectEquality(t, cam.Up, render.Vec3{X: 0, Y: 1, Z: 0})
	test.ExpectEquality(t, cam.FovY, 45.0)
	test.ExpectEquality(t, cam.Projection, render.Perspective)
}

func TestViewMatrix(t *testing.T) {
	cam := render.DefaultCamera3D()
	view := cam.ViewMatrix()

	// the target is straight ahead of the camera at a distance of 10
	v := view.MulVec3(render.Vec3{})
	test.ExpectApproximate(t, v.X, 0, 0.0001)
	test.ExpectApproximate(t, v.Y, 0, 0.0001)
	test.ExpectApproximate(t, v.Z, -10, 0.0001)

	// up is up and right is right
	v = view.MulVec3(render.Vec3{X: 1, Y: 2, Z: 0})
	test.ExpectApproximate(t, v.X, 1, 0.0001)
	test.ExpectApproximate(t, v.Y, 2, 0.0001)
}

func TestProjectionMatrix(t *testing.T) {
	cam := render.DefaultCamera3D()
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(1.0)

	// a point one unit to the right of the target. with a 45 degree field of
	// view the focal length is 1/tan(22.5) = 2.41421
	v := proj.MulVec3(view.MulVec3(render.Vec3{X: 1}))
	test.ExpectApproximate(t, v.X, 0.241421, 0.0001)
	test.ExpectApproximate(t, v.Y, 0, 0.0001)

	// depth is inside the clip volume
	test.ExpectSuccess(t, v.Z > -1 && v.Z < 1)

	// aspect ratio squashes the horizontal axis
	proj = cam.ProjectionMatrix(2.0)
	v = proj.MulVec3(view.MulVec3(render.Vec3{X: 1}))
	test.ExpectApproximate(t, v.X, 0.120710, 0.0001)
}

func TestIdentity(t *testing.T) {
	v := render.Identity().MulVec3(render.Vec3{X: 1, Y: 2, Z: 3})
	test.ExpectEquality(t, v, render.Vec3{X: 1, Y: 2, Z: 3})
}

func TestWindowFlags(t *testing.T) {
	var f render.WindowFlags
	test.ExpectEquality(t, f.String(), "none")

	f = render.FlagVSync | render.FlagMSAA4x
	test.ExpectSuccess(t, f.Has(render.FlagVSync))
	test.ExpectSuccess(t, f.Has(render.FlagMSAA4x))
	test.ExpectFailure(t, f.Has(render.FlagResizable))
	test.ExpectFailure(t, f.Has(render.FlagVSync|render.FlagBorderless))
	test.ExpectEquality(t, f.String(), "vsync|msaa4x")
}

func TestCommandConstructors(t *testing.T) {
	c := render.Circle(render.Vec2{X: 10, Y: 20}, 5, render.Red)
	test.ExpectEquality(t, c.Type, render.CmdCircle)
	test.ExpectEquality(t, c.Bounds, render.Rect{X: 10, Y: 20, Width: 5})

	c = render.Text("hello", nil, render.Vec2{X: 1, Y: 2}, 20, 1, render.White)
	test.ExpectEquality(t, c.Type, render.CmdText)
	test.ExpectEquality(t, c.Text.Text, "hello")
	test.ExpectEquality(t, c.Bounds.Origin(), render.Vec2{X: 1, Y: 2})

	c = render.Marker(render.CmdBegin3D)
	test.ExpectEquality(t, c.Type.String(), "begin 3d")
	test.ExpectEquality(t, render.CommandType(999).String(), "unknown")
}

func TestColor(t *testing.T) {
	var c color.Color = render.Color{R: 255, G: 0, B: 0, A: 255}
	r, g, b, a := c.RGBA()
	test.ExpectEquality(t, r, 0xffff)
	test.ExpectEquality(t, g, 0)
	test.ExpectEquality(t, b, 0)
	test.ExpectEquality(t, a, 0xffff)

	// alpha premultiplied
	c = render.Color{R: 255, G: 255, B: 255, A: 0}
	r, _, _, a = c.RGBA()
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, a, 0)
}
