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

// Projection types for Camera3D.
type Projection int

// List of valid Projection values.
const (
	Perspective Projection = iota
	Orthographic
)

// Camera3D is a camera for drawing in 3D mode.
type Camera3D struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	// vertical field of view in degrees for perspective projection. for
	// orthographic projection it is the height of the view in world units
	FovY float32

	Projection Projection
}

// DefaultCamera3D is the camera used by the Begin3D command if no other
// camera has been specified. It sits on the Z axis looking at the origin.
func DefaultCamera3D() Camera3D {
	return Camera3D{
		Position:   Vec3{X: 0, Y: 0, Z: 10},
		Target:     Vec3{X: 0, Y: 0, Z: 0},
		Up:         Vec3{X: 0, Y: 1, Z: 0},
		FovY:       45.0,
		Projection: Perspective,
	}
}

// Mat4 is a 4x4 matrix in column-major order, suitable for passing directly
// to OpenGL.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MulVec3 transforms the point v by the matrix, including the perspective
// divide.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
		z /= w
	}
	return Vec3{X: x, Y: y, Z: z}
}

// clipping planes for the projection matrix.
const (
	nearPlane = 0.01
	farPlane  = 1000.0
)

// ProjectionMatrix returns the projection matrix for the camera with the
// given aspect ratio (width / height).
func (cam Camera3D) ProjectionMatrix(aspect float32) Mat4 {
	if cam.Projection == Orthographic {
		top := cam.FovY / 2
		right := top * aspect
		return Mat4{
			1 / right, 0, 0, 0,
			0, 1 / top, 0, 0,
			0, 0, -2 / (farPlane - nearPlane), 0,
			0, 0, -(farPlane + nearPlane) / (farPlane - nearPlane), 1,
		}
	}

	f := 1 / math32.Tan(cam.FovY*math32.Pi/360)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (farPlane + nearPlane) / (nearPlane - farPlane), -1,
		0, 0, 2 * farPlane * nearPlane / (nearPlane - farPlane), 0,
	}
}

// ViewMatrix returns the look-at matrix for the camera.
func (cam Camera3D) ViewMatrix() Mat4 {
	f := normalise(sub3(cam.Target, cam.Position))
	s := normalise(cross(f, cam.Up))
	u := cross(s, f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-dot(s, cam.Position), -dot(u, cam.Position), dot(f, cam.Position), 1,
	}
}

func sub3(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalise(v Vec3) Vec3 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
