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

// Package input is the backend agnostic input abstraction. Host applications
// query an implementation of the Provider interface once per frame.
//
// Key and mouse button queries are edge-triggered. IsKeyPressed() is true only
// for the frame in which the key went down and not for the frames in which
// the key is held. Backends must preserve this.
//
// Keys and buttons that a backend does not support are never reported as
// pressed. This is not an error.
package input

import "github.com/jetsetilly/gramarye/render"

// Key identifies a keyboard key.
type Key int

// List of valid Key values.
const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF3
	KeySpace
	KeyEscape
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyF3:
		return "F3"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "none"
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Provider is implemented by input backends.
type Provider interface {
	// IsKeyPressed returns true if the key went down this frame.
	IsKeyPressed(key Key) bool

	// IsMouseButtonPressed returns true if the button went down this frame.
	IsMouseButtonPressed(button MouseButton) bool

	// MouseWheelMove returns the vertical wheel movement this frame.
	MouseWheelMove() float32

	// MousePosition returns the position of the mouse in window coordinates.
	MousePosition() render.Vec2
}
