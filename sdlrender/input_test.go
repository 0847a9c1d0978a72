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
	"testing"

	"github.com/jetsetilly/gramarye/input"
	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/test"
	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(sym sdl.Keycode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		State:  sdl.PRESSED,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: sym},
	}
}

func frame(rnd *Renderer) {
	rnd.BeginFrame()
	rnd.EndFrame()
}

func TestKeyPressedIsEdgeTriggered(t *testing.T) {
	rnd, drv := newTestRenderer(t)
	rnd.SetTargetFPS(0)
	inp := NewInputProvider(rnd)

	// the key goes down and is then held, generating key repeats
	drv.queue(keyDown(sdl.K_w, 0))
	drv.queue(keyDown(sdl.K_w, 1), keyDown(sdl.K_w, 1))
	drv.queue()

	frame(rnd)
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyW))
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyS))

	frame(rnd)
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyW))

	frame(rnd)
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyW))
}

func TestKeyMapping(t *testing.T) {
	rnd, drv := newTestRenderer(t)
	rnd.SetTargetFPS(0)
	inp := NewInputProvider(rnd)

	drv.queue(
		keyDown(sdl.K_UP, 0),
		keyDown(sdl.K_F3, 0),
		keyDown(sdl.K_RETURN, 0),
		keyDown(sdl.K_z, 0),
	)
	frame(rnd)

	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyUp))
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyF3))
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyEnter))
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyDown))

	// keys without a mapping are never pressed
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyNone))
	test.ExpectFailure(t, inp.IsKeyPressed(input.Key(1000)))
}

func TestMouse(t *testing.T) {
	rnd, drv := newTestRenderer(t)
	rnd.SetTargetFPS(0)
	inp := NewInputProvider(rnd)

	drv.queue(
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20},
		&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 15, Y: 25},
		&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1},
		&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
	)
	drv.queue(
		&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 30, Y: 40},
		&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
	)

	frame(rnd)
	test.ExpectSuccess(t, inp.IsMouseButtonPressed(input.MouseButtonLeft))
	test.ExpectFailure(t, inp.IsMouseButtonPressed(input.MouseButtonRight))
	test.ExpectFailure(t, inp.IsMouseButtonPressed(input.MouseButtonNone))
	test.ExpectEquality(t, inp.MouseWheelMove(), float32(3))
	test.ExpectEquality(t, inp.MousePosition(), render.Vec2{X: 15, Y: 25})

	frame(rnd)
	test.ExpectFailure(t, inp.IsMouseButtonPressed(input.MouseButtonLeft))
	test.ExpectEquality(t, inp.MouseWheelMove(), float32(-1))
	test.ExpectEquality(t, inp.MousePosition(), render.Vec2{X: 30, Y: 40})
	test.ExpectEquality(t, rnd.MousePosition(), render.Vec2{X: 30, Y: 40})

	// position persists when there are no events
	frame(rnd)
	test.ExpectEquality(t, inp.MouseWheelMove(), float32(0))
	test.ExpectEquality(t, inp.MousePosition(), render.Vec2{X: 30, Y: 40})
}

func TestShouldClose(t *testing.T) {
	rnd, drv := newTestRenderer(t)
	rnd.SetTargetFPS(0)

	drv.queue(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST})
	drv.queue(&sdl.QuitEvent{Type: sdl.QUIT})

	frame(rnd)
	test.ExpectFailure(t, rnd.ShouldClose())
	frame(rnd)
	test.ExpectSuccess(t, rnd.ShouldClose())
	frame(rnd)
	test.ExpectSuccess(t, rnd.ShouldClose())
}

func TestWindowCloseEvent(t *testing.T) {
	rnd, drv := newTestRenderer(t)
	rnd.SetTargetFPS(0)

	drv.queue(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE})
	frame(rnd)
	test.ExpectSuccess(t, rnd.ShouldClose())
}
