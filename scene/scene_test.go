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

package scene

import (
	"testing"

	"github.com/jetsetilly/gramarye/input"
	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/test"
)

// fakeInput is a single frame of input.
type fakeInput struct {
	keys    map[input.Key]bool
	buttons map[input.MouseButton]bool
	wheel   float32
	mouse   render.Vec2
}

func (inp fakeInput) IsKeyPressed(key input.Key) bool {
	return inp.keys[key]
}

func (inp fakeInput) IsMouseButtonPressed(button input.MouseButton) bool {
	return inp.buttons[button]
}

func (inp fakeInput) MouseWheelMove() float32 {
	return inp.wheel
}

func (inp fakeInput) MousePosition() render.Vec2 {
	return inp.mouse
}

func keys(pressed ...input.Key) fakeInput {
	inp := fakeInput{keys: make(map[input.Key]bool)}
	for _, k := range pressed {
		inp.keys[k] = true
	}
	return inp
}

var logical = render.Vec2{X: 320, Y: 180}
var window = render.Vec2{X: 1280, Y: 720}

func countTypes(cmds []render.Command) map[render.CommandType]int {
	c := make(map[render.CommandType]int)
	for _, cmd := range cmds {
		c[cmd.Type]++
	}
	return c
}

func TestQuitAndToggles(t *testing.T) {
	s := NewScene(logical)

	s.Update(keys(), window, 0.016)
	test.ExpectFailure(t, s.Quit())

	c := countTypes(s.Commands())
	test.ExpectEquality(t, c[render.CmdBegin3D], 0)
	test.ExpectEquality(t, c[render.CmdBeginDebug], 0)

	s.Update(keys(input.KeySpace, input.KeyF3), window, 0.016)
	c = countTypes(s.Commands())
	test.ExpectEquality(t, c[render.CmdBegin3D], 1)
	test.ExpectEquality(t, c[render.CmdEnd3D], 1)
	test.ExpectEquality(t, c[render.CmdBeginDebug], 1)
	test.ExpectEquality(t, c[render.CmdText], 2)

	s.Update(keys(input.KeySpace), window, 0.016)
	c = countTypes(s.Commands())
	test.ExpectEquality(t, c[render.CmdBegin3D], 0)

	s.Update(keys(input.KeyEscape), window, 0.016)
	test.ExpectSuccess(t, s.Quit())
}

func TestPlayerMovement(t *testing.T) {
	s := NewScene(logical)
	test.ExpectEquality(t, s.player, render.Vec2{X: 10, Y: 10})

	s.Update(keys(input.KeyW, input.KeyD), window, 0.016)
	test.ExpectEquality(t, s.player, render.Vec2{X: 11, Y: 9})

	// the player can't leave the grid
	for range gridTiles {
		s.Update(keys(input.KeyA), window, 0.016)
	}
	test.ExpectEquality(t, s.player.X, float32(0))
}

func TestCameraControls(t *testing.T) {
	s := NewScene(logical)

	s.Update(keys(input.KeyRight), window, 0.016)
	test.ExpectApproximate(t, s.Camera().Position.X, 50, 0.001)
	test.ExpectEquality(t, s.Camera().Position.Y, float32(0))

	inp := keys()
	inp.wheel = 1
	s.Update(inp, window, 0.016)
	test.ExpectApproximate(t, s.Camera().Zoom, 1.1, 0.001)

	// zoom is clamped by the camera
	inp.wheel = -100
	s.Update(inp, window, 0.016)
	test.ExpectEquality(t, s.Camera().Zoom, float32(0.25))
}

func TestViewport(t *testing.T) {
	s := NewScene(logical)

	// a window that is taller than the logical aspect ratio is letterboxed
	// above and below
	s.Update(keys(), render.Vec2{X: 640, Y: 480}, 0.016)
	fit := s.Viewport()
	test.ExpectEquality(t, fit.Scale, float32(2))
	test.ExpectEquality(t, fit.Dest, render.Rect{X: 0, Y: 60, Width: 640, Height: 360})

	cmds := s.Commands()
	test.DemandEquality(t, cmds[0].Type, render.CmdRectangle)
	test.ExpectEquality(t, cmds[0].Bounds, fit.Dest)
}

func TestMarkers(t *testing.T) {
	s := NewScene(logical)

	// click in the centre of the window which is the centre of the logical
	// screen
	inp := keys()
	inp.buttons = map[input.MouseButton]bool{input.MouseButtonLeft: true}
	inp.mouse = render.Vec2{X: 640, Y: 360}
	s.Update(inp, window, 0.016)

	test.DemandEquality(t, len(s.markers), 1)
	test.ExpectApproximate(t, s.markers[0].X, 160, 0.001)
	test.ExpectApproximate(t, s.markers[0].Y, 90, 0.001)

	c := countTypes(s.Commands())
	test.ExpectEquality(t, c[render.CmdCircle], 1)

	// the marker is drawn where the click happened
	for _, cmd := range s.Commands() {
		if cmd.Type == render.CmdCircle {
			test.ExpectApproximate(t, cmd.Bounds.X, 640, 0.001)
			test.ExpectApproximate(t, cmd.Bounds.Y, 360, 0.001)
			test.ExpectApproximate(t, cmd.Bounds.Width, 16, 0.001)
		}
	}

	for range maxMarkers + 5 {
		s.Update(inp, window, 0.016)
	}
	test.ExpectEquality(t, len(s.markers), maxMarkers)

	inp.buttons = map[input.MouseButton]bool{input.MouseButtonRight: true}
	s.Update(inp, window, 0.016)
	test.ExpectEquality(t, len(s.markers), 0)
}

// the texture and font handles used by the scene are opaque so any type will
// do.
type testTexture struct{}

func (testTexture) Width() int  { return 8 }
func (testTexture) Height() int { return 8 }

func TestEveryCommandType(t *testing.T) {
	s := NewScene(logical)
	s.tex = testTexture{}

	inp := keys(input.KeySpace, input.KeyF3)
	inp.buttons = map[input.MouseButton]bool{input.MouseButtonLeft: true}
	s.Update(inp, window, 0.016)

	c := countTypes(s.Commands())
	for typ := render.CmdRectangle; typ <= render.CmdCustom; typ++ {
		test.ExpectInequality(t, c[typ], 0, typ)
	}
	test.ExpectEquality(t, c[render.CmdRectangleLines], gridTiles*gridTiles)
}
