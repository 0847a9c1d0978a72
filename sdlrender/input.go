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
	"github.com/jetsetilly/gramarye/input"
	"github.com/jetsetilly/gramarye/render"
	"github.com/veandco/go-sdl2/sdl"
)

// inputState is the snapshot of input for the current frame. it is rebuilt
// from SDL events by the driver's pollEvents() function.
type inputState struct {
	// keys and buttons that went down during the previous frame. key repeats
	// are ignored
	keysPressed    map[sdl.Keycode]bool
	buttonsPressed map[uint8]bool

	// accumulated vertical wheel movement during the previous frame
	wheel float32

	// most recent mouse position. unlike the pressed maps the position
	// persists between frames
	mouse render.Vec2

	// a close request has been received. persists once set
	quit bool
}

func newInputState() inputState {
	return inputState{
		keysPressed:    make(map[sdl.Keycode]bool),
		buttonsPressed: make(map[uint8]bool),
	}
}

// newFrame forgets the edge-triggered state of the previous frame.
func (st *inputState) newFrame() {
	clear(st.keysPressed)
	clear(st.buttonsPressed)
	st.wheel = 0
}

// handle a single SDL event.
func (st *inputState) handle(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		st.quit = true

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			st.quit = true
		}

	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
			st.keysPressed[ev.Keysym.Sym] = true
		}

	case *sdl.MouseButtonEvent:
		st.mouse = render.Vec2{X: float32(ev.X), Y: float32(ev.Y)}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			st.buttonsPressed[ev.Button] = true
		}

	case *sdl.MouseMotionEvent:
		st.mouse = render.Vec2{X: float32(ev.X), Y: float32(ev.Y)}

	case *sdl.MouseWheelEvent:
		y := float32(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		st.wheel += y
	}
}

func (st *inputState) isKeyPressed(key input.Key) bool {
	k := keycode(key)
	if k == sdl.K_UNKNOWN {
		return false
	}
	return st.keysPressed[k]
}

func (st *inputState) isMouseButtonPressed(button input.MouseButton) bool {
	b := buttonCode(button)
	if b == noButton {
		return false
	}
	return st.buttonsPressed[b]
}

// InputProvider implements the input.Provider interface. It answers from the
// input state of a Renderer.
type InputProvider struct {
	rnd *Renderer
}

// NewInputProvider is the preferred method of initialisation for the
// InputProvider type.
func NewInputProvider(rnd *Renderer) *InputProvider {
	return &InputProvider{rnd: rnd}
}

// IsKeyPressed implements the input.Provider interface.
func (inp *InputProvider) IsKeyPressed(key input.Key) bool {
	inp.rnd.owner.Check()
	return inp.rnd.input.isKeyPressed(key)
}

// IsMouseButtonPressed implements the input.Provider interface.
func (inp *InputProvider) IsMouseButtonPressed(button input.MouseButton) bool {
	inp.rnd.owner.Check()
	return inp.rnd.input.isMouseButtonPressed(button)
}

// MouseWheelMove implements the input.Provider interface.
func (inp *InputProvider) MouseWheelMove() float32 {
	inp.rnd.owner.Check()
	return inp.rnd.input.wheel
}

// MousePosition implements the input.Provider interface.
func (inp *InputProvider) MousePosition() render.Vec2 {
	inp.rnd.owner.Check()
	return inp.rnd.input.mouse
}
