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
	"github.com/veandco/go-sdl2/sdl"
)

// keys without an entry resolve to sdl.K_UNKNOWN, which is never pressed.
var keyMap = map[input.Key]sdl.Keycode{
	input.KeyW:      sdl.K_w,
	input.KeyA:      sdl.K_a,
	input.KeyS:      sdl.K_s,
	input.KeyD:      sdl.K_d,
	input.KeyUp:     sdl.K_UP,
	input.KeyDown:   sdl.K_DOWN,
	input.KeyLeft:   sdl.K_LEFT,
	input.KeyRight:  sdl.K_RIGHT,
	input.KeyF3:     sdl.K_F3,
	input.KeySpace:  sdl.K_SPACE,
	input.KeyEscape: sdl.K_ESCAPE,
	input.KeyEnter:  sdl.K_RETURN,
}

// buttons without an entry resolve to noButton, which is never pressed.
var buttonMap = map[input.MouseButton]uint8{
	input.MouseButtonLeft:   sdl.BUTTON_LEFT,
	input.MouseButtonRight:  sdl.BUTTON_RIGHT,
	input.MouseButtonMiddle: sdl.BUTTON_MIDDLE,
}

const noButton uint8 = 0

func keycode(key input.Key) sdl.Keycode {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return sdl.K_UNKNOWN
}

func buttonCode(button input.MouseButton) uint8 {
	if b, ok := buttonMap[button]; ok {
		return b
	}
	return noButton
}
