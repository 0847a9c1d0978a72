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

	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateFlags(t *testing.T) {
	cfg := translateFlags(0, "")
	test.ExpectEquality(t, cfg.renderDriver, "opengl")
	test.ExpectFailure(t, cfg.vsync)
	test.ExpectEquality(t, cfg.multisamples, 0)
	test.ExpectEquality(t, cfg.windowFlags&uint32(sdl.WINDOW_RESIZABLE), 0)
	test.ExpectEquality(t, cfg.rendererFlags&uint32(sdl.RENDERER_PRESENTVSYNC), 0)

	cfg = translateFlags(render.FlagVSync|render.FlagResizable|render.FlagBorderless|render.FlagMSAA4x, "software")
	test.ExpectEquality(t, cfg.renderDriver, "software")
	test.ExpectSuccess(t, cfg.vsync)
	test.ExpectEquality(t, cfg.multisamples, 4)
	test.ExpectInequality(t, cfg.windowFlags&uint32(sdl.WINDOW_RESIZABLE), 0)
	test.ExpectInequality(t, cfg.windowFlags&uint32(sdl.WINDOW_BORDERLESS), 0)
	test.ExpectInequality(t, cfg.rendererFlags&uint32(sdl.RENDERER_PRESENTVSYNC), 0)
}
