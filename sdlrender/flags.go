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
	"github.com/jetsetilly/gramarye/render"
	"github.com/veandco/go-sdl2/sdl"
)

// the name of the SDL render driver used unless another is requested. 3D
// mode is only available with this driver.
const defaultRenderDriver = "opengl"

// windowConfig is the translation of render.WindowFlags into SDL terms.
type windowConfig struct {
	// flags for sdl.CreateWindow()
	windowFlags uint32

	// flags for sdl.CreateRenderer()
	rendererFlags uint32

	vsync bool

	// number of samples for multisampling. zero if multisampling is off
	multisamples int

	// render driver hint
	renderDriver string
}

func translateFlags(flags render.WindowFlags, renderDriver string) windowConfig {
	cfg := windowConfig{
		windowFlags:   uint32(sdl.WINDOW_OPENGL) | uint32(sdl.WINDOW_ALLOW_HIGHDPI),
		rendererFlags: uint32(sdl.RENDERER_ACCELERATED),
		renderDriver:  renderDriver,
	}

	if cfg.renderDriver == "" {
		cfg.renderDriver = defaultRenderDriver
	}

	if flags.Has(render.FlagVSync) {
		cfg.rendererFlags |= uint32(sdl.RENDERER_PRESENTVSYNC)
		cfg.vsync = true
	}
	if flags.Has(render.FlagResizable) {
		cfg.windowFlags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if flags.Has(render.FlagBorderless) {
		cfg.windowFlags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	if flags.Has(render.FlagMSAA4x) {
		cfg.multisamples = 4
	}

	return cfg
}
