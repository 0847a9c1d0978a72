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
	"github.com/jetsetilly/gramarye/curated"
	"github.com/jetsetilly/gramarye/logger"
	"github.com/jetsetilly/gramarye/render"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// texture implements the render.Texture interface.
type texture struct {
	tex    *sdl.Texture
	width  int
	height int
}

// Width implements the render.Texture interface.
func (t *texture) Width() int {
	return t.width
}

// Height implements the render.Texture interface.
func (t *texture) Height() int {
	return t.height
}

// the size of fonts loaded with a size of zero or less.
const defaultFontSize = 32

// font implements the render.Font interface.
type font struct {
	ttf  *ttf.Font
	size int

	// rendered glyphs are cached as white textures and tinted when they are
	// drawn
	glyphs map[rune]glyph
}

// glyph is a single rendered character. the texture is nil if the character
// could not be rendered, in which case the glyph only advances the pen.
type glyph struct {
	tex    *sdl.Texture
	width  int32
	height int32
}

// BaseSize implements the render.Font interface.
func (f *font) BaseSize() int {
	return f.size
}

// LoadTexture implements the render.Renderer interface.
func (rnd *Renderer) LoadTexture(path string) (render.Texture, error) {
	rnd.owner.Check()

	tex, err := rnd.drv.loadTexture(path)
	if err != nil {
		logger.Logf(logger.Allow, "sdlrender", "texture: %s: %v", path, err)
		return nil, curated.Errorf(LoadTextureError, path, err)
	}

	return tex, nil
}

// UnloadTexture implements the render.Renderer interface.
func (rnd *Renderer) UnloadTexture(tex render.Texture) {
	rnd.owner.Check()

	t, ok := tex.(*texture)
	if !ok || t == nil {
		return
	}
	rnd.drv.unloadTexture(t)
}

// LoadFont implements the render.Renderer interface. The size is rounded
// down to a whole number. A size of zero or less loads the font at the
// default size.
func (rnd *Renderer) LoadFont(path string, size float32) (render.Font, error) {
	rnd.owner.Check()

	sz := int(size)
	if sz <= 0 {
		sz = defaultFontSize
	}

	fnt, err := rnd.drv.loadFont(path, sz)
	if err != nil {
		logger.Logf(logger.Allow, "sdlrender", "font: %s: %v", path, err)
		return nil, curated.Errorf(LoadFontError, path, err)
	}

	return fnt, nil
}

// UnloadFont implements the render.Renderer interface. The default font
// cannot be unloaded in this way.
func (rnd *Renderer) UnloadFont(fnt render.Font) {
	rnd.owner.Check()

	f, ok := fnt.(*font)
	if !ok || f == nil || f == rnd.defaultFont {
		return
	}
	rnd.drv.unloadFont(f)
}
