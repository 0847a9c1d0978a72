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
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/gramarye/logger"
	"github.com/jetsetilly/gramarye/render"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

// sdlDriver implements the driver interface with SDL. drawing happens
// through the SDL renderer except for 3D mode, which uses the fixed-function
// OpenGL pipeline of the "opengl" render driver.
type sdlDriver struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// OpenGL is available. 3D mode is ignored if it is not
	gl bool

	// in 3D mode
	mode3D bool
}

func (drv *sdlDriver) configure(cfg windowConfig) error {
	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	sdl.SetHint(sdl.HINT_RENDER_DRIVER, cfg.renderDriver)
	sdl.SetHint(sdl.HINT_RENDER_VSYNC, strconv.FormatBool(cfg.vsync))
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}

	if err := ttf.Init(); err != nil {
		return err
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		return err
	}

	// multisampling must be requested before the window is created
	if cfg.multisamples > 0 {
		_ = sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		_ = sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.multisamples)
	}
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	return nil
}

func (drv *sdlDriver) openWindow(width int32, height int32, title string, cfg windowConfig) error {
	var err error

	drv.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, cfg.windowFlags)
	if err != nil {
		return err
	}

	drv.renderer, err = sdl.CreateRenderer(drv.window, -1, cfg.rendererFlags)
	if err != nil {
		drv.window.Destroy()
		drv.window = nil
		return err
	}

	err = drv.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		return err
	}

	// drawing is in window coordinates, the same as mouse events, even on
	// high-DPI displays
	ww, wh := drv.window.GetSize()
	ow, oh := drv.outputSize()
	if ww > 0 && wh > 0 && ow > 0 && oh > 0 {
		_ = drv.renderer.SetScale(float32(ow)/float32(ww), float32(oh)/float32(wh))
	}

	info, err := drv.renderer.GetInfo()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "sdl", "render driver: %s", info.Name)

	if info.Name == "opengl" {
		if err := gl.Init(); err != nil {
			logger.Logf(logger.Allow, "gl", "3D mode not available: %v", err)
		} else {
			drv.gl = true
			logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
			logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
			logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	} else {
		logger.Logf(logger.Allow, "gl", "3D mode requires the opengl render driver")
	}

	return nil
}

func (drv *sdlDriver) closeWindow() {
	if drv.renderer != nil {
		_ = drv.renderer.Destroy()
		drv.renderer = nil
	}
	if drv.window != nil {
		_ = drv.window.Destroy()
		drv.window = nil
	}
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

func (drv *sdlDriver) screenSize() (int32, int32) {
	if drv.window == nil {
		return 0, 0
	}
	return drv.window.GetSize()
}

func (drv *sdlDriver) outputSize() (int32, int32) {
	if drv.renderer == nil {
		return 0, 0
	}
	w, h, err := drv.renderer.GetOutputSize()
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (drv *sdlDriver) setColor(col render.Color) {
	_ = drv.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
}

func (drv *sdlDriver) clear(col render.Color) {
	drv.setColor(col)
	_ = drv.renderer.Clear()
}

func (drv *sdlDriver) present() {
	drv.renderer.Present()
}

func (drv *sdlDriver) pollEvents(state *inputState) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		state.handle(ev)
	}
}

// geometry is truncated to whole pixels
func toRect(r render.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)}
}

func toColor(col render.Color) sdl.Color {
	return sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}

func (drv *sdlDriver) fillRect(r render.Rect, col render.Color) {
	drv.setColor(col)
	rect := toRect(r)
	_ = drv.renderer.FillRect(&rect)
}

func (drv *sdlDriver) strokeRect(r render.Rect, col render.Color) {
	drv.setColor(col)
	rect := toRect(r)
	_ = drv.renderer.DrawRect(&rect)
}

func (drv *sdlDriver) fillCircle(centre render.Vec2, radius float32, col render.Color) {
	gfx.FilledCircleColor(drv.renderer, int32(centre.X), int32(centre.Y), int32(radius), toColor(col))
}

func (drv *sdlDriver) fillTriangle(v1 render.Vec2, v2 render.Vec2, v3 render.Vec2, col render.Color) {
	gfx.FilledTrigonColor(drv.renderer,
		int32(v1.X), int32(v1.Y),
		int32(v2.X), int32(v2.Y),
		int32(v3.X), int32(v3.Y),
		toColor(col))
}

func (drv *sdlDriver) drawTexture(tex *texture, src render.Rect, dest render.Rect, origin render.Vec2, rotation float32, tint render.Color) {
	if tex.tex == nil {
		return
	}

	// a negative width or height in the source flips the image
	var flip sdl.RendererFlip = sdl.FLIP_NONE
	if src.Width < 0 {
		flip |= sdl.FLIP_HORIZONTAL
		src.Width = -src.Width
	}
	if src.Height < 0 {
		flip |= sdl.FLIP_VERTICAL
		src.Height = -src.Height
	}

	srcRect := toRect(src)
	dstRect := sdl.FRect{
		X: dest.X - origin.X,
		Y: dest.Y - origin.Y,
		W: dest.Width,
		H: dest.Height,
	}
	centre := sdl.FPoint{X: origin.X, Y: origin.Y}

	_ = tex.tex.SetColorMod(tint.R, tint.G, tint.B)
	_ = tex.tex.SetAlphaMod(tint.A)
	_ = drv.renderer.CopyExF(tex.tex, &srcRect, &dstRect, float64(rotation), &centre, flip)
}

func (drv *sdlDriver) drawText(fnt *font, text string, pos render.Vec2, size float32, spacing float32, tint render.Color) {
	if fnt.ttf == nil {
		return
	}

	scale := float32(1.0)
	if size > 0 {
		scale = size / float32(fnt.size)
	}
	lineHeight := float32(fnt.ttf.Height()) * scale

	x := pos.X
	y := pos.Y
	for _, r := range text {
		if r == '\n' {
			x = pos.X
			y += lineHeight
			continue
		}

		g := drv.glyph(fnt, r)
		w := float32(g.width) * scale
		if g.tex != nil {
			dst := sdl.FRect{X: x, Y: y, W: w, H: float32(g.height) * scale}
			_ = g.tex.SetColorMod(tint.R, tint.G, tint.B)
			_ = g.tex.SetAlphaMod(tint.A)
			_ = drv.renderer.CopyF(g.tex, nil, &dst)
		}
		x += w + spacing
	}
}

// glyph returns the cached glyph for the rune, rendering it if necessary.
func (drv *sdlDriver) glyph(fnt *font, r rune) glyph {
	if g, ok := fnt.glyphs[r]; ok {
		return g
	}

	var g glyph

	surf, err := fnt.ttf.RenderUTF8Blended(string(r), sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err == nil {
		defer surf.Free()
		g.width = surf.W
		g.height = surf.H
		g.tex, err = drv.renderer.CreateTextureFromSurface(surf)
		if err == nil {
			_ = g.tex.SetBlendMode(sdl.BLENDMODE_BLEND)
		}
	} else {
		// the glyph still advances the pen by the width of the character
		if adv, _, err := fnt.ttf.SizeUTF8(string(r)); err == nil {
			g.width = int32(adv)
		}
	}

	fnt.glyphs[r] = g
	return g
}

func (drv *sdlDriver) beginMode3D(cam render.Camera3D) {
	if !drv.gl || drv.mode3D {
		return
	}
	drv.mode3D = true

	// drawing queued by the SDL renderer must happen before the GL state is
	// changed
	_ = drv.renderer.Flush()

	w, h := drv.outputSize()
	aspect := float32(1.0)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}

	proj := cam.ProjectionMatrix(aspect)
	view := cam.ViewMatrix()

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadMatrixf(&view[0])

	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (drv *sdlDriver) endMode3D() {
	if !drv.mode3D {
		return
	}
	drv.mode3D = false

	_ = drv.renderer.Flush()

	gl.Disable(gl.DEPTH_TEST)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
}

func (drv *sdlDriver) loadTexture(path string) (*texture, error) {
	if drv.renderer == nil {
		return nil, errors.New("no window")
	}

	tex, err := img.LoadTexture(drv.renderer, path)
	if err != nil {
		return nil, err
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		_ = tex.Destroy()
		return nil, err
	}

	_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return &texture{tex: tex, width: int(w), height: int(h)}, nil
}

func (drv *sdlDriver) unloadTexture(tex *texture) {
	if tex.tex != nil {
		_ = tex.tex.Destroy()
		tex.tex = nil
	}
}

func (drv *sdlDriver) loadFont(path string, size int) (*font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return &font{ttf: f, size: size, glyphs: make(map[rune]glyph)}, nil
}

func (drv *sdlDriver) defaultFont(size int) (*font, error) {
	rw, err := sdl.RWFromMem(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("goregular: %w", err)
	}

	// the RWops is freed by SDL_ttf when the font is closed
	f, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("goregular: %w", err)
	}

	return &font{ttf: f, size: size, glyphs: make(map[rune]glyph)}, nil
}

func (drv *sdlDriver) unloadFont(fnt *font) {
	for _, g := range fnt.glyphs {
		if g.tex != nil {
			_ = g.tex.Destroy()
		}
	}
	clear(fnt.glyphs)
	if fnt.ttf != nil {
		fnt.ttf.Close()
		fnt.ttf = nil
	}
}
