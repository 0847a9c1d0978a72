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
	"github.com/jetsetilly/gramarye/assert"
	"github.com/jetsetilly/gramarye/curated"
	"github.com/jetsetilly/gramarye/logger"
	"github.com/jetsetilly/gramarye/render"
)

// lifecycle of the Renderer. the state is recorded for the benefit of Init()
// and Close() only. drawing in the wrong state is not prevented.
type lifecycle int

const (
	uninitialised lifecycle = iota
	initialised
	frameBegun
	frameEnded
	closed
)

// Renderer implements the render.Renderer interface with SDL.
type Renderer struct {
	drv   driver
	owner assert.Owner

	state lifecycle

	// name of the SDL render driver to ask for
	renderDriver string

	limiter *limiter
	input   inputState

	// cached when the window is opened. may be nil if the font could not be
	// created in which case text drawn with the default font is ignored
	defaultFont *font

	// the camera for 3D mode. nil until the first Begin3D command
	camera3D *render.Camera3D

	// colour used to clear the screen at the start of every frame
	clearColor render.Color
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. The renderDriver argument names the SDL render driver to use. The
// empty string selects the "opengl" driver, which is required for 3D mode.
//
// The window is not opened until Init() is called.
func NewRenderer(renderDriver string) *Renderer {
	return newRenderer(&sdlDriver{}, renderDriver)
}

func newRenderer(drv driver, renderDriver string) *Renderer {
	return &Renderer{
		drv:          drv,
		renderDriver: renderDriver,
		limiter:      newLimiter(defaultFPS),
		input:        newInputState(),
		clearColor:   render.Black,
	}
}

// Init implements the render.Renderer interface.
func (rnd *Renderer) Init(width int, height int, title string, flags render.WindowFlags) error {
	if rnd.state != uninitialised {
		return curated.Errorf(AlreadyInitialised)
	}

	rnd.owner.Claim()

	cfg := translateFlags(flags, rnd.renderDriver)

	// some flags can't be changed once the window has been created
	if err := rnd.drv.configure(cfg); err != nil {
		return curated.Errorf(InitError, err)
	}

	if err := rnd.drv.openWindow(int32(width), int32(height), title, cfg); err != nil {
		return curated.Errorf(InitError, err)
	}

	logger.Logf(logger.Allow, "sdlrender", "window %dx%d (%s)", width, height, flags)

	var err error
	rnd.defaultFont, err = rnd.drv.defaultFont(defaultFontSize)
	if err != nil {
		logger.Logf(logger.Allow, "sdlrender", "default font: %v", err)
	}

	rnd.limiter.setFPS(defaultFPS)
	rnd.limiter.reset()
	rnd.camera3D = nil
	rnd.state = initialised

	return nil
}

// Close implements the render.Renderer interface.
func (rnd *Renderer) Close() {
	rnd.owner.Check()

	if rnd.state == uninitialised || rnd.state == closed {
		return
	}

	if rnd.defaultFont != nil {
		rnd.drv.unloadFont(rnd.defaultFont)
		rnd.defaultFont = nil
	}

	rnd.drv.closeWindow()
	rnd.state = closed
}

// SetTargetFPS changes the frame rate that EndFrame() paces to. A value of
// zero or less means no pacing, other than what is imposed by vsync.
func (rnd *Renderer) SetTargetFPS(fps int) {
	rnd.limiter.setFPS(fps)
}

// SetClearColor sets the colour used to clear the screen at the start of
// every frame.
func (rnd *Renderer) SetClearColor(col render.Color) {
	rnd.clearColor = col
}

// BeginFrame implements the render.Renderer interface.
func (rnd *Renderer) BeginFrame() {
	rnd.owner.Check()
	rnd.drv.clear(rnd.clearColor)
	rnd.state = frameBegun
}

// EndFrame implements the render.Renderer interface. The frame is presented,
// the input state for the next frame is collected and then the frame is
// paced to the target frame rate.
func (rnd *Renderer) EndFrame() {
	rnd.owner.Check()
	rnd.drv.present()
	rnd.input.newFrame()
	rnd.drv.pollEvents(&rnd.input)
	rnd.limiter.wait()
	rnd.state = frameEnded
}

// ShouldClose implements the render.Renderer interface.
func (rnd *Renderer) ShouldClose() bool {
	return rnd.input.quit
}

// DeltaTime implements the render.Renderer interface.
func (rnd *Renderer) DeltaTime() float32 {
	return rnd.limiter.deltaTime()
}

// MousePosition implements the render.Renderer interface.
func (rnd *Renderer) MousePosition() render.Vec2 {
	return rnd.input.mouse
}

// WindowSize implements the render.Renderer interface.
func (rnd *Renderer) WindowSize() render.Vec2 {
	w, h := rnd.drv.screenSize()
	return render.Vec2{X: float32(w), Y: float32(h)}
}

// RenderWidth implements the render.Renderer interface.
func (rnd *Renderer) RenderWidth() int {
	w, _ := rnd.drv.outputSize()
	return int(w)
}

// RenderHeight implements the render.Renderer interface.
func (rnd *Renderer) RenderHeight() int {
	_, h := rnd.drv.outputSize()
	return int(h)
}

// ScreenWidth implements the render.Renderer interface.
func (rnd *Renderer) ScreenWidth() int {
	w, _ := rnd.drv.screenSize()
	return int(w)
}

// ScreenHeight implements the render.Renderer interface.
func (rnd *Renderer) ScreenHeight() int {
	_, h := rnd.drv.screenSize()
	return int(h)
}

// WorldToScreen implements the render.Renderer interface.
func (rnd *Renderer) WorldToScreen(cam *render.Camera2D, fit *render.AspectFit, world render.Vec2) render.Vec2 {
	return render.WorldToScreen(cam, fit, world)
}

// ScreenToWorld implements the render.Renderer interface.
func (rnd *Renderer) ScreenToWorld(cam *render.Camera2D, fit *render.AspectFit, screen render.Vec2) render.Vec2 {
	return render.ScreenToWorld(cam, fit, screen)
}

// CameraZoom implements the render.Renderer interface.
func (rnd *Renderer) CameraZoom(cam *render.Camera2D) float32 {
	return render.CameraZoom(cam)
}

// AspectFitScale implements the render.Renderer interface.
func (rnd *Renderer) AspectFitScale(fit *render.AspectFit) float32 {
	return render.AspectFitScale(fit)
}

// Camera3D returns the camera used for 3D mode. The boolean is false if
// there has not yet been a Begin3D command or a call to SetCamera3D().
func (rnd *Renderer) Camera3D() (render.Camera3D, bool) {
	if rnd.camera3D == nil {
		return render.Camera3D{}, false
	}
	return *rnd.camera3D, true
}

// SetCamera3D replaces the camera used for 3D mode. It takes effect from the
// next Begin3D command.
func (rnd *Renderer) SetCamera3D(cam render.Camera3D) {
	rnd.camera3D = &cam
}
