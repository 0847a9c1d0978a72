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

	"github.com/jetsetilly/gramarye/render"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeDriver records every call made to it. events queued with queue() are
// delivered one frame at a time by pollEvents().
type fakeDriver struct {
	calls  []string
	events [][]sdl.Event

	// returned by configure() and openWindow() if not nil
	configureErr error
	openErr      error

	width  int32
	height int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{width: 800, height: 600}
}

func (drv *fakeDriver) record(f string, args ...any) {
	drv.calls = append(drv.calls, fmt.Sprintf(f, args...))
}

// queue events to be delivered by one call to pollEvents().
func (drv *fakeDriver) queue(evs ...sdl.Event) {
	drv.events = append(drv.events, evs)
}

func (drv *fakeDriver) configure(cfg windowConfig) error {
	drv.record("configure %s", cfg.renderDriver)
	return drv.configureErr
}

func (drv *fakeDriver) openWindow(width int32, height int32, title string, cfg windowConfig) error {
	drv.record("openWindow %dx%d %s", width, height, title)
	return drv.openErr
}

func (drv *fakeDriver) closeWindow() {
	drv.record("closeWindow")
}

func (drv *fakeDriver) screenSize() (int32, int32) {
	return drv.width, drv.height
}

// output size as if on a display with a pixel density of two
func (drv *fakeDriver) outputSize() (int32, int32) {
	return drv.width * 2, drv.height * 2
}

func (drv *fakeDriver) clear(col render.Color) {
	drv.record("clear %v", col)
}

func (drv *fakeDriver) present() {
	drv.record("present")
}

func (drv *fakeDriver) pollEvents(state *inputState) {
	if len(drv.events) == 0 {
		return
	}
	for _, ev := range drv.events[0] {
		state.handle(ev)
	}
	drv.events = drv.events[1:]
}

func (drv *fakeDriver) fillRect(r render.Rect, col render.Color) {
	drv.record("fillRect %s %v", r, col)
}

func (drv *fakeDriver) strokeRect(r render.Rect, col render.Color) {
	drv.record("strokeRect %s %v", r, col)
}

func (drv *fakeDriver) fillCircle(centre render.Vec2, radius float32, col render.Color) {
	drv.record("fillCircle %s %g %v", centre, radius, col)
}

func (drv *fakeDriver) fillTriangle(v1 render.Vec2, v2 render.Vec2, v3 render.Vec2, col render.Color) {
	drv.record("fillTriangle %s %s %s %v", v1, v2, v3, col)
}

func (drv *fakeDriver) drawTexture(tex *texture, src render.Rect, dest render.Rect, origin render.Vec2, rotation float32, tint render.Color) {
	drv.record("drawTexture %dx%d %s %s %s %g %v", tex.width, tex.height, src, dest, origin, rotation, tint)
}

func (drv *fakeDriver) drawText(fnt *font, text string, pos render.Vec2, size float32, spacing float32, tint render.Color) {
	drv.record("drawText %d %q %s %g %g %v", fnt.size, text, pos, size, spacing, tint)
}

func (drv *fakeDriver) beginMode3D(cam render.Camera3D) {
	drv.record("beginMode3D %v", cam.Position)
}

func (drv *fakeDriver) endMode3D() {
	drv.record("endMode3D")
}

func (drv *fakeDriver) loadTexture(path string) (*texture, error) {
	drv.record("loadTexture %s", path)
	if path == "missing.png" {
		return nil, errors.New("file not found")
	}
	return &texture{width: 64, height: 32}, nil
}

func (drv *fakeDriver) unloadTexture(tex *texture) {
	drv.record("unloadTexture %dx%d", tex.width, tex.height)
}

func (drv *fakeDriver) loadFont(path string, size int) (*font, error) {
	drv.record("loadFont %s %d", path, size)
	if path == "missing.ttf" {
		return nil, errors.New("file not found")
	}
	return &font{size: size, glyphs: make(map[rune]glyph)}, nil
}

func (drv *fakeDriver) defaultFont(size int) (*font, error) {
	drv.record("defaultFont %d", size)
	return &font{size: size, glyphs: make(map[rune]glyph)}, nil
}

func (drv *fakeDriver) unloadFont(fnt *font) {
	drv.record("unloadFont %d", fnt.size)
}
