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
	"fmt"

	"github.com/jetsetilly/gramarye/input"
	"github.com/jetsetilly/gramarye/logger"
	"github.com/jetsetilly/gramarye/render"
)

// size of the world grid in world units.
const (
	tileSize  = 16
	gridTiles = 20
)

// the amount of time the camera pans for on each press of an arrow key.
const panStep = 0.25

// the maximum number of markers. the oldest marker is removed when the limit
// is reached
const maxMarkers = 32

// degrees per second
const spinSpeed = 90

// Scene is the demonstration scene.
type Scene struct {
	logical render.Vec2

	cam render.Camera2D
	fit render.AspectFit

	// player position in tiles
	player render.Vec2

	// markers in world coordinates
	markers []render.Vec2

	show3D    bool
	showDebug bool
	quit      bool

	// rotation of the spinning sprite in degrees
	spin float32

	// delta time of the most recent update
	dt float32

	// assets are optional. the scene can be drawn without them
	tex  render.Texture
	font render.Font

	// reused between frames
	cmds []render.Command
}

// NewScene is the preferred method of initialisation for the Scene type. The
// logical argument is the size of the logical screen that the world is
// drawn to before it is fitted to the window.
func NewScene(logical render.Vec2) *Scene {
	s := &Scene{
		logical: logical,
		cam:     render.NewCamera2D(logical),
		player:  render.Vec2{X: gridTiles / 2, Y: gridTiles / 2},
	}
	s.fit = render.NewAspectFit(logical, logical)
	return s
}

// LoadAssets loads the texture and font used by the scene. Either path can be
// empty. A failure to load an asset is logged and the scene continues
// without it.
func (s *Scene) LoadAssets(rnd render.Renderer, texturePath string, fontPath string) {
	if texturePath != "" {
		tex, err := rnd.LoadTexture(texturePath)
		if err != nil {
			logger.Log(logger.Allow, "scene", err)
		} else {
			s.tex = tex
		}
	}

	if fontPath != "" {
		fnt, err := rnd.LoadFont(fontPath, 20)
		if err != nil {
			logger.Log(logger.Allow, "scene", err)
		} else {
			s.font = fnt
		}
	}
}

// UnloadAssets releases the assets loaded by LoadAssets().
func (s *Scene) UnloadAssets(rnd render.Renderer) {
	if s.tex != nil {
		rnd.UnloadTexture(s.tex)
		s.tex = nil
	}
	if s.font != nil {
		rnd.UnloadFont(s.font)
		s.font = nil
	}
}

// Quit returns true if the scene has asked to quit.
func (s *Scene) Quit() bool {
	return s.quit
}

// Camera returns a copy of the scene's camera.
func (s *Scene) Camera() render.Camera2D {
	return s.cam
}

// Viewport returns the aspect-fit viewport used in the most recent update.
func (s *Scene) Viewport() render.AspectFit {
	return s.fit
}

// Update the scene. The window argument is the size of the window in the
// same coordinates as the mouse position. The dt argument is the duration of
// the previous frame in seconds.
func (s *Scene) Update(inp input.Provider, window render.Vec2, dt float32) {
	s.dt = dt
	s.fit = render.NewAspectFit(s.logical, window)

	if inp.IsKeyPressed(input.KeyEscape) {
		s.quit = true
	}
	if inp.IsKeyPressed(input.KeyF3) {
		s.showDebug = !s.showDebug
	}
	if inp.IsKeyPressed(input.KeySpace) {
		s.show3D = !s.show3D
	}

	// player moves one tile at a time and can't leave the grid
	var step render.Vec2
	if inp.IsKeyPressed(input.KeyW) {
		step.Y--
	}
	if inp.IsKeyPressed(input.KeyS) {
		step.Y++
	}
	if inp.IsKeyPressed(input.KeyA) {
		step.X--
	}
	if inp.IsKeyPressed(input.KeyD) {
		step.X++
	}
	s.player = clampTile(s.player.Add(step))

	var pan render.Vec2
	if inp.IsKeyPressed(input.KeyUp) {
		pan.Y--
	}
	if inp.IsKeyPressed(input.KeyDown) {
		pan.Y++
	}
	if inp.IsKeyPressed(input.KeyLeft) {
		pan.X--
	}
	if inp.IsKeyPressed(input.KeyRight) {
		pan.X++
	}
	s.cam.Pan(pan, panStep)

	if wheel := inp.MouseWheelMove(); wheel != 0 {
		s.cam.SetZoom(s.cam.Zoom * (1 + wheel*0.1))
	}

	if inp.IsMouseButtonPressed(input.MouseButtonLeft) {
		world := render.ScreenToWorld(&s.cam, &s.fit, inp.MousePosition())
		if len(s.markers) >= maxMarkers {
			s.markers = s.markers[1:]
		}
		s.markers = append(s.markers, world)
	}
	if inp.IsMouseButtonPressed(input.MouseButtonRight) {
		s.markers = s.markers[:0]
	}

	s.spin += spinSpeed * dt
	for s.spin >= 360 {
		s.spin -= 360
	}
}

func clampTile(v render.Vec2) render.Vec2 {
	v.X = min(max(v.X, 0), gridTiles-1)
	v.Y = min(max(v.Y, 0), gridTiles-1)
	return v
}

// worldRect converts a rectangle in world coordinates to window coordinates.
func (s *Scene) worldRect(r render.Rect) render.Rect {
	tl := render.WorldToScreen(&s.cam, &s.fit, r.Origin())
	scale := s.cam.Zoom * s.fit.Scale
	return render.Rect{X: tl.X, Y: tl.Y, Width: r.Width * scale, Height: r.Height * scale}
}

// Commands returns the commands that draw the scene in its current state.
// The returned slice is only valid until the next call to Commands().
func (s *Scene) Commands() []render.Command {
	s.cmds = s.cmds[:0]
	scale := s.cam.Zoom * s.fit.Scale

	// letterboxed area of the window
	s.cmds = append(s.cmds, render.Rectangle(s.fit.Dest, render.DarkGray))

	s.cmds = append(s.cmds, render.Marker(render.CmdBegin2D))
	s.cmds = append(s.cmds, render.Marker(render.CmdBeginClip))

	for y := range gridTiles {
		for x := range gridTiles {
			r := render.Rect{X: float32(x * tileSize), Y: float32(y * tileSize), Width: tileSize, Height: tileSize}
			s.cmds = append(s.cmds, render.RectangleLines(s.worldRect(r), render.Gray))
		}
	}

	// player with a triangle pointing at the top-left of the tile
	player := render.Rect{X: s.player.X * tileSize, Y: s.player.Y * tileSize, Width: tileSize, Height: tileSize}
	s.cmds = append(s.cmds, render.Rectangle(s.worldRect(player), render.Blue))
	pointer := player
	pointer.Width /= 2
	pointer.Height /= 2
	s.cmds = append(s.cmds, render.Triangle(s.worldRect(pointer), render.Yellow))

	for _, m := range s.markers {
		centre := render.WorldToScreen(&s.cam, &s.fit, m)
		s.cmds = append(s.cmds, render.Circle(centre, tileSize/4*scale, render.Red))
	}

	if s.tex != nil {
		src := render.Rect{Width: float32(s.tex.Width()), Height: float32(s.tex.Height())}
		centre := render.Vec2{X: gridTiles * tileSize / 2, Y: gridTiles * tileSize / 2}
		dest := s.worldRect(render.Rect{X: centre.X, Y: centre.Y, Width: tileSize * 2, Height: tileSize * 2})
		origin := render.Vec2{X: dest.Width / 2, Y: dest.Height / 2}
		s.cmds = append(s.cmds, render.DrawTexture(s.tex, src, dest, origin, s.spin, render.White))

		// mirrored copy at the corner of the grid
		pro := render.DrawTexture(s.tex, render.Rect{Width: -src.Width, Height: src.Height},
			s.worldRect(render.Rect{Width: tileSize * 2, Height: tileSize * 2}), render.Vec2{}, 0, render.White)
		pro.Type = render.CmdTexturePro
		s.cmds = append(s.cmds, pro)
	}

	s.cmds = append(s.cmds, render.Marker(render.CmdEndClip))
	s.cmds = append(s.cmds, render.Marker(render.CmdEnd2D))

	if s.show3D {
		s.cmds = append(s.cmds, render.Marker(render.CmdBegin3D))
		s.cmds = append(s.cmds, render.Marker(render.CmdBeginLayer))
		s.cmds = append(s.cmds, render.Marker(render.CmdEndLayer))
		s.cmds = append(s.cmds, render.Marker(render.CmdEnd3D))
	}

	s.cmds = append(s.cmds, render.Marker(render.CmdBeginUI))
	hud := fmt.Sprintf("zoom %.2f  markers %d", s.cam.Zoom, len(s.markers))
	s.cmds = append(s.cmds, render.Text(hud, s.font, s.fit.Dest.Origin().Add(render.Vec2{X: 8, Y: 8}), 20, 1, render.White))
	s.cmds = append(s.cmds, render.Marker(render.CmdEndUI))

	if s.showDebug {
		s.cmds = append(s.cmds, render.Marker(render.CmdBeginDebug))
		dbg := fmt.Sprintf("camera %s\nplayer %s\nframe %.1fms", s.cam.Position, s.player, s.dt*1000)
		s.cmds = append(s.cmds, render.Text(dbg, nil, s.fit.Dest.Origin().Add(render.Vec2{X: 8, Y: 36}), 16, 0, render.Green))
		s.cmds = append(s.cmds, render.Marker(render.CmdEndDebug))
	}

	s.cmds = append(s.cmds, render.Marker(render.CmdCustom))

	return s.cmds
}
