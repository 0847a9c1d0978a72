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
)

// ExecuteCommands implements the render.Renderer interface.
func (rnd *Renderer) ExecuteCommands(cmds []render.Command) {
	for i := range cmds {
		rnd.ExecuteCommand(cmds[i])
	}
}

// ExecuteCommand implements the render.Renderer interface.
func (rnd *Renderer) ExecuteCommand(cmd render.Command) {
	rnd.owner.Check()

	switch cmd.Type {
	case render.CmdRectangle:
		rnd.drv.fillRect(cmd.Bounds, cmd.Color)

	case render.CmdRectangleLines:
		rnd.drv.strokeRect(cmd.Bounds, cmd.Color)

	case render.CmdTexture, render.CmdTexturePro:
		// TexturePro is drawn exactly as Texture
		tex, ok := cmd.Texture.Handle.(*texture)
		if !ok || tex == nil {
			return
		}
		rnd.drv.drawTexture(tex, cmd.Texture.Src, cmd.Bounds, cmd.Texture.Origin, cmd.Texture.Rotation, cmd.Color)

	case render.CmdText:
		if cmd.Text.Text == "" {
			return
		}
		fnt, ok := cmd.Text.Font.(*font)
		if !ok || fnt == nil {
			fnt = rnd.defaultFont
		}
		if fnt == nil {
			return
		}
		pos := render.Vec2{X: cmd.Bounds.X, Y: cmd.Bounds.Y}
		rnd.drv.drawText(fnt, cmd.Text.Text, pos, cmd.Text.Size, cmd.Text.Spacing, cmd.Color)

	case render.CmdCircle:
		// the radius is the width of the bounds. the height is not used
		centre := render.Vec2{X: cmd.Bounds.X, Y: cmd.Bounds.Y}
		rnd.drv.fillCircle(centre, cmd.Bounds.Width, cmd.Color)

	case render.CmdTriangle:
		b := cmd.Bounds
		rnd.drv.fillTriangle(
			render.Vec2{X: b.X, Y: b.Y},
			render.Vec2{X: b.X + b.Width, Y: b.Y},
			render.Vec2{X: b.X, Y: b.Y + b.Height},
			cmd.Color)

	case render.CmdBegin3D:
		if rnd.camera3D == nil {
			cam := render.DefaultCamera3D()
			rnd.camera3D = &cam
		}
		rnd.drv.beginMode3D(*rnd.camera3D)

	case render.CmdEnd3D:
		rnd.drv.endMode3D()

	case render.CmdBegin2D, render.CmdEnd2D:
		// 2D mode is the normal state of a frame

	default:
		// CmdNone, the compositor markers, custom commands and unknown
		// command types are ignored
	}
}
