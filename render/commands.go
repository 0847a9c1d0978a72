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

package render

// CommandType identifies the drawing operation of a Command.
type CommandType int

// List of valid CommandType values. The Begin/End pairs for layers, UI, clip
// regions and debug drawing are markers for a higher level compositor.
// Renderer implementations are free to ignore them, as they are free to
// ignore Custom commands.
const (
	CmdNone CommandType = iota
	CmdRectangle
	CmdRectangleLines
	CmdTexture
	CmdTexturePro
	CmdText
	CmdCircle
	CmdTriangle
	CmdBegin2D
	CmdEnd2D
	CmdBegin3D
	CmdEnd3D
	CmdBeginLayer
	CmdEndLayer
	CmdBeginUI
	CmdEndUI
	CmdBeginClip
	CmdEndClip
	CmdBeginDebug
	CmdEndDebug
	CmdCustom
)

func (t CommandType) String() string {
	switch t {
	case CmdNone:
		return "none"
	case CmdRectangle:
		return "rectangle"
	case CmdRectangleLines:
		return "rectangle lines"
	case CmdTexture:
		return "texture"
	case CmdTexturePro:
		return "texture pro"
	case CmdText:
		return "text"
	case CmdCircle:
		return "circle"
	case CmdTriangle:
		return "triangle"
	case CmdBegin2D:
		return "begin 2d"
	case CmdEnd2D:
		return "end 2d"
	case CmdBegin3D:
		return "begin 3d"
	case CmdEnd3D:
		return "end 3d"
	case CmdBeginLayer:
		return "begin layer"
	case CmdEndLayer:
		return "end layer"
	case CmdBeginUI:
		return "begin ui"
	case CmdEndUI:
		return "end ui"
	case CmdBeginClip:
		return "begin clip"
	case CmdEndClip:
		return "end clip"
	case CmdBeginDebug:
		return "begin debug"
	case CmdEndDebug:
		return "end debug"
	case CmdCustom:
		return "custom"
	}
	return "unknown"
}

// TextureData is the payload for CmdTexture and CmdTexturePro commands.
type TextureData struct {
	// a nil handle means the command is ignored
	Handle Texture

	// area of the texture to draw. it is scaled to fit the Bounds of the
	// command
	Src Rect

	// rotation pivot, relative to the top-left of the destination
	Origin Vec2

	// in degrees, clockwise
	Rotation float32
}

// TextData is the payload for CmdText commands.
type TextData struct {
	// an empty string means the command is ignored
	Text string

	// a nil font means the renderer's default font is used
	Font Font

	Size    float32
	Spacing float32
}

// Command is a single drawing operation. Commands are owned by the caller and
// are never retained by a Renderer beyond the call to ExecuteCommand() or
// ExecuteCommands().
type Command struct {
	Type   CommandType
	Bounds Rect
	Color  Color

	// only one of the payloads is used depending on the Type field
	Texture TextureData
	Text    TextData
}

// Rectangle returns a command to draw a filled rectangle.
func Rectangle(bounds Rect, col Color) Command {
	return Command{Type: CmdRectangle, Bounds: bounds, Color: col}
}

// RectangleLines returns a command to draw the outline of a rectangle.
func RectangleLines(bounds Rect, col Color) Command {
	return Command{Type: CmdRectangleLines, Bounds: bounds, Color: col}
}

// Circle returns a command to draw a filled circle. The circle is encoded in
// the command's Bounds with the centre in X and Y and the radius in Width.
func Circle(centre Vec2, radius float32, col Color) Command {
	return Command{
		Type:   CmdCircle,
		Bounds: Rect{X: centre.X, Y: centre.Y, Width: radius},
		Color:  col,
	}
}

// Triangle returns a command to draw a filled right-angle triangle with
// vertices (x, y), (x+w, y) and (x, y+h) of the bounding box. Arbitrary
// triangles cannot be expressed by a Command.
func Triangle(bounds Rect, col Color) Command {
	return Command{Type: CmdTriangle, Bounds: bounds, Color: col}
}

// Text returns a command to draw text at the position pos. A nil font means
// the default font of the renderer.
func Text(text string, font Font, pos Vec2, size float32, spacing float32, col Color) Command {
	return Command{
		Type:   CmdText,
		Bounds: Rect{X: pos.X, Y: pos.Y},
		Color:  col,
		Text: TextData{
			Text:    text,
			Font:    font,
			Size:    size,
			Spacing: spacing,
		},
	}
}

// DrawTexture returns a command to draw the src area of a texture into the
// dest area of the screen, rotated around origin and tinted by col.
func DrawTexture(tex Texture, src Rect, dest Rect, origin Vec2, rotation float32, col Color) Command {
	return Command{
		Type:   CmdTexture,
		Bounds: dest,
		Color:  col,
		Texture: TextureData{
			Handle:   tex,
			Src:      src,
			Origin:   origin,
			Rotation: rotation,
		},
	}
}

// Marker returns a command with no payload. Useful for the Begin/End command
// types.
func Marker(t CommandType) Command {
	return Command{Type: t}
}
