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
	"github.com/jetsetilly/gramarye/paths"
	"github.com/jetsetilly/gramarye/prefs"
	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/version"
)

// PreferencesFile is the name of the file in the resource directory that
// preferences are saved to.
const PreferencesFile = "preferences.toml"

// Preferences for the window and the renderer. The window preferences are
// only used when the window is opened.
type Preferences struct {
	dsk *prefs.Disk

	Width      prefs.Int
	Height     prefs.Int
	Title      prefs.String
	VSync      prefs.Bool
	Resizable  prefs.Bool
	Borderless prefs.Bool
	MSAA4x     prefs.Bool

	// frame rate target. zero or less means no limit
	TargetFPS prefs.Int

	// the SDL render driver to ask for
	RenderDriver prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are saved in the file named by PreferencesFile
// in the resource directory.
func NewPreferences() (*Preferences, error) {
	return newPreferences(paths.ResourcePath("", PreferencesFile))
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("window.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.title", &p.Title)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.resizable", &p.Resizable)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.borderless", &p.Borderless)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.msaa4x", &p.MSAA4x)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("frame.targetFPS", &p.TargetFPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("render.driver", &p.RenderDriver)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible for these values
	_ = p.Width.Set(1280)
	_ = p.Height.Set(720)
	_ = p.Title.Set(version.ApplicationName)
	_ = p.VSync.Set(false)
	_ = p.Resizable.Set(true)
	_ = p.Borderless.Set(false)
	_ = p.MSAA4x.Set(false)
	_ = p.TargetFPS.Set(defaultFPS)
	_ = p.RenderDriver.Set(defaultRenderDriver)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// WindowFlags returns the boolean window preferences as render.WindowFlags.
func (p *Preferences) WindowFlags() render.WindowFlags {
	var flags render.WindowFlags
	if p.VSync.Get().(bool) {
		flags |= render.FlagVSync
	}
	if p.Resizable.Get().(bool) {
		flags |= render.FlagResizable
	}
	if p.Borderless.Get().(bool) {
		flags |= render.FlagBorderless
	}
	if p.MSAA4x.Get().(bool) {
		flags |= render.FlagMSAA4x
	}
	return flags
}

// AttachPreferences applies the frame rate preference to the Renderer and
// keeps it applied when the preference changes. It should be called after
// Init(), which resets the frame rate.
func (rnd *Renderer) AttachPreferences(p *Preferences) {
	rnd.SetTargetFPS(p.TargetFPS.Get().(int))
	p.TargetFPS.SetHookPost(func(v prefs.Value) error {
		rnd.SetTargetFPS(v.(int))
		return nil
	})
}
