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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gramarye/prefs"
	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), PreferencesFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Width.Get().(int), 1280)
	test.ExpectEquality(t, p.Height.Get().(int), 720)
	test.ExpectEquality(t, p.TargetFPS.Get().(int), 60)
	test.ExpectEquality(t, p.RenderDriver.String(), "opengl")
	test.ExpectEquality(t, p.WindowFlags(), render.FlagResizable)
}

func TestPreferencesSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), PreferencesFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.VSync.Set(true))
	test.DemandSuccess(t, p.Width.Set(640))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Width.Get().(int), 640)
	test.ExpectEquality(t, q.WindowFlags(), render.FlagVSync|render.FlagResizable)

	// reverting to defaults does not change the file until it is saved
	q.SetDefaults()
	test.ExpectEquality(t, q.Width.Get().(int), 1280)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Width.Get().(int), 640)
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), PreferencesFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MSAA4x.Set(false))
	test.DemandSuccess(t, p.Save())

	prefs.PushCommandLineStack("window.msaa4x::true; frame.targetFPS::30")
	defer prefs.PopCommandLineStack()

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.WindowFlags().Has(render.FlagMSAA4x))
	test.ExpectEquality(t, q.TargetFPS.Get().(int), 30)
}

func TestAttachPreferences(t *testing.T) {
	rnd, _ := newTestRenderer(t)

	p, err := newPreferences(filepath.Join(t.TempDir(), PreferencesFile))
	test.DemandSuccess(t, err)

	rnd.AttachPreferences(p)
	test.ExpectEquality(t, rnd.limiter.framesPerSecond, 60)

	test.DemandSuccess(t, p.TargetFPS.Set(144))
	test.ExpectEquality(t, rnd.limiter.framesPerSecond, 144)
}
