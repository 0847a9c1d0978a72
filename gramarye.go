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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gramarye/logger"
	"github.com/jetsetilly/gramarye/modalflag"
	"github.com/jetsetilly/gramarye/prefs"
	"github.com/jetsetilly/gramarye/render"
	"github.com/jetsetilly/gramarye/scene"
	"github.com/jetsetilly/gramarye/sdlrender"
	"github.com/jetsetilly/gramarye/statsview"
	"github.com/jetsetilly/gramarye/version"
)

// size of the logical screen of the demonstration scene
var logicalSize = render.Vec2{X: 320, Y: 180}

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PREFS":
		err = showPrefs(md)

	case "VERSION":
		fmt.Println(version.Get())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences for this run only. eg. \"window.vsync::true; frame.targetFPS::30\"")
	echo := md.AddBool("echo", false, "echo log to stdout")
	width := md.AddInt("width", 0, "window width (overrides preferences)")
	height := md.AddInt("height", 0, "window height (overrides preferences)")
	texture := md.AddString("texture", "", "image to draw in the scene")
	font := md.AddString("font", "", "font for the scene's text")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "gramarye", version.Get())

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	pref, err := sdlrender.NewPreferences()
	if err != nil {
		return err
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("* unknown preferences: %s\n", unused)
		}
	}

	w := pref.Width.Get().(int)
	h := pref.Height.Get().(int)
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}

	rnd := sdlrender.NewRenderer(pref.RenderDriver.String())
	err = rnd.Init(w, h, pref.Title.String(), pref.WindowFlags())
	if err != nil {
		return err
	}
	defer rnd.Close()

	rnd.AttachPreferences(pref)
	inp := sdlrender.NewInputProvider(rnd)

	scn := scene.NewScene(logicalSize)
	scn.LoadAssets(rnd, *texture, *font)
	defer scn.UnloadAssets(rnd)

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for !rnd.ShouldClose() && !scn.Quit() {
		select {
		case <-intChan:
			fmt.Print("\r")
			return pref.Save()
		default:
		}

		scn.Update(inp, rnd.WindowSize(), rnd.DeltaTime())

		rnd.BeginFrame()
		rnd.ExecuteCommands(scn.Commands())
		rnd.EndFrame()
	}

	return pref.Save()
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	reset := md.AddBool("reset", false, "reset preferences to their default values")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := sdlrender.NewPreferences()
	if err != nil {
		return err
	}

	if *reset {
		pref.SetDefaults()
		err = pref.Save()
		if err != nil {
			return err
		}
	}

	fmt.Print(pref)

	return nil
}
