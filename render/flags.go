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

import "strings"

// WindowFlags configure the window when the Renderer is initialised. The
// flags must be applied by the backend before the window is created.
type WindowFlags uint32

// List of valid WindowFlags. Each flag is independent of the others.
const (
	FlagVSync WindowFlags = 1 << iota
	FlagResizable
	FlagBorderless
	FlagMSAA4x
)

// Has returns true if all flags in f are set.
func (w WindowFlags) Has(f WindowFlags) bool {
	return w&f == f
}

func (w WindowFlags) String() string {
	var s []string
	if w.Has(FlagVSync) {
		s = append(s, "vsync")
	}
	if w.Has(FlagResizable) {
		s = append(s, "resizable")
	}
	if w.Has(FlagBorderless) {
		s = append(s, "borderless")
	}
	if w.Has(FlagMSAA4x) {
		s = append(s, "msaa4x")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}
