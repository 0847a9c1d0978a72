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

// Package version reports the version of the application. The version number
// is set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/gramarye/version.number=v0.1.0"
//
// Revision information comes from the build information embedded by the Go
// toolchain, when it is available.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gramarye"

// set at link time. empty if the build did not set it
var number string

// Info describes the build of the running program.
type Info struct {
	// the release number. "unreleased" if the program was built from a
	// repository without a release number and "local" if there is no
	// repository information at all
	Number string

	// the VCS revision. empty if there is no revision information
	Revision string

	// the working tree had uncommitted changes when the program was built
	Modified bool

	// version of the Go toolchain used to build the program
	GoVersion string
}

// Release returns true if the program was built with a release number.
func (inf Info) Release() bool {
	return number != "" && inf.Number == number
}

func (inf Info) String() string {
	if inf.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	rev := inf.Revision
	if inf.Modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, rev)
}

var info Info
var once sync.Once

// Get returns the build information for the running program.
func Get() Info {
	once.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		info = fromBuildInfo(number, bi, ok)
	})
	return info
}

func fromBuildInfo(number string, bi *debug.BuildInfo, ok bool) Info {
	var inf Info
	var vcs bool

	if ok && bi != nil {
		inf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				inf.Modified = s.Value == "true"
			}
		}
	}

	switch {
	case number != "":
		inf.Number = number
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
