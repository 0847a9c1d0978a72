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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gramarye/test"
)

func TestNoBuildInfo(t *testing.T) {
	inf := fromBuildInfo("", nil, false)
	test.ExpectEquality(t, inf.Number, "local")
	test.ExpectEquality(t, inf.String(), "Gramarye local")
	test.ExpectFailure(t, inf.Release())
}

func TestVCS(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	inf := fromBuildInfo("", bi, true)
	test.ExpectEquality(t, inf.Number, "unreleased")
	test.ExpectEquality(t, inf.GoVersion, "go1.24.0")
	test.ExpectSuccess(t, inf.Modified)
	test.ExpectEquality(t, inf.String(), "Gramarye unreleased (abc123+dirty)")

	inf = fromBuildInfo("v1.0.0", bi, true)
	test.ExpectEquality(t, inf.Number, "v1.0.0")
}
