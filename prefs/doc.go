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

// Package prefs facilitates the storage of preferential values in the
// application. Values are stored in live variables of the Bool, Int, Float
// and String types. Each type has a Set() function that accepts the native Go
// type or a string representation.
//
// Preference values are associated with a Disk instance by key with the
// Add() function. The Load() and Save() functions of the Disk type then
// handle the persisting of the values. The file format is TOML. Keys that
// contain a period are stored in a table named by the part before the
// period, so the keys "window.width" and "window.height" become:
//
//	[window]
//	height = 600
//	width = 800
//
// Values in the file that are not added to the Disk instance are preserved
// when the file is saved. This means more than one Disk instance can share
// the same file.
//
// Preferences can also be specified on the command line. The command line
// stack is pushed with a string of "key::value" pairs separated by
// semi-colons. When a preference is added to a Disk instance the top of the
// stack is consulted for an overriding value.
package prefs
