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

// Package assert is used to check that functions are called from the
// expected goroutine. The sdlrender package in particular must only ever be
// used from the goroutine that created the window.
//
// The checks are only performed when the "assertions" build tag is
// specified. Without that tag the functions are stubbed and cost nothing.
package assert
