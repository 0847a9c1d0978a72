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

//go:build !assertions

package assert

// Owner records the goroutine that is allowed to call a group of functions.
type Owner struct{}

// Claim sets the calling goroutine as the owner.
func (o *Owner) Claim() {}

// Check panics if the calling goroutine is not the owner.
func (o *Owner) Check() {}
