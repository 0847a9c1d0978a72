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

//go:build assertions

package assert

import "fmt"

// Owner records the goroutine that is allowed to call a group of functions.
type Owner struct {
	id uint64
}

// Claim sets the calling goroutine as the owner.
func (o *Owner) Claim() {
	o.id = GoroutineID()
}

// Check panics if the calling goroutine is not the owner. Check does nothing
// if Claim() has not been called.
func (o *Owner) Check() {
	if o.id == 0 {
		return
	}
	if id := GoroutineID(); id != o.id {
		panic(fmt.Sprintf("assert: called from goroutine %d but owned by goroutine %d", id, o.id))
	}
}
