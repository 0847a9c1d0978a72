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

import "time"

// the frame rate set by Init()
const defaultFPS = 60

// limiter paces frames to a target frame rate and measures the time taken by
// each frame. it never runs in the background, the wait() function sleeps
// for whatever is left of the frame's time budget.
type limiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time of the previous call to wait()
	last time.Time

	// the time between the two most recent calls to wait()
	delta time.Duration

	// replaceable for testing
	now   func() time.Time
	sleep func(time.Duration)
}

func newLimiter(framesPerSecond int) *limiter {
	lim := &limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	lim.setFPS(framesPerSecond)
	return lim
}

// setFPS changes the target frame rate. a value of zero or less means that
// frames are not limited.
func (lim *limiter) setFPS(framesPerSecond int) {
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
		return
	}
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// reset the limiter so that the next frame is measured from now.
func (lim *limiter) reset() {
	lim.last = lim.now()
	lim.delta = 0
}

// wait until the time budget of the current frame has been used.
func (lim *limiter) wait() {
	if lim.last.IsZero() {
		lim.reset()
	}

	elapsed := lim.now().Sub(lim.last)
	if lim.secondsPerFrame > 0 && elapsed < lim.secondsPerFrame {
		lim.sleep(lim.secondsPerFrame - elapsed)
	}

	t := lim.now()
	lim.delta = t.Sub(lim.last)
	lim.last = t
}

// deltaTime returns the duration of the previous frame in seconds.
func (lim *limiter) deltaTime() float32 {
	return float32(lim.delta.Seconds())
}
