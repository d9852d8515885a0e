// This file is part of Dashboy.
//
// Dashboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dashboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dashboy.  If not, see <https://www.gnu.org/licenses/>.

package playback

import (
	"time"
)

// Clock reports the time elapsed since its creation. It reads the
// monotonic clock so the value is immune to adjustments of the calendar
// clock while the program is running.
type Clock struct {
	start time.Time
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// ElapsedMilliseconds returns the number of milliseconds since the clock
// was created. The value never decreases between calls.
func (clk *Clock) ElapsedMilliseconds() float64 {
	return float64(time.Since(clk.start)) / float64(time.Millisecond)
}
