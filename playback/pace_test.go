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
	"testing"

	"github.com/tinworth/dashboy/test"
)

func TestPaceDelay(t *testing.T) {
	// a 60Hz refresh period with a fast tick leaves most of the period
	test.Equate(t, int(paceDelay(16.666, 2.0)), 14)

	// a tick that consumed the whole period sleeps not at all
	test.Equate(t, int(paceDelay(16.666, 16.666)), 0)

	// an overrunning tick must not wrap around to a huge delay
	test.Equate(t, int(paceDelay(16.666, 40.0)), 0)

	test.Equate(t, int(paceDelay(16.666, 0.0)), 16)
}