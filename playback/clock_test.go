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

package playback_test

import (
	"testing"
	"time"

	"github.com/tinworth/dashboy/playback"
)

func TestClockMonotonic(t *testing.T) {
	clk := playback.NewClock()

	prev := clk.ElapsedMilliseconds()
	if prev < 0 {
		t.Fatalf("elapsed time is negative")
	}

	for i := 0; i < 100; i++ {
		now := clk.ElapsedMilliseconds()
		if now < prev {
			t.Fatalf("elapsed time went backwards")
		}
		prev = now
	}
}

func TestClockAdvances(t *testing.T) {
	clk := playback.NewClock()

	// Sleep guarantees at least the stated duration
	time.Sleep(5 * time.Millisecond)
	if clk.ElapsedMilliseconds() < 5.0 {
		t.Fatalf("elapsed time below sleep duration")
	}
}
