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

	"github.com/tinworth/dashboy/playback"
	"github.com/tinworth/dashboy/test"
)

func TestPauseResetsPacer(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, false)
	test.Equate(t, int(con.State()), int(playback.Running))

	con.SetPause(true)
	test.Equate(t, con.Paused(), true)
	test.Equate(t, pacer.resets, 1)

	// requesting the current value again is not a transition
	con.SetPause(true)
	test.Equate(t, pacer.resets, 1)

	con.SetPause(false)
	test.Equate(t, con.Paused(), false)
	test.Equate(t, pacer.resets, 2)
}

func TestTogglePause(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, false)

	con.TogglePause()
	test.Equate(t, con.Paused(), true)
	con.TogglePause()
	test.Equate(t, con.Paused(), false)
	test.Equate(t, pacer.resets, 2)
}

func TestStartPaused(t *testing.T) {
	con := playback.NewController(&fakePacer{}, true)
	test.Equate(t, int(con.State()), int(playback.Paused))
}

func TestSingleStep(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, true)

	// arming from the paused state is an unpause for one quantum. the pacer
	// resets on the way in and again on the return to the paused state
	con.Step()
	test.Equate(t, int(con.State()), int(playback.SingleStepArmed))
	test.Equate(t, con.Paused(), false)
	test.Equate(t, pacer.resets, 1)

	// a second step request while armed changes nothing
	con.Step()
	test.Equate(t, pacer.resets, 1)

	con.StepDone()
	test.Equate(t, int(con.State()), int(playback.Paused))
	test.Equate(t, pacer.resets, 2)
}

func TestSingleStepWhileRunning(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, false)

	// stepping while running means "run one more quantum then pause". the
	// paused flag does not change on arming so the pacer is left alone until
	// the quantum completes
	con.Step()
	test.Equate(t, int(con.State()), int(playback.SingleStepArmed))
	test.Equate(t, pacer.resets, 0)

	con.StepDone()
	test.Equate(t, int(con.State()), int(playback.Paused))
	test.Equate(t, pacer.resets, 1)
}

func TestRepeatedStepEmptiesQueue(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, true)

	// queued audio must not build up over many step cycles. if it did, the
	// queue would eventually reach the pacer's target watermark and playback
	// would start while the emulation is stopped
	for i := 0; i < 10; i++ {
		con.Step()

		// the delivery that happens during the stepped quantum
		_, _, err := pacer.Deliver(make([]uint8, 2048))
		test.ExpectedSuccess(t, err)

		con.StepDone()
		test.Equate(t, pacer.queued, 0)
	}
}

func TestSyncModeResetsPacer(t *testing.T) {
	pacer := &fakePacer{}
	con := playback.NewController(pacer, false)
	test.Equate(t, con.Sync(), true)

	con.SetSync(false)
	test.Equate(t, con.Sync(), false)
	test.Equate(t, pacer.resets, 1)

	con.SetSync(false)
	test.Equate(t, pacer.resets, 1)

	con.SetSync(true)
	test.Equate(t, pacer.resets, 2)
}
