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

// State is the condition of the playback loop.
type State int

// List of valid playback states.
const (
	// the emulation advances with wall-clock time
	Running State = iota

	// the emulation does not advance
	Paused

	// the emulation will advance by exactly one quantum and then return to
	// the Paused state
	SingleStepArmed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case SingleStepArmed:
		return "single step"
	}
	return "unknown"
}

// Controller is the state machine that gates the Driver. It also carries
// the sync-mode flag. Both the paused flag and the sync-mode flag reset the
// audio pacer when they change, so that stale queued audio never plays
// against a timeline that has moved.
type Controller struct {
	state State
	pacer AudioPacer

	// sync-mode. true means presentation is synchronised to the display
	// refresh
	sync bool
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(pacer AudioPacer, startPaused bool) *Controller {
	con := &Controller{
		state: Running,
		pacer: pacer,
		sync:  true,
	}
	if startPaused {
		con.state = Paused
	}
	return con
}

// State returns the current playback state.
func (con *Controller) State() State {
	return con.state
}

// Paused returns true unless the emulation should advance on the next
// tick.
func (con *Controller) Paused() bool {
	return con.state == Paused
}

// SetPause changes the paused flag. A no-op if the flag already has the
// requested value. Arming of a single step is cancelled by either value.
func (con *Controller) SetPause(paused bool) {
	if paused {
		if con.state == Paused {
			return
		}
		con.state = Paused
	} else {
		if con.state == Running {
			return
		}
		con.state = Running
	}
	con.pacer.Reset()
}

// TogglePause flips the paused flag.
func (con *Controller) TogglePause() {
	con.SetPause(con.state != Paused)
}

// Step arms a single step: the emulation advances by exactly one quantum
// and then pauses. Stepping while running is a "run one more quantum then
// pause" request. Arming from the paused state unpauses for the duration of
// the quantum so the pacer is reset, as for any other unpause.
func (con *Controller) Step() {
	if con.state == SingleStepArmed {
		return
	}
	if con.state == Paused {
		con.pacer.Reset()
	}
	con.state = SingleStepArmed
}

// StepDone is called by the playback loop after an advance has completed
// under an armed single step. The state returns to Paused and the pacer is
// reset. Without the reset, audio queued during repeated steps accumulates
// until it reaches the target watermark and starts playing against a
// stopped emulation.
func (con *Controller) StepDone() {
	if con.state == SingleStepArmed {
		con.state = Paused
		con.pacer.Reset()
	}
}

// Sync returns the sync-mode flag.
func (con *Controller) Sync() bool {
	return con.sync
}

// SetSync changes the sync-mode flag. A no-op if the flag already has the
// requested value.
func (con *Controller) SetSync(sync bool) {
	if con.sync == sync {
		return
	}
	con.sync = sync
	con.pacer.Reset()
}
