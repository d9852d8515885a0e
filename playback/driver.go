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
	"github.com/tinworth/dashboy/hardware"
)

// AudioPacer is the audio half of the host as the Driver sees it. The
// concrete implementation is sdlaudio.Audio.
type AudioPacer interface {
	// Deliver the core's pending samples. Returns the device queue
	// occupancy in bytes after the delivery and the number of bytes added.
	Deliver(src []uint8) (int, int, error)

	// Reset returns the pacer to its priming state with an empty queue.
	Reset()
}

// FrameUploader is the part of the video half that the Driver drives
// directly. The concrete implementation is sdlplay.Screen.
type FrameUploader interface {
	Upload(pixels []uint8)
}

// Driver advances the emulation core in wall-clock sized quanta,
// dispatching the core's events to the audio and video collaborators.
type Driver struct {
	core     hardware.Core
	pacer    AudioPacer
	uploader FrameUploader

	listeners []Listener

	// the cycle count most recently asked of the core. never decreases
	untilCycles uint64
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(core hardware.Core, pacer AudioPacer, uploader FrameUploader) *Driver {
	return &Driver{
		core:     core,
		pacer:    pacer,
		uploader: uploader,
	}
}

// AddListener registers a Listener for playback notifications.
func (drv *Driver) AddListener(lst Listener) {
	drv.listeners = append(drv.listeners, lst)
}

// Advance runs the emulation core for the cycle equivalent of deltaMS
// milliseconds of wall-clock time. Frame and audio events raised by the
// core along the way are dispatched as they occur.
//
// The returned boolean indicates that at least one frame was completed
// during the call and that a Present is worthwhile. The caller presents at
// its own rate. Multiple frames inside one call coalesce to the newest.
func (drv *Driver) Advance(deltaMS float64) (bool, error) {
	deltaCycles := uint64(deltaMS * hardware.ClocksPerSecond / 1000)
	drv.untilCycles = drv.core.CurrentCycles() + deltaCycles

	newFrame := false

	for {
		ev := drv.core.RunUntil(drv.untilCycles)

		if ev&hardware.EventNewFrame == hardware.EventNewFrame {
			pixels := drv.core.FrameBuffer()
			drv.uploader.Upload(pixels)
			newFrame = true
			for _, lst := range drv.listeners {
				lst.OnFrame(pixels)
			}
		}

		if ev&hardware.EventAudioBufferFull == hardware.EventAudioBufferFull {
			samples := drv.core.PendingAudioSamples()
			queued, added, err := drv.pacer.Deliver(samples)
			if err != nil {
				return newFrame, err
			}
			for _, lst := range drv.listeners {
				lst.OnAudioReady(samples, queued, added)
			}
		}

		if ev&hardware.EventTargetReached == hardware.EventTargetReached {
			break
		}
	}

	return newFrame, nil
}

// UntilCycles returns the cycle target of the most recent Advance call.
func (drv *Driver) UntilCycles() uint64 {
	return drv.untilCycles
}

// NotifyStateSave tells every listener that the user has asked for the
// emulation state to be saved.
func (drv *Driver) NotifyStateSave() {
	for _, lst := range drv.listeners {
		lst.OnStateSaveRequest()
	}
}

// NotifyStateLoad tells every listener that the user has asked for the
// emulation state to be restored.
func (drv *Driver) NotifyStateLoad() {
	for _, lst := range drv.listeners {
		lst.OnStateLoadRequest()
	}
}
