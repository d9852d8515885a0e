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

package hardware

import "strings"

// ClocksPerSecond is the number of machine clock cycles in one second of
// emulated time (the DMG machine clock).
const ClocksPerSecond = 4194304

// Dimensions of the core's screen in pixels. The frame buffer is always
// exactly this size.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// FrameBufferLength is the length in bytes of the frame buffer returned by
// Core.FrameBuffer(). Pixels are RGBA, four bytes each.
const FrameBufferLength = ScreenWidth * ScreenHeight * 4

// Event is the set of conditions a core reports from RunUntil(). More than
// one event can be reported at once.
type Event int

// List of defined events.
const (
	// a frame has been completed and the frame buffer is ready to be read
	EventNewFrame Event = 1 << iota

	// the core's audio buffer has filled and should be drained with
	// PendingAudioSamples()
	EventAudioBufferFull

	// the cycle target given to RunUntil() has been reached
	EventTargetReached
)

func (ev Event) String() string {
	s := []string{}
	if ev&EventNewFrame == EventNewFrame {
		s = append(s, "NewFrame")
	}
	if ev&EventAudioBufferFull == EventAudioBufferFull {
		s = append(s, "AudioBufferFull")
	}
	if ev&EventTargetReached == EventTargetReached {
		s = append(s, "TargetReached")
	}
	if len(s) == 0 {
		return "None"
	}
	return strings.Join(s, "+")
}

// Core is the contract an emulation core must satisfy in order to be driven
// by the playback host. All functions are called from the host's single
// control flow. No function should block.
type Core interface {
	// RunUntil advances the emulation towards the target cycle count,
	// returning as soon as one or more events occur. The host keeps calling
	// RunUntil with the same target until EventTargetReached is reported.
	// The core must never run beyond the point of the returned events.
	RunUntil(target uint64) Event

	// CurrentCycles returns the number of cycles executed by the core. The
	// value is monotonically non-decreasing.
	CurrentCycles() uint64

	// FrameBuffer returns the core's screen as RGBA pixels. The returned
	// slice is owned by the core and is only valid to read between an
	// EventNewFrame and the next call to RunUntil().
	FrameBuffer() []uint8

	// PendingAudioSamples returns the unsigned 8-bit interleaved stereo
	// samples accumulated since the last call. The core's buffer is cleared
	// by the call.
	PendingAudioSamples() []uint8
}
