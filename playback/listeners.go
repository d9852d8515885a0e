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

// Listener receives notifications from the playback loop. Register with
// Driver.AddListener(). Any number of listeners may be registered,
// including none.
type Listener interface {
	// OnFrame is called when the core has completed a frame, after the
	// frame has been uploaded for presentation.
	OnFrame(pixels []uint8)

	// OnAudioReady is called after every audio delivery. queued is the
	// occupancy of the device queue in bytes and added is the number of
	// bytes the delivery contributed. added is zero for a dropped delivery.
	OnAudioReady(samples []uint8, queued int, added int)

	// OnStateSaveRequest and OnStateLoadRequest are called when the user
	// asks for the emulation state to be saved or restored.
	OnStateSaveRequest()
	OnStateLoadRequest()
}

// BaseListener is a no-op implementation of the Listener interface. Embed
// it to implement only the notifications of interest.
type BaseListener struct{}

// OnFrame implements the Listener interface.
func (BaseListener) OnFrame(_ []uint8) {
}

// OnAudioReady implements the Listener interface.
func (BaseListener) OnAudioReady(_ []uint8, _ int, _ int) {
}

// OnStateSaveRequest implements the Listener interface.
func (BaseListener) OnStateSaveRequest() {
}

// OnStateLoadRequest implements the Listener interface.
func (BaseListener) OnStateLoadRequest() {
}
