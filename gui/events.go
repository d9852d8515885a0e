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

package gui

// Event is a tagged union of the events produced by the windowing system.
// Concrete event types are listed below.
//
// Note that key presses and key releases are distinct types. Handlers that
// care about one should not have to think about the other.
type Event interface{}

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyDown is sent when a key is pressed.
type EventKeyDown struct {
	Key    string
	Mod    KeyMod
	Repeat bool
}

// EventKeyUp is sent when a key is released.
type EventKeyUp struct {
	Key string
	Mod KeyMod
}

// EventWindowResize is sent when the window surface changes size. Width and
// Height are in drawable pixels.
type EventWindowResize struct {
	Width  int32
	Height int32
}

// EventQuit is sent when the user asks for the application to close.
type EventQuit struct{}
