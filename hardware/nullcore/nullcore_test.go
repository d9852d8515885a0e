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

package nullcore_test

import (
	"testing"

	"github.com/tinworth/dashboy/hardware"
	"github.com/tinworth/dashboy/hardware/nullcore"
	"github.com/tinworth/dashboy/test"
)

func TestTargetReachedExactly(t *testing.T) {
	cor := nullcore.NewNullCore(44100, 1024)

	// 50 cycles is before the first sample falls due so no intermediate
	// events can occur
	ev := cor.RunUntil(50)
	test.Equate(t, int(ev), int(hardware.EventTargetReached))
	test.Equate(t, cor.CurrentCycles(), uint64(50))

	// running to the same target again is a no-op
	ev = cor.RunUntil(50)
	test.Equate(t, int(ev), int(hardware.EventTargetReached))
	test.Equate(t, cor.CurrentCycles(), uint64(50))
}

func TestAudioBufferFull(t *testing.T) {
	// a tiny buffer of 8 frames fills long before the target
	cor := nullcore.NewNullCore(44100, 8)

	ev := cor.RunUntil(hardware.ClocksPerSecond)
	test.Equate(t, int(ev&hardware.EventAudioBufferFull), int(hardware.EventAudioBufferFull))
	test.Equate(t, int(ev&hardware.EventTargetReached), 0)

	// 8 frames of interleaved stereo is 16 bytes
	pending := cor.PendingAudioSamples()
	test.Equate(t, len(pending), 16)

	// the core's buffer has been cleared by the call
	test.Equate(t, len(cor.PendingAudioSamples()), 0)
}

func TestNewFrame(t *testing.T) {
	cor := nullcore.NewNullCore(44100, 4096)

	var ev hardware.Event
	for ev&hardware.EventTargetReached != hardware.EventTargetReached {
		ev = cor.RunUntil(hardware.ClocksPerSecond / 60)
		if ev&hardware.EventAudioBufferFull == hardware.EventAudioBufferFull {
			_ = cor.PendingAudioSamples()
		}
	}

	// the frame falls due on the last cycle of the target
	test.Equate(t, int(ev&hardware.EventNewFrame), int(hardware.EventNewFrame))
	test.Equate(t, len(cor.FrameBuffer()), hardware.FrameBufferLength)
}

func TestCycleAccounting(t *testing.T) {
	cor := nullcore.NewNullCore(44100, 64)

	var target uint64
	for i := 0; i < 100; i++ {
		before := cor.CurrentCycles()
		target += 67108

		var ev hardware.Event
		for ev&hardware.EventTargetReached != hardware.EventTargetReached {
			ev = cor.RunUntil(target)
			if ev&hardware.EventAudioBufferFull == hardware.EventAudioBufferFull {
				_ = cor.PendingAudioSamples()
			}
		}

		if cor.CurrentCycles() < before {
			t.Fatalf("cycle counter went backwards")
		}
		test.Equate(t, cor.CurrentCycles(), target)
	}
}
