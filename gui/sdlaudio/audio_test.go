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

package sdlaudio

import (
	"testing"

	"github.com/tinworth/dashboy/test"
)

// fakeQueue stands in for the SDL device. it simply counts bytes and never
// consumes them, which lets tests control the occupancy exactly.
type fakeQueue struct {
	queued  uint32
	paused  bool
	pauses  int
	cleared int
	closed  bool
}

func (q *fakeQueue) QueuedSize() uint32 {
	return q.queued
}

func (q *fakeQueue) Queue(data []uint8) error {
	q.queued += uint32(len(data))
	return nil
}

func (q *fakeQueue) Clear() {
	q.queued = 0
	q.cleared++
}

func (q *fakeQueue) Pause(pause bool) {
	q.paused = pause
	q.pauses++
}

func (q *fakeQueue) Close() {
	q.closed = true
}

// a source chunk that converts to exactly one device buffer. the device
// buffer is 4096 bytes of 16-bit stereo so the 8-bit stereo source is a
// quarter of that.
func fullChunk() []uint8 {
	src := make([]uint8, 1024*2)
	for i := range src {
		src[i] = 0x80
	}
	return src
}

func TestPriming(t *testing.T) {
	fake := &fakeQueue{paused: true}
	aud := newAudio(fake, 4096)

	test.Equate(t, aud.Ready(), false)

	// first delivery. below the target watermark of 8192 so playback must
	// not start
	queued, added, err := aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, queued, 4096)
	test.Equate(t, added, 4096)
	test.Equate(t, aud.Ready(), false)
	test.Equate(t, fake.paused, true)

	// second delivery reaches the target exactly. playback starts
	queued, added, err = aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, queued, 8192)
	test.Equate(t, added, 4096)
	test.Equate(t, aud.Ready(), true)
	test.Equate(t, fake.paused, false)

	// further deliveries do not unpause again
	pauses := fake.pauses
	_, _, err = aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, fake.pauses, pauses)
}

func TestDropAtMaxWatermark(t *testing.T) {
	fake := &fakeQueue{paused: true}
	aud := newAudio(fake, 4096)

	// five deliveries take the queue to the maximum watermark of 20480
	for i := 0; i < 5; i++ {
		_, added, err := aud.Deliver(fullChunk())
		test.ExpectedSuccess(t, err)
		test.Equate(t, added, 4096)
	}
	test.Equate(t, aud.QueuedBytes(), 20480)

	// the sixth delivery is dropped in its entirety
	queued, added, err := aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, added, 0)
	test.Equate(t, queued, 20480)

	// once the device has consumed some of the queue, delivery resumes
	fake.queued = 16384
	queued, added, err = aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, added, 4096)
	test.Equate(t, queued, 20480)
}

func TestReset(t *testing.T) {
	fake := &fakeQueue{paused: true}
	aud := newAudio(fake, 4096)

	// prime the queue until playback starts
	for !aud.Ready() {
		_, _, err := aud.Deliver(fullChunk())
		test.ExpectedSuccess(t, err)
	}
	test.Equate(t, fake.paused, false)

	aud.Reset()
	test.Equate(t, aud.Ready(), false)
	test.Equate(t, fake.paused, true)
	test.Equate(t, fake.cleared, 1)
	test.Equate(t, aud.QueuedBytes(), 0)

	// the queue primes again from empty. one delivery is not enough
	_, _, err := aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, aud.Ready(), false)

	_, _, err = aud.Deliver(fullChunk())
	test.ExpectedSuccess(t, err)
	test.Equate(t, aud.Ready(), true)
}

func TestSampleWidening(t *testing.T) {
	fake := &fakeQueue{paused: true}
	aud := newAudio(fake, 4096)

	// one stereo frame with distinct channel values
	_, added, err := aud.Deliver([]uint8{0x12, 0x34})
	test.ExpectedSuccess(t, err)
	test.Equate(t, added, 4)

	// widened by a left shift of eight, little-endian on the wire
	test.Equate(t, int(aud.staging[0]), 0x00)
	test.Equate(t, int(aud.staging[1]), 0x12)
	test.Equate(t, int(aud.staging[2]), 0x00)
	test.Equate(t, int(aud.staging[3]), 0x34)
}

func TestOversizedDeliveryClamped(t *testing.T) {
	fake := &fakeQueue{paused: true}
	aud := newAudio(fake, 4096)

	// twice the device buffer's worth of source. the excess is discarded
	// rather than queued
	src := make([]uint8, 1024*4)
	_, added, err := aud.Deliver(src)
	test.ExpectedSuccess(t, err)
	test.Equate(t, added, 4096)
}
