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

// Package sdlaudio delivers the emulation core's audio samples to an SDL
// queued-audio device.
//
// Delivery is governed by two watermarks derived from the negotiated device
// buffer size. Playback does not start until the queue has filled to the
// target watermark; while the queue sits at or above the maximum watermark
// whole deliveries are dropped. Dropping is preferred over unbounded queue
// growth because a long queue is audible as latency for the rest of the
// session, whereas a drop is a momentary glitch.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tinworth/dashboy/curated"
	"github.com/tinworth/dashboy/logger"
)

// number of interleaved channels delivered by the core and requested from
// the device
const numChannels = 2

// size in bytes of one sample frame on the device. two channels of 16-bit
// samples
const frameSize = numChannels * 2

// watermark multipliers applied to the negotiated device buffer size
const (
	targetQueuedMult = 2
	maxQueuedMult    = 5
)

// queue abstracts the device operations used by the pacer. the concrete
// implementation is sdlQueue. tests substitute their own.
type queue interface {
	QueuedSize() uint32
	Queue(data []uint8) error
	Clear()
	Pause(pause bool)
	Close()
}

// Audio outputs sound using SDL.
type Audio struct {
	dev queue

	// size in bytes of the negotiated device buffer
	bufferSize uint32

	// queue occupancy thresholds. fixed once the device has been opened
	targetQueued uint32
	maxQueued    uint32

	// scratch buffer for sample conversion. allocated once, reused by every
	// call to Deliver()
	staging []uint8

	// false while the queue is being primed. playback begins on the
	// transition to true
	ready bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
// The audio subsystem must have been initialised (see sdl.Init).
//
// The device is opened paused. Playback begins once enough audio has been
// delivered to reach the target watermark.
func NewAudio(sampleRate int, bufferFrames int) (*Audio, error) {
	request := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_U16,
		Channels: numChannels,
		Samples:  uint16(bufferFrames),
	}

	var spec sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, request, &spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf("sdlaudio", "negotiated: %dHz, %d channels, %d frames (%d bytes)",
		spec.Freq, spec.Channels, spec.Samples, spec.Size)

	return newAudio(&sdlQueue{id: id}, spec.Size), nil
}

// newAudio completes initialisation with the device queue decided. split
// from NewAudio for the benefit of the package tests.
func newAudio(dev queue, bufferSize uint32) *Audio {
	return &Audio{
		dev:          dev,
		bufferSize:   bufferSize,
		targetQueued: targetQueuedMult * bufferSize,
		maxQueued:    maxQueuedMult * bufferSize,
		staging:      make([]uint8, bufferSize),
	}
}

// Deliver the core's pending audio samples to the device. The source is
// unsigned 8-bit interleaved stereo, as produced by the core. Samples are
// widened to the device's 16-bit format by a plain bit-shift. It isn't an
// accurate resample but it keeps the zero point in the right place and it
// is cheap.
//
// The returned values are the queue occupancy in bytes after the delivery
// and the number of bytes added by the delivery. The added value is zero
// when the backpressure policy has dropped the chunk.
func (aud *Audio) Deliver(src []uint8) (int, int, error) {
	frames := len(src) / numChannels
	if max := int(aud.bufferSize) / frameSize; frames > max {
		frames = max
	}

	n := 0
	for i := 0; i < frames*numChannels; i++ {
		v := uint16(src[i]) << 8
		aud.staging[n] = uint8(v)
		aud.staging[n+1] = uint8(v >> 8)
		n += 2
	}

	queued := aud.dev.QueuedSize()

	// the backpressure policy. a queue at or above the maximum watermark
	// means the whole delivery is dropped. no partial enqueue and no retry,
	// the next delivery supersedes this one
	if queued < aud.maxQueued {
		if err := aud.dev.Queue(aud.staging[:n]); err != nil {
			return int(queued), 0, curated.Errorf("sdlaudio: %v", err)
		}
		queued += uint32(n)
	} else {
		n = 0
	}

	// start playback the first time the queue reaches the target watermark.
	// fires at most once per priming period
	if !aud.ready && queued >= aud.targetQueued {
		aud.ready = true
		aud.dev.Pause(false)
		logger.Logf("sdlaudio", "queue primed (%d bytes). starting playback", queued)
	}

	return int(queued), n, nil
}

// Reset stops playback, empties the device queue and returns the pacer to
// its priming state. Called whenever the pause state or the sync mode
// changes. Without the reset, a stale queue would play out of time with the
// emulation when playback resumes.
func (aud *Audio) Reset() {
	aud.ready = false
	aud.dev.Clear()
	aud.dev.Pause(true)
}

// Ready returns false while the queue is being primed.
func (aud *Audio) Ready() bool {
	return aud.ready
}

// QueuedBytes returns the current occupancy of the device queue.
func (aud *Audio) QueuedBytes() int {
	return int(aud.dev.QueuedSize())
}

// End stops playback and releases the audio device.
func (aud *Audio) End() {
	aud.dev.Pause(true)
	aud.dev.Close()
}

// sdlQueue implements the queue interface with a real SDL audio device.
type sdlQueue struct {
	id sdl.AudioDeviceID
}

func (q *sdlQueue) QueuedSize() uint32 {
	return sdl.GetQueuedAudioSize(q.id)
}

func (q *sdlQueue) Queue(data []uint8) error {
	return sdl.QueueAudio(q.id, data)
}

func (q *sdlQueue) Clear() {
	sdl.ClearQueuedAudio(q.id)
}

func (q *sdlQueue) Pause(pause bool) {
	sdl.PauseAudioDevice(q.id, pause)
}

func (q *sdlQueue) Close() {
	sdl.CloseAudioDevice(q.id)
}
