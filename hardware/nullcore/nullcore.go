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

// Package nullcore is a reference implementation of the hardware.Core
// contract. It emulates no machine at all. Video output is a moving test
// card and audio output is a square wave, which makes pacing problems both
// visible and audible when working on the host.
package nullcore

import (
	"github.com/tinworth/dashboy/hardware"
)

// the test card frame rate. close enough to the DMG's 59.7Hz for a core
// that displays nothing real
const framesPerSecond = 60

// square wave frequency in Hz
const toneFrequency = 440

// square wave amplitude either side of the unsigned 8-bit zero point
const (
	toneHigh = 0x90
	toneLow  = 0x70
)

// NullCore implements the hardware.Core interface.
type NullCore struct {
	cycles uint64

	// cycle counts at which the next sample/frame falls due
	cyclesPerSample uint64
	cyclesPerFrame  uint64
	nextSample      uint64
	nextFrame       uint64

	// audio samples accumulated since the last call to
	// PendingAudioSamples(). audioLimit is the byte count at which
	// EventAudioBufferFull is raised
	audio      []uint8
	audioLimit int

	// square wave state
	tonePeriod  int
	toneCounter int
	toneLevel   uint8

	pixels   []uint8
	frameNum int
}

// NewNullCore is the preferred method of initialisation for the NullCore
// type. The sample rate and buffer length in frames should match what the
// audio device has negotiated.
func NewNullCore(sampleRate int, bufferFrames int) *NullCore {
	cor := &NullCore{
		cyclesPerSample: hardware.ClocksPerSecond / uint64(sampleRate),
		cyclesPerFrame:  hardware.ClocksPerSecond / framesPerSecond,
		audioLimit:      bufferFrames * 2,
		tonePeriod:      sampleRate / toneFrequency / 2,
		toneLevel:       toneLow,
		pixels:          make([]uint8, hardware.FrameBufferLength),
	}
	cor.audio = make([]uint8, 0, cor.audioLimit+2)
	cor.nextSample = cor.cyclesPerSample
	cor.nextFrame = cor.cyclesPerFrame
	return cor
}

// RunUntil implements the hardware.Core interface.
func (cor *NullCore) RunUntil(target uint64) hardware.Event {
	var ev hardware.Event

	for ev == 0 {
		if cor.cycles >= target {
			return hardware.EventTargetReached
		}

		// advance to the nearest of the target, the next sample and the
		// next frame
		next := target
		if cor.nextSample < next {
			next = cor.nextSample
		}
		if cor.nextFrame < next {
			next = cor.nextFrame
		}
		cor.cycles = next

		if cor.cycles == cor.nextSample {
			cor.mixSample()
			cor.nextSample += cor.cyclesPerSample
			if len(cor.audio) >= cor.audioLimit {
				ev |= hardware.EventAudioBufferFull
			}
		}

		if cor.cycles == cor.nextFrame {
			cor.renderFrame()
			cor.nextFrame += cor.cyclesPerFrame
			ev |= hardware.EventNewFrame
		}

		if cor.cycles >= target {
			ev |= hardware.EventTargetReached
		}
	}

	return ev
}

// CurrentCycles implements the hardware.Core interface.
func (cor *NullCore) CurrentCycles() uint64 {
	return cor.cycles
}

// FrameBuffer implements the hardware.Core interface.
func (cor *NullCore) FrameBuffer() []uint8 {
	return cor.pixels
}

// PendingAudioSamples implements the hardware.Core interface.
func (cor *NullCore) PendingAudioSamples() []uint8 {
	pending := cor.audio
	cor.audio = cor.audio[len(cor.audio):]
	return pending
}

// append one stereo sample frame of the square wave.
func (cor *NullCore) mixSample() {
	cor.toneCounter++
	if cor.toneCounter >= cor.tonePeriod {
		cor.toneCounter = 0
		if cor.toneLevel == toneLow {
			cor.toneLevel = toneHigh
		} else {
			cor.toneLevel = toneLow
		}
	}
	cor.audio = append(cor.audio, cor.toneLevel, cor.toneLevel)
}

// renderFrame draws the test card. a grey checkboard with a white column
// that moves one pixel per frame.
func (cor *NullCore) renderFrame() {
	cor.frameNum++
	column := cor.frameNum % hardware.ScreenWidth

	i := 0
	for y := 0; y < hardware.ScreenHeight; y++ {
		for x := 0; x < hardware.ScreenWidth; x++ {
			var v uint8 = 0x40
			if (x/8+y/8)%2 == 0 {
				v = 0x80
			}
			if x == column {
				v = 0xff
			}
			cor.pixels[i] = v
			cor.pixels[i+1] = v
			cor.pixels[i+2] = v
			cor.pixels[i+3] = 0xff
			i += 4
		}
	}
}
