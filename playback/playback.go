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

// Package playback is the real-time heart of Dashboy. The Driver converts
// elapsed wall-clock time into emulation cycles and dispatches the core's
// events. The Controller gates the Driver with a small run/pause/step state
// machine. Play() assembles the two with the SDL collaborators and runs the
// tick loop until the user quits.
package playback

import (
	"os"
	"os/signal"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tinworth/dashboy/config"
	"github.com/tinworth/dashboy/gui"
	"github.com/tinworth/dashboy/gui/sdlaudio"
	"github.com/tinworth/dashboy/gui/sdlplay"
	"github.com/tinworth/dashboy/hardware"
	"github.com/tinworth/dashboy/logger"
)

// how long to sleep each tick while paused. presentation still happens so
// that the window redraws after a resize
const pausedTickMS = 10

// Play runs the emulation core in real time until the user quits. It owns
// the SDL lifecycle and must be called from the main goroutine.
//
// Resources are acquired in dependency order and released in reverse on
// every exit path, including a failed initialisation.
func Play(core hardware.Core, cfg *config.Config, listeners ...Listener) error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return err
	}
	defer sdl.Quit()

	scr, err := sdlplay.NewScreen(cfg.Video.RenderScale, cfg.Video.Fullscreen, cfg.Video.VSync)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	aud, err := sdlaudio.NewAudio(cfg.Audio.SampleRate, cfg.Audio.BufferFrames)
	if err != nil {
		return err
	}
	defer aud.End()

	drv := NewDriver(core, aud, scr)
	for _, lst := range listeners {
		drv.AddListener(lst)
	}

	con := NewController(aud, cfg.StartPaused)
	if cfg.StartPaused {
		scr.SetTitleSuffix(Paused.String())
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	logger.Logf("playback", "starting: %s", con.State())

	// the display's refresh period. used to pace the loop when buffer swaps
	// are not doing it
	frameMS := 1000.0 / float64(scr.RefreshRate())

	clk := NewClock()
	last := clk.ElapsedMilliseconds()

	for {
		for _, ev := range scr.Service() {
			switch ev := ev.(type) {
			case gui.EventQuit:
				return nil
			case gui.EventKeyDown:
				if quit := keyDown(ev, con, scr, drv); quit {
					return nil
				}
			case gui.EventKeyUp:
				keyUp(ev, con, scr, cfg)
			}
		}

		select {
		case <-intChan:
			logger.Log("playback", "interrupted")
			return nil
		default:
		}

		now := clk.ElapsedMilliseconds()
		delta := now - last
		last = now

		if con.Paused() {
			scr.Present()
			sdl.Delay(pausedTickMS)
			continue
		}

		_, err := drv.Advance(delta)
		if err != nil {
			return err
		}

		if con.State() == SingleStepArmed {
			con.StepDone()
			scr.SetTitleSuffix(Paused.String())
		}

		// one present per tick regardless of how many frames the advance
		// produced. with vsync enabled the swap paces the loop
		scr.Present()

		// if the driver refused the swap interval the present returns
		// immediately and the loop would spin flat out. sleep away the rest
		// of the refresh period instead. sync-mode off skips the sleep, that
		// mode exists to run unconstrained
		if con.Sync() && !scr.VSyncActive() {
			if d := paceDelay(frameMS, clk.ElapsedMilliseconds()-now); d > 0 {
				sdl.Delay(d)
			}
		}
	}
}

// paceDelay returns the number of milliseconds left of the refresh period
// after spentMS has been consumed by the tick.
func paceDelay(frameMS float64, spentMS float64) uint32 {
	if spentMS >= frameMS {
		return 0
	}
	return uint32(frameMS - spentMS)
}

// keyDown applies a key press. Returns true if the program should quit.
func keyDown(ev gui.EventKeyDown, con *Controller, scr *sdlplay.Screen, drv *Driver) bool {
	if ev.Repeat {
		return false
	}

	switch ev.Key {
	case "Escape":
		return true

	case "Space":
		con.TogglePause()
		if con.Paused() {
			scr.SetTitleSuffix(Paused.String())
		} else {
			scr.SetTitleSuffix("")
		}

	case "N":
		con.Step()

	case "Tab":
		// sync-mode off while the key is held. the emulation still paces
		// itself by the wall clock but presentation no longer waits for the
		// display
		con.SetSync(false)
		scr.SetVSync(false)

	case "F6":
		drv.NotifyStateSave()

	case "F9":
		drv.NotifyStateLoad()
	}

	return false
}

// keyUp applies a key release.
func keyUp(ev gui.EventKeyUp, con *Controller, scr *sdlplay.Screen, cfg *config.Config) {
	switch ev.Key {
	case "Tab":
		con.SetSync(true)
		scr.SetVSync(cfg.Video.VSync)

	case "F11":
		scr.SetFullscreen(!scr.IsFullscreen())
	}
}
