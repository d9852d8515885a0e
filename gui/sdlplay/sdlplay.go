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

// Package sdlplay presents the emulation screen in an SDL window with an
// OpenGL 3.2 context. The screen image is uploaded to a texture and drawn
// as a letterboxed quad. The package also translates SDL input events into
// the gui package's event types.
package sdlplay

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tinworth/dashboy/curated"
	"github.com/tinworth/dashboy/gui"
	"github.com/tinworth/dashboy/hardware"
	"github.com/tinworth/dashboy/logger"
	"github.com/tinworth/dashboy/version"
)

// fallback when SDL cannot tell us the monitor's refresh rate
const assumedRefreshRate = 60

// Screen is the SDL window in which the emulation is presented.
type Screen struct {
	window    *sdl.Window
	glContext sdl.GLContext

	rnd *renderer

	// monitor refresh rate as reported at startup
	refreshRate int

	// true when buffer swaps are known to wait for the vertical refresh.
	// when false the playback loop must pace itself from the wall clock
	vsyncActive bool

	fullscreen bool

	// events translated from SDL, returned by Service()
	events []gui.Event
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The video subsystem must have been initialised (see sdl.Init). The window
// is created at the screen size multiplied by scale.
func NewScreen(scale int, fullscreen bool, vsync bool) (*Screen, error) {
	scr := &Screen{}

	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger.Logf("sdlplay", "cannot query display mode: %v", err)
		scr.refreshRate = assumedRefreshRate
	} else {
		scr.refreshRate = int(mode.RefreshRate)
		if scr.refreshRate <= 0 {
			scr.refreshRate = assumedRefreshRate
		}
	}
	logger.Logf("sdlplay", "refresh rate: %dHz", scr.refreshRate)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(hardware.ScreenWidth*scale), int32(hardware.ScreenHeight*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.glContext, err = scr.window.GLCreateContext()
	if err != nil {
		scr.window.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = gl.Init()
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf("sdlplay", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("sdlplay", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("sdlplay", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	scr.rnd, err = newRenderer()
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.SetVSync(vsync)
	if fullscreen {
		scr.SetFullscreen(true)
	}

	w, h := scr.window.GLGetDrawableSize()
	scr.rnd.setViewport(w, h)

	return scr, nil
}

// Destroy releases the window and the OpenGL resources. The Screen cannot
// be used afterwards.
func (scr *Screen) Destroy() {
	if scr.rnd != nil {
		scr.rnd.destroy()
		scr.rnd = nil
	}
	if scr.glContext != nil {
		sdl.GLDeleteContext(scr.glContext)
		scr.glContext = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}
}

// RefreshRate returns the monitor's refresh rate in Hz.
func (scr *Screen) RefreshRate() int {
	return scr.refreshRate
}

// Upload copies a frame buffer into the screen texture. The buffer must be
// of hardware.FrameBufferLength.
func (scr *Screen) Upload(pixels []uint8) {
	scr.rnd.upload(pixels)
}

// Present draws the most recently uploaded frame and swaps buffers. With
// vsync enabled this call blocks until the next vertical refresh.
func (scr *Screen) Present() {
	scr.rnd.draw()
	scr.window.GLSwap()
}

// SetFullscreen switches between desktop fullscreen and windowed mode.
func (scr *Screen) SetFullscreen(fullscreen bool) {
	scr.fullscreen = fullscreen
	if fullscreen {
		scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		scr.window.SetFullscreen(0)
	}
}

// IsFullscreen returns true if the window is in fullscreen mode.
func (scr *Screen) IsFullscreen() bool {
	return scr.fullscreen
}

// SetVSync enables or disables synchronisation of buffer swaps with the
// vertical refresh. The request can fail, some drivers refuse to change
// the swap interval. VSyncActive() reports what actually happened.
func (scr *Screen) SetVSync(enabled bool) {
	i := 0
	if enabled {
		i = 1
	}
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf("sdlplay", "GLSetSwapInterval(%d): %v", i, err)
		scr.vsyncActive = false
		return
	}
	scr.vsyncActive = enabled
}

// VSyncActive returns true if buffer swaps wait for the vertical refresh.
// False either because vsync was disabled or because the driver refused
// it.
func (scr *Screen) VSyncActive() bool {
	return scr.vsyncActive
}

// Service polls SDL and returns the events gathered since the last call.
// Window resizes are applied to the renderer before being reported. Must be
// called from the main thread, like every other method of the Screen type.
func (scr *Screen) Service() []gui.Event {
	scr.events = scr.events[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.events = append(scr.events, gui.EventQuit{})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := scr.window.GLGetDrawableSize()
				scr.rnd.setViewport(w, h)
				scr.events = append(scr.events, gui.EventWindowResize{Width: w, Height: h})
			}

		case *sdl.KeyboardEvent:
			mod := gui.KeyModNone
			if ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			} else if ev.Keysym.Mod&sdl.KMOD_LALT == sdl.KMOD_LALT || ev.Keysym.Mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			}

			if ev.Type == sdl.KEYDOWN && ev.State == sdl.PRESSED {
				scr.events = append(scr.events, gui.EventKeyDown{
					Key:    sdl.GetKeyName(ev.Keysym.Sym),
					Mod:    mod,
					Repeat: ev.Repeat != 0,
				})
			} else if ev.Type == sdl.KEYUP && ev.State == sdl.RELEASED {
				scr.events = append(scr.events, gui.EventKeyUp{
					Key: sdl.GetKeyName(ev.Keysym.Sym),
					Mod: mod,
				})
			}
		}
	}

	return scr.events
}

// SetTitleSuffix appends information to the window title. An empty string
// restores the plain title.
func (scr *Screen) SetTitleSuffix(suffix string) {
	if suffix == "" {
		scr.window.SetTitle(version.ApplicationName)
		return
	}
	scr.window.SetTitle(fmt.Sprintf("%s [%s]", version.ApplicationName, suffix))
}
