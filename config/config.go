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

// Package config defines the startup configuration for the playback host.
// The configuration is read once at startup. It is not re-read or
// re-validated while the host is running.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tinworth/dashboy/curated"
)

// Video is the configuration for the display window.
type Video struct {
	// multiple of the core's screen size used for the initial window size
	RenderScale int

	// synchronise buffer swaps with the vertical retrace
	VSync bool

	// open the window in fullscreen
	Fullscreen bool
}

// Audio is the configuration for the audio output device.
type Audio struct {
	// requested sample rate in Hz. the device may negotiate a different rate
	SampleRate int

	// requested device buffer length in sample frames
	BufferFrames int

	// record delivered audio to this file. no recording if empty
	WavFile string
}

// Config is the complete startup configuration.
type Config struct {
	Video Video
	Audio Audio

	// begin with the emulation paused
	StartPaused bool
}

// Default returns a Config with sensible values for every field.
func Default() Config {
	return Config{
		Video: Video{
			RenderScale: 4,
			VSync:       true,
		},
		Audio: Audio{
			SampleRate:   44100,
			BufferFrames: 1024,
		},
	}
}

// Validate checks a Config for values the host cannot work with.
func (cfg Config) Validate() error {
	if cfg.Video.RenderScale < 1 {
		return curated.Errorf("config: render scale must be at least 1 (%d)", cfg.Video.RenderScale)
	}
	if cfg.Audio.SampleRate < 1 {
		return curated.Errorf("config: bad sample rate (%d)", cfg.Audio.SampleRate)
	}
	if cfg.Audio.BufferFrames < 1 {
		return curated.Errorf("config: bad audio buffer length (%d)", cfg.Audio.BufferFrames)
	}
	return nil
}

// Load a Config from an io.Reader. Fields not present in the TOML stream
// keep their default values.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, curated.Errorf("config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile is a convenience for Load with a named file. A missing file is
// not an error, the default configuration is returned instead.
func LoadFile(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), curated.Errorf("config: %v", err)
	}
	defer f.Close()

	return Load(f)
}

// Save a Config to an io.Writer.
func Save(cfg Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return curated.Errorf("config: %v", err)
	}
	return nil
}
