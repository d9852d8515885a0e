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

package config_test

import (
	"strings"
	"testing"

	"github.com/tinworth/dashboy/config"
	"github.com/tinworth/dashboy/test"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	test.ExpectedSuccess(t, cfg.Validate())
	test.Equate(t, cfg.Video.RenderScale, 4)
	test.Equate(t, cfg.Video.VSync, true)
	test.Equate(t, cfg.Audio.SampleRate, 44100)
	test.Equate(t, cfg.Audio.BufferFrames, 1024)
	test.Equate(t, cfg.StartPaused, false)
}

func TestLoad(t *testing.T) {
	r := strings.NewReader(`
StartPaused = true

[Video]
RenderScale = 2
VSync = false

[Audio]
SampleRate = 48000
`)

	cfg, err := config.Load(r)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cfg.Video.RenderScale, 2)
	test.Equate(t, cfg.Video.VSync, false)
	test.Equate(t, cfg.Audio.SampleRate, 48000)
	test.Equate(t, cfg.StartPaused, true)

	// fields not named in the stream keep their defaults
	test.Equate(t, cfg.Audio.BufferFrames, 1024)
}

func TestLoadInvalid(t *testing.T) {
	r := strings.NewReader(`
[Video]
RenderScale = 0
`)

	_, err := config.Load(r)
	test.ExpectedFailure(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.WavFile = "capture.wav"

	w := &strings.Builder{}
	test.ExpectedSuccess(t, config.Save(cfg, w))

	read, err := config.Load(strings.NewReader(w.String()))
	test.ExpectedSuccess(t, err)
	test.Equate(t, read.Audio.WavFile, "capture.wav")
	test.Equate(t, read.Video.RenderScale, cfg.Video.RenderScale)
}
