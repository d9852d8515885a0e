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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/tinworth/dashboy/config"
	"github.com/tinworth/dashboy/hardware/nullcore"
	"github.com/tinworth/dashboy/logger"
	"github.com/tinworth/dashboy/modalflag"
	"github.com/tinworth/dashboy/playback"
	"github.com/tinworth/dashboy/statsview"
	"github.com/tinworth/dashboy/version"
	"github.com/tinworth/dashboy/wavwriter"
)

// the configuration file read unless the config flag says otherwise
const defaultConfigFile = "dashboy.toml"

func init() {
	// SDL requires that the window and its events live on the thread that
	// initialised the video subsystem
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	configFile := md.AddString("config", defaultConfigFile, "configuration file")
	scale := md.AddInt("scale", 0, "render scale (0 means use configuration)")
	fullscreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
	pause := md.AddBool("pause", false, "start paused")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		return err
	}

	// command line flags override the configuration file
	if *scale > 0 {
		cfg.Video.RenderScale = *scale
	}
	if *fullscreen {
		cfg.Video.Fullscreen = true
	}
	if *pause {
		cfg.StartPaused = true
	}
	if *wav != "" {
		cfg.Audio.WavFile = *wav
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("* statsview not in this build (build with statsview tag)")
		}
	}

	cor := nullcore.NewNullCore(cfg.Audio.SampleRate, cfg.Audio.BufferFrames)

	var listeners []playback.Listener

	// add wavwriter listener if wav argument has been specified
	if cfg.Audio.WavFile != "" {
		aw, err := wavwriter.New(cfg.Audio.WavFile, cfg.Audio.SampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.End(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
		listeners = append(listeners, aw)
	}

	return playback.Play(cor, &cfg, listeners...)
}
