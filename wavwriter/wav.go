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

// Package wavwriter records the audio delivered during a playback session
// to disk as a WAV file. Note that audio data is buffered in memory in its
// entirety, and written to disk on program end. It is therefore probably
// only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/tinworth/dashboy/curated"
	"github.com/tinworth/dashboy/logger"
	"github.com/tinworth/dashboy/playback"
)

// WavWriter implements the playback.Listener interface.
type WavWriter struct {
	playback.BaseListener

	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
// The sample rate should be the rate negotiated by the audio device.
func New(filename string, sampleRate int) (*WavWriter, error) {
	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}

	return aw, nil
}

// OnAudioReady implements the playback.Listener interface. Samples are
// recorded as delivered to the pacer, before widening. Deliveries dropped
// by the backpressure policy are recorded all the same, so the file is a
// truer record of the emulation than of what was heard.
func (aw *WavWriter) OnAudioReady(samples []uint8, _ int, _ int) {
	for i := 0; i+1 < len(samples); i += 2 {
		w := wav.Sample{}
		w.Values[0] = int(samples[i])
		w.Values[1] = int(samples[i+1])
		aw.buffer = append(aw.buffer, w)
	}
}

// End writes the buffered audio to disk. The WavWriter should not be used
// afterwards.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.sampleRate), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
