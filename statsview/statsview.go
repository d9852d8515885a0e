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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/tinworth/dashboy/logger"
)

// Address the stats server listens on.
const Address = "localhost:12560"

// the graphical statistics page, relative to Address. pprof endpoints live
// under /debug/pprof/ on the same server
const page = "/debug/statsview"

// Launch the stats server. The server runs in its own goroutine for the
// remainder of the process, there is no way to stop it. The server address
// is noted on the supplied io.Writer and in the central logger.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	go func() {
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf("statsview", "listening on %s", Address)
	fmt.Fprintf(output, "stats server available at %s%s\n", Address, page)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
