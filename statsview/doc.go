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

// Package statsview serves runtime statistics over a local HTTP server,
// useful when chasing pacing problems that only show under load. It wraps
// "github.com/go-echarts/statsview" and is compiled in only when the
// statsview build constraint is present; without the constraint Launch()
// is a no-op and Available() returns false.
//
// When built in and launched, graphs are served at
//
//	localhost:12560/debug/statsview
//
// and the standard pprof endpoints at
//
//	localhost:12560/debug/pprof/
package statsview
