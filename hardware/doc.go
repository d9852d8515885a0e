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

// Package hardware defines the contract between an emulation core and the
// playback host. The host does not care how the core works internally, only
// that it can be driven to a cycle target and that it reports the events the
// host needs to react to.
//
// The nullcore sub-package is a reference implementation of the contract.
// It produces a test card and a square wave rather than running any real
// machine but its cycle accounting is exact.
package hardware
