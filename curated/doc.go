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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The pattern string
// is used both for formatting, as in the fmt package, and for identification
// with the Is() and Has() functions. For example:
//
//	const NotPrimed = "audio: device not primed"
//
//	err := curated.Errorf(NotPrimed)
//
//	...
//
//	if curated.Is(err, NotPrimed) {
//		...
//	}
//
// Because curated errors compose well, errors deep in a chain can be checked
// for with the Has() function even when intermediate layers have wrapped
// the error with their own pattern.
package curated
