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

package curated_test

import (
	"testing"

	"github.com/tinworth/dashboy/curated"
	"github.com/tinworth/dashboy/test"
)

const (
	testError  = "test error: %v"
	otherError = "other error: %v"
)

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, 10)
	test.Equate(t, e.Error(), "test error: 10")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedFailure(t, curated.Is(e, otherError))

	// plain errors are not curated errors
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(otherError, "inside")
	outer := curated.Errorf(testError, inner)

	test.ExpectedSuccess(t, curated.Has(outer, testError))
	test.ExpectedSuccess(t, curated.Has(outer, otherError))
	test.ExpectedFailure(t, curated.Is(outer, otherError))
}

func TestDeduplication(t *testing.T) {
	// when an error is wrapped with the same pattern prefix the duplicate
	// message part is removed
	inner := curated.Errorf("video: %v", "no such display")
	outer := curated.Errorf("video: %v", inner)
	test.Equate(t, outer.Error(), "video: no such display")
}
