// Copyright 2026 The Tombi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/version"
)

func TestStringRoundTrip(t *testing.T) {
	qt.Assert(t, qt.Equals(version.V1_0_0.String(), "v1.0.0"))
	qt.Assert(t, qt.Equals(version.V1_1_0Preview.String(), "v1.1.0-preview"))
}

func TestDefaultIsNewest(t *testing.T) {
	all := version.AllVersions()
	qt.Assert(t, qt.Equals(version.Default, all[len(all)-1]))
}

func TestCompatibleEmptySetMatchesEverything(t *testing.T) {
	qt.Assert(t, qt.IsTrue(version.V1_0_0.Compatible(nil)))
	qt.Assert(t, qt.IsTrue(version.V1_1_0Preview.Compatible(version.Set{})))
}

func TestCompatibleRestrictsToMembers(t *testing.T) {
	set := version.SetOf(version.V1_1_0Preview)
	qt.Assert(t, qt.IsFalse(version.V1_0_0.Compatible(set)))
	qt.Assert(t, qt.IsTrue(version.V1_1_0Preview.Compatible(set)))
}

func TestAllVersionsAscending(t *testing.T) {
	all := version.AllVersions()
	for i := 1; i < len(all); i++ {
		qt.Assert(t, qt.IsTrue(all[i-1] < all[i]))
	}
}
