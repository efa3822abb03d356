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

// Package version defines the TOML language version carried through every
// layer of the pipeline.
package version

// TOML is a closed, totally ordered enumeration of the TOML dialects this
// module understands.
type TOML uint8

const (
	// V1_0_0 is TOML 1.0.0.
	V1_0_0 TOML = iota
	// V1_1_0Preview is the in-progress TOML 1.1.0 draft.
	V1_1_0Preview
)

// Default is the version used when a caller does not specify one.
const Default = V1_1_0Preview

// String returns the canonical textual form, e.g. "v1.1.0-preview".
func (v TOML) String() string {
	switch v {
	case V1_0_0:
		return "v1.0.0"
	case V1_1_0Preview:
		return "v1.1.0-preview"
	default:
		return "unknown"
	}
}

// Compatible reports whether v satisfies the version requirement set set,
// i.e. whether v is one of set's members. A nil or empty Set is compatible
// with every version.
func (v TOML) Compatible(set Set) bool {
	if set.empty() {
		return true
	}
	for _, member := range set {
		if member == v {
			return true
		}
	}
	return false
}

// Set is a collection of versions an error or feature applies to. An empty
// Set means "all versions".
type Set []TOML

func (s Set) empty() bool { return len(s) == 0 }

// AllVersions enumerates every dialect, in ascending order.
func AllVersions() []TOML { return []TOML{V1_0_0, V1_1_0Preview} }

// SetOf constructs a Set from the given versions.
func SetOf(vs ...TOML) Set { return Set(vs) }
