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

package ast

import (
	"github.com/tombi-toolkit/tombi-go/internal/parser"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/version"
)

// Parse lexes and parses src, returning the typed Root view over the
// resulting lossless tree alongside every diagnostic collected along the
// way. The tree underneath Root always round-trips back to src exactly,
// regardless of how many errors were recorded.
func Parse(src string, v version.TOML) (Root, parser.Result) {
	result := parser.Parse(src, v)
	root, _ := CastRoot(rgtree.NewRoot(result.Green))
	return root, result
}
