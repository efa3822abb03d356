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

package parser

import (
	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/version"
)

// Result is the output of a full parse: a lossless green tree plus every
// diagnostic encountered along the way, kept in their original lexer/
// parser shapes rather than collapsed into one lossy error type.
type Result struct {
	Green       *rgtree.GreenNode
	LexErrors   []lexer.Error
	ParseErrors []Error
}

// Parse lexes and parses src under the given TOML version, returning a
// green tree that round-trips losslessly back to src (Green.Text() ==
// src) regardless of how many errors were recorded.
func Parse(src string, v version.TOML) Result {
	tokens, lexErrs := lexer.Lex(src, v)

	p := New(tokens, v)
	parseRoot(p)
	events, parseErrs := p.Finish()

	green := process(tokens, events)

	return Result{Green: green, LexErrors: lexErrs, ParseErrors: parseErrs}
}
