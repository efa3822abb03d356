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

import "github.com/tombi-toolkit/tombi-go/internal/syntax"

// TokenSet is a bitset over syntax.Kind, used by the grammar to ask "is the
// current token one of these" without allocating a slice per call site.
type TokenSet uint64

// NewTokenSet builds a TokenSet from the given kinds. syntax.Kind currently
// fits comfortably in a single word (Last() is well under 64); if the
// kind set ever grows past that, this becomes a [N]uint64 the same way the
// original token_set.rs scales to three words.
func NewTokenSet(kinds ...syntax.Kind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

func (s TokenSet) Contains(k syntax.Kind) bool {
	return s&(1<<uint(k)) != 0
}

func (s TokenSet) Union(other TokenSet) TokenSet { return s | other }

var (
	tsLineEnd     = NewTokenSet(syntax.LINE_BREAK, syntax.EOF)
	tsNextSection = NewTokenSet(syntax.BRACKET_START, syntax.DOUBLE_BRACKET_START, syntax.EOF)
	tsKeyFirst    = NewTokenSet(
		syntax.BARE_KEY, syntax.BASIC_STRING, syntax.LITERAL_STRING,
		syntax.INTEGER_DEC, syntax.FLOAT, syntax.BOOLEAN,
	)
	tsValueFirst = NewTokenSet(
		syntax.BASIC_STRING, syntax.MULTI_LINE_BASIC_STRING,
		syntax.LITERAL_STRING, syntax.MULTI_LINE_LITERAL_STRING,
		syntax.INTEGER_DEC, syntax.INTEGER_HEX, syntax.INTEGER_OCT, syntax.INTEGER_BIN,
		syntax.FLOAT, syntax.BOOLEAN,
		syntax.OFFSET_DATE_TIME, syntax.LOCAL_DATE_TIME, syntax.LOCAL_DATE, syntax.LOCAL_TIME,
		syntax.BRACE_START, syntax.BRACKET_START,
	)
)
