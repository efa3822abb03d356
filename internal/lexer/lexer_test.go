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

package lexer_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/version"
)

// tokenTextsSum reconstructs the original source by concatenating every
// token's text, the property the lossless tree above it depends on.
func tokenTextsSum(toks []lexer.Token) string {
	var out string
	for _, t := range toks {
		out += t.Text
	}
	return out
}

func TestLexIsLossless(t *testing.T) {
	src := "# top comment\nname = \"tombi\"  # trailing\n\n[table]\nkey = 1\n"
	toks, errs := lexer.Lex(src, version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(tokenTextsSum(toks), src))
}

func TestLexEmitsErrorOnUnterminatedString(t *testing.T) {
	_, errs := lexer.Lex("name = \"unterminated\n", version.Default)
	qt.Assert(t, qt.IsTrue(len(errs) > 0))
}

func TestLexNumberAndDateTimeDistinctFromEachOther(t *testing.T) {
	toks, errs := lexer.Lex("a = 1979-05-27T07:32:00Z\nb = 42\n", version.Default)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(tokenTextsSum(toks), "a = 1979-05-27T07:32:00Z\nb = 42\n"))
}
