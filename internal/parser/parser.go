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
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/internal/text"
	"github.com/tombi-toolkit/tombi-go/version"
)

// Parser walks a lexed token stream and builds a flat Event log. It only
// ever looks at "significant" tokens -- whitespace, line breaks, and
// comments are invisible to Current/At/Nth -- mirroring how input.rs
// builds an Input that excludes trivia from the parser's view, even
// though every raw token still ends up in the final tree (process.go
// replays trivia back in while consuming Token events).
type Parser struct {
	raw []lexer.Token
	sig []int // indices into raw naming the non-trivia tokens, in order

	pos     int
	events  []Event
	errs    []Error
	version version.TOML
}

// New prepares a Parser over tokens, which must end with a zero-width EOF
// token (as internal/lexer.Lex always appends).
func New(tokens []lexer.Token, v version.TOML) *Parser {
	p := &Parser{raw: tokens, version: v}
	for i, t := range tokens {
		if !t.Kind.IsTrivia() {
			p.sig = append(p.sig, i)
		}
	}
	return p
}

// Raw returns the full token stream, including trivia, that the parser was
// built from. process.go uses it to replay trivia alongside events.
func (p *Parser) Raw() []lexer.Token { return p.raw }

// Version reports which TOML dialect grammar decisions should assume.
func (p *Parser) Version() version.TOML { return p.version }

func (p *Parser) sigTok(n int) lexer.Token {
	i := p.pos + n
	if i < 0 || i >= len(p.sig) {
		return p.eofToken()
	}
	return p.raw[p.sig[i]]
}

func (p *Parser) eofToken() lexer.Token {
	return p.raw[len(p.raw)-1]
}

// Nth reports the kind of the n-th significant token ahead of the cursor
// (0 is "current").
func (p *Parser) Nth(n int) syntax.Kind { return p.sigTok(n).Kind }

// Current is Nth(0).
func (p *Parser) Current() syntax.Kind { return p.Nth(0) }

// At reports whether the current token is kind.
func (p *Parser) At(kind syntax.Kind) bool { return p.NthAt(0, kind) }

func (p *Parser) NthAt(n int, kind syntax.Kind) bool { return p.Nth(n) == kind }

func (p *Parser) AtTS(ts TokenSet) bool { return ts.Contains(p.Current()) }

func (p *Parser) NthAtTS(n int, ts TokenSet) bool { return ts.Contains(p.Nth(n)) }

// AtEOF reports whether the parser has consumed every significant token.
func (p *Parser) AtEOF() bool { return p.At(syntax.EOF) }

// CurrentRange is the source range of the current significant token.
func (p *Parser) CurrentRange() text.Range { return p.sigTok(0).Range }

func (p *Parser) NthRange(n int) text.Range { return p.sigTok(n).Range }

func (p *Parser) CurrentText() string { return p.sigTok(0).Text }

// Start opens a new node; its kind is decided later by Marker.Complete.
func (p *Parser) Start() Marker {
	idx := len(p.events)
	p.pushEvent(tombstoneEvent())
	return Marker{eventIndex: idx}
}

// Eat consumes the current token if it matches kind, reporting whether it
// did.
func (p *Parser) Eat(kind syntax.Kind) bool {
	if !p.At(kind) {
		return false
	}
	p.doBump(kind)
	return true
}

// Bump consumes the current token, which must be kind.
func (p *Parser) Bump(kind syntax.Kind) {
	if !p.Eat(kind) {
		panic("parser: Bump called when parser is not at the expected kind")
	}
}

// BumpAny consumes whatever the current token is, without asserting its
// kind; a no-op at EOF.
func (p *Parser) BumpAny() {
	kind := p.Current()
	if kind == syntax.EOF {
		return
	}
	p.doBump(kind)
}

// BumpRemap consumes the current raw token but records it in the tree as
// kind instead of its lexed kind -- used e.g. to fold an INTEGER_DEC or
// BOOLEAN token into a BARE_KEY when it appears in key position.
func (p *Parser) BumpRemap(kind syntax.Kind) {
	if p.Current() == syntax.EOF {
		return
	}
	p.doBump(kind)
}

func (p *Parser) doBump(kind syntax.Kind) {
	p.pos++
	p.pushEvent(tokenEvent(kind))
}

func (p *Parser) pushEvent(e Event) { p.events = append(p.events, e) }

// Error records a diagnostic anchored to the current token's range.
func (p *Parser) Error(kind ErrorKind) {
	p.errs = append(p.errs, newError(kind, p.CurrentRange()))
	p.pushEvent(errorEvent(newError(kind, p.CurrentRange())))
}

// ErrorAt records a diagnostic anchored to an explicit range.
func (p *Parser) ErrorAt(kind ErrorKind, r text.Range) {
	e := newError(kind, r)
	p.errs = append(p.errs, e)
	p.pushEvent(errorEvent(e))
}

// VersionedError records a diagnostic that only applies under the given
// version set.
func (p *Parser) VersionedError(kind ErrorKind, r text.Range, vs version.Set) {
	e := newVersionedError(kind, r, vs)
	p.errs = append(p.errs, e)
	p.pushEvent(errorEvent(e))
}

// Finish returns the recorded event log and error list. The caller (Parse)
// feeds the event log into process() to build the green tree.
func (p *Parser) Finish() ([]Event, []Error) { return p.events, p.errs }
