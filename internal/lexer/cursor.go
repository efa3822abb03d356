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

package lexer

import (
	"strings"

	"github.com/tombi-toolkit/tombi-go/internal/text"
)

const eofChar = rune(0)

// cursor is a character-at-a-time scanner over the source string. rest
// always holds the unconsumed suffix starting with the current character;
// offset/pos are updated incrementally as characters are bumped, mirroring
// crates/tombi-lexer/src/cursor.rs in the original implementation (which
// tracks line/column as it scans rather than recomputing them afterwards).
type cursor struct {
	src  string
	rest string

	offset text.Offset
	pos    text.Position

	tokStart text.Offset
	tokPos   text.Position
}

func newCursor(src string) *cursor {
	return &cursor{src: src, rest: src}
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return eofChar, 0
}

func (c *cursor) current() rune {
	r, _ := firstRune(c.rest)
	return r
}

func (c *cursor) isEOF() bool { return c.rest == "" }

// peek returns the i-th character ahead of current (i must be >= 1).
func (c *cursor) peek(i int) rune {
	rest := c.rest
	for n := 0; n < i; n++ {
		_, sz := firstRune(rest)
		if sz == 0 {
			return eofChar
		}
		rest = rest[sz:]
	}
	r, _ := firstRune(rest)
	return r
}

// peekWithCurrentWhile returns current plus every following character for
// which predicate holds, without consuming anything.
func (c *cursor) peekWithCurrentWhile(predicate func(rune) bool) string {
	var b strings.Builder
	rest := c.rest
	for {
		r, sz := firstRune(rest)
		if sz == 0 {
			break
		}
		if b.Len() > 0 && !predicate(r) {
			break
		}
		b.WriteRune(r)
		rest = rest[sz:]
	}
	return b.String()
}

// matches reports whether expected occurs literally starting at current.
func (c *cursor) matches(expected string) bool {
	return strings.HasPrefix(c.rest, expected)
}

// bump consumes and returns the current character, advancing offset and
// position; it reports false at EOF.
func (c *cursor) bump() (rune, bool) {
	r, sz := firstRune(c.rest)
	if sz == 0 {
		return eofChar, false
	}
	c.rest = c.rest[sz:]
	c.offset += text.Offset(sz)
	c.pos = c.pos.Add(text.Of(string(r)))
	return r, true
}

func (c *cursor) eatN(n int) {
	for i := 0; i < n; i++ {
		if _, ok := c.bump(); !ok {
			break
		}
	}
}

// eatWhile consumes characters starting at current while predicate holds.
func (c *cursor) eatWhile(predicate func(rune) bool) {
	for !c.isEOF() && predicate(c.current()) {
		c.bump()
	}
}

// popSpanRange returns the span/range of text consumed since the previous
// call (or since cursor creation) and resets the marker to the current
// position.
func (c *cursor) popSpanRange() (text.Span, text.Range) {
	span := text.NewSpan(c.tokStart, c.offset)
	rng := text.NewRange(c.tokPos, c.pos)
	c.tokStart = c.offset
	c.tokPos = c.pos
	return span, rng
}
