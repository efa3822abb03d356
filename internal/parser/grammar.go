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
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/version"
)

// parseRoot is the grammar entry point: a sequence of key/value lines and
// table headers, terminated by EOF. Grounded in grammar/root parsing as
// implied by parse/table.rs's loop shape, generalized to the top level
// (which has no header of its own and runs until EOF rather than until
// the next section marker).
func parseRoot(p *Parser) {
	m := p.Start()
	for !p.AtEOF() {
		for p.Eat(syntax.LINE_BREAK) {
		}
		if p.AtEOF() {
			break
		}
		switch {
		case p.At(syntax.DOUBLE_BRACKET_START):
			parseArrayOfTable(p)
		case p.At(syntax.BRACKET_START):
			parseTable(p)
		default:
			parseKeyValueLine(p)
		}
	}
	m.Complete(p, syntax.ROOT)
}

// parseKeyValueLine parses one `key = value` line followed by an optional
// trailing comment and a line break, recovering by skipping to the next
// line break on malformed input (invalid_line in the original grammar).
func parseKeyValueLine(p *Parser) {
	if !p.AtTS(tsKeyFirst) {
		invalidLine(p, ExpectedKey)
		return
	}
	parseKeyValue(p)
	if !p.AtTS(tsLineEnd) {
		invalidLine(p, ExpectedLineBreak)
	}
}

func parseKeyValue(p *Parser) {
	m := p.Start()
	parseKeys(p)
	if !p.Eat(syntax.EQUAL) {
		p.Error(ExpectedEquals)
	}
	parseValue(p)
	m.Complete(p, syntax.KEY_VALUE)
}

// parseKeys parses a (possibly dotted) key path: `a.b.c`.
func parseKeys(p *Parser) {
	m := p.Start()
	parseKey(p)
	for p.At(syntax.DOT) {
		p.Bump(syntax.DOT)
		if !p.AtTS(tsKeyFirst) {
			p.Error(ForbiddenKeysLastPeriod)
			break
		}
		parseKey(p)
	}
	m.Complete(p, syntax.KEYS)
}

// parseKey wraps a single key token -- bare, basic-string, or
// literal-string -- in a KEY node, so the ast/document layers always find
// a uniform KEY wrapper regardless of which token kind spelled it.
func parseKey(p *Parser) {
	m := p.Start()
	switch p.Current() {
	case syntax.BARE_KEY, syntax.BASIC_STRING, syntax.LITERAL_STRING:
		p.Bump(p.Current())
	case syntax.INTEGER_DEC, syntax.BOOLEAN:
		// A bare key that happens to lex as a number or boolean (e.g.
		// `1900 = "value"`, `true = "value"`) is folded back into a
		// BARE_KEY token rather than rejected.
		p.BumpRemap(syntax.BARE_KEY)
	default:
		p.Error(ExpectedKey)
	}
	m.Complete(p, syntax.KEY)
}

// parseValue parses a single value expression: a scalar literal, an
// array, or an inline table, always wrapped in a VALUE node so that every
// KEY_VALUE has exactly one VALUE child regardless of the value's shape.
func parseValue(p *Parser) {
	m := p.Start()
	switch {
	case p.At(syntax.BRACKET_START):
		parseArray(p)
	case p.At(syntax.BRACE_START):
		parseInlineTable(p)
	case p.Current().IsLiteral():
		kind := p.Current()
		p.Bump(kind)
	default:
		p.Error(ExpectedValue)
		for !p.AtTS(tsLineEnd.Union(NewTokenSet(syntax.COMMA, syntax.BRACKET_END, syntax.BRACE_END))) {
			p.BumpAny()
		}
	}
	m.Complete(p, syntax.VALUE)
}

func parseArray(p *Parser) {
	m := p.Start()
	p.Bump(syntax.BRACKET_START)
	for p.Eat(syntax.LINE_BREAK) {
	}
	for !p.At(syntax.BRACKET_END) && !p.AtEOF() {
		parseValue(p)
		for p.Eat(syntax.LINE_BREAK) {
		}
		if p.At(syntax.COMMA) {
			p.Bump(syntax.COMMA)
			for p.Eat(syntax.LINE_BREAK) {
			}
		} else if !p.At(syntax.BRACKET_END) {
			p.Error(ExpectedComma)
			p.BumpAny()
		}
	}
	if !p.Eat(syntax.BRACKET_END) {
		p.Error(ExpectedBracketEnd)
	}
	m.Complete(p, syntax.ARRAY)
}

func parseInlineTable(p *Parser) {
	m := p.Start()
	p.Bump(syntax.BRACE_START)
	for !p.At(syntax.BRACE_END) && !p.AtEOF() {
		parseKeyValue(p)
		if p.At(syntax.COMMA) {
			commaRange := p.CurrentRange()
			p.Bump(syntax.COMMA)
			if p.At(syntax.BRACE_END) {
				p.VersionedError(ForbiddenInlineTableLastComma, commaRange, version.SetOf(version.V1_0_0))
			}
		} else if !p.At(syntax.BRACE_END) {
			p.Error(ExpectedComma)
			p.BumpAny()
		}
	}
	if !p.Eat(syntax.BRACE_END) {
		p.Error(ExpectedBraceEnd)
	}
	m.Complete(p, syntax.INLINE_TABLE)
}

// parseTable parses a `[a.b.c]` header followed by its key/value lines, up
// to (but not including) the next section header or EOF.
func parseTable(p *Parser) {
	m := p.Start()
	p.Bump(syntax.BRACKET_START)
	parseKeys(p)
	if !p.Eat(syntax.BRACKET_END) {
		invalidLine(p, ExpectedBracketEnd)
	}
	if !p.AtTS(tsLineEnd) {
		invalidLine(p, ExpectedLineBreak)
	}
	p.Eat(syntax.LINE_BREAK)

	for {
		for p.Eat(syntax.LINE_BREAK) {
		}
		if p.AtTS(tsNextSection) {
			break
		}
		parseKeyValueLine(p)
	}
	m.Complete(p, syntax.TABLE)
}

// parseArrayOfTable parses a `[[a.b.c]]` header and its body, the same
// shape as parseTable but for array-of-tables.
func parseArrayOfTable(p *Parser) {
	m := p.Start()
	p.Bump(syntax.DOUBLE_BRACKET_START)
	parseKeys(p)
	if !p.Eat(syntax.DOUBLE_BRACKET_END) {
		invalidLine(p, ExpectedDoubleBracketEnd)
	}
	if !p.AtTS(tsLineEnd) {
		invalidLine(p, ExpectedLineBreak)
	}
	p.Eat(syntax.LINE_BREAK)

	for {
		for p.Eat(syntax.LINE_BREAK) {
		}
		if p.AtTS(tsNextSection) {
			break
		}
		parseKeyValueLine(p)
	}
	m.Complete(p, syntax.ARRAY_OF_TABLE)
}

// invalidLine reports kind at the current token, then consumes tokens up
// to the next line break or EOF so a single malformed line doesn't cascade
// into spurious errors on every following line.
func invalidLine(p *Parser, kind ErrorKind) {
	p.Error(kind)
	for !p.AtTS(tsLineEnd) {
		p.BumpAny()
	}
}
