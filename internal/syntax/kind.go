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

// Package syntax defines Kind, the closed enumeration of token and node
// kinds shared by the lexer, parser, and AST layers.
package syntax

// Kind identifies the role of a token or node in the syntax tree. It is
// deliberately a flat, closed set (no sub-kinds) so that the green tree can
// store it as a single machine word.
type Kind uint16

const (
	// TOMBSTONE marks a parser event that was abandoned; it never appears
	// in a finished tree.
	TOMBSTONE Kind = iota

	// EOF is a zero-width token emitted once at the end of input.
	EOF

	// Punctuation tokens.
	COMMA
	DOT
	EQUAL
	BRACKET_START
	BRACKET_END
	BRACE_START
	BRACE_END
	DOUBLE_BRACKET_START
	DOUBLE_BRACKET_END

	// String tokens, one per TOML string flavour.
	BASIC_STRING
	MULTI_LINE_BASIC_STRING
	LITERAL_STRING
	MULTI_LINE_LITERAL_STRING

	// Integer tokens, one per base.
	INTEGER_DEC
	INTEGER_HEX
	INTEGER_OCT
	INTEGER_BIN

	FLOAT
	BOOLEAN

	// Date-time tokens.
	OFFSET_DATE_TIME
	LOCAL_DATE_TIME
	LOCAL_DATE
	LOCAL_TIME

	// Trivia tokens.
	WHITESPACE
	LINE_BREAK
	COMMENT

	BARE_KEY

	// INVALID_TOKEN is emitted by the lexer for text it cannot classify;
	// it still carries a span so the parser and formatter make forward
	// progress instead of aborting.
	INVALID_TOKEN

	// Node kinds.
	ROOT
	KEYS
	KEY
	VALUE
	KEY_VALUE
	ARRAY
	TABLE
	INLINE_TABLE
	ARRAY_OF_TABLE

	// ERROR wraps a malformed subtree so that unrelated siblings remain
	// parseable; it is never produced by the lexer.
	ERROR

	lastKind
)

var names = [...]string{
	TOMBSTONE:                "TOMBSTONE",
	EOF:                      "EOF",
	COMMA:                    "COMMA",
	DOT:                      "DOT",
	EQUAL:                    "EQUAL",
	BRACKET_START:            "BRACKET_START",
	BRACKET_END:              "BRACKET_END",
	BRACE_START:              "BRACE_START",
	BRACE_END:                "BRACE_END",
	DOUBLE_BRACKET_START:     "DOUBLE_BRACKET_START",
	DOUBLE_BRACKET_END:       "DOUBLE_BRACKET_END",
	BASIC_STRING:             "BASIC_STRING",
	MULTI_LINE_BASIC_STRING:  "MULTI_LINE_BASIC_STRING",
	LITERAL_STRING:           "LITERAL_STRING",
	MULTI_LINE_LITERAL_STRING: "MULTI_LINE_LITERAL_STRING",
	INTEGER_DEC:              "INTEGER_DEC",
	INTEGER_HEX:              "INTEGER_HEX",
	INTEGER_OCT:              "INTEGER_OCT",
	INTEGER_BIN:              "INTEGER_BIN",
	FLOAT:                    "FLOAT",
	BOOLEAN:                  "BOOLEAN",
	OFFSET_DATE_TIME:         "OFFSET_DATE_TIME",
	LOCAL_DATE_TIME:          "LOCAL_DATE_TIME",
	LOCAL_DATE:               "LOCAL_DATE",
	LOCAL_TIME:               "LOCAL_TIME",
	WHITESPACE:               "WHITESPACE",
	LINE_BREAK:               "LINE_BREAK",
	COMMENT:                  "COMMENT",
	BARE_KEY:                 "BARE_KEY",
	INVALID_TOKEN:            "INVALID_TOKEN",
	ROOT:                     "ROOT",
	KEYS:                     "KEYS",
	KEY:                      "KEY",
	VALUE:                    "VALUE",
	KEY_VALUE:                "KEY_VALUE",
	ARRAY:                    "ARRAY",
	TABLE:                    "TABLE",
	INLINE_TABLE:             "INLINE_TABLE",
	ARRAY_OF_TABLE:           "ARRAY_OF_TABLE",
	ERROR:                    "ERROR",
}

// String returns the kind's generated constant name, e.g. "KEY_VALUE".
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "UNKNOWN"
}

// IsTrivia reports whether k is skipped by grammar dispatch but retained in
// the lossless tree: whitespace, line breaks, and comments.
func (k Kind) IsTrivia() bool {
	switch k {
	case WHITESPACE, LINE_BREAK, COMMENT:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k is a scalar value token (as opposed to
// punctuation or a trivia/structural kind).
func (k Kind) IsLiteral() bool {
	switch k {
	case BASIC_STRING, MULTI_LINE_BASIC_STRING, LITERAL_STRING, MULTI_LINE_LITERAL_STRING,
		INTEGER_DEC, INTEGER_HEX, INTEGER_OCT, INTEGER_BIN,
		FLOAT, BOOLEAN,
		OFFSET_DATE_TIME, LOCAL_DATE_TIME, LOCAL_DATE, LOCAL_TIME:
		return true
	default:
		return false
	}
}

// IsNode reports whether k denotes a tree node rather than a token.
func (k Kind) IsNode() bool {
	switch k {
	case ROOT, KEYS, KEY, VALUE, KEY_VALUE, ARRAY, TABLE, INLINE_TABLE, ARRAY_OF_TABLE, ERROR:
		return true
	default:
		return false
	}
}

// Last returns the first unused kind value, useful for bounds-checking
// arrays indexed by Kind.
func Last() Kind { return lastKind }
