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

// Package document lowers a typed AST into a semantic value graph: the
// document-tree. Lowering never aborts -- every problem (a duplicate key,
// an out-of-range integer, a malformed date-time) is collected as a typed
// Error alongside a best-effort tree, mirroring crates/document-tree's
// DocumentTreeAndErrors<T> split so LSP-style features keep working on
// partial input.
package document

import (
	"time"

	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// Value is implemented by every node in the document-tree: scalars,
// composites, and the Incomplete placeholder left behind by a parse hole.
type Value interface {
	// Range reports the source range the value was lowered from.
	Range() text.Range
}

// Boolean is a `true`/`false` literal.
type Boolean struct {
	Value_ bool
	Range_ text.Range
}

func (b Boolean) Range() text.Range { return b.Range_ }

// IntegerKind distinguishes the four TOML integer bases.
type IntegerKind int

const (
	IntegerBin IntegerKind = iota
	IntegerOct
	IntegerDec
	IntegerHex
)

// Integer is a parsed integer literal in one of the four TOML bases.
type Integer struct {
	Kind   IntegerKind
	Value  int64
	Range_ text.Range
}

func (i Integer) Range() text.Range { return i.Range_ }

// Float is a parsed floating point literal, including the special
// `inf`/`-inf`/`nan` spellings.
type Float struct {
	Value  float64
	Range_ text.Range
}

func (f Float) Range() text.Range { return f.Range_ }

// StringKind distinguishes the four TOML string flavours.
type StringKind int

const (
	StringBasic StringKind = iota
	StringMultiLineBasic
	StringLiteral
	StringMultiLineLiteral
)

// String is a decoded string value: escapes are resolved, delimiters are
// stripped, and (for multi-line strings) the single leading newline and
// line-ending backslash continuations are removed per the TOML spec.
type String struct {
	Kind   StringKind
	Value  string
	Range_ text.Range
}

func (s String) Range() text.Range { return s.Range_ }

// OffsetDateTime is a date-time literal with a UTC offset. Text retains
// the original literal exactly as written (including a non-canonical but
// legal offset such as `+00:00` instead of `Z`) so formatting never loses
// information the parsed time.Time would otherwise discard.
type OffsetDateTime struct {
	Text   string
	Time   time.Time
	Range_ text.Range
}

func (d OffsetDateTime) Range() text.Range { return d.Range_ }

// LocalDateTime is a date-time literal with no UTC offset.
type LocalDateTime struct {
	Text   string
	Time   time.Time
	Range_ text.Range
}

func (d LocalDateTime) Range() text.Range { return d.Range_ }

// LocalDate is a bare `YYYY-MM-DD` literal.
type LocalDate struct {
	Text       string
	Year       int
	Month, Day int
	Range_     text.Range
}

func (d LocalDate) Range() text.Range { return d.Range_ }

// LocalTime is a bare `HH:MM[:SS[.ffffff]]` literal. Under TOML 1.1, the
// seconds component is optional and Second/Nanosecond are then zero.
type LocalTime struct {
	Text                 string
	Hour, Minute, Second int
	Nanosecond           int
	Range_               text.Range
}

func (t LocalTime) Range() text.Range { return t.Range_ }

// ArrayKind distinguishes a literal `[ ... ]` array from the array formed
// by repeated `[[a.b]]` headers, and from an array-of-tables accessed as
// an intermediate segment of a longer dotted path.
type ArrayKind int

const (
	ArrayKindArray ArrayKind = iota
	ArrayKindArrayOfTable
	ArrayKindParentArrayOfTable
)

// Array is an ordered sequence of values.
type Array struct {
	Kind_  ArrayKind
	Values []Value
	Range_ text.Range
}

func (a *Array) Range() text.Range { return a.Range_ }
func (a *Array) Kind() ArrayKind   { return a.Kind_ }

// TableKind records how a Table came to exist, matching spec.md's
// Table kind enumeration {Table, InlineTable, ArrayOfTable, KeyValue,
// Root}. KeyValue marks an implicit intermediate table created while
// navigating a dotted key path (`a.b.c = 1` implicitly creates tables
// `a` and `a.b`, both of kind KeyValue).
type TableKind int

const (
	TableKindRoot TableKind = iota
	TableKindTable
	TableKindInlineTable
	TableKindArrayOfTable
	TableKindKeyValue
)

// tableEntry is one key/value pair of a Table, kept in insertion order.
type tableEntry struct {
	Key   Key
	Value Value
}

// Table is an insertion-ordered key->value mapping. Keys compare (and
// hash, via the index map) by their decoded text, never by syntactic
// spelling, so `"a"` and `a` collide as the same key.
type Table struct {
	Kind_   TableKind
	Range_  text.Range
	entries []tableEntry
	index   map[string]int
}

func newTable(kind TableKind, r text.Range) *Table {
	return &Table{Kind_: kind, Range_: r, index: make(map[string]int)}
}

// NewTable constructs an empty Table of the given kind, for callers
// outside this package that build a document-tree directly (tests, and
// the asteditor package composing a fresh value to splice in).
func NewTable(kind TableKind, r text.Range) *Table {
	return newTable(kind, r)
}

func (t *Table) Range() text.Range { return t.Range_ }
func (t *Table) Kind() TableKind   { return t.Kind_ }

// Len reports the number of direct entries in t.
func (t *Table) Len() int { return len(t.entries) }

// Keys returns every key in insertion order.
func (t *Table) Keys() []Key {
	out := make([]Key, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Key
	}
	return out
}

// Get looks up decoded by its decoded text, returning its value and
// whether it was present.
func (t *Table) Get(decoded string) (Value, bool) {
	i, ok := t.index[decoded]
	if !ok {
		return nil, false
	}
	return t.entries[i].Value, true
}

// GetKey returns the Key actually stored for decoded (carrying its
// original syntactic spelling and range), if present.
func (t *Table) GetKey(decoded string) (Key, bool) {
	i, ok := t.index[decoded]
	if !ok {
		return Key{}, false
	}
	return t.entries[i].Key, true
}

// set inserts or overwrites the entry for key, preserving the original
// insertion position on overwrite.
func (t *Table) set(key Key, value Value) {
	if i, ok := t.index[key.Decoded]; ok {
		t.entries[i] = tableEntry{Key: key, Value: value}
		return
	}
	t.index[key.Decoded] = len(t.entries)
	t.entries = append(t.entries, tableEntry{Key: key, Value: value})
}

// Set inserts or overwrites the entry for key, preserving the original
// insertion position on overwrite. Exported for callers outside this
// package building a Table directly (tests, asteditor).
func (t *Table) Set(key Key, value Value) { t.set(key, value) }

// Entries exposes the raw ordered (Key, Value) pairs, e.g. for the
// formatter's schema-driven reordering pass.
func (t *Table) Entries() []struct {
	Key   Key
	Value Value
} {
	out := make([]struct {
		Key   Key
		Value Value
	}, len(t.entries))
	for i, e := range t.entries {
		out[i] = struct {
			Key   Key
			Value Value
		}{e.Key, e.Value}
	}
	return out
}

// Key is a semantic key: its syntactic spelling, decoded text, and source
// range. Two Keys are equal (for document-tree purposes) iff their
// Decoded text matches; callers needing that identity should compare
// Decoded directly rather than the struct.
type Key struct {
	Kind    KeyKind
	Raw     string
	Decoded string
	Range_  text.Range
}

func (k Key) Range() text.Range { return k.Range_ }

// KeyKind records the syntactic form a Key was spelled in, so the
// formatter can preserve bare vs. quoted keys on round-trip.
type KeyKind int

const (
	KeyBare KeyKind = iota
	KeyBasicString
	KeyLiteralString
)

// Incomplete stands in for a value the parser could not make sense of
// (a missing value, a malformed literal). It carries only a range so
// downstream LSP-style features can still report something for the
// hole.
type Incomplete struct {
	Range_ text.Range
}

func (i Incomplete) Range() text.Range { return i.Range_ }

// DocumentTreeAndErrors pairs a lowered value of type T with every error
// collected while producing it. A T is "complete" (convertible to the
// serializable Document form) only when Errors is empty.
type DocumentTreeAndErrors[T any] struct {
	Tree   T
	Errors []Error
}

// IsComplete reports whether lowering produced no errors.
func (d DocumentTreeAndErrors[T]) IsComplete() bool { return len(d.Errors) == 0 }
