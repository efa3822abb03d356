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

package document

import (
	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/version"
)

// Lower walks root and produces the document-tree, collecting every
// semantic problem along the way rather than aborting on the first one.
// Grounded in crates/document-tree's two-pass shape (seed the root table
// from top-level key-values, then fold in each table/array-of-table
// header), spec.md Section 4.4.
func Lower(root ast.Root, v version.TOML) DocumentTreeAndErrors[*Table] {
	doc := newTable(TableKindRoot, root.Syntax().Range())
	var errs []Error

	for _, kv := range root.KeyValues() {
		lowerKeyValueInto(doc, kv, v, &errs)
	}
	for _, item := range root.Items() {
		switch n := item.(type) {
		case ast.Table:
			lowerTableHeader(doc, n, v, &errs)
		case ast.ArrayOfTable:
			lowerArrayOfTableHeader(doc, n, v, &errs)
		}
	}

	return DocumentTreeAndErrors[*Table]{Tree: doc, Errors: errs}
}

// lowerTableHeader navigates/creates the intermediate tables implied by a
// `[a.b.c]` header's dotted path, then lowers its body key-values into the
// terminal table (merging if it already exists from an earlier header).
func lowerTableHeader(doc *Table, n ast.Table, v version.TOML, errs *[]Error) {
	keysNode, ok := n.Keys()
	if !ok {
		return
	}
	keys := keysNode.Keys()
	if len(keys) == 0 {
		return
	}
	container := navigate(doc, keys[:len(keys)-1], v, errs)
	last := keys[len(keys)-1]
	name, err := decodeASTKey(last, v)
	if err != nil {
		*errs = append(*errs, Error{Kind: ParseStringError, Detail: err.Error(), Range: last.Syntax().Range()})
		return
	}
	tbl := getOrCreateTable(container, last, name, TableKindTable, errs)
	for _, kv := range n.KeyValues() {
		lowerKeyValueInto(tbl, kv, v, errs)
	}
}

// lowerArrayOfTableHeader navigates the header's dotted path the same way
// as a table header, then appends a fresh table entry to the
// array-of-tables at the terminal key (creating the array on first use).
func lowerArrayOfTableHeader(doc *Table, n ast.ArrayOfTable, v version.TOML, errs *[]Error) {
	keysNode, ok := n.Keys()
	if !ok {
		return
	}
	keys := keysNode.Keys()
	if len(keys) == 0 {
		return
	}
	container := navigate(doc, keys[:len(keys)-1], v, errs)
	last := keys[len(keys)-1]
	name, err := decodeASTKey(last, v)
	if err != nil {
		*errs = append(*errs, Error{Kind: ParseStringError, Detail: err.Error(), Range: last.Syntax().Range()})
		return
	}
	arr := getOrCreateArrayOfTable(container, last, name, errs)
	tbl := newTable(TableKindArrayOfTable, n.Syntax().Range())
	arr.Values = append(arr.Values, tbl)
	for _, kv := range n.KeyValues() {
		lowerKeyValueInto(tbl, kv, v, errs)
	}
}

// navigate walks (creating as needed) the intermediate tables named by
// keys, stepping into the last entry of an existing array-of-tables when
// one is encountered, matching TOML's rule that a dotted path re-entering
// `[[a]]` addresses its most recently defined element.
func navigate(cur *Table, keys []ast.Key, v version.TOML, errs *[]Error) *Table {
	for _, k := range keys {
		name, err := decodeASTKey(k, v)
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseStringError, Detail: err.Error(), Range: k.Syntax().Range()})
			continue
		}
		existing, ok := cur.Get(name)
		if !ok {
			nt := newTable(TableKindKeyValue, k.Syntax().Range())
			cur.set(Key{Kind: keyKindOf(k), Raw: k.Text(), Decoded: name, Range_: k.Syntax().Range()}, nt)
			cur = nt
			continue
		}
		switch e := existing.(type) {
		case *Table:
			cur = e
		case *Array:
			if e.Kind_ == ArrayKindArrayOfTable || e.Kind_ == ArrayKindParentArrayOfTable {
				if len(e.Values) == 0 {
					nt := newTable(TableKindKeyValue, k.Syntax().Range())
					e.Values = append(e.Values, nt)
					cur = nt
					continue
				}
				last := e.Values[len(e.Values)-1].(*Table)
				cur = last
			} else {
				*errs = append(*errs, Error{Kind: ConflictArray, Key: name, Range: k.Syntax().Range()})
				cur = newTable(TableKindKeyValue, k.Syntax().Range())
			}
		default:
			*errs = append(*errs, Error{Kind: DuplicateKey, Key: name, Range: k.Syntax().Range()})
			cur = newTable(TableKindKeyValue, k.Syntax().Range())
		}
	}
	return cur
}

// getOrCreateTable returns the table stored at name in container,
// creating one of the given kind if absent. Re-opening an existing table
// (the same `[x]` header appearing twice, or a header whose path was
// already created implicitly by a dotted key) reuses it so the two
// bodies merge key-wise; colliding with a non-table value is a
// DuplicateKey.
func getOrCreateTable(container *Table, k ast.Key, name string, kind TableKind, errs *[]Error) *Table {
	if existing, ok := container.Get(name); ok {
		if t, ok := existing.(*Table); ok {
			return t
		}
		*errs = append(*errs, Error{Kind: DuplicateKey, Key: name, Range: k.Syntax().Range()})
		return newTable(kind, k.Syntax().Range())
	}
	t := newTable(kind, k.Syntax().Range())
	container.set(Key{Kind: keyKindOf(k), Raw: k.Text(), Decoded: name, Range_: k.Syntax().Range()}, t)
	return t
}

// getOrCreateArrayOfTable returns the Array stored at name in container
// (creating one of kind ArrayKindArrayOfTable if absent). Colliding with
// a non-array value is a ConflictArray.
func getOrCreateArrayOfTable(container *Table, k ast.Key, name string, errs *[]Error) *Array {
	if existing, ok := container.Get(name); ok {
		if a, ok := existing.(*Array); ok && (a.Kind_ == ArrayKindArrayOfTable || a.Kind_ == ArrayKindParentArrayOfTable) {
			return a
		}
		*errs = append(*errs, Error{Kind: ConflictArray, Key: name, Range: k.Syntax().Range()})
		return &Array{Kind_: ArrayKindArrayOfTable, Range_: k.Syntax().Range()}
	}
	a := &Array{Kind_: ArrayKindArrayOfTable, Range_: k.Syntax().Range()}
	container.set(Key{Kind: keyKindOf(k), Raw: k.Text(), Decoded: name, Range_: k.Syntax().Range()}, a)
	return a
}

// lowerKeyValueInto lowers a single `key = value` line into table,
// navigating (and implicitly creating) any intermediate tables named by a
// dotted key, then merging the final key into its container.
func lowerKeyValueInto(table *Table, kv ast.KeyValue, v version.TOML, errs *[]Error) {
	keysNode, ok := kv.Keys()
	if !ok {
		return
	}
	keys := keysNode.Keys()
	if len(keys) == 0 {
		return
	}
	container := navigate(table, keys[:len(keys)-1], v, errs)
	last := keys[len(keys)-1]
	name, err := decodeASTKey(last, v)
	if err != nil {
		*errs = append(*errs, Error{Kind: ParseStringError, Detail: err.Error(), Range: last.Syntax().Range()})
		return
	}

	var val Value
	astValue, ok := kv.Value()
	if !ok {
		val = Incomplete{Range_: kv.Syntax().Range()}
	} else {
		val = lowerValue(astValue, v, errs)
	}

	mergeInto(container, Key{Kind: keyKindOf(last), Raw: last.Text(), Decoded: name, Range_: last.Syntax().Range()}, val, errs)
}

// mergeInto installs value under key in dst. Two tables at the same key
// merge recursively (key-wise); any other collision is a DuplicateKey and
// the original entry (the first occurrence, per spec.md Section 8's
// duplicate-key scenario) is kept.
func mergeInto(dst *Table, key Key, value Value, errs *[]Error) {
	existing, ok := dst.Get(key.Decoded)
	if !ok {
		dst.set(key, value)
		return
	}
	existingTable, eok := existing.(*Table)
	newTableVal, nok := value.(*Table)
	if eok && nok {
		mergeTables(existingTable, newTableVal, errs)
		return
	}
	*errs = append(*errs, Error{Kind: DuplicateKey, Key: key.Decoded, Range: key.Range_})
}

// mergeTables folds src's entries into dst, key by key.
func mergeTables(dst, src *Table, errs *[]Error) {
	for _, e := range src.entries {
		mergeInto(dst, e.Key, e.Value, errs)
	}
}

// lowerValue dispatches on the shape of astValue: a scalar token, an
// array, or an inline table, recording a typed Error (but still
// returning a best-effort Value, usually Incomplete) on failure.
func lowerValue(astValue ast.Value, v version.TOML, errs *[]Error) Value {
	r := astValue.Syntax().Range()

	if arr, ok := astValue.Array(); ok {
		return lowerArray(arr, v, errs)
	}
	if tbl, ok := astValue.InlineTable(); ok {
		return lowerInlineTable(tbl, v, errs)
	}

	tok, ok := astValue.ScalarToken()
	if !ok {
		*errs = append(*errs, Error{Kind: IncompleteNode, Range: r})
		return Incomplete{Range_: r}
	}

	switch tok.Kind() {
	case syntax.BOOLEAN:
		return Boolean{Value_: tok.Text() == "true", Range_: r}
	case syntax.INTEGER_DEC, syntax.INTEGER_HEX, syntax.INTEGER_OCT, syntax.INTEGER_BIN:
		kind := integerKindOf(tok.Kind())
		n, err := parseInteger(kind, tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseIntError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		return Integer{Kind: kind, Value: n, Range_: r}
	case syntax.FLOAT:
		f, err := parseFloat(tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseFloatError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		return Float{Value: f, Range_: r}
	case syntax.BASIC_STRING, syntax.MULTI_LINE_BASIC_STRING, syntax.LITERAL_STRING, syntax.MULTI_LINE_LITERAL_STRING:
		kind := stringKindOf(tok.Kind())
		s, err := decodeStringToken(kind, tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseStringError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		return String{Kind: kind, Value: s, Range_: r}
	case syntax.LOCAL_DATE:
		d, err := parseLocalDate(tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseLocalDateError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		d.Range_ = r
		return d
	case syntax.LOCAL_TIME:
		if !hasSeconds(tok.Text()) && v == version.V1_0_0 {
			*errs = append(*errs, Error{Kind: ParseLocalTimeError, Detail: "seconds are required in TOML 1.0.0", Range: r})
		}
		t, err := parseLocalTime(tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseLocalTimeError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		t.Range_ = r
		return t
	case syntax.LOCAL_DATE_TIME:
		dt, err := parseLocalDateTime(tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseLocalDateTimeError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		dt.Range_ = r
		return dt
	case syntax.OFFSET_DATE_TIME:
		dt, err := parseOffsetDateTime(tok.Text())
		if err != nil {
			*errs = append(*errs, Error{Kind: ParseOffsetDateTimeError, Detail: err.Error(), Range: r})
			return Incomplete{Range_: r}
		}
		dt.Range_ = r
		return dt
	default:
		*errs = append(*errs, Error{Kind: IncompleteNode, Range: r})
		return Incomplete{Range_: r}
	}
}

func lowerArray(a ast.Array, v version.TOML, errs *[]Error) *Array {
	out := &Array{Kind_: ArrayKindArray, Range_: a.Syntax().Range()}
	for _, elem := range a.Values() {
		out.Values = append(out.Values, lowerValue(elem, v, errs))
	}
	return out
}

func lowerInlineTable(tbl ast.InlineTable, v version.TOML, errs *[]Error) *Table {
	out := newTable(TableKindInlineTable, tbl.Syntax().Range())
	for _, kv := range tbl.KeyValues() {
		lowerKeyValueInto(out, kv, v, errs)
	}
	return out
}

func integerKindOf(k syntax.Kind) IntegerKind {
	switch k {
	case syntax.INTEGER_HEX:
		return IntegerHex
	case syntax.INTEGER_OCT:
		return IntegerOct
	case syntax.INTEGER_BIN:
		return IntegerBin
	default:
		return IntegerDec
	}
}

func stringKindOf(k syntax.Kind) StringKind {
	switch k {
	case syntax.MULTI_LINE_BASIC_STRING:
		return StringMultiLineBasic
	case syntax.LITERAL_STRING:
		return StringLiteral
	case syntax.MULTI_LINE_LITERAL_STRING:
		return StringMultiLineLiteral
	default:
		return StringBasic
	}
}

func keyKindOf(k ast.Key) KeyKind {
	tok, ok := k.Token()
	if !ok {
		return KeyBare
	}
	switch tok.Kind() {
	case syntax.BASIC_STRING:
		return KeyBasicString
	case syntax.LITERAL_STRING:
		return KeyLiteralString
	default:
		return KeyBare
	}
}

// decodeASTKey resolves a key's decoded, comparable text, re-reading the
// full token (rather than ast.Key.Text's quote-stripped-only form) so
// basic-string escapes participate in key equality per spec.md's Key
// invariant.
func decodeASTKey(k ast.Key, v version.TOML) (string, error) {
	tok, ok := k.Token()
	if !ok {
		return "", nil
	}
	kind := keyKindOf(k)
	if kind != KeyBasicString {
		return k.Text(), nil
	}
	body := tok.Text()
	if len(body) >= 2 {
		body = body[1 : len(body)-1]
	}
	return decodeKeyText(kind, body)
}

// hasSeconds reports whether a LOCAL_TIME literal includes its optional
// seconds component.
func hasSeconds(raw string) bool {
	return len(raw) >= 8 && raw[5] == ':'
}
