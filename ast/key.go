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
	"strings"

	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

// Keys is a (possibly dotted) key path, e.g. the `a.b.c` in `a.b.c = 1` or
// in a `[a.b.c]` table header.
type Keys struct{ syntax *rgtree.RedNode }

func (k Keys) Syntax() *rgtree.RedNode { return k.syntax }

func CastKeys(n *rgtree.RedNode) (Keys, bool) {
	if n == nil || n.Kind() != syntax.KEYS {
		return Keys{}, false
	}
	return Keys{n}, true
}

// Keys returns each segment of the dotted path, in order.
func (k Keys) Keys() []Key {
	var out []Key
	for _, c := range k.syntax.ChildrenOfKind(syntax.KEY) {
		out = append(out, Key{c})
	}
	return out
}

// Key is one segment of a dotted key path: a single BARE_KEY,
// BASIC_STRING, or LITERAL_STRING token, wrapped uniformly in a KEY node
// regardless of spelling.
type Key struct{ syntax *rgtree.RedNode }

func (k Key) Syntax() *rgtree.RedNode { return k.syntax }

func CastKey(n *rgtree.RedNode) (Key, bool) {
	if n == nil || n.Kind() != syntax.KEY {
		return Key{}, false
	}
	return Key{n}, true
}

// Token returns the underlying literal token, if the key parsed cleanly.
func (k Key) Token() (*rgtree.RedToken, bool) {
	toks := k.syntax.Tokens()
	for _, t := range toks {
		if t.Kind().IsLiteral() || t.Kind() == syntax.BARE_KEY {
			return t, true
		}
	}
	return nil, false
}

// Text returns the key's decoded, comparable text: bare keys and string
// keys with no escapes are returned verbatim; quoted keys have their
// surrounding quotes stripped (escape decoding happens in the document
// package, which is the only layer that needs the fully unescaped value).
func (k Key) Text() string {
	tok, ok := k.Token()
	if !ok {
		return ""
	}
	s := tok.Text()
	switch tok.Kind() {
	case syntax.BASIC_STRING, syntax.LITERAL_STRING:
		if len(s) >= 2 {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// String renders the full dotted path, e.g. "a.b.c", for diagnostics.
func (k Keys) String() string {
	var parts []string
	for _, key := range k.Keys() {
		parts = append(parts, key.Text())
	}
	return strings.Join(parts, ".")
}
