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

package asteditor

import (
	"sort"
	"strings"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/schema"
)

const directivePrefix = "#:schema "

// leadingDirective reports the index of a `#:schema` COMMENT token among
// n's direct children, provided it appears before n's first Node child
// (the parser attaches a standalone comment as a leading child of
// whatever KeyValue/Table/ArrayOfTable line follows it, per
// internal/parser/process.go's trivia replay -- never as a sibling of
// that node at the ROOT level).
func leadingDirective(n *rgtree.RedNode) int {
	for i, c := range n.Children() {
		if c.Node != nil {
			return -1
		}
		if c.Token != nil && c.Token.Kind() == syntax.COMMENT && strings.HasPrefix(c.Token.Text(), directivePrefix) {
			return i
		}
	}
	return -1
}

// HoistSchemaDirective builds the Change that moves a `#:schema` directive
// comment found as the leading comment of any top-level item to the
// leading position of the very first item, leaving every item's relative
// order otherwise unchanged (spec.md Section 4.8(a)). It returns nil if no
// directive is present, or it is already leading the first item.
func HoistSchemaDirective(root ast.Root) []Change {
	items := root.Items()
	if len(items) < 2 {
		return nil
	}
	sourceIdx := -1
	for i, item := range items {
		if leadingDirective(item.Syntax()) != -1 {
			sourceIdx = i
			break
		}
	}
	if sourceIdx <= 0 {
		return nil
	}
	return []Change{hoistDirective{
		source: rgtree.NewNodePtr(items[sourceIdx].Syntax()),
		target: rgtree.NewNodePtr(items[0].Syntax()),
	}}
}

// hoistDirective detaches a leading `#:schema` comment (plus its trailing
// line break) from source's children and prepends it to target's, as two
// independent path-copies through the green tree.
type hoistDirective struct {
	source rgtree.NodePtr
	target rgtree.NodePtr
}

func (c hoistDirective) apply(root *rgtree.GreenNode) *rgtree.GreenNode {
	red := rgtree.NewRoot(root)
	src, ok := c.source.Resolve(red)
	if !ok {
		return root
	}
	idx := leadingDirective(src)
	if idx == -1 {
		return root
	}
	srcChildren := src.Green().Children
	directive := srcChildren[idx]
	removeTo := idx + 1
	if removeTo < len(srcChildren) && srcChildren[removeTo].Token != nil && srcChildren[removeTo].Token.Kind == syntax.LINE_BREAK {
		removeTo++
	}
	newSrcChildren := make([]rgtree.GreenElement, 0, len(srcChildren)-(removeTo-idx))
	newSrcChildren = append(newSrcChildren, srcChildren[:idx]...)
	newSrcChildren = append(newSrcChildren, srcChildren[removeTo:]...)
	newSrc := rgtree.NewGreenNode(src.Green().Kind, newSrcChildren)
	root = rgtree.ReplaceAt(root, rgtree.PathTo(src), newSrc)

	red = rgtree.NewRoot(root)
	tgt, ok := c.target.Resolve(red)
	if !ok {
		return root
	}
	tgtChildren := tgt.Green().Children
	newTgtChildren := make([]rgtree.GreenElement, 0, len(tgtChildren)+2)
	newTgtChildren = append(newTgtChildren, directive, rgtree.GreenElement{Token: rgtree.NewGreenToken(syntax.LINE_BREAK, "\n")})
	newTgtChildren = append(newTgtChildren, tgtChildren...)
	newTgt := rgtree.NewGreenNode(tgt.Green().Kind, newTgtChildren)
	return rgtree.ReplaceAt(root, rgtree.PathTo(tgt), newTgt)
}

// ReorderTableKeys builds the Change that reorders t's direct KeyValue
// children to match order: names listed in order come first (in that
// order), then any keys not named in order keep their original relative
// position appended after (spec.md Section 4.6's "stable" schema-driven
// reordering rule). Intervening trivia (blank lines, comments between
// entries) is not preserved across a reorder -- each moved entry keeps
// only its own leading/tailing comments.
func ReorderTableKeys(t ast.Table, order []string) []Change {
	kvs := t.KeyValues()
	if len(kvs) < 2 {
		return nil
	}
	return reorderKeyValues(kvs, order)
}

// ReorderArrayOfTableKeys is ReorderTableKeys for a `[[a.b]]` header body.
func ReorderArrayOfTableKeys(t ast.ArrayOfTable, order []string) []Change {
	kvs := t.KeyValues()
	if len(kvs) < 2 {
		return nil
	}
	return reorderKeyValues(kvs, order)
}

func reorderKeyValues(kvs []ast.KeyValue, order []string) []Change {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	indices := make([]int, len(kvs))
	for i := range indices {
		indices[i] = i
	}
	keyName := func(kv ast.KeyValue) string {
		if keys, ok := kv.Keys(); ok {
			return keys.String()
		}
		return ""
	}
	sort.SliceStable(indices, func(a, b int) bool {
		ra, oka := rank[keyName(kvs[indices[a]])]
		rb, okb := rank[keyName(kvs[indices[b]])]
		switch {
		case oka && okb:
			return ra < rb
		case oka:
			return true
		case okb:
			return false
		default:
			return false
		}
	})

	same := true
	for i, idx := range indices {
		if i != idx {
			same = false
			break
		}
	}
	if same {
		return nil
	}

	var oldPtrs []rgtree.NodePtr
	for _, kv := range kvs {
		oldPtrs = append(oldPtrs, rgtree.NewNodePtr(kv.Syntax()))
	}
	var newChildren []rgtree.GreenElement
	for i, idx := range indices {
		if i > 0 {
			newChildren = append(newChildren, rgtree.GreenElement{Token: rgtree.NewGreenToken(syntax.LINE_BREAK, "\n")})
		}
		newChildren = append(newChildren, rgtree.GreenElement{Node: kvs[idx].Syntax().Green()})
	}
	return []Change{ReplaceRange{Old: oldPtrs, New: newChildren}}
}

// ReorderArrayValues builds the Change that sorts arr's element values
// ascending or descending, per an `x-tombi-array-values-order` schema
// keyword. Non-scalar elements (nested arrays/inline tables) sort after
// every scalar, by original position, since they have no natural total
// order.
func ReorderArrayValues(arr ast.Array, dir schema.ValuesOrder) []Change {
	if dir == schema.ValuesOrderNone {
		return nil
	}
	values := arr.Values()
	if len(values) < 2 {
		return nil
	}
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	key := func(v ast.Value) (string, bool) {
		tok, ok := v.ScalarToken()
		if !ok {
			return "", false
		}
		return tok.Text(), true
	}
	sort.SliceStable(indices, func(a, b int) bool {
		ka, oka := key(values[indices[a]])
		kb, okb := key(values[indices[b]])
		switch {
		case oka && okb:
			if dir == schema.ValuesOrderDescending {
				return ka > kb
			}
			return ka < kb
		case oka:
			return true
		case okb:
			return false
		default:
			return false
		}
	})

	same := true
	for i, idx := range indices {
		if i != idx {
			same = false
			break
		}
	}
	if same {
		return nil
	}

	var oldPtrs []rgtree.NodePtr
	for _, v := range values {
		oldPtrs = append(oldPtrs, rgtree.NewNodePtr(v.Syntax()))
	}
	var newChildren []rgtree.GreenElement
	for i, idx := range indices {
		if i > 0 {
			newChildren = append(newChildren, rgtree.GreenElement{Token: rgtree.NewGreenToken(syntax.COMMA, ",")})
		}
		newChildren = append(newChildren, rgtree.GreenElement{Node: values[idx].Syntax().Green()})
	}
	return []Change{ReplaceRange{Old: oldPtrs, New: newChildren}}
}
