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

package format

import (
	"strings"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
	"github.com/tombi-toolkit/tombi-go/version"
)

// Format renders root back to text under opts. It never fails on its own
// account; a non-nil diagnostic slice reports version-incompatible
// constructs encountered along the way (e.g. a multiline inline table
// under TOML 1.0), matching spec.md Section 4.6's "or a vector of
// diagnostics" contract.
func Format(root ast.Root, v version.TOML, opts Options) (string, []diagnostic.Diagnostic) {
	p := &printer{v: v, opts: opts}
	p.items(root.Items())
	out := p.buf.String()
	if opts.LineEnding == CRLF {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	return out, p.diags
}

// IsIdempotent reports whether re-formatting src's own output under the
// same options reproduces it byte-for-byte, the fixed-point property
// spec.md Section 4.6 requires of the formatter.
func IsIdempotent(src string, v version.TOML, opts Options) bool {
	root, _ := ast.Parse(src, v)
	once, _ := Format(root, v, opts)
	root2, _ := ast.Parse(once, v)
	twice, _ := Format(root2, v, opts)
	return once == twice
}

type printer struct {
	v     version.TOML
	opts  Options
	buf   strings.Builder
	diags []diagnostic.Diagnostic
}

func (p *printer) nl() { p.buf.WriteByte('\n') }

func (p *printer) items(items []ast.Node) {
	for i, item := range items {
		switch n := item.(type) {
		case ast.KeyValue:
			p.keyValue(n, "")
			p.nl()
		case ast.Table:
			if i > 0 {
				p.nl()
			}
			p.table(n)
		case ast.ArrayOfTable:
			if i > 0 {
				p.nl()
			}
			p.arrayOfTable(n)
		}
	}
}

func (p *printer) leadingComments(comments []ast.Comment, indent string) {
	for _, c := range comments {
		p.buf.WriteString(indent)
		p.buf.WriteString(strings.TrimRight(c.Text(), " \t"))
		p.nl()
	}
}

func (p *printer) table(t ast.Table) {
	p.leadingComments(leadingOf(t.Comments()), "")
	p.buf.WriteByte('[')
	if keys, ok := t.Keys(); ok {
		p.buf.WriteString(keys.String())
	}
	p.buf.WriteByte(']')
	p.nl()
	for _, kv := range t.KeyValues() {
		p.keyValue(kv, "")
		p.nl()
	}
}

func (p *printer) arrayOfTable(t ast.ArrayOfTable) {
	p.leadingComments(leadingOf(t.Comments()), "")
	p.buf.WriteString("[[")
	if keys, ok := t.Keys(); ok {
		p.buf.WriteString(keys.String())
	}
	p.buf.WriteString("]]")
	p.nl()
	for _, kv := range t.KeyValues() {
		p.keyValue(kv, "")
		p.nl()
	}
}

func leadingOf(comments []ast.Comment) []ast.Comment {
	var out []ast.Comment
	for _, c := range comments {
		if c.Role == ast.RoleLeading {
			out = append(out, c)
		}
	}
	return out
}

func (p *printer) keyValue(kv ast.KeyValue, indent string) {
	p.leadingComments(kv.LeadingComments(), indent)
	p.buf.WriteString(indent)
	if keys, ok := kv.Keys(); ok {
		p.buf.WriteString(keys.String())
	}
	p.buf.WriteString(" = ")
	if val, ok := kv.Value(); ok {
		p.value(val, indent)
	}
	if c, ok := kv.TailingComment(); ok {
		p.buf.WriteString("  ")
		p.buf.WriteString(strings.TrimRight(c.Text(), " \t"))
	}
}

func (p *printer) value(v ast.Value, indent string) {
	if arr, ok := v.Array(); ok {
		p.array(arr, indent)
		return
	}
	if it, ok := v.InlineTable(); ok {
		p.inlineTable(it, indent)
		return
	}
	tok, ok := v.ScalarToken()
	if !ok {
		return
	}
	p.buf.WriteString(p.scalarText(tok))
}

// needsMultiline reports whether an array or inline table must be printed
// multiline regardless of line-width fit: spec.md Section 4.6 lists a
// trailing comma, a multiline string, a nested multiline container, or
// inner comments as the forcing conditions.
func needsMultiline(comments []ast.Comment, values []ast.Value, trailingComma bool) bool {
	if trailingComma {
		return true
	}
	if len(comments) > 0 {
		return true
	}
	for _, v := range values {
		if tok, ok := v.ScalarToken(); ok {
			switch tok.Kind() {
			case syntax.MULTI_LINE_BASIC_STRING, syntax.MULTI_LINE_LITERAL_STRING:
				return true
			}
		}
		if arr, ok := v.Array(); ok {
			if containsComments(v) || arr.HasTrailingComma() {
				return true
			}
		}
		if it, ok := v.InlineTable(); ok {
			if containsComments(v) || it.HasTrailingComma() {
				return true
			}
		}
	}
	return false
}

func containsComments(v ast.Value) bool {
	if arr, ok := v.Array(); ok {
		return len(arr.Comments()) > 0
	}
	if it, ok := v.InlineTable(); ok {
		return len(it.Comments()) > 0
	}
	return false
}

// renderChild renders fn into a fresh printer sharing v/opts, returning its
// output text and diagnostics without disturbing p's own buffer. Used to
// measure an array/inline-table's one-line candidate rendering against
// Options.LineWidth before committing to it.
func (p *printer) renderChild(fn func(*printer)) (string, []diagnostic.Diagnostic) {
	child := &printer{v: p.v, opts: p.opts}
	fn(child)
	return child.buf.String(), child.diags
}

func (p *printer) array(arr ast.Array, indent string) {
	values := arr.Values()
	comments := arr.Comments()
	if len(values) == 0 && len(comments) == 0 {
		p.buf.WriteString("[]")
		return
	}

	oneLine, oneLineDiags := p.renderChild(func(c *printer) {
		c.buf.WriteByte('[')
		for i, v := range values {
			if i > 0 {
				c.buf.WriteString(", ")
			}
			c.value(v, "")
		}
		c.buf.WriteByte(']')
	})
	fits := len(indent)+len(oneLine) <= p.opts.LineWidth

	if !needsMultiline(comments, values, arr.HasTrailingComma()) && fits {
		p.buf.WriteString(oneLine)
		p.diags = append(p.diags, oneLineDiags...)
		return
	}

	inner := indent + p.opts.indentUnit()
	p.buf.WriteString("[\n")
	for _, c := range beginDangling(comments) {
		p.buf.WriteString(inner)
		p.buf.WriteString(c.Text())
		p.nl()
	}
	for _, v := range values {
		p.buf.WriteString(inner)
		p.value(v, inner)
		p.buf.WriteString(",\n")
	}
	for _, c := range endDangling(comments) {
		p.buf.WriteString(inner)
		p.buf.WriteString(c.Text())
		p.nl()
	}
	p.buf.WriteString(indent)
	p.buf.WriteByte(']')
}

func beginDangling(comments []ast.Comment) []ast.Comment {
	var out []ast.Comment
	for _, c := range comments {
		if c.Role == ast.RoleBeginDangling {
			out = append(out, c)
		}
	}
	return out
}

func endDangling(comments []ast.Comment) []ast.Comment {
	var out []ast.Comment
	for _, c := range comments {
		if c.Role == ast.RoleEndDangling {
			out = append(out, c)
		}
	}
	return out
}

func (p *printer) inlineTable(it ast.InlineTable, indent string) {
	kvs := it.KeyValues()
	comments := it.Comments()
	if len(kvs) == 0 && len(comments) == 0 {
		p.buf.WriteString("{}")
		return
	}
	multiline := len(comments) > 0 || it.HasTrailingComma()
	if !multiline {
		for _, kv := range kvs {
			if val, ok := kv.Value(); ok {
				if needsValueMultiline(val) {
					multiline = true
					break
				}
			}
		}
	}
	if !multiline {
		oneLine, oneLineDiags := p.renderChild(func(c *printer) {
			c.buf.WriteString("{ ")
			for i, kv := range kvs {
				if i > 0 {
					c.buf.WriteString(", ")
				}
				c.keyValue(kv, "")
			}
			c.buf.WriteString(" }")
		})
		if len(indent)+len(oneLine) <= p.opts.LineWidth {
			p.buf.WriteString(oneLine)
			p.diags = append(p.diags, oneLineDiags...)
			return
		}
		multiline = true
	}
	if multiline && p.v != version.V1_1_0Preview {
		p.diags = append(p.diags, Diagnostic{
			Detail: "multiline inline tables require TOML 1.1",
			Range_: it.Syntax().Range(),
		})
	}

	inner := indent + p.opts.indentUnit()
	p.buf.WriteString("{\n")
	for _, c := range beginDangling(comments) {
		p.buf.WriteString(inner)
		p.buf.WriteString(c.Text())
		p.nl()
	}
	for _, kv := range kvs {
		p.keyValue(kv, inner)
		p.buf.WriteString(",\n")
	}
	for _, c := range endDangling(comments) {
		p.buf.WriteString(inner)
		p.buf.WriteString(c.Text())
		p.nl()
	}
	p.buf.WriteString(indent)
	p.buf.WriteByte('}')
}

func needsValueMultiline(v ast.Value) bool {
	if tok, ok := v.ScalarToken(); ok {
		switch tok.Kind() {
		case syntax.MULTI_LINE_BASIC_STRING, syntax.MULTI_LINE_LITERAL_STRING:
			return true
		}
	}
	if arr, ok := v.Array(); ok && arr.HasTrailingComma() {
		return true
	}
	if it, ok := v.InlineTable(); ok && it.HasTrailingComma() {
		return true
	}
	return containsComments(v)
}

