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

package schema

import (
	"context"
	"strings"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

const directivePrefix = "#:schema "

// leadingDirective scans n's own children (not root's) for a `#:schema`
// comment preceding n's first Node child. The parser's trivia replay
// (internal/parser/process.go) attaches a comment at the very top of a
// document to whichever KeyValue/Table/ArrayOfTable node follows it, not
// to ROOT directly, since that node's Start event is already open on the
// builder stack by the time the comment's flushTrivia runs.
func leadingDirective(n *rgtree.RedNode) (string, bool) {
	for _, c := range n.Children() {
		if c.Node != nil {
			return "", false
		}
		if c.Token == nil || c.Token.Kind() != syntax.COMMENT {
			continue
		}
		text := c.Token.Text()
		if strings.HasPrefix(text, directivePrefix) {
			return strings.TrimSpace(strings.TrimPrefix(text, directivePrefix)), true
		}
	}
	return "", false
}

// findSchemaDirective looks for a `#:schema <url>` comment leading root's
// first item, per spec.md Section 6. A comment-only document (no items at
// all) falls back to scanning ROOT's own children directly.
func findSchemaDirective(root ast.Root) (string, bool) {
	if items := root.Items(); len(items) > 0 {
		return leadingDirective(items[0].Syntax())
	}
	return leadingDirective(root.Syntax())
}

// ResolveSourceSchema chooses a schema for root per spec.md Section 4.5:
// an inline `#:schema` directive takes priority; otherwise the store's
// loaded catalog is matched against sourceURL.
func (s *Store) ResolveSourceSchema(ctx context.Context, root ast.Root, sourceURL URL) (*SourceSchema, error) {
	if directive, ok := findSchemaDirective(root); ok {
		u, err := sourceURL.ResolveRelative(directive)
		if err != nil {
			return nil, err
		}
		doc, err := s.TryGetDocumentSchema(ctx, u)
		if err != nil {
			return nil, err
		}
		return &SourceSchema{Root: doc, SubSchemaUrlMap: SubSchemaUrlMap{}}, nil
	}

	s.mu.RLock()
	cat := s.catalog
	s.mu.RUnlock()
	entry, ok := cat.Match(sourceURL.String())
	if !ok {
		return nil, nil
	}
	doc, err := s.TryGetDocumentSchema(ctx, entry.URL)
	if err != nil {
		return nil, err
	}
	return &SourceSchema{Root: doc, SubSchemaUrlMap: SubSchemaUrlMap{}}, nil
}
