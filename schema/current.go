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
	"fmt"
	"strings"
)

// CurrentSchema is the (value schema, declaring document URL, that
// document's definitions) triple threaded through every traversal, per
// spec.md Section 3: relative `$ref`s must resolve against the document
// that *declared* them, not the document a traversal started from, so all
// three fields travel together rather than being re-derived from a single
// root.
type CurrentSchema struct {
	Value       ValueSchema
	SchemaURL   URL
	Definitions map[string]Referable[ValueSchema]
}

// RootCurrentSchema builds the CurrentSchema for doc's own root value.
func RootCurrentSchema(ctx context.Context, store *Store, doc *DocumentSchema) (CurrentSchema, error) {
	base := CurrentSchema{SchemaURL: doc.SchemaURL, Definitions: doc.Definitions}
	return ResolveRef(ctx, store, doc.Root, base)
}

// ResolveValueSchema is a convenience wrapper over ResolveRef for callers
// that only need the dereferenced value, not the (possibly different)
// document it resolved into.
func ResolveValueSchema(ctx context.Context, store *Store, ref Referable[ValueSchema], schemaURL URL, definitions map[string]Referable[ValueSchema]) (ValueSchema, error) {
	cur, err := ResolveRef(ctx, store, ref, CurrentSchema{SchemaURL: schemaURL, Definitions: definitions})
	if err != nil {
		return nil, err
	}
	return cur.Value, nil
}

// ResolveRef dereferences ref against cur's declaring document, following
// a `$ref` into a different document (via store) when the reference is
// not a bare `#/...` fragment, and returns the CurrentSchema the
// dereferenced value now lives in -- which may carry a different
// SchemaURL/Definitions than cur, since a cross-document `$ref`'s own
// nested `$ref`s must in turn resolve against *that* document.
//
// Resolution is memoised per (schemaURL, reference) pair on the call
// stack to guarantee termination over a cyclic `$ref` graph (spec.md
// Section 9, "Composite schemas and cycles").
func ResolveRef(ctx context.Context, store *Store, ref Referable[ValueSchema], cur CurrentSchema) (CurrentSchema, error) {
	if v, ok := ref.Value(); ok {
		return CurrentSchema{Value: v, SchemaURL: cur.SchemaURL, Definitions: cur.Definitions}, nil
	}
	return resolveRef(ctx, store, ref, cur, map[string]bool{})
}

func resolveRef(ctx context.Context, store *Store, ref Referable[ValueSchema], cur CurrentSchema, seen map[string]bool) (CurrentSchema, error) {
	if v, ok := ref.Value(); ok {
		return CurrentSchema{Value: v, SchemaURL: cur.SchemaURL, Definitions: cur.Definitions}, nil
	}

	rs, _ := ref.RefSchema()
	memoKey := cur.SchemaURL.String() + "|" + rs.Reference
	if seen[memoKey] {
		return CurrentSchema{}, fmt.Errorf("schema: cyclic $ref at %s", rs.Reference)
	}
	seen[memoKey] = true

	targetURL := cur.SchemaURL
	fragment := rs.Reference
	defs := cur.Definitions
	if !strings.HasPrefix(rs.Reference, "#") {
		docPart, frag, _ := strings.Cut(rs.Reference, "#")
		fragment = "#" + frag
		if store == nil {
			return CurrentSchema{}, newError(UnsupportedReference, rs.Reference)
		}
		u, err := cur.SchemaURL.ResolveRelative(docPart)
		if err != nil {
			return CurrentSchema{}, err
		}
		targetDoc, err := store.TryGetDocumentSchema(ctx, u)
		if err != nil {
			return CurrentSchema{}, err
		}
		targetURL = u
		defs = targetDoc.Definitions
	}

	next, ok := defs[fragment]
	if !ok {
		return CurrentSchema{}, &DefinitionNotFoundError{Reference: rs.Reference}
	}
	resolved, err := resolveRef(ctx, store, next, CurrentSchema{SchemaURL: targetURL, Definitions: defs}, seen)
	if err != nil {
		return CurrentSchema{}, err
	}
	resolved.Value = applyRefOverride(resolved.Value, rs)
	return resolved, nil
}

// applyRefOverride copies title/description from a `$ref`'s sibling
// keywords onto the dereferenced schema, since those override the
// referent's own annotations (spec.md Section 3).
func applyRefOverride(v ValueSchema, rs RefSchema) ValueSchema {
	if rs.Title == nil && rs.Description == nil {
		return v
	}
	switch s := v.(type) {
	case BooleanSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case IntegerSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case FloatSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case StringSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case ArraySchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case TableSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case OneOfSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case AnyOfSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case AllOfSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	case NullSchema:
		overrideBase(&s.BaseSchema, rs)
		return s
	default:
		return v
	}
}

func overrideBase(base *BaseSchema, rs RefSchema) {
	if rs.Title != nil {
		base.Title = *rs.Title
	}
	if rs.Description != nil {
		base.Description = *rs.Description
	}
}
