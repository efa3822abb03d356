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

import "fmt"

// RefSchema is an unresolved `$ref`, plus the title/description override
// that a `$ref` sibling may carry and which must survive dereference
// (spec.md Section 3, "Schema graph").
type RefSchema struct {
	Reference   string
	Title       *string
	Description *string
}

// Referable is either a already-Resolved value or a Ref awaiting
// resolution against some DocumentSchema's definitions map.
type Referable[T any] struct {
	resolved *T
	ref      *RefSchema
}

// Resolved wraps an already-resolved value.
func Resolved[T any](v T) Referable[T] { return Referable[T]{resolved: &v} }

// Ref wraps an unresolved reference.
func Ref[T any](r RefSchema) Referable[T] { return Referable[T]{ref: &r} }

// IsRef reports whether r is still an unresolved reference.
func (r Referable[T]) IsRef() bool { return r.ref != nil }

// RefSchema returns the underlying reference, if r is unresolved.
func (r Referable[T]) RefSchema() (RefSchema, bool) {
	if r.ref == nil {
		return RefSchema{}, false
	}
	return *r.ref, true
}

// Value returns the already-resolved value, if any. Callers that must
// also handle the Ref case should use Resolve instead.
func (r Referable[T]) Value() (T, bool) {
	if r.resolved == nil {
		var zero T
		return zero, false
	}
	return *r.resolved, true
}

// Resolve dereferences r against definitions (an enclosing DocumentSchema's
// `#/definitions/...`/`#/$defs/...` map). It does not by itself apply a
// `$ref`'s title/description override -- ResolveValueSchema does that for
// the ValueSchema case, since the override must be type-switched onto the
// concrete schema variant. Errors with DefinitionNotFoundError if the
// fragment isn't present.
func (r Referable[T]) Resolve(definitions map[string]Referable[T]) (T, error) {
	if r.resolved != nil {
		return *r.resolved, nil
	}
	target, ok := definitions[r.ref.Reference]
	if !ok {
		var zero T
		return zero, &DefinitionNotFoundError{Reference: r.ref.Reference}
	}
	return target.Resolve(definitions)
}

// DefinitionNotFoundError is returned by Resolve when a `$ref`'s fragment
// is absent from the definitions map it was resolved against.
type DefinitionNotFoundError struct {
	Reference string
}

func (e *DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("schema: definition not found: %s", e.Reference)
}
