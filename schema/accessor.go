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
	"fmt"
	"strings"
)

// Accessor is one step of a path into a document-tree: either a table key
// or an array index.
type Accessor struct {
	key      string
	index    int
	isIndex  bool
}

// AccessorKey builds a key-valued Accessor.
func AccessorKey(key string) Accessor { return Accessor{key: key} }

// AccessorIndex builds an index-valued Accessor.
func AccessorIndex(index int) Accessor { return Accessor{index: index, isIndex: true} }

func (a Accessor) IsIndex() bool { return a.isIndex }
func (a Accessor) Key() string   { return a.key }
func (a Accessor) Index() int    { return a.index }

// SchemaAccessor is the schema-graph analogue of Accessor: a named
// property, or the single anonymous array-entry form used to match
// `items`/`patternProperties` against any index.
type SchemaAccessor struct {
	key     string
	isIndex bool
}

// SchemaAccessorKey builds a key-valued SchemaAccessor.
func SchemaAccessorKey(key string) SchemaAccessor { return SchemaAccessor{key: key} }

// SchemaAccessorIndex is the anonymous array-entry SchemaAccessor.
func SchemaAccessorIndex() SchemaAccessor { return SchemaAccessor{isIndex: true} }

func (a SchemaAccessor) IsIndex() bool { return a.isIndex }
func (a SchemaAccessor) Key() string   { return a.key }

// String renders a, e.g. "bar" or "[index]", the same form
// SchemaAccessorPath.String() writes for each step.
func (a SchemaAccessor) String() string {
	if a.isIndex {
		return "[index]"
	}
	return a.key
}

// AccessorPath is a sequence of Accessors from a document-tree's root
// down to a specific value, used to look up a SubSchemaUrlMap entry and
// to render hover/diagnostic paths.
type AccessorPath []Accessor

// String renders p as a dotted/bracketed path, e.g. "foo.bar[2]".
func (p AccessorPath) String() string {
	var b strings.Builder
	for i, a := range p {
		if a.isIndex {
			fmt.Fprintf(&b, "[%d]", a.index)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(a.key)
	}
	return b.String()
}

// SchemaAccessorPath is the schema-graph counterpart of AccessorPath,
// used as the map key inside SubSchemaUrlMap.
type SchemaAccessorPath []SchemaAccessor

// String renders p the same way AccessorPath does.
func (p SchemaAccessorPath) String() string {
	var b strings.Builder
	for i, a := range p {
		if a.isIndex {
			b.WriteString("[index]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(a.key)
	}
	return b.String()
}

// Key renders p as a single map key, used by SubSchemaUrlMap.
func (p SchemaAccessorPath) Key() string { return p.String() }
