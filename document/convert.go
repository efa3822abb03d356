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

import "fmt"

// Document is the serializable projection of a fully-valid DocumentTree:
// plain Go values (map[string]any, []any, and the scalar Go types), except
// that local dates and local times stay LocalDate/LocalTime structs (which
// still carry their Range_), suitable for encoding/json or any other generic
// consumer (SPEC_FULL.md Section 10, supplementing a feature the
// distilled spec.md omitted).
type Document map[string]interface{}

// IntoDocument converts t into its serializable projection. It fails if
// any value in the tree is Incomplete. It does not see the error list of
// the DocumentTreeAndErrors t came from, so lowering errors that left no
// Incomplete value behind (e.g. a dropped duplicate key) do not make it
// fail.
func (t *Table) IntoDocument() (Document, error) {
	v, err := toPlain(t)
	if err != nil {
		return nil, err
	}
	return v.(Document), nil
}

func toPlain(v Value) (interface{}, error) {
	switch val := v.(type) {
	case Boolean:
		return val.Value_, nil
	case Integer:
		return val.Value, nil
	case Float:
		return val.Value, nil
	case String:
		return val.Value, nil
	case OffsetDateTime:
		return val.Time, nil
	case LocalDateTime:
		return val.Time, nil
	case LocalDate:
		return val, nil
	case LocalTime:
		return val, nil
	case *Array:
		out := make([]interface{}, 0, len(val.Values))
		for _, elem := range val.Values {
			p, err := toPlain(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case *Table:
		out := make(Document, val.Len())
		for _, e := range val.entries {
			p, err := toPlain(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key.Decoded] = p
		}
		return out, nil
	case Incomplete:
		return nil, fmt.Errorf("document: cannot convert incomplete value at %v", val.Range_)
	default:
		return nil, fmt.Errorf("document: unknown value type %T", v)
	}
}
