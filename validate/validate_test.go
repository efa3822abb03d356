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

package validate_test

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/document"
	"github.com/tombi-toolkit/tombi-go/internal/text"
	"github.com/tombi-toolkit/tombi-go/schema"
	"github.com/tombi-toolkit/tombi-go/validate"
)

func intVal(n int64) document.Integer { return document.Integer{Value: n} }
func strVal(s string) document.String { return document.String{Value: s} }

func tableOf(pairs ...interface{}) *document.Table {
	t := document.NewTable(document.TableKindRoot, text.Range{})
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		val := pairs[i+1].(document.Value)
		t.Set(document.Key{Decoded: key}, val)
	}
	return t
}

func rootCur(v schema.ValueSchema) schema.CurrentSchema {
	return schema.CurrentSchema{Value: v}
}

func TestValidateIntegerBounds(t *testing.T) {
	max := int64(10)
	s := schema.IntegerSchema{Maximum: &max}
	v := validate.New(nil)

	diags, err := v.Validate(context.Background(), tableOf("x", intVal(10)), rootCur(schema.TableSchema{
		Properties: map[string]schema.Referable[schema.ValueSchema]{
			"x": schema.Resolved[schema.ValueSchema](s),
		},
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(diags, 0))
}

func TestValidateTypeMismatch(t *testing.T) {
	v := validate.New(nil)
	tbl := tableOf("x", strVal("nope"))
	diags, err := v.Validate(context.Background(), tbl, rootCur(schema.TableSchema{
		Properties: map[string]schema.Referable[schema.ValueSchema]{
			"x": schema.Resolved[schema.ValueSchema](schema.IntegerSchema{}),
		},
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(diags, 1))
	qt.Assert(t, qt.Equals(diags[0].Kind, validate.TypeMismatch))
}

func TestValidateRequiredKeyMissing(t *testing.T) {
	v := validate.New(nil)
	tbl := tableOf()
	diags, err := v.Validate(context.Background(), tbl, rootCur(schema.TableSchema{
		Required: []string{"name"},
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(diags, 1))
	qt.Assert(t, qt.Equals(diags[0].Kind, validate.KeyRequired))
}

func TestValidateEnumeration(t *testing.T) {
	v := validate.New(nil)
	tbl := tableOf("color", strVal("purple"))
	diags, err := v.Validate(context.Background(), tbl, rootCur(schema.TableSchema{
		Properties: map[string]schema.Referable[schema.ValueSchema]{
			"color": schema.Resolved[schema.ValueSchema](schema.StringSchema{Enum: []string{"red", "green", "blue"}}),
		},
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(diags, 1))
	qt.Assert(t, qt.Equals(diags[0].Kind, validate.Enumerate))
}

func TestValidateOneOfExactlyOneMatches(t *testing.T) {
	v := validate.New(nil)
	tbl := tableOf("n", intVal(4))
	oneOf := schema.OneOfSchema{CompositeSchema: schema.CompositeSchema{
		Members: []schema.Referable[schema.ValueSchema]{
			schema.Resolved[schema.ValueSchema](schema.IntegerSchema{}),
			schema.Resolved[schema.ValueSchema](schema.StringSchema{}),
		},
	}}
	diags, err := v.Validate(context.Background(), tbl, rootCur(schema.TableSchema{
		Properties: map[string]schema.Referable[schema.ValueSchema]{
			"n": schema.Resolved[schema.ValueSchema](oneOf),
		},
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(diags, 0))
}
