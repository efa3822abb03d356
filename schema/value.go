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
	"regexp"

	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// ValueKind discriminates the ValueSchema sum type.
type ValueKind int

const (
	KindBoolean ValueKind = iota
	KindInteger
	KindFloat
	KindString
	KindArray
	KindTable
	KindOneOf
	KindAnyOf
	KindAllOf
	KindNull
)

// ValueSchema is the sum type spec.md Section 3 describes: one variant per
// TOML scalar kind, plus Table, Array, and the three composite forms.
// NullSchema (the KindNull case) accepts any value with no further checks,
// matching spec.md Section 4.7's validator contract.
type ValueSchema interface {
	Kind() ValueKind
}

// BaseSchema holds the annotation keywords common to every schema node.
type BaseSchema struct {
	Title       string
	Description string
}

type BooleanSchema struct {
	BaseSchema
	Enum    []bool
	Default *bool
}

func (BooleanSchema) Kind() ValueKind { return KindBoolean }

type IntegerSchema struct {
	BaseSchema
	Enum                            []int64
	Minimum, Maximum                *int64
	ExclusiveMinimum, ExclusiveMaximum *int64
	MultipleOf                      *int64
}

func (IntegerSchema) Kind() ValueKind { return KindInteger }

type FloatSchema struct {
	BaseSchema
	Enum                               []float64
	Minimum, Maximum                   *float64
	ExclusiveMinimum, ExclusiveMaximum *float64
	MultipleOf                         *float64
}

func (FloatSchema) Kind() ValueKind { return KindFloat }

type StringSchema struct {
	BaseSchema
	Enum                 []string
	MinLength, MaxLength *int
	Pattern              *regexp.Regexp
	PatternRaw           string
}

func (StringSchema) Kind() ValueKind { return KindString }

// ValuesOrder is the effect of `x-tombi-array-values-order`.
type ValuesOrder int

const (
	ValuesOrderNone ValuesOrder = iota
	ValuesOrderAscending
	ValuesOrderDescending
)

type ArraySchema struct {
	BaseSchema
	Items                *Referable[ValueSchema]
	MinItems, MaxItems   *int
	UniqueItems          bool
	ValuesOrder          ValuesOrder
	Range                text.Range
}

func (ArraySchema) Kind() ValueKind { return KindArray }

// KeysOrder is the effect of `x-tombi-table-keys-order`.
type KeysOrder int

const (
	KeysOrderNone KeysOrder = iota
	KeysOrderAscending
	KeysOrderDescending
	KeysOrderSchema
)

// AdditionalProperties is draft-7's `additionalProperties`, which may be a
// plain boolean or a schema every extra property must satisfy.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Referable[ValueSchema]
}

type PatternProperty struct {
	Pattern *regexp.Regexp
	Schema  Referable[ValueSchema]
}

type TableSchema struct {
	BaseSchema
	Properties        map[string]Referable[ValueSchema]
	PropertyOrder     []string
	PatternProperties []PatternProperty
	AdditionalProperties *AdditionalProperties
	Required          []string
	MinProperties, MaxProperties *int
	KeysOrder         KeysOrder
	Range             text.Range
}

func (TableSchema) Kind() ValueKind { return KindTable }

// CompositeSchema backs OneOf/AnyOf/AllOf: a set of member schemas plus
// the source range of the composite keyword, for diagnostics.
type CompositeSchema struct {
	BaseSchema
	Members []Referable[ValueSchema]
	Range   text.Range
}

type OneOfSchema struct{ CompositeSchema }

func (OneOfSchema) Kind() ValueKind { return KindOneOf }

type AnyOfSchema struct{ CompositeSchema }

func (AnyOfSchema) Kind() ValueKind { return KindAnyOf }

type AllOfSchema struct{ CompositeSchema }

func (AllOfSchema) Kind() ValueKind { return KindAllOf }

// NullSchema matches any value unconditionally.
type NullSchema struct{ BaseSchema }

func (NullSchema) Kind() ValueKind { return KindNull }
