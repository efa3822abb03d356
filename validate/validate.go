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

package validate

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/tombi-toolkit/tombi-go/document"
	"github.com/tombi-toolkit/tombi-go/schema"
)

// Validator walks a document-tree against a schema graph, fetching
// cross-document `$ref`s through store as needed.
type Validator struct {
	store *schema.Store
}

// New returns a Validator backed by store. store may be nil if the schema
// graph is known to contain no cross-document `$ref`s.
func New(store *schema.Store) *Validator {
	return &Validator{store: store}
}

// Validate checks root against the schema rooted at cur, returning every
// diagnostic found. It never returns a Go error for a validation failure;
// err is non-nil only for an infrastructure failure (a `$ref` fetch that
// failed), matching spec.md Section 4's "validation failures are data,
// not control flow" contract.
func (v *Validator) Validate(ctx context.Context, root *document.Table, cur schema.CurrentSchema) ([]Diagnostic, error) {
	return v.validateValue(ctx, root, cur)
}

func (v *Validator) validateValue(ctx context.Context, val document.Value, cur schema.CurrentSchema) ([]Diagnostic, error) {
	if _, ok := val.(document.Incomplete); ok {
		return nil, nil
	}

	switch s := cur.Value.(type) {
	case schema.NullSchema:
		return nil, nil
	case schema.BooleanSchema:
		return v.validateBoolean(val, s), nil
	case schema.IntegerSchema:
		return v.validateInteger(val, s), nil
	case schema.FloatSchema:
		return v.validateFloat(val, s), nil
	case schema.StringSchema:
		return v.validateString(val, s), nil
	case schema.ArraySchema:
		return v.validateArray(ctx, val, s, cur)
	case schema.TableSchema:
		return v.validateTable(ctx, val, s, cur)
	case schema.OneOfSchema:
		return v.validateOneOf(ctx, val, s, cur)
	case schema.AnyOfSchema:
		return v.validateAnyOf(ctx, val, s, cur)
	case schema.AllOfSchema:
		return v.validateAllOf(ctx, val, s, cur)
	default:
		return nil, fmt.Errorf("validate: unknown schema kind %T", cur.Value)
	}
}

// resolve dereferences a Referable[ValueSchema] against cur's document.
func (v *Validator) resolve(ctx context.Context, ref schema.Referable[schema.ValueSchema], cur schema.CurrentSchema) (schema.CurrentSchema, error) {
	return schema.ResolveRef(ctx, v.store, ref, cur)
}

func typeMismatch(val document.Value, expected string) Diagnostic {
	return Diagnostic{
		Kind:     TypeMismatch,
		Range_:   val.Range(),
		Expected: expected,
		Actual:   describe(val),
	}
}

func describe(val document.Value) string {
	switch val.(type) {
	case document.Boolean:
		return "boolean"
	case document.Integer:
		return "integer"
	case document.Float:
		return "float"
	case document.String:
		return "string"
	case document.OffsetDateTime:
		return "offset-date-time"
	case document.LocalDateTime:
		return "local-date-time"
	case document.LocalDate:
		return "local-date"
	case document.LocalTime:
		return "local-time"
	case *document.Array:
		return "array"
	case *document.Table:
		return "table"
	default:
		return "unknown"
	}
}

func (v *Validator) validateBoolean(val document.Value, s schema.BooleanSchema) []Diagnostic {
	b, ok := val.(document.Boolean)
	if !ok {
		return []Diagnostic{typeMismatch(val, "boolean")}
	}
	if len(s.Enum) > 0 && !containsBool(s.Enum, b.Value_) {
		return []Diagnostic{{Kind: Enumerate, Range_: val.Range(), Expected: enumBools(s.Enum), Actual: fmt.Sprintf("%v", b.Value_)}}
	}
	return nil
}

func containsBool(xs []bool, v bool) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func enumBools(xs []bool) string {
	out := "["
	for i, x := range xs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%v", x)
	}
	return out + "]"
}

func (v *Validator) validateInteger(val document.Value, s schema.IntegerSchema) []Diagnostic {
	n, ok := val.(document.Integer)
	if !ok {
		return []Diagnostic{typeMismatch(val, "integer")}
	}
	var diags []Diagnostic
	x := n.Value
	if len(s.Enum) > 0 && !containsInt(s.Enum, x) {
		diags = append(diags, Diagnostic{Kind: Enumerate, Range_: val.Range(), Actual: fmt.Sprintf("%d", x)})
	}
	if s.Maximum != nil && x > *s.Maximum {
		diags = append(diags, Diagnostic{Kind: MaximumInteger, Range_: val.Range(), Expected: fmt.Sprintf("<= %d", *s.Maximum), Actual: fmt.Sprintf("%d", x)})
	}
	if s.Minimum != nil && x < *s.Minimum {
		diags = append(diags, Diagnostic{Kind: MinimumInteger, Range_: val.Range(), Expected: fmt.Sprintf(">= %d", *s.Minimum), Actual: fmt.Sprintf("%d", x)})
	}
	if s.ExclusiveMaximum != nil && x >= *s.ExclusiveMaximum {
		diags = append(diags, Diagnostic{Kind: ExclusiveMaximumInteger, Range_: val.Range(), Expected: fmt.Sprintf("< %d", *s.ExclusiveMaximum), Actual: fmt.Sprintf("%d", x)})
	}
	if s.ExclusiveMinimum != nil && x <= *s.ExclusiveMinimum {
		diags = append(diags, Diagnostic{Kind: ExclusiveMinimumInteger, Range_: val.Range(), Expected: fmt.Sprintf("> %d", *s.ExclusiveMinimum), Actual: fmt.Sprintf("%d", x)})
	}
	if s.MultipleOf != nil && *s.MultipleOf != 0 && x%*s.MultipleOf != 0 {
		diags = append(diags, Diagnostic{Kind: MultipleOfInteger, Range_: val.Range(), Expected: fmt.Sprintf("multiple of %d", *s.MultipleOf), Actual: fmt.Sprintf("%d", x)})
	}
	return diags
}

func containsInt(xs []int64, v int64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (v *Validator) validateFloat(val document.Value, s schema.FloatSchema) []Diagnostic {
	f, ok := val.(document.Float)
	if !ok {
		return []Diagnostic{typeMismatch(val, "float")}
	}
	var diags []Diagnostic
	x := f.Value
	if len(s.Enum) > 0 && !containsFloat(s.Enum, x) {
		diags = append(diags, Diagnostic{Kind: Enumerate, Range_: val.Range(), Actual: fmt.Sprintf("%v", x)})
	}
	if s.Maximum != nil && x > *s.Maximum {
		diags = append(diags, Diagnostic{Kind: MaximumFloat, Range_: val.Range(), Expected: fmt.Sprintf("<= %v", *s.Maximum), Actual: fmt.Sprintf("%v", x)})
	}
	if s.Minimum != nil && x < *s.Minimum {
		diags = append(diags, Diagnostic{Kind: MinimumFloat, Range_: val.Range(), Expected: fmt.Sprintf(">= %v", *s.Minimum), Actual: fmt.Sprintf("%v", x)})
	}
	if s.ExclusiveMaximum != nil && x >= *s.ExclusiveMaximum {
		diags = append(diags, Diagnostic{Kind: ExclusiveMaximumFloat, Range_: val.Range(), Expected: fmt.Sprintf("< %v", *s.ExclusiveMaximum), Actual: fmt.Sprintf("%v", x)})
	}
	if s.ExclusiveMinimum != nil && x <= *s.ExclusiveMinimum {
		diags = append(diags, Diagnostic{Kind: ExclusiveMinimumFloat, Range_: val.Range(), Expected: fmt.Sprintf("> %v", *s.ExclusiveMinimum), Actual: fmt.Sprintf("%v", x)})
	}
	if s.MultipleOf != nil && *s.MultipleOf != 0 && !isMultipleOf(x, *s.MultipleOf) {
		diags = append(diags, Diagnostic{Kind: MultipleOfFloat, Range_: val.Range(), Expected: fmt.Sprintf("multiple of %v", *s.MultipleOf), Actual: fmt.Sprintf("%v", x)})
	}
	return diags
}

func isMultipleOf(x, step float64) bool {
	q := x / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

func containsFloat(xs []float64, v float64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (v *Validator) validateString(val document.Value, s schema.StringSchema) []Diagnostic {
	str, ok := val.(document.String)
	if !ok {
		return []Diagnostic{typeMismatch(val, "string")}
	}
	var diags []Diagnostic
	x := str.Value
	n := len([]rune(x))
	if len(s.Enum) > 0 && !containsString(s.Enum, x) {
		diags = append(diags, Diagnostic{Kind: Enumerate, Range_: val.Range(), Actual: x})
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		diags = append(diags, Diagnostic{Kind: MaximumLength, Range_: val.Range(), Expected: fmt.Sprintf("<= %d chars", *s.MaxLength), Actual: fmt.Sprintf("%d chars", n)})
	}
	if s.MinLength != nil && n < *s.MinLength {
		diags = append(diags, Diagnostic{Kind: MinimumLength, Range_: val.Range(), Expected: fmt.Sprintf(">= %d chars", *s.MinLength), Actual: fmt.Sprintf("%d chars", n)})
	}
	if s.Pattern != nil && !s.Pattern.MatchString(x) {
		diags = append(diags, Diagnostic{Kind: Pattern, Range_: val.Range(), Expected: s.PatternRaw, Actual: x})
	}
	return diags
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (v *Validator) validateArray(ctx context.Context, val document.Value, s schema.ArraySchema, cur schema.CurrentSchema) ([]Diagnostic, error) {
	arr, ok := val.(*document.Array)
	if !ok {
		return []Diagnostic{typeMismatch(val, "array")}, nil
	}
	var diags []Diagnostic
	n := len(arr.Values)
	if s.MaxItems != nil && n > *s.MaxItems {
		diags = append(diags, Diagnostic{Kind: MaxItems, Range_: val.Range(), Expected: fmt.Sprintf("<= %d items", *s.MaxItems), Actual: fmt.Sprintf("%d items", n)})
	}
	if s.MinItems != nil && n < *s.MinItems {
		diags = append(diags, Diagnostic{Kind: MinItems, Range_: val.Range(), Expected: fmt.Sprintf(">= %d items", *s.MinItems), Actual: fmt.Sprintf("%d items", n)})
	}
	if s.UniqueItems {
		seen := make(map[string]bool, n)
		for _, elem := range arr.Values {
			k := valueKey(elem)
			if seen[k] {
				diags = append(diags, Diagnostic{Kind: UniqueItems, Range_: elem.Range(), Actual: describe(elem)})
				continue
			}
			seen[k] = true
		}
	}

	if s.Items == nil {
		return diags, nil
	}
	itemCur, err := v.resolve(ctx, *s.Items, cur)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([][]Diagnostic, n)
	for i, elem := range arr.Values {
		i, elem := i, elem
		g.Go(func() error {
			d, err := v.validateValue(gctx, elem, itemCur)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, d := range results {
		diags = append(diags, d...)
	}
	return diags, nil
}

// valueKey renders val into a string unique enough to detect duplicates
// for the array `uniqueItems` check: scalars compare by their decoded
// value, composites by a recursive structural rendering.
func valueKey(val document.Value) string {
	switch x := val.(type) {
	case document.Boolean:
		return fmt.Sprintf("b:%v", x.Value_)
	case document.Integer:
		return fmt.Sprintf("i:%d", x.Value)
	case document.Float:
		return fmt.Sprintf("f:%v", x.Value)
	case document.String:
		return "s:" + x.Value
	case document.OffsetDateTime:
		return "odt:" + x.Text
	case document.LocalDateTime:
		return "ldt:" + x.Text
	case document.LocalDate:
		return "ld:" + x.Text
	case document.LocalTime:
		return "lt:" + x.Text
	case *document.Array:
		out := "a:["
		for _, e := range x.Values {
			out += valueKey(e) + ","
		}
		return out + "]"
	case *document.Table:
		out := "t:{"
		for _, e := range x.Entries() {
			out += e.Key.Decoded + "=" + valueKey(e.Value) + ","
		}
		return out + "}"
	default:
		return "?"
	}
}

func (v *Validator) validateTable(ctx context.Context, val document.Value, s schema.TableSchema, cur schema.CurrentSchema) ([]Diagnostic, error) {
	tbl, ok := val.(*document.Table)
	if !ok {
		return []Diagnostic{typeMismatch(val, "table")}, nil
	}
	var diags []Diagnostic
	n := tbl.Len()
	if s.MaxProperties != nil && n > *s.MaxProperties {
		diags = append(diags, Diagnostic{Kind: MaxProperties, Range_: val.Range(), Expected: fmt.Sprintf("<= %d properties", *s.MaxProperties), Actual: fmt.Sprintf("%d properties", n)})
	}
	if s.MinProperties != nil && n < *s.MinProperties {
		diags = append(diags, Diagnostic{Kind: MinProperties, Range_: val.Range(), Expected: fmt.Sprintf(">= %d properties", *s.MinProperties), Actual: fmt.Sprintf("%d properties", n)})
	}
	for _, req := range s.Required {
		if _, ok := tbl.Get(req); !ok {
			diags = append(diags, Diagnostic{Kind: KeyRequired, Range_: val.Range(), Expected: req})
		}
	}

	type job struct {
		key string
		v   document.Value
		ref schema.Referable[schema.ValueSchema]
	}
	var jobs []job
	entries := tbl.Entries()
	for _, e := range entries {
		if propRef, ok := s.Properties[e.Key.Decoded]; ok {
			jobs = append(jobs, job{e.Key.Decoded, e.Value, propRef})
			continue
		}
		if pp, ok := matchPatternProperty(s.PatternProperties, e.Key.Decoded); ok {
			jobs = append(jobs, job{e.Key.Decoded, e.Value, pp})
			continue
		}
		if s.AdditionalProperties != nil {
			if !s.AdditionalProperties.Allowed {
				diags = append(diags, Diagnostic{Kind: KeyNotAllowed, Range_: e.Value.Range(), Expected: e.Key.Decoded})
				continue
			}
			if s.AdditionalProperties.Schema != nil {
				jobs = append(jobs, job{e.Key.Decoded, e.Value, *s.AdditionalProperties.Schema})
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([][]Diagnostic, len(jobs))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			propCur, err := v.resolve(gctx, j.ref, cur)
			if err != nil {
				return err
			}
			d, err := v.validateValue(gctx, j.v, propCur)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, d := range results {
		diags = append(diags, d...)
	}
	return diags, nil
}

func matchPatternProperty(pps []schema.PatternProperty, key string) (schema.Referable[schema.ValueSchema], bool) {
	for _, pp := range pps {
		if pp.Pattern != nil && pp.Pattern.MatchString(key) {
			return pp.Schema, true
		}
	}
	return schema.Referable[schema.ValueSchema]{}, false
}

// validateOneOf requires exactly one member to accept val. Members are
// checked concurrently via errgroup, per spec.md Section 5's fan-out model;
// a branch's own diagnostics only decide whether it matched and are not
// reported: a failure is a single TypeMismatch (none matched / more than
// one matched).
func (v *Validator) validateOneOf(ctx context.Context, val document.Value, s schema.OneOfSchema, cur schema.CurrentSchema) ([]Diagnostic, error) {
	results, err := v.validateMembers(ctx, val, s.Members, cur)
	if err != nil {
		return nil, err
	}
	matched := 0
	for _, d := range results {
		if len(d) == 0 {
			matched++
		}
	}
	if matched == 1 {
		return nil, nil
	}
	if matched == 0 {
		return []Diagnostic{{Kind: TypeMismatch, Range_: val.Range(), Expected: "exactly one oneOf branch", Actual: "no branch matched", Detail: "oneOf: no branch matched"}}, nil
	}
	return []Diagnostic{{Kind: TypeMismatch, Range_: val.Range(), Expected: "exactly one oneOf branch", Actual: fmt.Sprintf("%d branches matched", matched), Detail: "oneOf: more than one branch matched"}}, nil
}

func (v *Validator) validateAnyOf(ctx context.Context, val document.Value, s schema.AnyOfSchema, cur schema.CurrentSchema) ([]Diagnostic, error) {
	results, err := v.validateMembers(ctx, val, s.Members, cur)
	if err != nil {
		return nil, err
	}
	for _, d := range results {
		if len(d) == 0 {
			return nil, nil
		}
	}
	return []Diagnostic{{Kind: TypeMismatch, Range_: val.Range(), Expected: "at least one anyOf branch", Actual: "no branch matched", Detail: "anyOf: no branch matched"}}, nil
}

func (v *Validator) validateAllOf(ctx context.Context, val document.Value, s schema.AllOfSchema, cur schema.CurrentSchema) ([]Diagnostic, error) {
	results, err := v.validateMembers(ctx, val, s.Members, cur)
	if err != nil {
		return nil, err
	}
	var diags []Diagnostic
	for _, d := range results {
		diags = append(diags, d...)
	}
	return diags, nil
}

func (v *Validator) validateMembers(ctx context.Context, val document.Value, members []schema.Referable[schema.ValueSchema], cur schema.CurrentSchema) ([][]Diagnostic, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]Diagnostic, len(members))
	for i, m := range members {
		i, m := i, m
		g.Go(func() error {
			memberCur, err := v.resolve(gctx, m, cur)
			if err != nil {
				return err
			}
			d, err := v.validateValue(gctx, val, memberCur)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
