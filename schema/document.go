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
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tombi-toolkit/tombi-go/version"
)

// DocumentSchema is the root of a fully-parsed (but not yet recursively
// resolved) schema document: its source URL, optional `$id`, the
// `x-tombi-toml-version` pin, its root ValueSchema, and every
// `#/definitions/...`/`#/$defs/...` entry it declares.
type DocumentSchema struct {
	SchemaURL   URL
	ID          string
	TomlVersion *version.TOML
	Root        Referable[ValueSchema]
	Definitions map[string]Referable[ValueSchema]
}

// ParseDocumentSchema parses raw JSON-Schema bytes (draft-7 plus the
// `x-tombi-*` extension keywords of spec.md Section 6) fetched from
// sourceURL into a DocumentSchema.
func ParseDocumentSchema(raw []byte, sourceURL URL) (*DocumentSchema, error) {
	var top map[string]interface{}
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", sourceURL, err)
	}

	doc := &DocumentSchema{
		SchemaURL:   sourceURL,
		Definitions: make(map[string]Referable[ValueSchema]),
	}
	if id, ok := top["$id"].(string); ok {
		doc.ID = id
	}
	if tv, ok := top["x-tombi-toml-version"].(string); ok {
		if v, ok := parseTomlVersionString(tv); ok {
			doc.TomlVersion = &v
		}
	}

	for _, defsKey := range []string{"definitions", "$defs"} {
		defs, ok := top[defsKey].(map[string]interface{})
		if !ok {
			continue
		}
		for name, raw := range defs {
			node, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			ref, err := parseSchemaNode(node)
			if err != nil {
				return nil, fmt.Errorf("schema: %s/%s: %w", defsKey, name, err)
			}
			doc.Definitions["#/"+defsKey+"/"+name] = ref
		}
	}

	root, err := parseSchemaNode(top)
	if err != nil {
		return nil, err
	}
	doc.Root = root
	return doc, nil
}

func parseTomlVersionString(s string) (version.TOML, bool) {
	switch s {
	case "v1.0.0":
		return version.V1_0_0, true
	case "v1.1.0-preview":
		return version.V1_1_0Preview, true
	default:
		return 0, false
	}
}

// parseSchemaNode builds a Referable[ValueSchema] from one JSON-object
// schema node, dispatching on `$ref`, the composite keywords
// (oneOf/anyOf/allOf), and finally `type`.
func parseSchemaNode(node map[string]interface{}) (Referable[ValueSchema], error) {
	if ref, ok := node["$ref"].(string); ok {
		r := RefSchema{Reference: ref}
		if t, ok := node["title"].(string); ok {
			r.Title = &t
		}
		if d, ok := node["description"].(string); ok {
			r.Description = &d
		}
		return Ref[ValueSchema](r), nil
	}

	base := BaseSchema{}
	if t, ok := node["title"].(string); ok {
		base.Title = t
	}
	if d, ok := node["description"].(string); ok {
		base.Description = d
	}

	if members, ok := node["oneOf"]; ok {
		m, err := parseMembers(members)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](OneOfSchema{CompositeSchema{BaseSchema: base, Members: m}}), nil
	}
	if members, ok := node["anyOf"]; ok {
		m, err := parseMembers(members)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](AnyOfSchema{CompositeSchema{BaseSchema: base, Members: m}}), nil
	}
	if members, ok := node["allOf"]; ok {
		m, err := parseMembers(members)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](AllOfSchema{CompositeSchema{BaseSchema: base, Members: m}}), nil
	}

	typ, _ := node["type"].(string)
	switch typ {
	case "boolean":
		return Resolved[ValueSchema](parseBooleanSchema(node, base)), nil
	case "integer":
		return Resolved[ValueSchema](parseIntegerSchema(node, base)), nil
	case "number":
		return Resolved[ValueSchema](parseFloatSchema(node, base)), nil
	case "string":
		s, err := parseStringSchema(node, base)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](s), nil
	case "array":
		a, err := parseArraySchema(node, base)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](a), nil
	case "object":
		t, err := parseTableSchema(node, base)
		if err != nil {
			return Referable[ValueSchema]{}, err
		}
		return Resolved[ValueSchema](t), nil
	case "null":
		return Resolved[ValueSchema](NullSchema{base}), nil
	default:
		// No recognised `type`: treat as an unconstrained schema (`{}`),
		// matching JSON-Schema draft-7 semantics.
		return Resolved[ValueSchema](NullSchema{base}), nil
	}
}

func parseMembers(raw interface{}) ([]Referable[ValueSchema], error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of schemas")
	}
	out := make([]Referable[ValueSchema], 0, len(list))
	for _, item := range list {
		node, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		ref, err := parseSchemaNode(node)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func parseBooleanSchema(node map[string]interface{}, base BaseSchema) BooleanSchema {
	s := BooleanSchema{BaseSchema: base}
	if enum, ok := node["enum"].([]interface{}); ok {
		for _, e := range enum {
			if b, ok := e.(bool); ok {
				s.Enum = append(s.Enum, b)
			}
		}
	}
	if d, ok := node["default"].(bool); ok {
		s.Default = &d
	}
	return s
}

func parseIntegerSchema(node map[string]interface{}, base BaseSchema) IntegerSchema {
	s := IntegerSchema{BaseSchema: base}
	if enum, ok := node["enum"].([]interface{}); ok {
		for _, e := range enum {
			if f, ok := e.(float64); ok {
				s.Enum = append(s.Enum, int64(f))
			}
		}
	}
	s.Minimum = intPtr(node, "minimum")
	s.Maximum = intPtr(node, "maximum")
	s.ExclusiveMinimum = intPtr(node, "exclusiveMinimum")
	s.ExclusiveMaximum = intPtr(node, "exclusiveMaximum")
	s.MultipleOf = intPtr(node, "multipleOf")
	return s
}

func parseFloatSchema(node map[string]interface{}, base BaseSchema) FloatSchema {
	s := FloatSchema{BaseSchema: base}
	if enum, ok := node["enum"].([]interface{}); ok {
		for _, e := range enum {
			if f, ok := e.(float64); ok {
				s.Enum = append(s.Enum, f)
			}
		}
	}
	s.Minimum = floatPtr(node, "minimum")
	s.Maximum = floatPtr(node, "maximum")
	s.ExclusiveMinimum = floatPtr(node, "exclusiveMinimum")
	s.ExclusiveMaximum = floatPtr(node, "exclusiveMaximum")
	s.MultipleOf = floatPtr(node, "multipleOf")
	return s
}

func parseStringSchema(node map[string]interface{}, base BaseSchema) (StringSchema, error) {
	s := StringSchema{BaseSchema: base}
	if enum, ok := node["enum"].([]interface{}); ok {
		for _, e := range enum {
			if str, ok := e.(string); ok {
				s.Enum = append(s.Enum, str)
			}
		}
	}
	s.MinLength = intToIntPtr(node, "minLength")
	s.MaxLength = intToIntPtr(node, "maxLength")
	if p, ok := node["pattern"].(string); ok {
		re, err := regexp.Compile(p)
		if err != nil {
			return StringSchema{}, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		s.Pattern = re
		s.PatternRaw = p
	}
	return s, nil
}

func parseArraySchema(node map[string]interface{}, base BaseSchema) (ArraySchema, error) {
	s := ArraySchema{BaseSchema: base}
	if items, ok := node["items"].(map[string]interface{}); ok {
		ref, err := parseSchemaNode(items)
		if err != nil {
			return ArraySchema{}, err
		}
		s.Items = &ref
	}
	s.MinItems = intToIntPtr(node, "minItems")
	s.MaxItems = intToIntPtr(node, "maxItems")
	if u, ok := node["uniqueItems"].(bool); ok {
		s.UniqueItems = u
	}
	switch node["x-tombi-array-values-order"] {
	case "ascending":
		s.ValuesOrder = ValuesOrderAscending
	case "descending":
		s.ValuesOrder = ValuesOrderDescending
	}
	return s, nil
}

func parseTableSchema(node map[string]interface{}, base BaseSchema) (TableSchema, error) {
	s := TableSchema{BaseSchema: base, Properties: make(map[string]Referable[ValueSchema])}
	if props, ok := node["properties"].(map[string]interface{}); ok {
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			propNode, ok := props[name].(map[string]interface{})
			if !ok {
				continue
			}
			ref, err := parseSchemaNode(propNode)
			if err != nil {
				return TableSchema{}, fmt.Errorf("properties.%s: %w", name, err)
			}
			s.Properties[name] = ref
			s.PropertyOrder = append(s.PropertyOrder, name)
		}
	}
	if pp, ok := node["patternProperties"].(map[string]interface{}); ok {
		patterns := make([]string, 0, len(pp))
		for p := range pp {
			patterns = append(patterns, p)
		}
		sort.Strings(patterns)
		for _, p := range patterns {
			propNode, ok := pp[p].(map[string]interface{})
			if !ok {
				continue
			}
			re, err := regexp.Compile(p)
			if err != nil {
				return TableSchema{}, fmt.Errorf("patternProperties: invalid pattern %q: %w", p, err)
			}
			ref, err := parseSchemaNode(propNode)
			if err != nil {
				return TableSchema{}, err
			}
			s.PatternProperties = append(s.PatternProperties, PatternProperty{Pattern: re, Schema: ref})
		}
	}
	switch ap := node["additionalProperties"].(type) {
	case bool:
		s.AdditionalProperties = &AdditionalProperties{Allowed: ap}
	case map[string]interface{}:
		ref, err := parseSchemaNode(ap)
		if err != nil {
			return TableSchema{}, err
		}
		s.AdditionalProperties = &AdditionalProperties{Allowed: true, Schema: &ref}
	}
	if req, ok := node["required"].([]interface{}); ok {
		for _, r := range req {
			if str, ok := r.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}
	s.MinProperties = intToIntPtr(node, "minProperties")
	s.MaxProperties = intToIntPtr(node, "maxProperties")
	switch node["x-tombi-table-keys-order"] {
	case "ascending":
		s.KeysOrder = KeysOrderAscending
	case "descending":
		s.KeysOrder = KeysOrderDescending
	case "schema":
		s.KeysOrder = KeysOrderSchema
	}
	return s, nil
}

func intPtr(node map[string]interface{}, key string) *int64 {
	if f, ok := node[key].(float64); ok {
		v := int64(f)
		return &v
	}
	return nil
}

func floatPtr(node map[string]interface{}, key string) *float64 {
	if f, ok := node[key].(float64); ok {
		return &f
	}
	return nil
}

func intToIntPtr(node map[string]interface{}, key string) *int {
	if f, ok := node[key].(float64); ok {
		v := int(f)
		return &v
	}
	return nil
}

// fragmentName strips the "#/definitions/" or "#/$defs/" prefix from a
// `$ref`, for error messages.
func fragmentName(ref string) string {
	for _, prefix := range []string{"#/definitions/", "#/$defs/"} {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix)
		}
	}
	return ref
}
