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

// Package schema fetches, caches, and resolves JSON-Schema documents
// against a TOML document-tree: the schema-store, the resolved schema
// graph (DocumentSchema/ValueSchema/Referable), and the accessor types
// used to address a position within either tree.
package schema

import (
	"fmt"
	"net/url"
	"strings"
)

// URL wraps an absolute schema location. It is always one of
// `https?://`, `file://`, or the `tombi://json/schemas/<name>` shorthand,
// which ParseURL rewrites to a GitHub raw URL before any fetch.
type URL struct {
	raw string
}

// tombiSchemaBase is where the `tombi://json/schemas/<name>` shorthand is
// rewritten to: the `main` branch of the tombi repository, so the schema
// fetched follows that branch rather than a fixed revision.
const tombiSchemaBase = "https://raw.githubusercontent.com/tombi-toolkit/tombi/main/schemas/"

// ParseURL parses raw into a URL, rewriting the `tombi://` shorthand.
func ParseURL(raw string) (URL, error) {
	if strings.HasPrefix(raw, "tombi://json/schemas/") {
		name := strings.TrimPrefix(raw, "tombi://json/schemas/")
		return URL{raw: tombiSchemaBase + name}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("invalid schema url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "file":
		return URL{raw: u.String()}, nil
	case "":
		return URL{}, newError(InvalidSchemaUrl, raw)
	default:
		return URL{}, newError(UnsupportedSchemaUrl, u.Scheme)
	}
}

// MustParseURL is ParseURL but panics on error; for constants in tests.
func MustParseURL(raw string) URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the normalised absolute URL.
func (u URL) String() string { return u.raw }

// IsZero reports whether u was never assigned.
func (u URL) IsZero() bool { return u.raw == "" }

// ResolveRelative resolves ref (which may itself be absolute) against the
// directory containing u, the rule used both for the `#:schema` directive
// and for `$ref`s that point at a different document.
func (u URL) ResolveRelative(ref string) (URL, error) {
	base, err := url.Parse(u.raw)
	if err != nil {
		return URL{}, err
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return URL{}, err
	}
	resolved := base.ResolveReference(rel)
	return URL{raw: resolved.String()}, nil
}
