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

	"github.com/gobwas/glob"
)

// CatalogEntry is one `schemas[]` element of a catalog document (spec.md
// Section 6).
type CatalogEntry struct {
	URL       URL
	FileMatch []string
	compiled  []glob.Glob
}

// Catalog is a parsed schema catalog.
type Catalog struct {
	Entries []CatalogEntry
}

type rawCatalogEntry struct {
	URL       string   `json:"url"`
	FileMatch []string `json:"fileMatch"`
}

type rawCatalog struct {
	Schemas []rawCatalogEntry `json:"schemas"`
}

// ParseCatalog parses raw catalog JSON bytes, compiling each entry's
// `fileMatch` globs with github.com/gobwas/glob (`*`, `?`, `[...]`, `**`
// semantics, per spec.md Section 6).
func ParseCatalog(raw []byte) (*Catalog, error) {
	var rc rawCatalog
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, err
	}
	cat := &Catalog{}
	for _, e := range rc.Schemas {
		u, err := ParseURL(e.URL)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.URL, err)
		}
		entry := CatalogEntry{URL: u, FileMatch: e.FileMatch}
		for _, pattern := range e.FileMatch {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, fmt.Errorf("catalog entry %q: invalid fileMatch %q: %w", e.URL, pattern, err)
			}
			entry.compiled = append(entry.compiled, g)
		}
		cat.Entries = append(cat.Entries, entry)
	}
	return cat, nil
}

// Match returns the first entry whose fileMatch globs accept path, if
// any. The catalog's declaration order is the match priority order.
func (c *Catalog) Match(path string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	for _, entry := range c.Entries {
		for _, g := range entry.compiled {
			if g.Match(path) {
				return entry, true
			}
		}
	}
	return CatalogEntry{}, false
}
