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

package schema_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/schema"
	"github.com/tombi-toolkit/tombi-go/version"
)

// fakeClient serves fixed bytes per URL and counts calls per URL, so
// tests can assert the store's at-most-one-fetch-per-URL cache behavior.
type fakeClient struct {
	bodies map[string][]byte
	calls  map[string]int
}

func newFakeClient(bodies map[string][]byte) *fakeClient {
	return &fakeClient{bodies: bodies, calls: make(map[string]int)}
}

func (c *fakeClient) GetBytes(ctx context.Context, url string) ([]byte, error) {
	c.calls[url]++
	b, ok := c.bodies[url]
	if !ok {
		return nil, fmt.Errorf("fakeClient: no body registered for %s", url)
	}
	return b, nil
}

func TestParseURLRewritesTombiShorthand(t *testing.T) {
	u, err := schema.ParseURL("tombi://json/schemas/cargo.json")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(u.String(), "https://raw.githubusercontent.com/tombi-toolkit/tombi/main/schemas/cargo.json"))
}

func TestParseURLRejectsSchemeless(t *testing.T) {
	_, err := schema.ParseURL("schemas/cargo.json")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestResolveRelativeAgainstDirectory(t *testing.T) {
	base := schema.MustParseURL("file:///repo/cargo.toml")
	resolved, err := base.ResolveRelative("./schemas/cargo.json")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(resolved.String(), "file:///repo/schemas/cargo.json"))
}

func TestCatalogMatchFirstEntryWins(t *testing.T) {
	cat, err := schema.ParseCatalog([]byte(`{
		"schemas": [
			{"url": "https://example.com/a.json", "fileMatch": ["*/Cargo.toml"]},
			{"url": "https://example.com/b.json", "fileMatch": ["*.toml"]}
		]
	}`))
	qt.Assert(t, qt.IsNil(err))

	entry, ok := cat.Match("repo/Cargo.toml")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(entry.URL.String(), "https://example.com/a.json"))

	entry, ok = cat.Match("other.toml")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(entry.URL.String(), "https://example.com/b.json"))

	_, ok = cat.Match("readme.md")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestTryGetDocumentSchemaCachesByURL(t *testing.T) {
	client := newFakeClient(map[string][]byte{
		"https://example.com/s.json": []byte(`{"type": "string"}`),
	})
	store := schema.NewStore(client)
	u := schema.MustParseURL("https://example.com/s.json")

	_, err := store.TryGetDocumentSchema(context.Background(), u)
	qt.Assert(t, qt.IsNil(err))
	_, err = store.TryGetDocumentSchema(context.Background(), u)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.Equals(client.calls["https://example.com/s.json"], 1))
}

func TestResolveSourceSchemaPrefersInlineDirectiveOverCatalog(t *testing.T) {
	client := newFakeClient(map[string][]byte{
		"file:///repo/inline.json": []byte(`{"type": "string"}`),
		"https://example.com/catalog.json": []byte(`{
			"schemas": [{"url": "https://example.com/c.json", "fileMatch": ["file:///repo/doc.toml"]}]
		}`),
		"https://example.com/c.json": []byte(`{"type": "integer"}`),
	})
	store := schema.NewStore(client)
	qt.Assert(t, qt.IsNil(store.LoadCatalog(context.Background(), schema.MustParseURL("https://example.com/catalog.json"))))

	root, _ := ast.Parse("#:schema ./inline.json\nname = \"tombi\"\n", version.Default)
	src := schema.MustParseURL("file:///repo/doc.toml")

	got, err := store.ResolveSourceSchema(context.Background(), root, src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(got))
	qt.Assert(t, qt.Equals(got.Root.SchemaURL.String(), "file:///repo/inline.json"))
}

func TestResolveSourceSchemaFallsBackToCatalogWithNoDirective(t *testing.T) {
	client := newFakeClient(map[string][]byte{
		"https://example.com/catalog.json": []byte(`{
			"schemas": [{"url": "https://example.com/c.json", "fileMatch": ["file:///repo/doc.toml"]}]
		}`),
		"https://example.com/c.json": []byte(`{"type": "integer"}`),
	})
	store := schema.NewStore(client)
	qt.Assert(t, qt.IsNil(store.LoadCatalog(context.Background(), schema.MustParseURL("https://example.com/catalog.json"))))

	root, _ := ast.Parse("name = \"tombi\"\n", version.Default)
	src := schema.MustParseURL("file:///repo/doc.toml")

	got, err := store.ResolveSourceSchema(context.Background(), root, src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(got))
	qt.Assert(t, qt.Equals(got.Root.SchemaURL.String(), "https://example.com/c.json"))
}

func TestResolveSourceSchemaReturnsNilWithoutDirectiveOrCatalogMatch(t *testing.T) {
	store := schema.NewStore(newFakeClient(nil))
	root, _ := ast.Parse("name = \"tombi\"\n", version.Default)
	src := schema.MustParseURL("file:///repo/doc.toml")

	got, err := store.ResolveSourceSchema(context.Background(), root, src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(got))
}
