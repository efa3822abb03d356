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
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
)

// HTTPClient abstracts the single operation the store needs from a
// transport: fetching raw bytes for a URL. Production code gets the
// defaultHTTPClient (net/http); tests inject a fake, the same seam the
// teacher's modregistry/modconfig packages use for their registry client
// (SPEC_FULL.md Section 4.5).
type HTTPClient interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

type defaultHTTPClient struct {
	client *http.Client
}

// DefaultHTTPClient returns the net/http-backed HTTPClient used outside
// of tests.
func DefaultHTTPClient() HTTPClient {
	return &defaultHTTPClient{client: http.DefaultClient}
}

func (c *defaultHTTPClient) GetBytes(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "file://") {
		path := strings.TrimPrefix(url, "file://")
		return os.ReadFile(path)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schema: fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// inflight tracks a fetch in progress so concurrent callers for the same
// URL share one HTTP round trip rather than racing (spec.md Section 3:
// "SchemaStore guarantees at-most-one concurrent fetch per schema URL").
type inflight struct {
	done chan struct{}
	doc  *DocumentSchema
	err  error
}

// Store is the process-wide, append-only arena of loaded DocumentSchemas
// described in spec.md Section 4.5: readers take the read lock only while
// projecting a schema out of the arena; the writer path (a freshly
// fetched schema) holds the write lock only across the slot insert,
// matching crates/schema-store/src/arena.rs's read-biased strategy.
type Store struct {
	client HTTPClient

	mu       sync.RWMutex
	byURL    map[string]*DocumentSchema
	inFlight map[string]*inflight

	catalog *Catalog
}

// NewStore builds an empty Store backed by client (DefaultHTTPClient()
// if nil).
func NewStore(client HTTPClient) *Store {
	if client == nil {
		client = DefaultHTTPClient()
	}
	return &Store{
		client:   client,
		byURL:    make(map[string]*DocumentSchema),
		inFlight: make(map[string]*inflight),
	}
}

// LoadCatalog fetches and parses a schema catalog from url, storing it for
// subsequent ResolveSourceSchema calls.
func (s *Store) LoadCatalog(ctx context.Context, url URL) error {
	raw, err := s.client.GetBytes(ctx, url.String())
	if err != nil {
		return fmt.Errorf("schema: fetch catalog %s: %w", url, err)
	}
	cat, err := ParseCatalog(raw)
	if err != nil {
		return fmt.Errorf("schema: parse catalog %s: %w", url, err)
	}
	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()
	return nil
}

// TryGetDocumentSchema fetches (or reuses a cached, or joins an in-flight
// fetch of) the schema at url.
func (s *Store) TryGetDocumentSchema(ctx context.Context, u URL) (*DocumentSchema, error) {
	s.mu.RLock()
	if doc, ok := s.byURL[u.String()]; ok {
		s.mu.RUnlock()
		return doc, nil
	}
	if inf, ok := s.inFlight[u.String()]; ok {
		s.mu.RUnlock()
		<-inf.done
		return inf.doc, inf.err
	}
	s.mu.RUnlock()

	s.mu.Lock()
	// Re-check after acquiring the write lock: another goroutine may have
	// started (or finished) the fetch while we waited.
	if doc, ok := s.byURL[u.String()]; ok {
		s.mu.Unlock()
		return doc, nil
	}
	if inf, ok := s.inFlight[u.String()]; ok {
		s.mu.Unlock()
		<-inf.done
		return inf.doc, inf.err
	}
	inf := &inflight{done: make(chan struct{})}
	s.inFlight[u.String()] = inf
	s.mu.Unlock()

	raw, err := s.client.GetBytes(ctx, u.String())
	if err != nil {
		inf.err = fmt.Errorf("schema: fetch %s: %w", u, err)
	} else {
		inf.doc, inf.err = ParseDocumentSchema(raw, u)
	}

	s.mu.Lock()
	delete(s.inFlight, u.String())
	if inf.err == nil {
		s.byURL[u.String()] = inf.doc
	}
	s.mu.Unlock()
	close(inf.done)

	return inf.doc, inf.err
}

// SubSchemaUrlMap records, for a given path within a parent schema, the
// URL of the (possibly different) document a sub-schema's `$ref` resolves
// into -- populated while traversing the parent, consulted by
// GetSubschema.
type SubSchemaUrlMap map[string]URL

// GetSubschema looks up the sub-schema registered at path in m and
// fetches its DocumentSchema through the store.
func (s *Store) GetSubschema(ctx context.Context, path SchemaAccessorPath, m SubSchemaUrlMap) (*DocumentSchema, error) {
	u, ok := m[path.Key()]
	if !ok {
		return nil, nil
	}
	return s.TryGetDocumentSchema(ctx, u)
}

// SourceSchema is the combined result of schema selection for one source
// file: the chosen root schema plus the sub-schema URL map accumulated
// while resolving it (spec.md Glossary, "SourceSchema").
type SourceSchema struct {
	Root           *DocumentSchema
	SubSchemaUrlMap SubSchemaUrlMap
}
