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

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/document"
	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/internal/parser"
	"github.com/tombi-toolkit/tombi-go/schema"
	"github.com/tombi-toolkit/tombi-go/validate"
	"github.com/tombi-toolkit/tombi-go/version"
)

func newLintCmd(a *app) *cobra.Command {
	var (
		tomlVersion string
		schemaArg   string
		catalogArg  string
	)

	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "validate TOML documents against an inline, catalog-matched, or explicit JSON Schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseTomlVersion(tomlVersion)
			if err != nil {
				return err
			}

			store := schema.NewStore(nil)
			ctx := context.Background()
			if catalogArg != "" {
				u, err := schema.ParseURL(catalogArg)
				if err != nil {
					return err
				}
				if err := store.LoadCatalog(ctx, u); err != nil {
					return err
				}
			}

			sources, err := readSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			hasErr := false
			for _, s := range sources {
				all, err := lintOne(ctx, store, s, v, schemaArg)
				if err != nil {
					return fmt.Errorf("%s: %w", s.path, err)
				}
				diagnostic.Print(cmd.ErrOrStderr(), s.path, all)
				if diagnostic.HasErrors(all) {
					hasErr = true
				}
			}
			if hasErr {
				return fmt.Errorf("lint: one or more documents had errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tomlVersion, "toml-version", "", "TOML version to parse as (v1.0.0, v1.1.0-preview); default v1.1.0-preview")
	cmd.Flags().StringVar(&schemaArg, "schema", "", "explicit schema URL or path, overriding any #:schema directive or catalog match")
	cmd.Flags().StringVar(&catalogArg, "catalog", "", "schema catalog URL or path to load before matching files against it")
	return cmd
}

// lintOne parses s, lowers it to a document tree, resolves a schema for it
// (explicit flag, inline directive, or catalog match, in that priority
// order), and validates against whichever schema resolves -- returning
// just the parse/lower diagnostics if none does, per spec.md Section 6
// ("a document with no resolvable schema is not an error").
func lintOne(ctx context.Context, store *schema.Store, s source, v version.TOML, schemaArg string) ([]diagnostic.Diagnostic, error) {
	root, result := ast.Parse(s.text, v)
	all := append(lexer.Diagnostics(result.LexErrors), parser.Diagnostics(result.ParseErrors, v)...)

	tree := document.Lower(root, v)
	all = append(all, document.Diagnostics(tree.Errors)...)

	src, err := schema.ParseURL(sourceURLFor(s.path))
	if err != nil {
		return nil, err
	}

	var doc *schema.DocumentSchema
	switch {
	case schemaArg != "":
		u, err := schema.ParseURL(schemaArg)
		if err != nil {
			return nil, err
		}
		doc, err = store.TryGetDocumentSchema(ctx, u)
		if err != nil {
			return nil, err
		}
	default:
		sourceSchema, err := store.ResolveSourceSchema(ctx, root, src)
		if err != nil {
			return nil, err
		}
		if sourceSchema != nil {
			doc = sourceSchema.Root
		}
	}
	if doc == nil {
		return all, nil
	}

	cur, err := schema.RootCurrentSchema(ctx, store, doc)
	if err != nil {
		return nil, err
	}
	diags, err := validate.New(store).Validate(ctx, tree.Tree, cur)
	if err != nil {
		return nil, err
	}
	all = append(all, validate.Diagnostics(diags)...)
	return all, nil
}

// sourceURLFor builds the file:// URL a document's own path is addressed
// by, for catalog fileMatch and #:schema-relative resolution. Stdin has no
// real path, so it's addressed by a fixed placeholder.
func sourceURLFor(path string) string {
	if path == "-" {
		return "file:///stdin.toml"
	}
	if filepath.IsAbs(path) {
		return "file://" + filepath.ToSlash(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "file://" + filepath.ToSlash(path)
	}
	return "file://" + filepath.ToSlash(abs)
}
