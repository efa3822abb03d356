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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toolkit/tombi-go/ast"
	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/format"
	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/internal/parser"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		tomlVersion string
		write       bool
		indentStyle string
		indentWidth int
		lineWidth   int
		lineEnding  string
		dateTimeSep string
		quoteStyle  string
	)

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "format TOML documents, printing the result or rewriting files in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseTomlVersion(tomlVersion)
			if err != nil {
				return err
			}
			opts, err := buildFormatOptions(indentStyle, indentWidth, lineWidth, lineEnding, dateTimeSep, quoteStyle)
			if err != nil {
				return err
			}

			sources, err := readSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			hasErr := false
			for _, s := range sources {
				root, result := ast.Parse(s.text, v)
				out, diags := format.Format(root, v, opts)

				all := append(lexer.Diagnostics(result.LexErrors), parser.Diagnostics(result.ParseErrors, v)...)
				all = append(all, diags...)
				diagnostic.Print(cmd.ErrOrStderr(), s.path, all)
				if diagnostic.HasErrors(all) {
					hasErr = true
					continue
				}

				if write && s.path != "-" {
					if err := os.WriteFile(s.path, []byte(out), 0o644); err != nil {
						return fmt.Errorf("write %s: %w", s.path, err)
					}
					a.logger.Info("formatted", "path", s.path)
				} else {
					fmt.Fprint(cmd.OutOrStdout(), out)
				}
			}
			if hasErr {
				return fmt.Errorf("format: one or more documents had errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tomlVersion, "toml-version", "", "TOML version to parse as (v1.0.0, v1.1.0-preview); default v1.1.0-preview")
	cmd.Flags().BoolVar(&write, "write", false, "rewrite files in place instead of printing to stdout")
	cmd.Flags().StringVar(&indentStyle, "indent-style", "space", "indent style: space, tab")
	cmd.Flags().IntVar(&indentWidth, "indent-width", 2, "indent width in columns")
	cmd.Flags().IntVar(&lineWidth, "line-width", 80, "soft line width target")
	cmd.Flags().StringVar(&lineEnding, "line-ending", "lf", "line ending: lf, crlf")
	cmd.Flags().StringVar(&dateTimeSep, "date-time-delimiter", "preserve", "date-time delimiter: preserve, T, space")
	cmd.Flags().StringVar(&quoteStyle, "quote-style", "preserve", "string quote style: preserve, double, single")
	return cmd
}

func buildFormatOptions(indentStyle string, indentWidth, lineWidth int, lineEnding, dateTimeSep, quoteStyle string) (format.Options, error) {
	opts := format.DefaultOptions()
	opts.IndentWidth = indentWidth
	opts.LineWidth = lineWidth

	switch indentStyle {
	case "space", "":
		opts.IndentStyle = format.IndentSpace
	case "tab":
		opts.IndentStyle = format.IndentTab
	default:
		return opts, fmt.Errorf("unknown --indent-style %q", indentStyle)
	}

	switch lineEnding {
	case "lf", "":
		opts.LineEnding = format.LineFeed
	case "crlf":
		opts.LineEnding = format.CRLF
	default:
		return opts, fmt.Errorf("unknown --line-ending %q", lineEnding)
	}

	switch dateTimeSep {
	case "preserve", "":
		opts.DateTimeDelimiter = format.DelimiterPreserve
	case "T":
		opts.DateTimeDelimiter = format.DelimiterT
	case "space":
		opts.DateTimeDelimiter = format.DelimiterSpace
	default:
		return opts, fmt.Errorf("unknown --date-time-delimiter %q", dateTimeSep)
	}

	switch quoteStyle {
	case "preserve", "":
		opts.QuoteStyle = format.QuotePreserve
	case "double":
		opts.QuoteStyle = format.QuoteDouble
	case "single":
		opts.QuoteStyle = format.QuoteSingle
	default:
		return opts, fmt.Errorf("unknown --quote-style %q", quoteStyle)
	}

	return opts, nil
}
