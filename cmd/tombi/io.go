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
	"io"
	"os"

	"github.com/tombi-toolkit/tombi-go/version"
)

// source is one input document: its display path (for diagnostics) and
// its raw text.
type source struct {
	path string
	text string
}

// readSources loads every path in args, treating "-" as stdin. With no
// args at all, it reads stdin alone -- the same convention the teacher's
// `cue fmt`/`cue vet` use for piping a single document through.
func readSources(stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]source, 0, len(args))
	for _, a := range args {
		if a == "-" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			out = append(out, source{path: "-", text: string(b)})
			continue
		}
		b, err := os.ReadFile(a)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", a, err)
		}
		out = append(out, source{path: a, text: string(b)})
	}
	return out, nil
}

// parseTomlVersion accepts the same canonical strings version.TOML.String
// produces, with or without the leading "v", so `--toml-version 1.0.0` and
// `--toml-version v1.0.0` are both valid.
func parseTomlVersion(s string) (version.TOML, error) {
	if s == "" {
		return version.Default, nil
	}
	for _, v := range version.AllVersions() {
		if v.String() == s || v.String() == "v"+s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown --toml-version %q", s)
}
