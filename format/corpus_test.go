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

package format_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/tombi-toolkit/tombi-go/format"
	"github.com/tombi-toolkit/tombi-go/version"
)

// TestCorpusIsIdempotent walks every file in testdata/corpus.txtar and
// checks that formatting its (already canonical) contents reproduces them
// byte-for-byte, mirroring the teacher's doc/tutorial/basics script_test.go
// TestLatest, which walks a txtar-archived example corpus file by file
// rather than asserting one inline snippet at a time.
func TestCorpusIsIdempotent(t *testing.T) {
	a, err := txtar.ParseFile(filepath.Join("testdata", "corpus.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range a.Files {
		t.Run(f.Name, func(t *testing.T) {
			src := string(f.Data)
			opts := format.DefaultOptions()
			if !format.IsIdempotent(src, version.V1_0_0, opts) {
				t.Errorf("%s: formatting is not idempotent", f.Name)
			}
		})
	}
}
