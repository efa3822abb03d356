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

package diagnostic

import (
	"fmt"
	"io"
	"strings"
)

// Print writes one line per diagnostic: "path:line:col: severity: message".
// This is the CLI's default, non-interactive rendering, mirrored on
// cue/errors.Print's simple mode.
func Print(w io.Writer, path string, diags []Diagnostic) {
	for _, d := range diags {
		r := d.Range()
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, r.Start.Line+1, r.Start.Column+1, d.Severity(), d.Error())
	}
}

// PrintPretty renders each diagnostic with a source excerpt and a caret
// pointing at the offending column, for interactive terminal use.
func PrintPretty(w io.Writer, path, source string, diags []Diagnostic) {
	lines := strings.Split(source, "\n")
	for _, d := range diags {
		r := d.Range()
		fmt.Fprintf(w, "%s: %s\n", d.Severity(), d.Error())
		fmt.Fprintf(w, "  --> %s:%d:%d\n", path, r.Start.Line+1, r.Start.Column+1)
		if int(r.Start.Line) < len(lines) {
			line := lines[r.Start.Line]
			fmt.Fprintf(w, "   | %s\n", line)
			fmt.Fprintf(w, "   | %s^\n", strings.Repeat(" ", int(r.Start.Column)))
		}
	}
}
