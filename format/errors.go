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

package format

import (
	"github.com/tombi-toolkit/tombi-go/diagnostic"
	"github.com/tombi-toolkit/tombi-go/internal/text"
)

// Diagnostic reports a construct the formatter could not render under the
// requested TOML version (e.g. a multiline inline table under 1.0).
type Diagnostic struct {
	Detail string
	Range_ text.Range
}

func (d Diagnostic) Range() text.Range             { return d.Range_ }
func (d Diagnostic) Severity() diagnostic.Severity { return diagnostic.Error }
func (d Diagnostic) Error() string                 { return d.Detail }
