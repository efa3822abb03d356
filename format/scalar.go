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
	"strings"

	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

// scalarText renders tok's literal text under the printer's options:
// basic/literal strings are re-quoted when safe, date-time literals have
// their delimiter rewritten.
func (p *printer) scalarText(tok *rgtree.RedToken) string {
	switch tok.Kind() {
	case syntax.BASIC_STRING, syntax.LITERAL_STRING:
		return p.requote(tok.Text(), tok.Kind())
	case syntax.OFFSET_DATE_TIME, syntax.LOCAL_DATE_TIME:
		return p.rewriteDelimiter(tok.Text())
	default:
		return tok.Text()
	}
}

// requote rewrites an escape-free single-line string to the target quote
// character. A string containing an escape sequence (basic strings) or
// already the other quote style's special character is left untouched,
// since rewriting it would require a full escape re-encode the formatter
// doesn't attempt (spec.md Section 4.6: "otherwise they are preserved").
func (p *printer) requote(raw string, kind syntax.Kind) string {
	if p.opts.QuoteStyle == QuotePreserve || len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if kind == syntax.BASIC_STRING && strings.ContainsRune(body, '\\') {
		return raw
	}
	target := byte('"')
	if p.opts.QuoteStyle == QuoteSingle {
		target = '\''
	}
	if strings.IndexByte(body, target) != -1 {
		return raw
	}
	return string(target) + body + string(target)
}

// rewriteDelimiter replaces the separator between a date-time literal's
// date and time components (its 11th character, per spec.md Section 4.6)
// with the option's chosen delimiter.
func (p *printer) rewriteDelimiter(raw string) string {
	if p.opts.DateTimeDelimiter == DelimiterPreserve || len(raw) < 11 {
		return raw
	}
	sep := raw[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return raw
	}
	var want byte
	switch p.opts.DateTimeDelimiter {
	case DelimiterT:
		want = 'T'
	case DelimiterSpace:
		want = ' '
	default:
		return raw
	}
	if sep == want {
		return raw
	}
	return raw[:10] + string(want) + raw[11:]
}
