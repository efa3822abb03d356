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

package parser

import (
	"github.com/tombi-toolkit/tombi-go/internal/lexer"
	"github.com/tombi-toolkit/tombi-go/internal/rgtree"
	"github.com/tombi-toolkit/tombi-go/internal/syntax"
)

// process replays a flat event log into a green tree. The tricky part is
// Start events: a node's true parent isn't always the node most recently
// opened, because CompletedMarker.Precede lets the grammar decide *after
// the fact* that some already-finished node actually belongs inside a new
// wrapper. That's recorded as forwardParent, a relative event-index jump;
// resolving a chain of them here (rather than when Precede is called) is
// what lets the grammar wrap nodes retroactively without rewriting events
// it already pushed. This mirrors the event-processing loop used by every
// rowan-family parser (rust-analyzer, and this codebase's own
// crates/parser/src/marker.rs).
func process(raw []lexer.Token, events []Event) *rgtree.GreenNode {
	b := rgtree.NewBuilder()
	rawPos := 0

	flushTrivia := func() {
		for rawPos < len(raw) && raw[rawPos].Kind.IsTrivia() {
			b.Token(raw[rawPos].Kind, raw[rawPos].Text)
			rawPos++
		}
	}

	nextSignificant := func(kind syntax.Kind) {
		flushTrivia()
		if rawPos < len(raw) {
			b.Token(kind, raw[rawPos].Text)
			rawPos++
		}
	}

	// forwardParent chains point forward in the event log; once followed,
	// those Start events are consumed (tombstoned) so the outer loop skips
	// them when it reaches their original index.
	consumed := make([]bool, len(events))

	for i := range events {
		if consumed[i] {
			continue
		}
		ev := events[i]
		switch ev.kind {
		case evStart:
			if ev.startKind == syntax.TOMBSTONE && ev.forwardParent == 0 {
				continue
			}
			var kinds []syntax.Kind
			idx := i
			fp := ev.forwardParent
			kinds = append(kinds, events[idx].startKind)
			for fp != 0 {
				idx += int(fp)
				consumed[idx] = true
				kinds = append(kinds, events[idx].startKind)
				fp = events[idx].forwardParent
			}
			for j := len(kinds) - 1; j >= 0; j-- {
				if kinds[j] == syntax.TOMBSTONE {
					continue
				}
				b.StartNode(kinds[j])
			}
		case evFinish:
			b.FinishNode()
		case evToken:
			nextSignificant(ev.tokenKind)
		case evError:
			// Errors are collected separately by Parser.Finish; nothing to
			// do during tree construction.
		}
	}

	// Trailing trivia after the last significant token (e.g. a final
	// comment or blank lines at EOF) belongs to the root.
	flushTrivia()

	return b.Finish()
}
