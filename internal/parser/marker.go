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

import "github.com/tombi-toolkit/tombi-go/internal/syntax"

// Marker refers to an as-yet-unfinished Start event. Every Marker must be
// either Complete-d or Abandon-ed; forgetting to do so silently drops a
// node, so grammar code should treat an open Marker the way it would treat
// an unclosed resource.
type Marker struct {
	eventIndex int
	done       bool
}

// Complete assigns kind to the node started at m and emits its matching
// Finish event, yielding a CompletedMarker that can still be adjusted with
// Precede or ExtendTo.
func (m *Marker) Complete(p *Parser, kind syntax.Kind) CompletedMarker {
	m.done = true
	p.events[m.eventIndex].startKind = kind
	p.pushEvent(finishEvent())
	return CompletedMarker{eventIndex: m.eventIndex, kind: kind}
}

// Abandon discards the node started at m. If nothing was pushed after it,
// the tombstone event is trimmed outright; otherwise its children are left
// to attach to whatever node encloses m once events are processed, since a
// TOMBSTONE-kinded Start is simply skipped during replay.
func (m *Marker) Abandon(p *Parser) {
	m.done = true
	if m.eventIndex == len(p.events)-1 {
		p.events = p.events[:m.eventIndex]
	}
}

// CompletedMarker names a finished node and lets the grammar retroactively
// wrap it in a new enclosing node (Precede) or widen it to start earlier
// (ExtendTo).
type CompletedMarker struct {
	eventIndex int
	kind       syntax.Kind
}

func (cm CompletedMarker) Kind() syntax.Kind { return cm.kind }

// Precede opens a new node that will end up as cm's parent once events are
// replayed: the new node's Start event is recorded as cm's forward_parent,
// a relative offset resolved during tree construction rather than here.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newM := p.Start()
	p.events[cm.eventIndex].forwardParent = int32(newM.eventIndex - cm.eventIndex)
	return newM
}

// ExtendTo widens cm to the left so that it also covers everything m would
// have covered, by making m forward-parent to cm.
func (cm CompletedMarker) ExtendTo(p *Parser, m *Marker) CompletedMarker {
	m.done = true
	p.events[m.eventIndex].forwardParent = int32(cm.eventIndex - m.eventIndex)
	return cm
}
