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

// Package parser turns a lexed token stream into a lossless green tree. It
// is a classic two-phase design: the grammar functions push a flat stream
// of Start/Finish/Token/Error events against an abstract Parser, and a
// separate processing step (process.go) replays that stream into an
// internal/rgtree.Builder once every node's final kind -- including nodes
// that were only recognized as a wrapper *after* parsing some of their
// children, via forward_parent -- is known.
package parser

import "github.com/tombi-toolkit/tombi-go/internal/syntax"

// eventKind discriminates the four event shapes. Go doesn't have Rust's
// enum-with-payload ergonomics, so Event is a tagged struct instead of a
// sum type.
type eventKind uint8

const (
	evStart eventKind = iota
	evFinish
	evToken
	evError
)

// Event is one entry in the parser's flat event log.
type Event struct {
	kind eventKind

	// evStart
	startKind      syntax.Kind
	forwardParent  int32 // 0 means "no forward parent"; see Marker.Precede.

	// evToken
	tokenKind syntax.Kind

	// evError
	err Error
}

func tombstoneEvent() Event { return Event{kind: evStart, startKind: syntax.TOMBSTONE} }

func startEvent(kind syntax.Kind) Event { return Event{kind: evStart, startKind: kind} }

func finishEvent() Event { return Event{kind: evFinish} }

func tokenEvent(kind syntax.Kind) Event { return Event{kind: evToken, tokenKind: kind} }

func errorEvent(err Error) Event { return Event{kind: evError, err: err} }
