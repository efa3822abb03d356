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

package rgtree

// NodePtr is a stable locator for a node: a path of child indices from the
// root plus the node's kind, so it can be re-resolved against a tree built
// after an edit (the node it names may have shifted offset, but its path
// and kind are unchanged unless a sibling above it in the path was
// inserted or removed). This mirrors the role rust-analyzer's SyntaxNodePtr
// plays for caching results across incremental reparses.
type NodePtr struct {
	Path []int
	Kind Kind
}

// NewNodePtr captures a locator for n.
func NewNodePtr(n *RedNode) NodePtr {
	return NodePtr{Path: PathTo(n), Kind: n.Kind()}
}

// Resolve walks root down the captured path, returning ok=false if the
// path no longer exists or the kind at the end no longer matches.
func (p NodePtr) Resolve(root *RedNode) (node *RedNode, ok bool) {
	cur := root
	for _, idx := range p.Path {
		children := cur.Children()
		if idx < 0 || idx >= len(children) || children[idx].Node == nil {
			return nil, false
		}
		cur = children[idx].Node
	}
	if cur.Kind() != p.Kind {
		return nil, false
	}
	return cur, true
}
