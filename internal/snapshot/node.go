// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package snapshot

import (
	"github.com/matt-FFFFFF/rewind/internal/command"
)

// Kind distinguishes composites from leaves.
type Kind string

const (
	// KindComposite is a command made of steps.
	KindComposite Kind = "composite"
	// KindLeaf is a single command.
	KindLeaf Kind = "leaf"
)

// Node is one command in a captured tree.
type Node struct {
	Identifier string         `json:"identifier" yaml:"identifier"`
	Kind       Kind           `json:"kind" yaml:"kind"`
	Status     command.Status `json:"status" yaml:"status"`
	Current    bool           `json:"current,omitempty" yaml:"current,omitempty"`
	Behaviors  []string       `json:"behaviors,omitempty" yaml:"behaviors,omitempty"`
	Steps      []*Node        `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Walk calls fn for n and its descendants depth first, passing the depth.
// Returning false from fn skips the descendants of that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}

	for _, s := range n.Steps {
		s.walk(fn, depth+1)
	}
}

// Count returns how many nodes in the tree have each status.
func (n *Node) Count() map[command.Status]int {
	counts := make(map[command.Status]int)

	n.Walk(func(node *Node, _ int) bool {
		if node.Kind == KindLeaf {
			counts[node.Status]++
		}

		return true
	})

	return counts
}
