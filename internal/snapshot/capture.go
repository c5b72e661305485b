// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"

	"github.com/matt-FFFFFF/rewind/internal/command"
)

// Capture walks u and returns the captured tree.
func Capture[R any](u command.Undoable[R]) *Node {
	c := &capturer[R]{}
	u.Accept(c)

	return c.root
}

// BehaviorName returns the display name of a behavior: its String method when
// it has one, otherwise its type.
func BehaviorName(b any) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", b)
}

type frame[R any] struct {
	node    *Node
	current command.Undoable[R]
}

type capturer[R any] struct {
	command.BaseVisitor[R]
	root  *Node
	stack []frame[R]
}

func (c *capturer[R]) PreVisitComposite(
	comp command.Composite[R], _ []command.Undoable[R], current command.Undoable[R], _ command.Behavior[R], status command.Status,
) {
	c.push(comp, KindComposite, status, current)
}

func (c *capturer[R]) PostVisitComposite(
	command.Composite[R], []command.Undoable[R], command.Undoable[R], command.Behavior[R], command.Status,
) {
	c.pop()
}

func (c *capturer[R]) PreVisitLeaf(u command.Undoable[R], _ command.Behavior[R], status command.Status) {
	c.push(u, KindLeaf, status, nil)
}

func (c *capturer[R]) PostVisitLeaf(command.Undoable[R], command.Behavior[R], command.Status) {
	c.pop()
}

func (c *capturer[R]) VisitBehavior(b command.Behavior[R]) {
	if len(c.stack) == 0 {
		return
	}

	top := c.stack[len(c.stack)-1].node
	top.Behaviors = append(top.Behaviors, BehaviorName(b))
}

func (c *capturer[R]) push(u command.Undoable[R], kind Kind, status command.Status, current command.Undoable[R]) {
	n := &Node{
		Identifier: u.Identifier(),
		Kind:       kind,
		Status:     status,
	}

	if len(c.stack) == 0 {
		c.root = n
	} else {
		parent := c.stack[len(c.stack)-1]
		parent.node.Steps = append(parent.node.Steps, n)
		n.Current = parent.current != nil && parent.current == u
	}

	c.stack = append(c.stack, frame[R]{node: n, current: current})
}

func (c *capturer[R]) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}
