// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tracer records every behavior action taken while a command tree runs.
//
// Install walks the tree read-only to find each command and its behavior, then
// replaces every behavior with a Trace wrapping it. The walk and the replacement
// are separate passes so the tree is never changed while it is being visited.
package tracer

import (
	"context"
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

// Tracer collects the actions recorded by its traces, in call order.
type Tracer[R any] struct {
	log []string
}

// Install wraps every behavior in root with a Trace reporting to a new Tracer.
// Behaviors that are already traced are left alone.
func Install[R any](ctx context.Context, root command.Undoable[R]) *Tracer[R] {
	t := &Tracer[R]{}

	c := &collector[R]{}
	root.Accept(c)

	for _, p := range c.pairs {
		p.target.Inject(NewTrace(p.target.Identifier(), p.behavior, t))
	}

	ctxlog.Debug(ctx, "tracer installed", "behaviors", len(c.pairs))

	return t
}

// Result returns the recorded actions.
func (t *Tracer[R]) Result() []string {
	return slices.Clone(t.log)
}

func (t *Tracer[R]) String() string {
	return fmt.Sprintf("actions traced: %d", len(t.log))
}

func (t *Tracer[R]) record(ctx context.Context, action, identifier string) {
	msg := fmt.Sprintf("%s invoked for %s", action, identifier)
	t.log = append(t.log, msg)
	ctxlog.Debug(ctx, "trace", "action", action, "target", identifier)
}

type pair[R any] struct {
	target   command.Undoable[R]
	behavior command.Behavior[R]
}

// collector finds the commands to trace without touching them.
type collector[R any] struct {
	command.BaseVisitor[R]
	pairs []pair[R]
}

func (c *collector[R]) PreVisitComposite(
	comp command.Composite[R], _ []command.Undoable[R], _ command.Undoable[R], b command.Behavior[R], _ command.Status,
) {
	c.add(comp, b)
}

func (c *collector[R]) PreVisitLeaf(u command.Undoable[R], b command.Behavior[R], _ command.Status) {
	c.add(u, b)
}

func (c *collector[R]) add(u command.Undoable[R], b command.Behavior[R]) {
	if _, traced := b.(*Trace[R]); traced {
		return
	}

	c.pairs = append(c.pairs, pair[R]{target: u, behavior: b})
}
