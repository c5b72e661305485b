// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

var _ Undoable[any] = (*StatefulCommand[any])(nil)

// StatefulCommand is a leaf command that enforces the legal call sequence
// around a single Behavior.
type StatefulCommand[R any] struct {
	identifier string
	behavior   Behavior[R]
	state      executionState
}

// NewStatefulCommand creates a leaf command in the ready state.
// A nil behavior is replaced with NoBehavior.
func NewStatefulCommand[R any](identifier string, behavior Behavior[R]) *StatefulCommand[R] {
	return NewStatefulCommandWithStatus[R](identifier, behavior, StatusReady)
}

// NewStatefulCommandWithStatus creates a leaf command starting in the state that
// reports the given status.
func NewStatefulCommandWithStatus[R any](identifier string, behavior Behavior[R], status Status) *StatefulCommand[R] {
	if behavior == nil {
		behavior = NoBehavior[R]{}
	}

	return &StatefulCommand[R]{
		identifier: identifier,
		behavior:   behavior,
		state:      stateFromStatus(status),
	}
}

// Execute implements Undoable.
func (c *StatefulCommand[R]) Execute(ctx context.Context) (Outcome, error) {
	var zero R
	return c.apply(ctx, opExecute, zero)
}

// Undo implements Undoable.
func (c *StatefulCommand[R]) Undo(ctx context.Context) (bool, error) {
	var zero R

	out, err := c.apply(ctx, opUndo, zero)
	if err != nil {
		return false, err
	}

	return out == OutcomeSuccess, nil
}

// Resume implements Undoable.
func (c *StatefulCommand[R]) Resume(ctx context.Context, value R) (Outcome, error) {
	return c.apply(ctx, opResume, value)
}

// Status implements Undoable.
func (c *StatefulCommand[R]) Status() Status {
	return c.state.status()
}

// Identifier implements Undoable.
func (c *StatefulCommand[R]) Identifier() string {
	return c.identifier
}

// Inject implements Undoable.
// A nil behavior is replaced with NoBehavior.
func (c *StatefulCommand[R]) Inject(b Behavior[R]) {
	if b == nil {
		b = NoBehavior[R]{}
	}

	c.behavior = b
}

// Behavior returns the behavior the command currently delegates to.
func (c *StatefulCommand[R]) Behavior() Behavior[R] {
	return c.behavior
}

// Accept implements Undoable.
func (c *StatefulCommand[R]) Accept(v Visitor[R]) {
	status := c.Status()
	v.PreVisitLeaf(c, c.behavior, status)
	AcceptBehavior[R](c.behavior, v)
	v.PostVisitLeaf(c, c.behavior, status)
}

func (c *StatefulCommand[R]) String() string {
	return c.identifier
}

func (c *StatefulCommand[R]) apply(ctx context.Context, op operation, value R) (Outcome, error) {
	ctx = ctxlog.WithCommand(ctx, c.identifier)
	logger := ctxlog.CommandLogger(ctx).With("operation", op.String())

	t := transitions[c.state][op]
	if t.err != nil {
		logger.Error("illegal command sequence", "status", c.Status().String(), "error", t.err)
		return OutcomeFailure, NewSequenceError(c.identifier, op.String(), t.err)
	}

	if t.effect == effectNone {
		logger.Debug("no action required", "status", c.Status().String())
		return t.reply, nil
	}

	result := c.invoke(ctx, t.effect, value)

	next, cleanup, err := t.settle.apply(c.state, result)
	if err != nil {
		logger.Error("undo of failed command did not succeed", "error", err)
		return OutcomeFailure, NewSequenceError(c.identifier, op.String(), err)
	}

	logger.Debug("command transition",
		"from", c.state.status().String(),
		"to", next.status().String(),
		"result", result.String(),
	)

	c.state = next

	if cleanup {
		CleanupBehavior[R](ctx, c.behavior)
	}

	return result, nil
}

func (c *StatefulCommand[R]) invoke(ctx context.Context, e sideEffect, value R) Outcome {
	switch e {
	case effectExecute:
		return c.behavior.ExecuteAction(ctx)
	case effectUndo:
		return OutcomeOf(c.behavior.UndoAction(ctx))
	case effectResume:
		return ResumeBehavior[R](ctx, c.behavior, value)
	default:
		return OutcomeSuccess
	}
}
