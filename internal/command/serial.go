// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

var _ Composite[any] = (*SerialComposite[any])(nil)

// SerialComposite runs its steps one after another as a single command.
//
// The guard behavior is consulted before the steps: if its ExecuteAction does not
// succeed no step runs, and if its UndoAction fails no step is undone.
// When a step fails the steps that already ran are undone in reverse order.
// When a step suspends the composite suspends with its cursor on that step,
// and Resume carries on from there.
type SerialComposite[R any] struct {
	identifier string
	behavior   Behavior[R]
	steps      []Undoable[R]
	current    int
}

// NewSerialComposite creates a composite with the given guard behavior and steps.
// A nil behavior is replaced with NoBehavior.
func NewSerialComposite[R any](identifier string, behavior Behavior[R], steps ...Undoable[R]) *SerialComposite[R] {
	if behavior == nil {
		behavior = NoBehavior[R]{}
	}

	c := &SerialComposite[R]{
		identifier: identifier,
		behavior:   behavior,
		steps:      []Undoable[R]{noStep[R]{}},
	}

	for _, s := range steps {
		c.Add(s)
	}

	return c
}

// Execute implements Undoable.
func (c *SerialComposite[R]) Execute(ctx context.Context) (Outcome, error) {
	ctx = ctxlog.WithCommand(ctx, c.identifier)

	if out := c.behavior.ExecuteAction(ctx); out != OutcomeSuccess {
		ctxlog.CommandLogger(ctx).Debug("guard declined execution", "result", out.String())
		return out, nil
	}

	c.current = 0

	out, err := c.executeFromCurrent(ctx)
	if err != nil {
		return OutcomeFailure, err
	}

	c.settle(ctx, out)

	return out, nil
}

// Undo implements Undoable.
func (c *SerialComposite[R]) Undo(ctx context.Context) (bool, error) {
	ctx = ctxlog.WithCommand(ctx, c.identifier)

	if !c.behavior.UndoAction(ctx) {
		ctxlog.CommandLogger(ctx).Warn("guard undo failed, steps left untouched")
		return false, nil
	}

	c.current = len(c.steps) - 1

	ok, err := c.undoFromCurrent(ctx)
	if err != nil {
		return false, err
	}

	CleanupBehavior[R](ctx, c.behavior)

	return ok, nil
}

// Resume implements Undoable.
func (c *SerialComposite[R]) Resume(ctx context.Context, value R) (Outcome, error) {
	ctx = ctxlog.WithCommand(ctx, c.identifier)

	out, err := c.steps[c.current].Resume(ctx, value)
	if err != nil {
		return OutcomeFailure, err
	}

	switch out {
	case OutcomeSuccess:
		if !c.isLast() {
			c.current++

			out, err = c.executeFromCurrent(ctx)
			if err != nil {
				return OutcomeFailure, err
			}
		}
	case OutcomeFailure:
		out, err = c.rollback(ctx)
		if err != nil {
			return OutcomeFailure, err
		}
	}

	c.settle(ctx, out)

	return out, nil
}

// Status implements Undoable.
// It is ready when every step is ready, which includes having no steps.
// The placeholder held by an empty composite reports complete but is not counted.
// Otherwise a failed step wins over a pending one, and a pending one over complete.
func (c *SerialComposite[R]) Status() Status {
	allReady := true
	anyPending := false

	for _, s := range c.realSteps() {
		switch s.Status() {
		case StatusFailure:
			return StatusFailure
		case StatusPending:
			anyPending = true
			allReady = false
		case StatusComplete:
			allReady = false
		}
	}

	switch {
	case allReady:
		return StatusReady
	case anyPending:
		return StatusPending
	default:
		return StatusComplete
	}
}

// Identifier implements Undoable.
func (c *SerialComposite[R]) Identifier() string {
	return c.identifier
}

// Inject implements Undoable.
// A nil behavior is replaced with NoBehavior.
func (c *SerialComposite[R]) Inject(b Behavior[R]) {
	if b == nil {
		b = NoBehavior[R]{}
	}

	c.behavior = b
}

// Behavior returns the guard behavior.
func (c *SerialComposite[R]) Behavior() Behavior[R] {
	return c.behavior
}

// Steps returns a copy of the real steps in order.
func (c *SerialComposite[R]) Steps() []Undoable[R] {
	return slices.Clone(c.realSteps())
}

// Current returns the step under the cursor, or nil when there are no steps.
func (c *SerialComposite[R]) Current() Undoable[R] {
	if c.placeholderOnly() {
		return nil
	}

	return c.steps[c.current]
}

// Accept implements Undoable.
func (c *SerialComposite[R]) Accept(v Visitor[R]) {
	steps := c.Steps()
	current := c.Current()
	status := c.Status()

	v.PreVisitComposite(c, steps, current, c.behavior, status)
	AcceptBehavior[R](c.behavior, v)

	for _, s := range c.realSteps() {
		s.Accept(v)
	}

	v.PostVisitComposite(c, steps, current, c.behavior, status)
}

// Add implements Composite. Adding to an empty composite replaces the placeholder.
func (c *SerialComposite[R]) Add(step Undoable[R]) {
	if c.placeholderOnly() {
		c.steps[0] = step
		c.current = 0

		return
	}

	c.steps = append(c.steps, step)
}

// Insert implements Composite. The cursor stays on the step it pointed at.
func (c *SerialComposite[R]) Insert(index int, step Undoable[R]) error {
	if c.placeholderOnly() {
		if index != 0 {
			return fmt.Errorf("%w: %d, composite %q has no steps", ErrIndexOutOfRange, index, c.identifier)
		}

		c.Add(step)

		return nil
	}

	if index < 0 || index > len(c.steps) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(c.steps))
	}

	c.steps = slices.Insert(c.steps, index, step)

	if index <= c.current {
		c.current++
	}

	return nil
}

// Remove implements Composite.
func (c *SerialComposite[R]) Remove(step Undoable[R]) (bool, error) {
	idx := slices.IndexFunc(c.realSteps(), func(s Undoable[R]) bool {
		return s == step
	})
	if idx < 0 {
		return false, nil
	}

	if err := c.RemoveAt(idx); err != nil {
		return false, err
	}

	return true, nil
}

// RemoveAt implements Composite.
// If the removed step was under the cursor the cursor moves to the following step,
// or to the preceding one when it was the last.
func (c *SerialComposite[R]) RemoveAt(index int) error {
	if c.placeholderOnly() || index < 0 || index >= len(c.steps) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.realSteps()))
	}

	step := c.steps[index]
	if index == c.current && step.Status() == StatusPending {
		return NewSequenceError(c.identifier, "remove", fmt.Errorf("%w: %s", ErrRemovePending, step.Identifier()))
	}

	c.steps = slices.Delete(c.steps, index, index+1)

	switch {
	case len(c.steps) == 0:
		c.steps = []Undoable[R]{noStep[R]{}}
		c.current = 0
	case index < c.current:
		c.current--
	case index == c.current && c.current == len(c.steps):
		c.current--
	}

	return nil
}

func (c *SerialComposite[R]) String() string {
	return c.identifier
}

// executeFromCurrent runs steps forward from the cursor until one does not succeed.
func (c *SerialComposite[R]) executeFromCurrent(ctx context.Context) (Outcome, error) {
	for {
		out, err := c.steps[c.current].Execute(ctx)
		if err != nil {
			return OutcomeFailure, err
		}

		switch out {
		case OutcomeSuspended:
			ctxlog.CommandLogger(ctx).Debug("step suspended", "step", c.steps[c.current].Identifier())
			return OutcomeSuspended, nil
		case OutcomeFailure:
			return c.rollback(ctx)
		}

		if c.isLast() {
			return OutcomeSuccess, nil
		}

		c.current++
	}
}

// undoFromCurrent undoes steps backward from the cursor to the head,
// stopping at the first step whose undo fails.
func (c *SerialComposite[R]) undoFromCurrent(ctx context.Context) (bool, error) {
	for {
		ok, err := c.steps[c.current].Undo(ctx)
		if err != nil {
			return false, err
		}

		if !ok {
			ctxlog.CommandLogger(ctx).Warn("step undo failed, stopping", "step", c.steps[c.current].Identifier())
			return false, nil
		}

		if c.current == 0 {
			return true, nil
		}

		c.current--
	}
}

// rollback undoes the steps before the failed one. The result is always failure.
func (c *SerialComposite[R]) rollback(ctx context.Context) (Outcome, error) {
	logger := ctxlog.CommandLogger(ctx).With("failedStep", c.steps[c.current].Identifier())

	if !c.behavior.UndoAction(ctx) {
		logger.Warn("guard undo failed, no steps rolled back")
		return OutcomeFailure, nil
	}

	if c.current == 0 {
		return OutcomeFailure, nil
	}

	logger.Info("rolling back", "steps", c.current)

	c.current--

	if _, err := c.undoFromCurrent(ctx); err != nil {
		return OutcomeFailure, err
	}

	return OutcomeFailure, nil
}

// settle fires guard cleanup unless the composite is suspended.
func (c *SerialComposite[R]) settle(ctx context.Context, out Outcome) {
	if out != OutcomeSuspended {
		CleanupBehavior[R](ctx, c.behavior)
	}
}

func (c *SerialComposite[R]) isLast() bool {
	return c.current == len(c.steps)-1
}

func (c *SerialComposite[R]) placeholderOnly() bool {
	return len(c.steps) == 1 && isNoStep(c.steps[0])
}

func (c *SerialComposite[R]) realSteps() []Undoable[R] {
	if c.placeholderOnly() {
		return nil
	}

	return c.steps
}
