// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tracer

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rewind/internal/command"
)

var (
	_ command.Behavior[any] = (*Trace[any])(nil)
	_ command.Resumer[any]  = (*Trace[any])(nil)
	_ command.Cleaner       = (*Trace[any])(nil)
	_ command.Acceptor[any] = (*Trace[any])(nil)
)

// Trace forwards every action to the behavior it wraps and records it.
type Trace[R any] struct {
	identifier string
	inner      command.Behavior[R]
	tracer     *Tracer[R]
	actions    int
}

// NewTrace wraps inner, recording actions under identifier in t.
func NewTrace[R any](identifier string, inner command.Behavior[R], t *Tracer[R]) *Trace[R] {
	return &Trace[R]{
		identifier: identifier,
		inner:      inner,
		tracer:     t,
	}
}

// ExecuteAction implements command.Behavior.
func (t *Trace[R]) ExecuteAction(ctx context.Context) command.Outcome {
	t.record(ctx, "execute")
	return t.inner.ExecuteAction(ctx)
}

// UndoAction implements command.Behavior.
func (t *Trace[R]) UndoAction(ctx context.Context) bool {
	t.record(ctx, "undo")
	return t.inner.UndoAction(ctx)
}

// ResumeAction implements command.Resumer, passing value through unchanged.
func (t *Trace[R]) ResumeAction(ctx context.Context, value R) command.Outcome {
	t.record(ctx, "resume")
	return command.ResumeBehavior[R](ctx, t.inner, value)
}

// CleanupAction implements command.Cleaner.
func (t *Trace[R]) CleanupAction(ctx context.Context) {
	t.record(ctx, "cleanup")
	command.CleanupBehavior[R](ctx, t.inner)
}

// Accept reports the trace itself, then lets the wrapped behavior describe itself.
func (t *Trace[R]) Accept(v command.Visitor[R]) {
	v.VisitBehavior(t)
	command.AcceptBehavior[R](t.inner, v)
}

// Unwrap returns the traced behavior.
func (t *Trace[R]) Unwrap() command.Behavior[R] {
	return t.inner
}

// Actions returns how many actions went through the trace.
func (t *Trace[R]) Actions() int {
	return t.actions
}

func (t *Trace[R]) String() string {
	return fmt.Sprintf("trace (%d actions)", t.actions)
}

func (t *Trace[R]) record(ctx context.Context, action string) {
	t.actions++

	if t.tracer != nil {
		t.tracer.record(ctx, action, t.identifier)
	}
}
