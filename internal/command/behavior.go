// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "context"

// Behavior is the caller-supplied unit of work a command delegates to.
// R is the type of the value supplied to Resume.
//
// ExecuteAction performs the work. UndoAction reverses it and reports whether the
// reversal succeeded. The optional capabilities Resumer, Cleaner and Acceptor are
// discovered by type assertion.
type Behavior[R any] interface {
	ExecuteAction(ctx context.Context) Outcome
	UndoAction(ctx context.Context) bool
}

// Resumer is implemented by behaviors that continue suspended work with a value.
// Behaviors that do not implement it are resumed by calling ExecuteAction again.
type Resumer[R any] interface {
	ResumeAction(ctx context.Context, value R) Outcome
}

// Cleaner is implemented by behaviors that release resources once the command is
// no longer in flight. It is never called while the command is suspended.
type Cleaner interface {
	CleanupAction(ctx context.Context)
}

// Acceptor is implemented by behaviors that describe themselves to a Visitor.
// Behaviors that do not implement it are reported with a single VisitBehavior call.
type Acceptor[R any] interface {
	Accept(v Visitor[R])
}

// ResumeBehavior calls ResumeAction on b if it is a Resumer, otherwise ExecuteAction.
func ResumeBehavior[R any](ctx context.Context, b Behavior[R], value R) Outcome {
	if r, ok := b.(Resumer[R]); ok {
		return r.ResumeAction(ctx, value)
	}

	return b.ExecuteAction(ctx)
}

// CleanupBehavior calls CleanupAction on b if it is a Cleaner.
func CleanupBehavior[R any](ctx context.Context, b Behavior[R]) {
	if c, ok := b.(Cleaner); ok {
		c.CleanupAction(ctx)
	}
}

// AcceptBehavior lets b describe itself to v.
func AcceptBehavior[R any](b Behavior[R], v Visitor[R]) {
	if a, ok := b.(Acceptor[R]); ok {
		a.Accept(v)
		return
	}

	v.VisitBehavior(b)
}

// NoBehavior always succeeds and is invisible to visitors.
// It is the guard used by composites constructed without one.
type NoBehavior[R any] struct{}

// ExecuteAction implements Behavior.
func (NoBehavior[R]) ExecuteAction(context.Context) Outcome { return OutcomeSuccess }

// UndoAction implements Behavior.
func (NoBehavior[R]) UndoAction(context.Context) bool { return true }

// Accept implements Acceptor and reports nothing.
func (NoBehavior[R]) Accept(Visitor[R]) {}

func (NoBehavior[R]) String() string { return "no behavior" }

var (
	_ Behavior[any] = (*FuncBehavior[any])(nil)
	_ Resumer[any]  = (*FuncBehavior[any])(nil)
	_ Cleaner       = (*FuncBehavior[any])(nil)
)

// FuncBehavior adapts plain functions to the Behavior contract.
// A nil ExecuteFunc succeeds, a nil UndoFunc succeeds, a nil ResumeFunc falls back
// to ExecuteAction and a nil CleanupFunc does nothing.
type FuncBehavior[R any] struct {
	Label       string
	ExecuteFunc func(ctx context.Context) Outcome
	UndoFunc    func(ctx context.Context) bool
	ResumeFunc  func(ctx context.Context, value R) Outcome
	CleanupFunc func(ctx context.Context)
}

// ExecuteAction implements Behavior.
func (f *FuncBehavior[R]) ExecuteAction(ctx context.Context) Outcome {
	if f.ExecuteFunc == nil {
		return OutcomeSuccess
	}

	return f.ExecuteFunc(ctx)
}

// UndoAction implements Behavior.
func (f *FuncBehavior[R]) UndoAction(ctx context.Context) bool {
	if f.UndoFunc == nil {
		return true
	}

	return f.UndoFunc(ctx)
}

// ResumeAction implements Resumer.
func (f *FuncBehavior[R]) ResumeAction(ctx context.Context, value R) Outcome {
	if f.ResumeFunc == nil {
		return f.ExecuteAction(ctx)
	}

	return f.ResumeFunc(ctx, value)
}

// CleanupAction implements Cleaner.
func (f *FuncBehavior[R]) CleanupAction(ctx context.Context) {
	if f.CleanupFunc != nil {
		f.CleanupFunc(ctx)
	}
}

func (f *FuncBehavior[R]) String() string {
	if f.Label == "" {
		return "func behavior"
	}

	return f.Label
}
