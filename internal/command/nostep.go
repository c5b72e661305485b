// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "context"

// noStep stands in for the steps of an empty composite so the cursor always
// points at something. It is complete and never visited.
type noStep[R any] struct{}

func (noStep[R]) Execute(context.Context) (Outcome, error) { return OutcomeSuccess, nil }
func (noStep[R]) Undo(context.Context) (bool, error) { return true, nil }
func (noStep[R]) Resume(context.Context, R) (Outcome, error) { return OutcomeSuccess, nil }
func (noStep[R]) Status() Status { return StatusComplete }
func (noStep[R]) Accept(Visitor[R]) {}
func (noStep[R]) Inject(Behavior[R]) {}
func (noStep[R]) Identifier() string { return "" }

func isNoStep[R any](u Undoable[R]) bool {
	_, ok := u.(noStep[R])
	return ok
}
