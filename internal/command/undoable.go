// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "context"

// Undoable is an action that can be executed, undone and resumed after suspension.
type Undoable[R any] interface {
	// Execute runs the command. An error is returned only for an illegal call sequence.
	Execute(ctx context.Context) (Outcome, error)
	// Undo reverses the command and reports whether the reversal succeeded.
	Undo(ctx context.Context) (bool, error)
	// Resume continues a suspended command with the supplied value.
	Resume(ctx context.Context, value R) (Outcome, error)
	// Status reports the lifecycle phase of the command.
	Status() Status
	// Accept walks the command with v.
	Accept(v Visitor[R])
	// Inject replaces the behavior the command delegates to.
	Inject(b Behavior[R])
	// Identifier returns the name of the command.
	Identifier() string
}

// Composite is an Undoable made of ordered steps that can be changed between runs.
type Composite[R any] interface {
	Undoable[R]
	// Add appends a step.
	Add(step Undoable[R])
	// Insert places a step at index, shifting later steps back.
	Insert(index int, step Undoable[R]) error
	// Remove removes step, reporting false if it is not a member.
	Remove(step Undoable[R]) (bool, error)
	// RemoveAt removes the step at index.
	RemoveAt(index int) error
}
