// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalSequence is the base error for operations called in a state that forbids them.
	ErrIllegalSequence = errors.New("illegal command sequence")
	// ErrResumeNotSuspended is returned when Resume is called on a command that is not suspended.
	ErrResumeNotSuspended = fmt.Errorf("%w: resume called while not suspended", ErrIllegalSequence)
	// ErrAlreadyFailed is returned when Execute or Resume is called on a failed command.
	ErrAlreadyFailed = fmt.Errorf("%w: command has already failed, undo it first", ErrIllegalSequence)
	// ErrUnrecoverable is returned when undoing a failed command does not succeed.
	ErrUnrecoverable = fmt.Errorf("%w: command unable to recover from failure", ErrIllegalSequence)
	// ErrRemovePending is returned when removing the current step of a composite while it is suspended.
	ErrRemovePending = fmt.Errorf("%w: cannot remove a suspended step, resume or undo it first", ErrIllegalSequence)
	// ErrIndexOutOfRange is returned when a step index is outside the composite.
	ErrIndexOutOfRange = errors.New("step index out of range")
)

// SequenceError records which command rejected which operation.
type SequenceError struct {
	Identifier string
	Operation  string
	Err        error
}

// NewSequenceError creates a new SequenceError.
func NewSequenceError(identifier, operation string, err error) *SequenceError {
	return &SequenceError{
		Identifier: identifier,
		Operation:  operation,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Operation, e.Identifier, e.Err)
}

// Unwrap returns the underlying error.
func (e *SequenceError) Unwrap() error {
	return e.Err
}
