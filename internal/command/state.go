// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

// executionState is the internal state of a leaf command.
type executionState int

const (
	stateReady executionState = iota
	stateSuspended
	stateSuccess
	stateFailure
)

func (s executionState) status() Status {
	switch s {
	case stateSuspended:
		return StatusPending
	case stateSuccess:
		return StatusComplete
	case stateFailure:
		return StatusFailure
	default:
		return StatusReady
	}
}

func stateFromStatus(s Status) executionState {
	switch s {
	case StatusPending:
		return stateSuspended
	case StatusComplete:
		return stateSuccess
	case StatusFailure:
		return stateFailure
	default:
		return stateReady
	}
}

type operation int

const (
	opExecute operation = iota
	opUndo
	opResume
)

func (o operation) String() string {
	switch o {
	case opExecute:
		return "execute"
	case opUndo:
		return "undo"
	case opResume:
		return "resume"
	default:
		return "unknown"
	}
}

// sideEffect is the behavior action a transition invokes.
type sideEffect int

const (
	effectNone sideEffect = iota
	effectExecute
	effectUndo
	effectResume
)

// settlement maps the result of a side effect onto the next state.
type settlement int

const (
	// settleForward follows the outcome: success, failure or suspension.
	settleForward settlement = iota
	// settleReverse returns to ready on a successful undo, otherwise to failure.
	settleReverse
	// settleRecover returns to ready on a successful undo, otherwise rejects the call.
	settleRecover
)

// transition describes what one operation does in one state.
// A transition with an error rejects the call. A transition without a side effect
// answers with reply and leaves the state alone.
type transition struct {
	effect sideEffect
	settle settlement
	reply  Outcome
	err    error
}

var transitions = [...][3]transition{
	stateReady: {
		opExecute: {effect: effectExecute, settle: settleForward},
		opUndo:    {reply: OutcomeSuccess},
		opResume:  {err: ErrResumeNotSuspended},
	},
	stateSuspended: {
		opExecute: {effect: effectExecute, settle: settleForward},
		opUndo:    {effect: effectUndo, settle: settleReverse},
		opResume:  {effect: effectResume, settle: settleForward},
	},
	stateSuccess: {
		opExecute: {reply: OutcomeSuccess},
		opUndo:    {effect: effectUndo, settle: settleReverse},
		opResume:  {reply: OutcomeSuccess},
	},
	stateFailure: {
		opExecute: {err: ErrAlreadyFailed},
		opUndo:    {effect: effectUndo, settle: settleRecover},
		opResume:  {err: ErrAlreadyFailed},
	},
}

// apply returns the next state and whether cleanup fires.
func (s settlement) apply(from executionState, result Outcome) (executionState, bool, error) {
	switch s {
	case settleReverse:
		if result == OutcomeSuccess {
			return stateReady, true, nil
		}

		return stateFailure, true, nil
	case settleRecover:
		if result == OutcomeSuccess {
			return stateReady, true, nil
		}

		return from, false, ErrUnrecoverable
	default:
		switch result {
		case OutcomeSuccess:
			return stateSuccess, true, nil
		case OutcomeSuspended:
			return stateSuspended, false, nil
		default:
			return stateFailure, true, nil
		}
	}
}
