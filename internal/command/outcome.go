// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

// Outcome is the result of Execute and Resume.
type Outcome int

const (
	// OutcomeSuccess means the action completed.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means the action ran and did not complete.
	OutcomeFailure
	// OutcomeSuspended means the action is incomplete and Resume must be called later.
	OutcomeSuspended
)

const (
	outcomeSuccessStr   = "success"
	outcomeFailureStr   = "failure"
	outcomeSuspendedStr = "suspended"
	outcomeUnknownStr   = "unknown"
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return outcomeSuccessStr
	case OutcomeFailure:
		return outcomeFailureStr
	case OutcomeSuspended:
		return outcomeSuspendedStr
	default:
		return outcomeUnknownStr
	}
}

// OutcomeOf converts a boolean result into OutcomeSuccess or OutcomeFailure.
func OutcomeOf(ok bool) Outcome {
	if ok {
		return OutcomeSuccess
	}

	return OutcomeFailure
}
