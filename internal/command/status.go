// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
)

// Status is the externally observable lifecycle phase of a command.
type Status int

const (
	// StatusReady means the command never ran, or was undone back to the start.
	StatusReady Status = iota
	// StatusPending means the command is suspended and awaits Resume.
	StatusPending
	// StatusComplete means the command executed successfully.
	StatusComplete
	// StatusFailure means the command ran and could not complete.
	StatusFailure
)

const (
	statusReadyStr    = "ready"
	statusPendingStr  = "pending"
	statusCompleteStr = "complete"
	statusFailureStr  = "failure"
	statusUnknownStr  = "unknown"
)

// ErrStatusUnknown is returned when a string does not name a Status.
var ErrStatusUnknown = errors.New("unknown status value")

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return statusReadyStr
	case StatusPending:
		return statusPendingStr
	case StatusComplete:
		return statusCompleteStr
	case StatusFailure:
		return statusFailureStr
	default:
		return statusUnknownStr
	}
}

// ParseStatus creates a Status from its string representation.
func ParseStatus(s string) (Status, error) {
	switch s {
	case statusReadyStr:
		return StatusReady, nil
	case statusPendingStr:
		return StatusPending, nil
	case statusCompleteStr:
		return StatusComplete, nil
	case statusFailureStr:
		return StatusFailure, nil
	default:
		return Status(-1), fmt.Errorf("%w: %q", ErrStatusUnknown, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
