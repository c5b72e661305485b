// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidPlan is returned when a plan fails validation.
	ErrInvalidPlan = errors.New("invalid plan")
	// ErrEmptyName is reported for a plan or step without a name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrNoExecute is reported for a shell step without an execute line.
	ErrNoExecute = errors.New("shell step must have an execute command")
	// ErrUnexpectedSteps is reported for a shell or noop step that declares child steps.
	ErrUnexpectedSteps = errors.New("leaf steps must not contain steps")
)

// StepError locates a validation failure within the plan.
type StepError struct {
	Path []string
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Path, " > "), e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Validate checks the plan against the registry and reports every problem found.
// The returned error wraps ErrInvalidPlan and a *multierror.Error holding one StepError per problem.
func Validate(p *Plan, r Registry) error {
	var err error

	name := p.Name
	if name == "" {
		err = multierror.Append(err, &StepError{Path: []string{"<plan>"}, Err: ErrEmptyName})
		name = "<plan>"
	}

	for i, s := range p.Steps {
		err = validateStep(err, s, r, []string{name}, i)
	}

	if err != nil {
		return errors.Join(ErrInvalidPlan, err)
	}

	return nil
}

func validateStep(err error, s *Step, r Registry, parent []string, index int) error {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("<step %d>", index)
	}

	path := append(parent[:len(parent):len(parent)], name)
	report := func(e error) {
		err = multierror.Append(err, &StepError{Path: path, Err: e})
	}

	if s.Name == "" {
		report(ErrEmptyName)
	}

	if _, lerr := r.lookup(s.Type); lerr != nil {
		report(lerr)
	}

	if s.Type == TypeShell && s.Execute == "" {
		report(ErrNoExecute)
	}

	if (s.Type == TypeShell || s.Type == TypeNoop) && len(s.Steps) > 0 {
		report(ErrUnexpectedSteps)
	}

	for i, c := range s.Steps {
		err = validateStep(err, c, r, path, i)
	}

	return err
}
