// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matt-FFFFFF/rewind/internal/command"
)

var (
	// ErrUnknownStepType is returned when a step type is not registered.
	ErrUnknownStepType = errors.New("unknown step type")
	// ErrStepCreation is returned when a step cannot be built.
	ErrStepCreation = errors.New("failed to create step")
)

// Factory builds the command for a step.
// The scope carries the working directory and environment inherited from the parent.
type Factory func(ctx context.Context, b *Builder, step *Step, scope Scope) (command.Undoable[string], error)

// Registry holds the mapping between step types and their factories.
type Registry map[string]Factory

// DefaultRegistry is the default registry for step types.
var DefaultRegistry = make(Registry)

// Register registers a new step type with its factory in the default registry.
func Register(stepType string, factory Factory) {
	DefaultRegistry[stepType] = factory
}

// Types returns the registered step types in sorted order.
func (r Registry) Types() []string {
	return slices.Sorted(maps.Keys(r))
}

func (r Registry) lookup(stepType string) (Factory, error) {
	f, ok := r[stepType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStepType, stepType)
	}

	return f, nil
}
