// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

// Scope is the context a step is built in.
type Scope struct {
	Dir string            // Working directory of the parent step.
	Env map[string]string // Environment of the parent step.
}

// child returns the scope of a step built inside s.
func (s Scope) child(step *Step) Scope {
	dir := s.Dir

	switch {
	case step.WorkingDirectory == "":
	case filepath.IsAbs(step.WorkingDirectory):
		dir = step.WorkingDirectory
	default:
		dir = filepath.Join(s.Dir, step.WorkingDirectory)
	}

	env := maps.Clone(s.Env)
	if env == nil {
		env = make(map[string]string, len(step.Env))
	}

	maps.Copy(env, step.Env)

	return Scope{Dir: dir, Env: env}
}

// Builder turns plans into command trees.
type Builder struct {
	Registry Registry  // Step factories, defaults to DefaultRegistry.
	Stdout   io.Writer // Standard output of shell steps.
	Stderr   io.Writer // Standard error of shell steps.
}

// NewBuilder creates a Builder using the default registry and the process output streams.
func NewBuilder() *Builder {
	return &Builder{
		Registry: DefaultRegistry,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Build validates the plan and builds its root composite.
// The root has no guard behavior and holds the plan steps in order.
func (b *Builder) Build(ctx context.Context, p *Plan) (*command.SerialComposite[string], error) {
	if err := Validate(p, b.registry()); err != nil {
		return nil, err
	}

	ctx = ctxlog.WithCommand(ctx, p.Name)
	scope := Scope{Dir: p.dir}

	steps, err := b.BuildSteps(ctx, p.Steps, scope)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "plan built", "steps", len(steps))

	return command.NewSerialComposite[string](p.Name, nil, steps...), nil
}

// BuildSteps builds each step in scope, in order.
func (b *Builder) BuildSteps(ctx context.Context, steps []*Step, scope Scope) ([]command.Undoable[string], error) {
	built := make([]command.Undoable[string], 0, len(steps))

	for i, step := range steps {
		u, err := b.BuildStep(ctx, step, scope)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		built = append(built, u)
	}

	return built, nil
}

// BuildStep builds a single step using the factory registered for its type.
func (b *Builder) BuildStep(ctx context.Context, step *Step, scope Scope) (command.Undoable[string], error) {
	factory, err := b.registry().lookup(step.Type)
	if err != nil {
		return nil, err
	}

	ctx = ctxlog.WithCommand(ctx, step.Name)
	ctxlog.Debug(ctx, "building step", "type", step.Type)

	u, err := factory(ctx, b, step, scope.child(step))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %w", ErrStepCreation, step.Type, step.Name, err)
	}

	return u, nil
}

func (b *Builder) registry() Registry {
	if b.Registry == nil {
		return DefaultRegistry
	}

	return b.Registry
}
