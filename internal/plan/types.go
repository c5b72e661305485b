// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"context"

	"github.com/matt-FFFFFF/rewind/internal/behaviors/shell"
	"github.com/matt-FFFFFF/rewind/internal/command"
)

const (
	// TypeSerial builds a SerialComposite; execute and undo become its guard.
	TypeSerial = "serial"
	// TypeShell builds a leaf running shell command lines.
	TypeShell = "shell"
	// TypeNoop builds a leaf that always succeeds.
	TypeNoop = "noop"
)

func init() {
	Register(TypeSerial, newSerialStep)
	Register(TypeShell, newShellStep)
	Register(TypeNoop, newNoopStep)
}

func newSerialStep(ctx context.Context, b *Builder, step *Step, scope Scope) (command.Undoable[string], error) {
	var guard command.Behavior[string]

	if step.Execute != "" {
		sb, err := b.shellBehavior(step, scope)
		if err != nil {
			return nil, err
		}

		guard = sb
	}

	children, err := b.BuildSteps(ctx, step.Steps, scope)
	if err != nil {
		return nil, err
	}

	return command.NewSerialComposite(step.Name, guard, children...), nil
}

func newShellStep(_ context.Context, b *Builder, step *Step, scope Scope) (command.Undoable[string], error) {
	sb, err := b.shellBehavior(step, scope)
	if err != nil {
		return nil, err
	}

	return command.NewStatefulCommand[string](step.Name, sb), nil
}

func newNoopStep(_ context.Context, _ *Builder, step *Step, _ Scope) (command.Undoable[string], error) {
	return command.NewStatefulCommand[string](step.Name, command.NoBehavior[string]{}), nil
}

func (b *Builder) shellBehavior(step *Step, scope Scope) (*shell.Behavior, error) {
	return shell.New(shell.Behavior{
		Execute:          step.Execute,
		Undo:             step.Undo,
		Resume:           step.Resume,
		Cleanup:          step.Cleanup,
		Dir:              scope.Dir,
		Env:              scope.Env,
		SuspendExitCodes: step.SuspendExitCodes,
		Stdout:           b.Stdout,
		Stderr:           b.Stderr,
	})
}
