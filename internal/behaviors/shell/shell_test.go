// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == GOOSWindows {
		t.Skip("shell lines in these tests are POSIX")
	}

	t.Setenv("SHELL", binSh)
}

func TestExecuteAction(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name     string
		line     string
		suspend  []int
		want     command.Outcome
		exitCode int
	}{
		{name: "success", line: "exit 0", want: command.OutcomeSuccess, exitCode: 0},
		{name: "failure", line: "exit 3", want: command.OutcomeFailure, exitCode: 3},
		{name: "suspend exit code", line: "exit 75", suspend: []int{75}, want: command.OutcomeSuspended, exitCode: 75},
		{name: "unlisted code fails", line: "exit 76", suspend: []int{75}, want: command.OutcomeFailure, exitCode: 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			b, err := New(Behavior{Execute: tt.line, SuspendExitCodes: tt.suspend})
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.ExecuteAction(context.Background()))
			assert.Equal(t, tt.exitCode, b.LastExitCode())
		})
	}
}

func TestNew_RequiresExecute(t *testing.T) {
	_, err := New(Behavior{Undo: "true"})
	assert.ErrorIs(t, err, ErrNoExecuteLine)
}

func TestUndoAction(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx := context.Background()

	assert.True(t, (&Behavior{Execute: "true"}).UndoAction(ctx), "no undo line is a successful undo")
	assert.True(t, (&Behavior{Execute: "true", Undo: "exit 0"}).UndoAction(ctx))
	assert.False(t, (&Behavior{Execute: "true", Undo: "exit 1"}).UndoAction(ctx))
}

func TestResumeAction(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	b := &Behavior{
		Execute:          `exit 75`,
		Resume:           `test "$REWIND_RESUME_VALUE" = yes && test "$REWIND_ACTION" = resume || exit 75`,
		SuspendExitCodes: []int{75},
	}

	assert.Equal(t, command.OutcomeSuspended, b.ResumeAction(ctx, "no"))
	assert.Equal(t, command.OutcomeSuccess, b.ResumeAction(ctx, "yes"))

	fallback := &Behavior{Execute: `test "$REWIND_RESUME_VALUE" = again`}
	assert.Equal(t, command.OutcomeSuccess, fallback.ResumeAction(ctx, "again"), "resume falls back to the execute line")
}

func TestCleanupAndEnvironment(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	marker := filepath.Join(dir, "cleaned")

	var stdout bytes.Buffer

	b := &Behavior{
		Execute: `printf '%s %s' "$GREETING" "$(basename "$PWD")"`,
		Cleanup: "touch cleaned",
		Dir:     dir,
		Env:     map[string]string{"GREETING": "hello"},
		Stdout:  &stdout,
	}

	c := command.NewStatefulCommand[string]("greet", b)
	out, err := c.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeSuccess, out)
	assert.Equal(t, "hello "+filepath.Base(dir), stdout.String())

	_, err = os.Stat(marker)
	assert.NoError(t, err, "cleanup runs after the command settles")
}

func TestCancelledContextFails(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Behavior{Execute: "exit 0", Undo: "exit 0"}
	assert.Equal(t, command.OutcomeFailure, b.ExecuteAction(ctx))
	assert.Equal(t, -1, b.LastExitCode())
	assert.False(t, b.UndoAction(ctx))
}

func TestString(t *testing.T) {
	assert.Equal(t, "sh: make build", (&Behavior{Execute: "make build"}).String())
	assert.Equal(t, "build", (&Behavior{Label: "build", Execute: "make build"}).String())
}

func TestLastErrorLine(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	var stderr bytes.Buffer

	b, err := New(Behavior{Execute: "echo first >&2; echo 'disk full' >&2; exit 2", Stderr: &stderr})
	require.NoError(t, err)

	assert.Equal(t, command.OutcomeFailure, b.ExecuteAction(context.Background()))
	assert.Equal(t, "disk full", b.LastErrorLine())
	assert.Equal(t, "first\ndisk full\n", stderr.String())

	b.Execute = "true"
	assert.Equal(t, command.OutcomeSuccess, b.ExecuteAction(context.Background()))
	assert.Empty(t, b.LastErrorLine())
}
