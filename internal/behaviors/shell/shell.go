// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell provides a command behavior that runs shell command lines.
//
// The execute line decides the outcome: exit code 0 is success, an exit code
// listed in SuspendExitCodes suspends the command, anything else is failure.
// Resume runs the resume line (or the execute line again) with the resume value
// in REWIND_RESUME_VALUE. Undo succeeds when the undo line exits 0, or when
// there is no undo line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"slices"

	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/matt-FFFFFF/rewind/internal/lastline"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows = "windows"
	// ResumeValueEnv holds the resume value while the resume line runs.
	ResumeValueEnv = "REWIND_RESUME_VALUE"
	// ActionEnv holds the name of the action being run.
	ActionEnv = "REWIND_ACTION"

	commandSwitchWindows = "/C"
	commandSwitchUnix    = "-c"
	winSystem32          = "System32"
	cmdExe               = "cmd.exe"
	binSh                = "/bin/sh"
	winSystemRootEnv     = "SystemRoot"
	exitCodeNotRun       = -1
	maxErrorLineLength   = 200
)

var (
	// ErrNoExecuteLine is returned when a behavior has no execute line.
	ErrNoExecuteLine = errors.New("shell behavior has no execute command")
	// ErrCouldNotStartProcess is returned when the shell could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
)

var (
	_ command.Behavior[string] = (*Behavior)(nil)
	_ command.Resumer[string]  = (*Behavior)(nil)
	_ command.Cleaner          = (*Behavior)(nil)
)

// Behavior runs shell command lines for each action.
type Behavior struct {
	Label            string            // Display name, defaults to the execute line.
	Execute          string            // Command line run by ExecuteAction.
	Undo             string            // Command line run by UndoAction, may be empty.
	Resume           string            // Command line run by ResumeAction, defaults to Execute.
	Cleanup          string            // Command line run by CleanupAction, may be empty.
	Dir              string            // Working directory, defaults to the current one.
	Env              map[string]string // Extra environment variables.
	SuspendExitCodes []int             // Exit codes of execute and resume that suspend the command.
	Stdout           io.Writer         // Receives the standard output of every line.
	Stderr           io.Writer         // Receives the standard error of every line.

	lastExitCode  int
	lastErrorLine string
}

// New creates a Behavior after checking that it has an execute line.
func New(b Behavior) (*Behavior, error) {
	if b.Execute == "" {
		return nil, ErrNoExecuteLine
	}

	return &b, nil
}

// ExecuteAction implements command.Behavior.
func (b *Behavior) ExecuteAction(ctx context.Context) command.Outcome {
	return b.classify(ctx, "execute", b.run(ctx, "execute", b.Execute, nil))
}

// UndoAction implements command.Behavior.
func (b *Behavior) UndoAction(ctx context.Context) bool {
	if b.Undo == "" {
		ctxlog.Debug(ctx, "no undo command, nothing to reverse")
		return true
	}

	return b.run(ctx, "undo", b.Undo, nil) == 0
}

// ResumeAction implements command.Resumer.
func (b *Behavior) ResumeAction(ctx context.Context, value string) command.Outcome {
	line := b.Resume
	if line == "" {
		line = b.Execute
	}

	return b.classify(ctx, "resume", b.run(ctx, "resume", line, map[string]string{ResumeValueEnv: value}))
}

// CleanupAction implements command.Cleaner.
func (b *Behavior) CleanupAction(ctx context.Context) {
	if b.Cleanup == "" {
		return
	}

	if code := b.run(ctx, "cleanup", b.Cleanup, nil); code != 0 {
		ctxlog.Warn(ctx, "cleanup command failed", "exitCode", code)
	}
}

// LastErrorLine returns the last non-blank line the most recent command wrote to stderr.
func (b *Behavior) LastErrorLine() string {
	return b.lastErrorLine
}

// LastExitCode returns the exit code of the most recent line, or -1 if it could not run.
func (b *Behavior) LastExitCode() int {
	return b.lastExitCode
}

func (b *Behavior) String() string {
	if b.Label != "" {
		return b.Label
	}

	return "sh: " + b.Execute
}

func (b *Behavior) classify(ctx context.Context, action string, code int) command.Outcome {
	switch {
	case code == 0:
		return command.OutcomeSuccess
	case slices.Contains(b.SuspendExitCodes, code):
		ctxlog.Info(ctx, "command suspended", "action", action, "exitCode", code)
		return command.OutcomeSuspended
	default:
		ctxlog.Warn(ctx, "command failed", "action", action, "exitCode", code, "stderr", b.lastErrorLine)
		return command.OutcomeFailure
	}
}

// run executes line with the shell and returns its exit code.
func (b *Behavior) run(ctx context.Context, action, line string, extraEnv map[string]string) int {
	b.lastExitCode = exitCodeNotRun
	b.lastErrorLine = ""

	if err := ctx.Err(); err != nil {
		ctxlog.Warn(ctx, "context done, not running command", "action", action, "error", err)
		return b.lastExitCode
	}

	shell := defaultShell(ctx)
	cmd := exec.CommandContext(ctx, shell, commandSwitch(), line)
	cmd.Dir = b.Dir
	cmd.Stdout = writerOrDiscard(b.Stdout)
	stderr := lastline.NewWriter(b.Stderr)
	cmd.Stderr = stderr
	cmd.Env = os.Environ()

	for k, v := range b.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", ActionEnv, action))

	ctxlog.Debug(ctx, "running shell command", "action", action, "shell", shell, "line", line, "dir", b.Dir)

	err := cmd.Run()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		b.lastExitCode = 0
	case errors.As(err, &exitErr):
		b.lastExitCode = exitErr.ExitCode()
	default:
		ctxlog.Error(ctx, "shell command did not run", "action", action, "error", errors.Join(ErrCouldNotStartProcess, err))
	}

	b.lastErrorLine = stderr.Last(maxErrorLineLength)
	ctxlog.Debug(ctx, "shell command finished", "action", action, "exitCode", b.lastExitCode, "stderr", b.lastErrorLine)

	return b.lastExitCode
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

func commandSwitch() string {
	if runtime.GOOS == GOOSWindows {
		return commandSwitchWindows
	}

	return commandSwitchUnix
}

func defaultShell(ctx context.Context) string {
	if runtime.GOOS == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}
