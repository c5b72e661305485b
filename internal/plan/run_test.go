// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

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

const rollbackYAML = `
name: rollback
steps:
  - type: shell
    name: make dir
    execute: mkdir out
    undo: rmdir out
  - type: shell
    name: write file
    execute: echo hello > out/file
    undo: rm out/file
  - type: shell
    name: fail
    execute: exit 1
`

func TestRunPlan_RollsBack(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell lines in this test are POSIX")
	}

	defer goleak.VerifyNone(t)
	t.Setenv("SHELL", "/bin/sh")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rollback.yaml"), []byte(rollbackYAML), 0o600))

	ctx := context.Background()
	p, err := LoadFile(ctx, filepath.Join(dir, "rollback.yaml"))
	require.NoError(t, err)

	var out bytes.Buffer

	b := NewBuilder()
	b.Stdout = &out
	b.Stderr = &out

	root, err := b.Build(ctx, p)
	require.NoError(t, err)

	outcome, err := root.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeFailure, outcome)
	assert.Equal(t, command.StatusFailure, root.Status())

	assert.NoDirExists(t, filepath.Join(dir, "out"))

	steps := root.Steps()
	assert.Equal(t, command.StatusReady, steps[0].Status())
	assert.Equal(t, command.StatusReady, steps[1].Status())
	assert.Equal(t, command.StatusFailure, steps[2].Status())
}

func TestRunPlan_ExecuteThenUndo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell lines in this test are POSIX")
	}

	defer goleak.VerifyNone(t)
	t.Setenv("SHELL", "/bin/sh")

	dir := t.TempDir()
	p := &Plan{
		Name: "roundtrip",
		Steps: []*Step{
			{Type: TypeShell, Name: "make dir", Execute: "mkdir out", Undo: "rmdir out"},
		},
		dir: dir,
	}

	ctx := context.Background()
	root, err := NewBuilder().Build(ctx, p)
	require.NoError(t, err)

	outcome, err := root.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, command.OutcomeSuccess, outcome)
	assert.DirExists(t, filepath.Join(dir, "out"))

	ok, err := root.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
	assert.Equal(t, command.StatusReady, root.Status())
}
