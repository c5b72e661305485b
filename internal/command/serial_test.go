// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialComposite_ExecuteAndUndo(t *testing.T) {
	ctx := context.Background()
	s1, _ := leaf("s1", nil)
	s2, _ := leaf("s2", nil)
	c := NewSerialComposite[string]("root", nil, s1, s2)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, StatusComplete, s1.Status())
	assert.Equal(t, StatusComplete, s2.Status())
	assert.Equal(t, StatusComplete, c.Status())

	ok, err := c.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StatusReady, s1.Status())
	assert.Equal(t, StatusReady, s2.Status())
	assert.Equal(t, StatusReady, c.Status())
}

func TestSerialComposite_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	s1, _ := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	b2.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", nil, s1, s2)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Equal(t, StatusReady, s1.Status())
	assert.Equal(t, StatusFailure, s2.Status())
	assert.Equal(t, StatusFailure, c.Status())
}

func TestSerialComposite_RollbackLeavesCursorOnHead(t *testing.T) {
	ctx := context.Background()
	s1, _ := leaf("s1", nil)
	s2, _ := leaf("s2", nil)
	s3, b3 := leaf("s3", nil)
	b3.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", nil, s1, s2, s3)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Same(t, s1, c.Current())
}

func TestSerialComposite_InjectNil(t *testing.T) {
	s1, _ := leaf("s1", nil)
	c := NewSerialComposite[string]("root", newCounting("guard", nil), s1)

	c.Inject(nil)
	assert.IsType(t, NoBehavior[string]{}, c.Behavior())

	out, err := c.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
}

func TestSerialComposite_SuspendAndResume(t *testing.T) {
	ctx := context.Background()
	s1, _ := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	s3, b3 := leaf("s3", nil)
	b2.execute = OutcomeSuspended
	guard := newCounting("guard", nil)
	c := NewSerialComposite[string]("root", guard, s1, s2, s3)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuspended, out)
	assert.Equal(t, StatusComplete, s1.Status())
	assert.Equal(t, StatusPending, s2.Status())
	assert.Equal(t, StatusReady, s3.Status())
	assert.Equal(t, StatusPending, c.Status())
	assert.Same(t, s2, c.Current())
	assert.Zero(t, b3.executes)
	assert.Zero(t, guard.cleanups, "no cleanup while suspended")

	out, err = c.Resume(ctx, "go on")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, StatusComplete, s2.Status())
	assert.Equal(t, StatusComplete, s3.Status())
	assert.Equal(t, []string{"go on"}, b2.resumeValues)
	assert.Equal(t, 1, guard.cleanups)
}

func TestSerialComposite_Empty(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	c := NewSerialComposite[string]("empty", guard)

	assert.Equal(t, StatusReady, c.Status())
	assert.Nil(t, c.Current())
	assert.Empty(t, c.Steps())

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, [4]int{1, 0, 0, 1}, guard.counts())

	ok, err := c.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [4]int{1, 1, 0, 2}, guard.counts())
	assert.Equal(t, StatusReady, c.Status())
}

func TestSerialComposite_RollbackOrder(t *testing.T) {
	ctx := context.Background()

	var log journal

	guard := newCounting("guard", &log)
	s1, _ := leaf("s1", &log)
	s2, _ := leaf("s2", &log)
	s3, b3 := leaf("s3", &log)
	b3.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", guard, s1, s2, s3)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Equal(t, journal{
		"execute guard",
		"execute s1", "cleanup s1",
		"execute s2", "cleanup s2",
		"execute s3", "cleanup s3",
		"undo guard",
		"undo s2", "cleanup s2",
		"undo s1", "cleanup s1",
		"cleanup guard",
	}, log)
}

func TestSerialComposite_RollbackStopsAtFailedUndo(t *testing.T) {
	ctx := context.Background()
	s1, b1 := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	s3, b3 := leaf("s3", nil)
	b2.undo = false
	b3.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", nil, s1, s2, s3)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Equal(t, 1, b2.undos)
	assert.Zero(t, b1.undos, "rollback stops at the first failed undo")
	assert.Equal(t, StatusComplete, s1.Status())
	assert.Equal(t, StatusFailure, s2.Status())
}

func TestSerialComposite_GuardUndoFailureDuringRollback(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	guard.undo = false
	s1, b1 := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	b2.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", guard, s1, s2)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Zero(t, b1.undos, "steps are left untouched")
	assert.Equal(t, StatusComplete, s1.Status())
	assert.Equal(t, 1, guard.cleanups)
}

func TestSerialComposite_GuardDeclinesExecute(t *testing.T) {
	for _, declined := range []Outcome{OutcomeFailure, OutcomeSuspended} {
		t.Run(declined.String(), func(t *testing.T) {
			guard := newCounting("guard", nil)
			guard.execute = declined
			s1, b1 := leaf("s1", nil)
			c := NewSerialComposite[string]("root", guard, s1)

			out, err := c.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, declined, out)
			assert.Zero(t, b1.executes)
			assert.Zero(t, guard.cleanups)
		})
	}
}

func TestSerialComposite_GuardDeclinesUndo(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	s1, b1 := leaf("s1", nil)
	c := NewSerialComposite[string]("root", guard, s1)

	_, err := c.Execute(ctx)
	require.NoError(t, err)

	guard.undo = false
	ok, err := c.Undo(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, b1.undos)
	assert.Equal(t, StatusComplete, s1.Status())
	assert.Equal(t, 1, guard.cleanups, "only the cleanup from execute")
}

func TestSerialComposite_UndoStopsAtFailedStepUndo(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	s1, b1 := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	c := NewSerialComposite[string]("root", guard, s1, s2)

	_, err := c.Execute(ctx)
	require.NoError(t, err)

	b2.undo = false
	ok, err := c.Undo(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, b1.undos)
	assert.Equal(t, 2, guard.cleanups)
}

func TestSerialComposite_ResumeFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	s1, _ := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	s3, b3 := leaf("s3", nil)
	b2.execute = OutcomeSuspended
	b2.resume = OutcomeFailure
	c := NewSerialComposite[string]("root", nil, s1, s2, s3)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuspended, out)

	out, err = c.Resume(ctx, "bad")
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out)
	assert.Equal(t, StatusReady, s1.Status())
	assert.Equal(t, StatusFailure, s2.Status())
	assert.Zero(t, b3.executes)
}

func TestSerialComposite_StepErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	s1, _ := leaf("s1", nil)
	c := NewSerialComposite[string]("root", guard, s1)

	_, err := c.Resume(ctx, "nothing suspended")
	require.ErrorIs(t, err, ErrResumeNotSuspended)
	assert.Zero(t, guard.cleanups)

	failed := NewStatefulCommandWithStatus[string]("failed", newCounting("failed", nil), StatusFailure)
	c2 := NewSerialComposite[string]("root2", guard, failed)

	out, err := c2.Execute(ctx)
	require.ErrorIs(t, err, ErrAlreadyFailed)
	assert.Equal(t, OutcomeFailure, out)
	assert.Zero(t, guard.undos, "no rollback on contract violation")
	assert.Zero(t, guard.cleanups)
}

func TestSerialComposite_CountingFailure(t *testing.T) {
	ctx := context.Background()
	guard := newCounting("guard", nil)
	s1, b1 := leaf("s1", nil)
	s2, b2 := leaf("s2", nil)
	b2.execute = OutcomeFailure
	c := NewSerialComposite[string]("root", guard, s1, s2)

	_, err := c.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, [4]int{1, 1, 0, 1}, guard.counts())
	assert.Equal(t, [4]int{1, 1, 0, 2}, b1.counts())
	assert.Equal(t, [4]int{1, 0, 0, 1}, b2.counts())
}

func TestSerialComposite_ExecuteRestartsFromHead(t *testing.T) {
	ctx := context.Background()
	s1, b1 := leaf("s1", nil)
	s2, _ := leaf("s2", nil)
	c := NewSerialComposite[string]("root", nil, s1, s2)

	_, err := c.Execute(ctx)
	require.NoError(t, err)

	out, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, 1, b1.executes, "complete steps are idempotent")
}

func TestSerialComposite_StatusAggregation(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{name: "empty", want: StatusReady},
		{name: "all ready", statuses: []Status{StatusReady, StatusReady}, want: StatusReady},
		{name: "mixed ready and complete", statuses: []Status{StatusComplete, StatusReady}, want: StatusComplete},
		{name: "pending wins over complete", statuses: []Status{StatusComplete, StatusPending, StatusReady}, want: StatusPending},
		{name: "failure wins", statuses: []Status{StatusPending, StatusFailure}, want: StatusFailure},
		{name: "all complete", statuses: []Status{StatusComplete, StatusComplete}, want: StatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSerialComposite[string]("root", nil)
			for i, s := range tt.statuses {
				c.Add(NewStatefulCommandWithStatus[string](string(rune('a'+i)), nil, s))
			}

			assert.Equal(t, tt.want, c.Status())
		})
	}
}

func TestSerialComposite_ThreeTiers(t *testing.T) {
	ctx := context.Background()

	var log journal

	a1, _ := leaf("1A", &log)
	sub1 := NewSerialComposite[string]("sub1", nil, a1)

	a2, _ := leaf("2A", &log)
	b2, bb := leaf("2B", &log)
	c2, _ := leaf("2C", &log)
	bb.execute = OutcomeSuspended
	sub2 := NewSerialComposite[string]("sub2", nil, a2, b2, c2)

	guard := newCounting("main", &log)
	root := NewSerialComposite[string]("main", guard, sub1, sub2)

	out, err := root.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuspended, out)
	assert.Equal(t, StatusPending, root.Status())
	assert.Equal(t, StatusComplete, sub1.Status())
	assert.Equal(t, StatusPending, sub2.Status())
	assert.Same(t, b2, sub2.Current())

	out, err = root.Resume(ctx, "resumed")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, StatusComplete, root.Status())
	assert.Equal(t, [4]int{1, 0, 0, 1}, guard.counts())
	assert.Equal(t, journal{
		"execute main",
		"execute 1A", "cleanup 1A",
		"execute 2A", "cleanup 2A",
		"execute 2B",
		"resume 2B", "cleanup 2B",
		"execute 2C", "cleanup 2C",
		"cleanup main",
	}, log)

	ok, err := root.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StatusReady, root.Status())
}
