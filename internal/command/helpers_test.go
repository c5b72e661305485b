// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
)

// journal records behavior calls across a tree in the order they happen.
type journal []string

func (j *journal) add(format string, args ...any) {
	if j == nil {
		return
	}

	*j = append(*j, fmt.Sprintf(format, args...))
}

// countingBehavior returns fixed results and counts every call.
type countingBehavior struct {
	name    string
	log     *journal
	execute Outcome
	undo    bool
	resume  Outcome

	resumeValues []string
	executes     int
	undos        int
	resumes      int
	cleanups     int
}

func newCounting(name string, log *journal) *countingBehavior {
	return &countingBehavior{name: name, log: log, execute: OutcomeSuccess, undo: true, resume: OutcomeSuccess}
}

func (b *countingBehavior) ExecuteAction(context.Context) Outcome {
	b.executes++
	b.log.add("execute %s", b.name)

	return b.execute
}

func (b *countingBehavior) UndoAction(context.Context) bool {
	b.undos++
	b.log.add("undo %s", b.name)

	return b.undo
}

func (b *countingBehavior) ResumeAction(_ context.Context, value string) Outcome {
	b.resumes++
	b.resumeValues = append(b.resumeValues, value)
	b.log.add("resume %s", b.name)

	return b.resume
}

func (b *countingBehavior) CleanupAction(context.Context) {
	b.cleanups++
	b.log.add("cleanup %s", b.name)
}

func (b *countingBehavior) String() string {
	return b.name
}

// counts is executes, undos, resumes and cleanups in that order.
func (b *countingBehavior) counts() [4]int {
	return [4]int{b.executes, b.undos, b.resumes, b.cleanups}
}

// executeOnly implements only the required part of Behavior.
type executeOnly struct {
	executes int
}

func (b *executeOnly) ExecuteAction(context.Context) Outcome {
	b.executes++
	return OutcomeSuccess
}

func (b *executeOnly) UndoAction(context.Context) bool { return true }

func leaf(name string, log *journal) (*StatefulCommand[string], *countingBehavior) {
	b := newCounting(name, log)
	return NewStatefulCommand[string](name, b), b
}
