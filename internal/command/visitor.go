// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

// Visitor receives a read-only description of a command tree.
//
// For a composite the calls are PreVisitComposite, the guard behavior, every step
// in order, then PostVisitComposite. For a leaf the calls are PreVisitLeaf, the
// behavior, then PostVisitLeaf. Placeholder steps are never reported and current
// is nil when a composite has no real step.
//
// Visitors must not mutate the tree while walking it.
type Visitor[R any] interface {
	PreVisitComposite(c Composite[R], steps []Undoable[R], current Undoable[R], behavior Behavior[R], status Status)
	PostVisitComposite(c Composite[R], steps []Undoable[R], current Undoable[R], behavior Behavior[R], status Status)
	PreVisitLeaf(u Undoable[R], behavior Behavior[R], status Status)
	PostVisitLeaf(u Undoable[R], behavior Behavior[R], status Status)
	VisitBehavior(b Behavior[R])
}

var _ Visitor[any] = BaseVisitor[any]{}

// BaseVisitor implements every Visitor method as a no-op.
// Embed it to override only the callbacks of interest.
type BaseVisitor[R any] struct{}

func (BaseVisitor[R]) PreVisitComposite(Composite[R], []Undoable[R], Undoable[R], Behavior[R], Status) {
}

func (BaseVisitor[R]) PostVisitComposite(Composite[R], []Undoable[R], Undoable[R], Behavior[R], Status) {
}

func (BaseVisitor[R]) PreVisitLeaf(Undoable[R], Behavior[R], Status) {}

func (BaseVisitor[R]) PostVisitLeaf(Undoable[R], Behavior[R], Status) {}

func (BaseVisitor[R]) VisitBehavior(Behavior[R]) {}
