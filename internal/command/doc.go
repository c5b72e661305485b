// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command provides reversible commands that can be executed, undone and,
// when interrupted, suspended and resumed later.
//
// A StatefulCommand wraps a single Behavior and enforces the legal call sequence.
// A SerialComposite runs an ordered list of steps (leaves or nested composites) as
// one unit, rolling back the steps that already ran when a later step fails.
//
// Suspension is not concurrency. OutcomeSuspended tells the caller that the command
// is incomplete and must be driven again with Resume; nothing runs in between.
//
// Command trees can be walked read-only with a Visitor, which is how the
// pretty printer, the tracer and the snapshot writer observe a tree.
package command
