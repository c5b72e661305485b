// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package snapshot captures a read-only picture of a command tree.
//
// A Node records what a visitor sees: identifiers, kinds, statuses, the cursor
// step of each composite and the names of the behaviors. Nodes can be written as
// JSON, YAML or gob, and gob snapshots read back for display with `rewind show`.
// A snapshot cannot be turned back into live commands.
package snapshot
