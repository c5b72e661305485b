// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package plan builds command trees from plan files.
//
// A plan is a named list of steps. Each step has a type that is resolved
// through a Registry; the built-in types are serial, shell and noop. Plans are
// written in YAML or HCL, and both formats decode into the same Plan value.
//
// Example YAML plan:
//
//	name: deploy
//	steps:
//	  - type: shell
//	    name: create dir
//	    execute: mkdir -p /tmp/x
//	    undo: rmdir /tmp/x
//	  - type: serial
//	    name: release
//	    steps:
//	      - type: noop
//	        name: marker
//
// The same plan in HCL:
//
//	plan "deploy" {
//	  step "create dir" {
//	    type    = "shell"
//	    execute = "mkdir -p /tmp/x"
//	    undo    = "rmdir /tmp/x"
//	  }
//	  step "release" {
//	    type = "serial"
//	    step "marker" {
//	      type = "noop"
//	    }
//	  }
//	}
package plan
