// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

// Plan is the decoded form of a plan file.
type Plan struct {
	// Name is the identifier of the root composite.
	Name string `yaml:"name" hcl:"name,label" docdesc:"Name of the plan, used as the identifier of the root command"` //nolint:lll
	// Description is free text shown by the validate command.
	Description string `yaml:"description,omitempty" hcl:"description,optional" docdesc:"Description of what the plan does"` //nolint:lll
	// Steps are the top level steps of the plan, executed in order.
	Steps []*Step `yaml:"steps" hcl:"step,block" docdesc:"Steps executed in order, undone in reverse order on failure"` //nolint:lll

	dir string
}

// Dir returns the directory that relative working directories are resolved against.
// It is the directory of the plan file when the plan was loaded from a file.
func (p *Plan) Dir() string {
	return p.dir
}

// Step describes one node of the command tree.
type Step struct {
	// Type selects the factory used to build the step, e.g. "shell" or "serial".
	Type string `yaml:"type" hcl:"type,optional" docdesc:"The type of step (e.g., 'shell', 'serial', 'noop')"` //nolint:lll
	// Name is the identifier of the built command.
	Name string `yaml:"name" hcl:"name,label" docdesc:"Name of the step, used as the identifier of its command"` //nolint:lll
	// Execute is the command line run on execute. For serial steps it is the optional guard.
	Execute string `yaml:"execute,omitempty" hcl:"execute,optional" docdesc:"Command line run on execute; for serial steps a guard run before the children"` //nolint:lll
	// Undo is the command line run on undo.
	Undo string `yaml:"undo,omitempty" hcl:"undo,optional" docdesc:"Command line that reverses execute"` //nolint:lll
	// Resume is the command line run on resume, defaults to Execute.
	Resume string `yaml:"resume,omitempty" hcl:"resume,optional" docdesc:"Command line run when a suspended step is resumed, defaults to execute"` //nolint:lll
	// Cleanup is the command line run once the step has settled.
	Cleanup string `yaml:"cleanup,omitempty" hcl:"cleanup,optional" docdesc:"Command line run once the step has settled"` //nolint:lll
	// SuspendExitCodes are exit codes that suspend the step instead of failing it.
	SuspendExitCodes []int `yaml:"suspend_exit_codes,omitempty" hcl:"suspend_exit_codes,optional" docdesc:"Exit codes of execute or resume that suspend the step instead of failing it"` //nolint:lll
	// WorkingDirectory is resolved against the parent step's directory when relative.
	WorkingDirectory string `yaml:"working_directory,omitempty" hcl:"working_directory,optional" docdesc:"Directory in which command lines run, relative to the parent step"` //nolint:lll
	// Env holds extra environment variables, inherited by child steps.
	Env map[string]string `yaml:"env,omitempty" hcl:"env,optional" docdesc:"Environment variables for command lines, inherited by child steps"` //nolint:lll
	// Steps are the children of a serial step.
	Steps []*Step `yaml:"steps,omitempty" hcl:"step,block" docdesc:"Child steps of a serial step"` //nolint:lll
}
