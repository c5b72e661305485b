// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prettyprint

import "github.com/matt-FFFFFF/rewind/internal/color"

// Options controls what is included in the output.
type Options struct {
	ShowBehaviors bool // Whether to list the behaviors of each command
	ShowSummary   bool // Whether to finish with a count of leaves per status
	Colour        bool // Whether to use ANSI colours
}

// DefaultOptions returns a default set of options.
func DefaultOptions() *Options {
	return &Options{
		ShowBehaviors: true,
		ShowSummary:   true,
		Colour:        color.Enabled(),
	}
}
