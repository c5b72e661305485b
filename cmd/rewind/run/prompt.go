// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/peterh/liner"
)

// AbortWord typed at the prompt undoes the plan.
const AbortWord = "undo"

// Prompter reads a line from the terminal.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// PrompterFactory creates the prompter used by --interactive.
var PrompterFactory = func() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}

// resumeFunc returns the resume value for the suspended step, or false to abort.
type resumeFunc func(ctx context.Context, step string) (string, bool)

type resumeSource struct {
	values   []string
	used     int
	prompter Prompter
}

func (s *resumeSource) next(ctx context.Context, step string) (string, bool) {
	if s.used < len(s.values) {
		v := s.values[s.used]
		s.used++

		return v, true
	}

	if s.prompter == nil {
		return "", false
	}

	input, err := s.prompter.Prompt(fmt.Sprintf("%s is suspended, enter a resume value or '%s'> ", step, AbortWord))

	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		ctxlog.Info(ctx, "prompt aborted")
		return "", false
	case err != nil:
		ctxlog.Warn(ctx, "failed to read resume value", "error", err)
		return "", false
	case strings.TrimSpace(input) == AbortWord:
		return "", false
	}

	return input, true
}
