// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run command, which executes a plan.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/rewind/cmd/rewind/output"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/planfile"
	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/matt-FFFFFF/rewind/internal/plan"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
	"github.com/matt-FFFFFF/rewind/internal/tracer"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag           = "file"
	outFlag            = "out"
	traceFlag          = "trace"
	undoFlag           = "undo"
	resumeValueFlag    = "resume-value"
	interactiveFlag    = "interactive"
	outputStdOutFlag   = "output-stdout"
	noOutputStdErrFlag = "no-output-stderr"
	cliExitStr         = ""
)

var (
	// ErrRunFailed is returned when the plan finishes in failure.
	ErrRunFailed = errors.New("run failed")
	// ErrRunAborted is returned when a suspended plan is undone for lack of a resume value.
	ErrRunAborted = errors.New("run aborted")
	// ErrUndoFailed is returned when undoing the plan does not succeed.
	ErrUndoFailed = errors.New("undo failed")
)

// NewCommand returns the run command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Execute a plan",
		Description: `Execute the plan defined in a YAML or HCL file.

Plan file URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.

When a step suspends, the plan is resumed with the next --resume-value.
With --interactive the value is read from the terminal instead, and typing 'undo' aborts.
With no value available the plan is undone.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:      fileFlag,
				Aliases:   []string{"f"},
				Usage:     "Path or go-getter URL of the plan file",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:      outFlag,
				Usage:     "Write a binary snapshot of the final tree to this file",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.BoolFlag{
				Name:        traceFlag,
				Aliases:     []string{"t"},
				Usage:       "Trace every behavior action and print the trace",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        undoFlag,
				Usage:       "Undo the plan after it completes successfully",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.StringSliceFlag{
				Name:    resumeValueFlag,
				Aliases: []string{"r"},
				Usage:   "Value passed to a suspended step on resume. Specify multiple times for multiple suspensions.",
			},
			&cli.BoolFlag{
				Name:        interactiveFlag,
				Aliases:     []string{"i"},
				Usage:       "Prompt for resume values once --resume-value is exhausted",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        outputStdOutFlag,
				Aliases:     []string{"stdout"},
				Usage:       "Show the stdout of shell steps",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        noOutputStdErrFlag,
				Aliases:     []string{"no-stderr"},
				Usage:       "Hide the stderr of shell steps",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		}, output.Flags()...),
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx)
	root := cmd.Root()

	src := cmd.String(fileFlag)
	if src == "" {
		logger.Error("Please specify the plan file using the --file or -f flag.")
		return cli.Exit(cliExitStr, 1)
	}

	p, err := planfile.Load(ctx, src)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load plan %s: %s", src, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	b := plan.NewBuilder()
	b.Stdout = io.Discard
	b.Stderr = root.ErrWriter

	if cmd.Bool(outputStdOutFlag) {
		b.Stdout = root.ErrWriter
	}

	if cmd.Bool(noOutputStdErrFlag) {
		b.Stderr = io.Discard
	}

	tree, err := b.Build(ctx, p)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to build plan %s: %s", src, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	var tr *tracer.Tracer[string]
	if cmd.Bool(traceFlag) {
		tr = tracer.Install[string](ctx, tree)
	}

	source := &resumeSource{values: cmd.StringSlice(resumeValueFlag)}

	if cmd.Bool(interactiveFlag) {
		source.prompter = PrompterFactory()
		defer source.prompter.Close() //nolint:errcheck
	}

	runErr := execute(ctx, tree, source.next, cmd.Bool(undoFlag))

	node := snapshot.Capture[string](tree)

	if err := output.FromCommand(root.Writer, cmd, node); err != nil {
		logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if tr != nil {
		writeTrace(root.Writer, tr)
	}

	if out := cmd.String(outFlag); out != "" {
		if err := writeSnapshot(out, node); err != nil {
			logger.Error(fmt.Sprintf("Failed to write snapshot to %s: %s", out, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		logger.Info(fmt.Sprintf("Snapshot written to %s", out))
	}

	if runErr != nil {
		logger.Error(runErr.Error())
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// execute runs the tree to completion, resuming each suspension with the next value.
// When next has no value the tree is undone and ErrRunAborted returned.
func execute(ctx context.Context, tree command.Undoable[string], next resumeFunc, undoAfter bool) error {
	out, err := tree.Execute(ctx)

	for err == nil && out == command.OutcomeSuspended {
		step := suspendedStep(snapshot.Capture(tree))

		value, ok := next(ctx, step)
		if !ok {
			ctxlog.Warn(ctx, "no resume value, undoing plan", "step", step)

			if err := undo(ctx, tree); err != nil {
				return errors.Join(ErrRunAborted, err)
			}

			return ErrRunAborted
		}

		ctxlog.Info(ctx, "resuming", "step", step)
		out, err = tree.Resume(ctx, value)
	}

	if err != nil {
		return err
	}

	if out == command.OutcomeFailure {
		return ErrRunFailed
	}

	if undoAfter {
		return undo(ctx, tree)
	}

	return nil
}

func undo(ctx context.Context, tree command.Undoable[string]) error {
	ok, err := tree.Undo(ctx)
	if err != nil {
		return err
	}

	if !ok {
		return ErrUndoFailed
	}

	return nil
}

// suspendedStep returns the identifier of the first pending leaf.
func suspendedStep(n *snapshot.Node) string {
	var id string

	n.Walk(func(node *snapshot.Node, _ int) bool {
		if id != "" {
			return false
		}

		if node.Kind == snapshot.KindLeaf && node.Status == command.StatusPending {
			id = node.Identifier
		}

		return true
	})

	if id == "" {
		return n.Identifier
	}

	return id
}

func writeTrace(w io.Writer, tr *tracer.Tracer[string]) {
	fmt.Fprintf(w, "\n%s\n", tr) //nolint:errcheck

	for _, line := range tr.Result() {
		fmt.Fprintf(w, "  %s\n", line) //nolint:errcheck
	}
}

func writeSnapshot(name string, n *snapshot.Node) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	return writeAndClose(f, n)
}

// writeAndClose writes n to wc and closes it, returning the close error
// when the write succeeded.
func writeAndClose(wc io.WriteCloser, n *snapshot.Node) error {
	if err := snapshot.WriteBinary(wc, n); err != nil {
		wc.Close() //nolint:errcheck
		return err
	}

	return wc.Close()
}
