// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package validate implements the validate command, which builds a plan without executing it.
package validate

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rewind/cmd/rewind/output"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/planfile"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/matt-FFFFFF/rewind/internal/plan"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag   = "file"
	cliExitStr = ""
)

// NewCommand returns the validate command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a plan and print its command tree",
		Description: `Load and build the plan without executing it.
Every problem found in the plan is reported, then the tree is printed.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:      fileFlag,
				Aliases:   []string{"f"},
				Usage:     "Path or go-getter URL of the plan file",
				TakesFile: true,
				OnlyOnce:  true,
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

	tree, err := plan.NewBuilder().Build(ctx, p)
	if err != nil {
		fmt.Fprintln(root.ErrWriter, err.Error()) //nolint:errcheck
		return cli.Exit(cliExitStr, 1)
	}

	if p.Description != "" {
		fmt.Fprintf(root.Writer, "%s: %s\n\n", p.Name, p.Description) //nolint:errcheck
	}

	if err := output.FromCommand(root.Writer, cmd, snapshot.Capture[string](tree)); err != nil {
		logger.Error(fmt.Sprintf("Failed to write plan: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}
