// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the rewind command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/rewind"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/run"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/schema"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/show"
	"github.com/matt-FFFFFF/rewind/cmd/rewind/validate"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/matt-FFFFFF/rewind/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.NewCommand(),
		validate.NewCommand(),
		show.NewCommand(),
		schema.NewCommand(),
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "rewind",
	Description: `Rewind executes plans of reversible steps.
A plan is a tree of steps that runs as one unit: when a step fails, the steps
before it are undone in reverse order. Steps may suspend and be resumed later
with a value, and a finished plan can be undone as a whole.`,
	Usage:     "rewind run -f plan.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh, stop := signalbroker.New(ctx)
	defer stop()

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", rewind.Version, rewind.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1) //nolint:gocritic
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
