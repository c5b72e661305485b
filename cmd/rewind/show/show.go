// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements the show command, which renders a saved snapshot.
package show

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/rewind/cmd/rewind/output"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"
)

var (
	// ErrNoFile is returned when no snapshot file is given.
	ErrNoFile = errors.New("please specify the snapshot file")
	// ErrReadFile is returned when the file cannot be read.
	ErrReadFile = errors.New("failed to read file")
	// ErrWriteResults is returned when the snapshot cannot be written.
	ErrWriteResults = errors.New("failed to write snapshot")
)

// NewCommand returns the show command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Render a snapshot written by run --out",
		Description: "Show a previously saved command tree snapshot.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "SNAPSHOT",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: output.Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			name := cmd.StringArg(fileArg)
			if name == "" {
				return ErrNoFile
			}

			file, err := os.Open(name)
			if err != nil {
				return errors.Join(ErrReadFile, err)
			}
			defer file.Close() // nolint:errcheck

			node, err := snapshot.ReadBinary(file)
			if err != nil {
				return err
			}

			if err := output.FromCommand(cmd.Root().Writer, cmd, node); err != nil {
				return errors.Join(ErrWriteResults, err)
			}

			return nil
		},
	}
}
