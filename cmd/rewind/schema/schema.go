// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema implements the schema command, which prints the plan file schema.
package schema

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rewind/internal/plan"
	"github.com/matt-FFFFFF/rewind/internal/schema"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewCommand returns the schema command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "schema",
		Usage:       "Print the JSON schema of plan files",
		Description: "Print the JSON schema of YAML plan files, listing the registered step types.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        formatFlag,
				Aliases:     []string{"o"},
				Usage:       "Output format: json or yaml",
				DefaultText: formatJSON,
				Value:       formatJSON,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	types := plan.DefaultRegistry.Types()

	switch f := cmd.String(formatFlag); f {
	case formatJSON:
		return schema.WriteJSON(w, types)
	case formatYAML:
		return schema.WriteYAML(w, types)
	default:
		return cli.Exit(fmt.Sprintf("Invalid format: %s. Valid formats: json, yaml", f), 1)
	}
}
