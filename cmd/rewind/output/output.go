// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output renders command tree snapshots in the formats offered by the CLI.
package output

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/rewind/internal/color"
	"github.com/matt-FFFFFF/rewind/internal/prettyprint"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
	"github.com/urfave/cli/v3"
)

const (
	// FormatFlag is the name of the flag selecting the output format.
	FormatFlag = "format"
	// BehaviorsFlag is the name of the flag that shows behaviors in text output.
	BehaviorsFlag = "show-behaviors"

	// FormatText renders indented text lines.
	FormatText = "text"
	// FormatTree renders a lipgloss tree.
	FormatTree = "tree"
	// FormatJSON renders indented JSON.
	FormatJSON = "json"
	// FormatYAML renders YAML.
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatTree, FormatJSON, FormatYAML}

// Flags returns the flags shared by every command that prints a tree.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     FormatFlag,
			Aliases:  []string{"o"},
			Usage:    "Output format, one of: " + strings.Join(Formats, ", "),
			Value:    FormatText,
			OnlyOnce: true,
			Validator: func(s string) error {
				if !slices.Contains(Formats, s) {
					return fmt.Errorf("%w: %s", ErrUnknownFormat, s)
				}

				return nil
			},
		},
		&cli.BoolFlag{
			Name:        BehaviorsFlag,
			Aliases:     []string{"behaviors"},
			Usage:       "Include the behavior of each command in text and tree output",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	}
}

// FromCommand writes the node using the format flags of cmd.
func FromCommand(w io.Writer, cmd *cli.Command, n *snapshot.Node) error {
	opts := prettyprint.DefaultOptions()
	opts.ShowBehaviors = cmd.Bool(BehaviorsFlag)

	return Write(w, n, cmd.String(FormatFlag), opts)
}

// Write renders the node in the given format.
func Write(w io.Writer, n *snapshot.Node, format string, opts *prettyprint.Options) error {
	switch format {
	case FormatText, "":
		return prettyprint.WriteText(w, n, opts)
	case FormatTree:
		_, err := fmt.Fprintln(w, prettyprint.Tree(n, opts))
		return err
	case FormatJSON:
		return snapshot.WriteJSON(w, n, opts.Colour && color.Enabled())
	case FormatYAML:
		return snapshot.WriteYAML(w, n)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
