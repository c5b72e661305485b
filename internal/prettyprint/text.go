// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prettyprint

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/rewind/internal/color"
	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
)

const indentUnit = "  "

// ErrWriteText is returned when the text output cannot be written.
var ErrWriteText = errors.New("failed to write text output")

// WriteText writes n as an indented list, one command per line.
func WriteText(w io.Writer, n *snapshot.Node, options *Options) error {
	if options == nil {
		options = DefaultOptions()
	}

	sb := strings.Builder{}

	n.Walk(func(node *snapshot.Node, depth int) bool {
		writeNode(&sb, node, strings.Repeat(indentUnit, depth), options)
		return true
	})

	if options.ShowSummary && n != nil {
		sb.WriteString("\n")
		sb.WriteString(Summary(n))
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWriteText, err)
	}

	return nil
}

// String renders a live command tree without colour.
func String[R any](u command.Undoable[R]) string {
	sb := strings.Builder{}
	_ = WriteText(&sb, snapshot.Capture(u), &Options{ShowBehaviors: true})

	return sb.String()
}

// Summary counts the leaves of n per status.
func Summary(n *snapshot.Node) string {
	counts := n.Count()

	return fmt.Sprintf("%d complete, %d pending, %d failed, %d ready",
		counts[command.StatusComplete],
		counts[command.StatusPending],
		counts[command.StatusFailure],
		counts[command.StatusReady],
	)
}

func writeNode(sb *strings.Builder, n *snapshot.Node, indent string, options *Options) {
	glyph, code := statusGlyph(n.Status)

	sb.WriteString(indent)
	sb.WriteString(color.Paint(options.Colour, glyph, code))
	sb.WriteString(" ")
	sb.WriteString(color.Paint(options.Colour, label(n), color.Bold, code))

	if n.Kind == snapshot.KindComposite {
		fmt.Fprintf(sb, " (%d steps, %s)", len(n.Steps), n.Status) // nolint:errcheck
	} else {
		fmt.Fprintf(sb, " (%s)", n.Status) // nolint:errcheck
	}

	if n.Current {
		sb.WriteString(color.Paint(options.Colour, " ← current", color.FgCyan))
	}

	sb.WriteString("\n")

	if !options.ShowBehaviors {
		return
	}

	for _, b := range n.Behaviors {
		sb.WriteString(indent)
		sb.WriteString(indentUnit)
		sb.WriteString(color.Paint(options.Colour, "➜ behavior:", color.FgHiBlack))
		sb.WriteString(" ")
		sb.WriteString(b)
		sb.WriteString("\n")
	}
}

func statusGlyph(s command.Status) (string, color.Code) {
	switch s {
	case command.StatusComplete:
		return "✓", color.FgGreen
	case command.StatusFailure:
		return "✗", color.FgRed
	case command.StatusPending:
		return "‖", color.FgYellow
	case command.StatusReady:
		return "○", color.FgWhite
	default:
		return "?", color.FgWhite
	}
}

func label(n *snapshot.Node) string {
	if n.Identifier == "" {
		return "[unnamed]"
	}

	return n.Identifier
}
