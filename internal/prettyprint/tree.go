// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prettyprint

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/matt-FFFFFF/rewind/internal/color"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
)

// Tree renders n with box-drawing branches.
func Tree(n *snapshot.Node, options *Options) string {
	if options == nil {
		options = DefaultOptions()
	}

	if n == nil {
		return ""
	}

	t := buildTree(n, options).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1))

	return t.String()
}

func buildTree(n *snapshot.Node, options *Options) *tree.Tree {
	t := tree.Root(treeLabel(n, options))

	if options.ShowBehaviors {
		for _, b := range n.Behaviors {
			t.Child(color.Paint(options.Colour, "⚙ "+b, color.FgHiBlack))
		}
	}

	for _, s := range n.Steps {
		if s.Kind == snapshot.KindComposite {
			t.Child(buildTree(s, options))
			continue
		}

		if options.ShowBehaviors && len(s.Behaviors) > 0 {
			leaf := tree.Root(treeLabel(s, options))
			for _, b := range s.Behaviors {
				leaf.Child(color.Paint(options.Colour, "⚙ "+b, color.FgHiBlack))
			}

			t.Child(leaf)

			continue
		}

		t.Child(treeLabel(s, options))
	}

	return t
}

func treeLabel(n *snapshot.Node, options *Options) string {
	glyph, code := statusGlyph(n.Status)

	sb := strings.Builder{}
	sb.WriteString(color.Paint(options.Colour, glyph, code))
	sb.WriteString(" ")
	sb.WriteString(color.Paint(options.Colour, label(n), code))
	fmt.Fprintf(&sb, " (%s)", n.Status) // nolint:errcheck

	if n.Current {
		sb.WriteString(color.Paint(options.Colour, " ← current", color.FgCyan))
	}

	return sb.String()
}
