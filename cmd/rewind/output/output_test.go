// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"testing"

	"github.com/matt-FFFFFF/rewind/internal/command"
	"github.com/matt-FFFFFF/rewind/internal/prettyprint"
	"github.com/matt-FFFFFF/rewind/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNode() *snapshot.Node {
	return &snapshot.Node{
		Identifier: "root",
		Kind:       snapshot.KindComposite,
		Status:     command.StatusComplete,
		Steps: []*snapshot.Node{
			{Identifier: "leaf", Kind: snapshot.KindLeaf, Status: command.StatusComplete, Current: true},
		},
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{format: FormatText, want: []string{"✓ root (1 steps, complete)", "✓ leaf (complete) ← current"}},
		{format: "", want: []string{"✓ root (1 steps, complete)"}},
		{format: FormatTree, want: []string{"root", "╰──", "leaf"}},
		{format: FormatJSON, want: []string{`"identifier": "root"`, `"current": true`}},
		{format: FormatYAML, want: []string{"identifier: root", "kind: leaf"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			err := Write(&buf, testNode(), tt.format, &prettyprint.Options{})
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, testNode(), "xml", &prettyprint.Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
