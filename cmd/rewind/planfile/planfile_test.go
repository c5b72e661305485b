// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package planfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFileNameFromGetterURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantURL  string
		wantFile string
	}{
		{
			name:     "git with subdirectory and ref",
			url:      "git::https://github.com/org/repo//plans/deploy.yaml?ref=v1",
			wantURL:  "git::https://github.com/org/repo//plans?ref=v1",
			wantFile: "deploy.yaml",
		},
		{
			name:     "git at repository root",
			url:      "git::https://github.com/org/repo//deploy.hcl",
			wantURL:  "git::https://github.com/org/repo",
			wantFile: "deploy.hcl",
		},
		{
			name: "no subdirectory separator",
			url:  "https://example.com/plan.yaml",
		},
		{
			name: "trailing slash",
			url:  "git::https://github.com/org/repo//plans/",
		},
		{
			name: "plain file name",
			url:  "plan.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotURL, gotFile := splitFileNameFromGetterURL(tt.url)
			assert.Equal(t, tt.wantURL, gotURL)
			assert.Equal(t, tt.wantFile, gotFile)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: local\nsteps:\n  - type: noop\n    name: a\n"), 0o600))

	p, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "local", p.Name)
	assert.Equal(t, dir, p.Dir())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty source", src: ""},
		{name: "missing local file", src: "does-not-exist.yaml"},
		{name: "directory", src: t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.src)
			assert.ErrorIs(t, err, ErrGetPlanFile)
		})
	}
}
