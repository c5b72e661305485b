// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadPlan is returned when a plan file cannot be read.
	ErrReadPlan = errors.New("failed to read plan file")
	// ErrUnknownFormat is returned when the plan file extension is not recognised.
	ErrUnknownFormat = errors.New("unknown plan file format, expected .yaml, .yml or .hcl")
)

// Format identifies the encoding of a plan file.
type Format string

const (
	// FormatYAML is a YAML plan.
	FormatYAML Format = "yaml"
	// FormatHCL is an HCL plan.
	FormatHCL Format = "hcl"
)

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode decodes a plan in the given format. The filename is used in diagnostics.
func Decode(data []byte, format Format, filename string) (*Plan, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatHCL:
		return DecodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// LoadFile reads and decodes the plan at path using the filesystem returned by FsFactory.
// Relative working directories in the plan resolve against the directory of the file.
func LoadFile(ctx context.Context, path string) (*Plan, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadPlan, err)
	}

	p, err := Decode(data, format, path)
	if err != nil {
		return nil, err
	}

	p.dir = filepath.Dir(path)
	ctxlog.Debug(ctx, "plan loaded", "path", path, "format", format, "name", p.Name)

	return p, nil
}
