// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package planfile fetches plan files for the CLI.
//
// Local paths are read in place so that relative working directories resolve
// against the plan's own directory. Anything else is fetched with Hashicorp's
// go-getter into a temporary directory and decoded from there.
package planfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
	"github.com/matt-FFFFFF/rewind/internal/plan"
)

// ErrGetPlanFile is returned when the plan file cannot be fetched.
var ErrGetPlanFile = errors.New("failed to get plan file")

// Load fetches and decodes the plan at src.
func Load(ctx context.Context, src string) (*plan.Plan, error) {
	if src == "" {
		return nil, ErrGetPlanFile
	}

	if fi, err := os.Stat(src); err == nil && !fi.IsDir() {
		return plan.LoadFile(ctx, src)
	}

	data, name, err := getURL(ctx, src)
	if err != nil {
		return nil, err
	}

	format, err := plan.FormatOf(name)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "fetched remote plan", "src", src, "file", name)

	return plan.Decode(data, format, src)
}

// getURL retrieves a remote file using Hashicorp's go-getter.
// It returns the content and the base name of the file, and removes the temporary copy.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	tmpDir, err := os.MkdirTemp("", "rewind-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetPlanFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetPlanFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	// go-getter fetches directories, so the file name is split off the source
	// and read from the fetched directory.
	// https://github.com/hashicorp/go-getter/issues/98
	newURL, fileName := splitFileNameFromGetterURL(url)
	if newURL == "" || fileName == "" {
		return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetPlanFile, url)
	}

	req.Src = newURL

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetPlanFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetPlanFile, err)
	}

	return data, fileName, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// splitFileNameFromGetterURL splits a go-getter URL of the form
// `scheme://host/repo//path/file?ref=x` into the directory URL and the file name.
// Any query is kept on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var query string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		last, query = before, after
	}

	if last == "" || filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	parts = parts[:len(parts)-1]
	if dir != "." {
		parts = append(parts, dir)
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if query != "" {
		newURL += goGetterRefSeparator + query
	}

	return newURL, fileName
}
