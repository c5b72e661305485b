// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lastline

import (
	"io"
	"strings"
	"sync"
)

const ellipsis = "..."

// Writer wraps an io.Writer and tracks the last complete, non-blank line.
// It is safe for concurrent use.
type Writer struct {
	w        io.Writer
	lastLine string
	partial  strings.Builder // Text after the last newline.
	mu       sync.RWMutex
}

// NewWriter creates a Writer forwarding to w. A nil w discards the data.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = io.Discard
	}

	return &Writer{w: w}
}

// Write implements io.Writer. Lines are tracked even when the wrapped writer fails.
func (lw *Writer) Write(p []byte) (int, error) {
	if len(p) > 0 {
		lw.mu.Lock()
		lw.track(string(p))
		lw.mu.Unlock()
	}

	return lw.w.Write(p) //nolint:wrapcheck
}

// track must be called with the write lock held.
func (lw *Writer) track(data string) {
	lw.partial.WriteString(data)

	lines := strings.Split(lw.partial.String(), "\n")
	if len(lines) == 1 {
		return
	}

	for _, l := range lines[:len(lines)-1] {
		if strings.TrimSpace(l) != "" {
			lw.lastLine = strings.TrimRight(l, "\r")
		}
	}

	lw.partial.Reset()
	lw.partial.WriteString(lines[len(lines)-1])
}

// LastLine returns the last complete, non-blank line written so far.
// If maxLength is greater than the length of the ellipsis, longer lines are cut to maxLength with "..." at the end.
func (lw *Writer) LastLine(maxLength int) string {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	return truncate(lw.lastLine, maxLength)
}

// Last returns the pending partial line when it is not blank, otherwise LastLine.
// Use it once writing has finished, since output often lacks a final newline.
func (lw *Writer) Last(maxLength int) string {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	if p := lw.partial.String(); strings.TrimSpace(p) != "" {
		return truncate(p, maxLength)
	}

	return truncate(lw.lastLine, maxLength)
}

// Partial returns the text written after the last newline.
func (lw *Writer) Partial() string {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	return lw.partial.String()
}

// Reset forgets the tracked lines. The wrapped writer is not affected.
func (lw *Writer) Reset() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.lastLine = ""
	lw.partial.Reset()
}

func truncate(s string, maxLength int) string {
	if maxLength > len(ellipsis) && len(s) > maxLength {
		return s[:maxLength-len(ellipsis)] + ellipsis
	}

	return s
}
