// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lastline

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Lines(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLast    string
		wantPartial string
	}{
		{name: "single line with newline", input: "hello world\n", wantLast: "hello world"},
		{name: "single line without newline", input: "hello world", wantPartial: "hello world"},
		{name: "empty string", input: ""},
		{name: "just newline", input: "\n"},
		{name: "two lines with newline", input: "line1\nline2\n", wantLast: "line2"},
		{name: "two lines without final newline", input: "line1\nline2", wantLast: "line1", wantPartial: "line2"},
		{name: "trailing blank lines", input: "line1\n\n  \n", wantLast: "line1"},
		{name: "carriage return", input: "line1\r\n", wantLast: "line1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			w := NewWriter(&buf)
			n, err := w.Write([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.input, buf.String())
			assert.Equal(t, tt.wantLast, w.LastLine(0))
			assert.Equal(t, tt.wantPartial, w.Partial())
		})
	}
}

func TestWriter_Chunked(t *testing.T) {
	input := "first line\nsecond line\nthird line\nfourth line"
	w := NewWriter(nil)

	for i := 0; i < len(input); i += 5 {
		end := min(i+5, len(input))
		_, err := w.Write([]byte(input[i:end]))
		require.NoError(t, err)
	}

	assert.Equal(t, "third line", w.LastLine(0))
	assert.Equal(t, "fourth line", w.Partial())
	assert.Equal(t, "fourth line", w.Last(0))
}

func TestWriter_Last(t *testing.T) {
	w := NewWriter(nil)
	_, _ = w.Write([]byte("error: disk full\n  \t"))

	assert.Equal(t, "error: disk full", w.Last(0))
}

func TestWriter_Truncate(t *testing.T) {
	w := NewWriter(nil)
	_, _ = w.Write([]byte("0123456789\n"))

	assert.Equal(t, "0123...", w.LastLine(7))
	assert.Equal(t, "0123456789", w.LastLine(10))
	assert.Equal(t, "0123456789", w.LastLine(3), "limits too short for the ellipsis are ignored")
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter(nil)
	_, _ = w.Write([]byte("a\nb"))
	w.Reset()

	assert.Empty(t, w.LastLine(0))
	assert.Empty(t, w.Partial())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken") }

func TestWriter_TracksWhenWrappedWriterFails(t *testing.T) {
	w := NewWriter(failingWriter{})
	_, err := w.Write([]byte("still seen\n"))
	require.Error(t, err)
	assert.Equal(t, "still seen", w.LastLine(0))
}

func TestWriter_Concurrent(t *testing.T) {
	w := NewWriter(nil)

	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = fmt.Fprintf(w, "line %d\n", i)
			_ = w.LastLine(0)
		}()
	}

	wg.Wait()
	assert.Regexp(t, `^line \d$`, w.LastLine(0))
}
