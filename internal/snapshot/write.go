// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
)

const jsonIndent = 2

var (
	// ErrWriteGob is returned when writing the snapshot to a binary format fails.
	ErrWriteGob = errors.New("failed to write binary snapshot")
	// ErrReadGob is returned when reading a binary snapshot fails.
	ErrReadGob = errors.New("failed to read binary snapshot")
	// ErrWriteJSON is returned when writing the snapshot as JSON fails.
	ErrWriteJSON = errors.New("failed to write JSON snapshot")
	// ErrWriteYAML is returned when writing the snapshot as YAML fails.
	ErrWriteYAML = errors.New("failed to write YAML snapshot")
)

// WriteBinary writes the snapshot in gob format.
func WriteBinary(w io.Writer, n *Node) error {
	if err := gob.NewEncoder(w).Encode(n); err != nil {
		return errors.Join(ErrWriteGob, err)
	}

	return nil
}

// ReadBinary reads a snapshot written by WriteBinary.
func ReadBinary(r io.Reader) (*Node, error) {
	var n Node
	if err := gob.NewDecoder(r).Decode(&n); err != nil {
		return nil, errors.Join(ErrReadGob, err)
	}

	return &n, nil
}

// WriteJSON writes the snapshot as indented JSON, with colour if requested.
func WriteJSON(w io.Writer, n *Node, colour bool) error {
	out, err := marshalJSON(n, colour)
	if err != nil {
		return errors.Join(ErrWriteJSON, err)
	}

	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return errors.Join(ErrWriteJSON, err)
	}

	return nil
}

func marshalJSON(n *Node, colour bool) ([]byte, error) {
	if !colour {
		return json.MarshalIndent(n, "", strings.Repeat(" ", jsonIndent))
	}

	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}

	// colorjson formats generic values only.
	var generic map[string]any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = jsonIndent

	return f.Marshal(generic)
}

// WriteYAML writes the snapshot as YAML.
func WriteYAML(w io.Writer, n *Node) error {
	if err := yaml.NewEncoder(w).Encode(n); err != nil {
		return errors.Join(ErrWriteYAML, err)
	}

	return nil
}
