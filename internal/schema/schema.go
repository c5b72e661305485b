// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema generates the JSON schema of plan files from the plan types.
//
// Property names come from the yaml tags and descriptions from the docdesc tags.
// Fields without omitempty are required. Nested steps refer to a shared step definition.
package schema

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/rewind/internal/plan"
)

const (
	draft   = "https://json-schema.org/draft/2020-12/schema"
	stepDef = "step"
	stepRef = "#/$defs/" + stepDef
)

var (
	// ErrWriteJSON is returned when the schema cannot be written as JSON.
	ErrWriteJSON = errors.New("failed to write JSON schema")
	// ErrWriteYAML is returned when the schema cannot be written as YAML.
	ErrWriteYAML = errors.New("failed to write YAML schema")
)

var stepType = reflect.TypeOf(plan.Step{})

// Generate returns the schema of plan files whose steps use one of stepTypes.
func Generate(stepTypes []string) map[string]any {
	step := objectSchema(stepType)
	step["description"] = "A step of the plan"

	if len(stepTypes) > 0 {
		props := step["properties"].(map[string]any)
		props["type"].(map[string]any)["enum"] = stepTypes
	}

	root := objectSchema(reflect.TypeOf(plan.Plan{}))
	root["$schema"] = draft
	root["title"] = "Rewind Plan Schema"
	root["description"] = "Schema for rewind plan files"
	root["$defs"] = map[string]any{stepDef: step}

	return root
}

// WriteJSON writes the schema as indented JSON.
func WriteJSON(w io.Writer, stepTypes []string) error {
	b, err := json.MarshalIndent(Generate(stepTypes), "", "  ")
	if err != nil {
		return errors.Join(ErrWriteJSON, err)
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return errors.Join(ErrWriteJSON, err)
	}

	return nil
}

// WriteYAML writes the schema as YAML.
func WriteYAML(w io.Writer, stepTypes []string) error {
	if err := yaml.NewEncoder(w).Encode(Generate(stepTypes)); err != nil {
		return errors.Join(ErrWriteYAML, err)
	}

	return nil
}

// objectSchema describes a struct type. It must only be called with struct types.
func objectSchema(t reflect.Type) map[string]any {
	props := make(map[string]any)
	required := []string{}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = strings.ToLower(field.Name)
		}

		prop := typeSchema(field.Type)
		if desc := field.Tag.Get("docdesc"); desc != "" {
			prop["description"] = desc
		}

		props[name] = prop

		if !strings.Contains(opts, "omitempty") {
			required = append(required, name)
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// typeSchema converts a Go type to a JSON schema type.
func typeSchema(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == stepType {
		return map[string]any{"$ref": stepRef}
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice, reflect.Array:
		return map[string]any{"type": "array", "items": typeSchema(t.Elem())}
	case reflect.Map:
		return map[string]any{"type": "object", "additionalProperties": typeSchema(t.Elem())}
	case reflect.Struct:
		return objectSchema(t)
	default:
		return map[string]any{"type": "string"}
	}
}
