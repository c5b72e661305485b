// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"errors"

	"github.com/goccy/go-yaml"
)

// ErrYAMLDecode is returned when a YAML plan cannot be decoded.
var ErrYAMLDecode = errors.New("failed to decode YAML plan")

// DecodeYAML decodes a YAML plan. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Plan, error) {
	p := new(Plan)
	if err := yaml.UnmarshalWithOptions(data, p, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrYAMLDecode, err)
	}

	return p, nil
}

// EncodeYAML renders a plan as YAML.
func EncodeYAML(p *Plan) ([]byte, error) {
	return yaml.Marshal(p)
}
