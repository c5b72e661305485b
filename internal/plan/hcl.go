// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"errors"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ErrHCLDecode is returned when an HCL plan cannot be parsed or decoded.
var ErrHCLDecode = errors.New("failed to decode HCL plan")

// Environ returns the environment exposed to HCL expressions as env.<NAME>.
var Environ = os.Environ

type hclFile struct {
	Plan *Plan `hcl:"plan,block"`
}

// DecodeHCL decodes an HCL plan. The file must hold exactly one plan block.
func DecodeHCL(data []byte, filename string) (*Plan, error) {
	f, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrHCLDecode, diagErrors(diags))
	}

	var file hclFile
	if diags := gohcl.DecodeBody(f.Body, EvalContext(), &file); diags.HasErrors() {
		return nil, errors.Join(ErrHCLDecode, diagErrors(diags))
	}

	if file.Plan == nil {
		return nil, errors.Join(ErrHCLDecode, errors.New("no plan block found"))
	}

	return file.Plan, nil
}

// EvalContext returns the evaluation context for plan expressions.
func EvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !hclsyntax.ValidIdentifier(k) {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"join":      stdlib.JoinFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

func diagErrors(diags hcl.Diagnostics) error {
	var err error
	for _, e := range diags.Errs() {
		err = multierror.Append(err, e)
	}

	return err
}
