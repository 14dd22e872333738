// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional expression fields with
// zero-width placeholder expressions, so a nil check is insufficient: a real
// attribute occupies bytes in the file, a placeholder does not.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// decodeNumber evaluates an optional numeric attribute. Omitted attributes
// and null values decode to 0.
func decodeNumber(ctx context.Context, expr hcl.Expression, attrName string) (float64, hcl.Diagnostics) {
	if !isExprDefined(expr) {
		return 0, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, diags
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil || !num.IsKnown() {
		return 0, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid number",
			Detail:   "The \"" + attrName + "\" attribute must be a number, got " + val.Type().FriendlyName() + ".",
			Subject:  expr.Range().Ptr(),
		})
	}

	var out float64
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid number",
			Detail:   "The \"" + attrName + "\" attribute cannot be represented as a float: " + err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	ctxlog.FromContext(ctx).Debug("Decoded numeric attribute.", "attribute", attrName, "value", out)
	return out, diags
}

// findUniqueBlock returns the only block of the given type, with a
// diagnostic if there is more than one. It returns nil if there is none.
func findUniqueBlock(blocks hcl.Blocks, blockType string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != blockType {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + blockType + "\" block",
				Detail:   "Only one \"" + blockType + "\" block is allowed per file.",
				Subject:  &block.DefRange,
			})
		}
		found = block
	}
	return found, diags
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
