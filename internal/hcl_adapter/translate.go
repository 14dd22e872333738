// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file translates decoded HCL blocks into the format-agnostic document
// model.

package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/model"
)

// translateDocument walks the top-level blocks in source order. A file is
// either a flat list of model/include blocks or a single world block
// wrapping such a list.
func translateDocument(ctx context.Context, body hcl.Body, fs *model.FSInfo) (*model.Document, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	doc := &model.Document{FSInformation: fs}
	world, worldDiags := findUniqueBlock(content.Blocks, "world")
	diags = append(diags, worldDiags...)
	if worldDiags.HasErrors() {
		return nil, diags
	}

	blocks := content.Blocks
	if world != nil {
		if len(content.Blocks) > 1 {
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected blocks beside world",
				Detail:   "A file with a \"world\" block must not declare other top-level blocks.",
				Subject:  &world.DefRange,
			})
		}
		doc.Name = world.Labels[0]
		inner, innerDiags := world.Body.Content(rootSchema)
		diags = append(diags, innerDiags...)
		if innerDiags.HasErrors() {
			return nil, diags
		}
		if nested, _ := findUniqueBlock(inner.Blocks, "world"); nested != nil {
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Nested world block",
				Detail:   "World blocks cannot be nested.",
				Subject:  &nested.DefRange,
			})
		}
		blocks = inner.Blocks
	}

	for _, block := range blocks {
		switch block.Type {
		case "model":
			m, modelDiags := translateModel(ctx, block, fs)
			diags = append(diags, modelDiags...)
			if m != nil {
				doc.Entries = append(doc.Entries, &model.Entry{Model: m})
			}
		case "include":
			var inc includeBlock
			incDiags := gohcl.DecodeBody(block.Body, nil, &inc)
			diags = append(diags, incDiags...)
			if !incDiags.HasErrors() {
				doc.Entries = append(doc.Entries, &model.Entry{Include: translateInclude(&inc, fs)})
			}
		}
	}
	return doc, diags
}

// translateModel converts a single model block.
func translateModel(ctx context.Context, block *hcl.Block, fs *model.FSInfo) (*model.Model, hcl.Diagnostics) {
	name := block.Labels[0]
	logger := ctxlog.FromContext(ctx).With("model", name)
	ctx = ctxlog.WithLogger(ctx, logger)

	var body modelBody
	diags := gohcl.DecodeBody(block.Body, nil, &body)
	if diags.HasErrors() {
		return nil, diags
	}

	m := &model.Model{Name: name, FSInformation: fs}
	for _, l := range body.Links {
		m.Links = append(m.Links, &model.Link{Name: l.Name})
	}
	for _, f := range body.Frames {
		m.Frames = append(m.Frames, &model.Frame{Name: f.Name, AttachedTo: stringOr(f.AttachedTo, "")})
	}
	for _, j := range body.Joints {
		joint := &model.Joint{
			Name:   j.Name,
			Type:   stringOr(j.Type, ""),
			Parent: stringOr(j.Parent, ""),
			Child:  stringOr(j.Child, ""),
		}
		var numDiags hcl.Diagnostics
		joint.Damping, numDiags = decodeNumber(ctx, j.Damping, "damping")
		diags = append(diags, numDiags...)
		joint.EffortLimit, numDiags = decodeNumber(ctx, j.EffortLimit, "effort_limit")
		diags = append(diags, numDiags...)
		m.Joints = append(m.Joints, joint)
	}
	for _, a := range body.Actuators {
		effort, numDiags := decodeNumber(ctx, a.EffortLimit, "effort_limit")
		diags = append(diags, numDiags...)
		m.Actuators = append(m.Actuators, &model.Actuator{Name: a.Name, Joint: a.Joint, EffortLimit: effort})
	}
	for _, inc := range body.Includes {
		m.Includes = append(m.Includes, translateInclude(inc, fs))
	}

	if diags.HasErrors() {
		return nil, diags
	}
	logger.Debug("Translated HCL model.", "links", len(m.Links), "joints", len(m.Joints), "includes", len(m.Includes))
	return m, diags
}

func translateInclude(inc *includeBlock, fs *model.FSInfo) *model.Include {
	return &model.Include{
		URI:           inc.URI,
		Name:          stringOr(inc.Name, ""),
		FSInformation: fs,
	}
}
