// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// rootSchema lists the blocks allowed at the top of a file and inside a
// world block. Content keeps their source order, which gohcl struct
// decoding would lose across block types.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "model", LabelNames: []string{"name"}},
		{Type: "include"},
		{Type: "world", LabelNames: []string{"name"}},
	},
}

// modelBody is the body of a `model "name" { ... }` block.
type modelBody struct {
	Links     []*linkBlock     `hcl:"link,block"`
	Frames    []*frameBlock    `hcl:"frame,block"`
	Joints    []*jointBlock    `hcl:"joint,block"`
	Actuators []*actuatorBlock `hcl:"actuator,block"`
	Includes  []*includeBlock  `hcl:"include,block"`
}

type linkBlock struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type frameBlock struct {
	Name       string  `hcl:"name,label"`
	AttachedTo *string `hcl:"attached_to,optional"`
}

type jointBlock struct {
	Name        string         `hcl:"name,label"`
	Type        *string        `hcl:"type,optional"`
	Parent      *string        `hcl:"parent,optional"`
	Child       *string        `hcl:"child,optional"`
	Damping     hcl.Expression `hcl:"damping,optional"`
	EffortLimit hcl.Expression `hcl:"effort_limit,optional"`
	Remain      hcl.Body       `hcl:",remain"`
}

type actuatorBlock struct {
	Name        string         `hcl:"name,label"`
	Joint       string         `hcl:"joint"`
	EffortLimit hcl.Expression `hcl:"effort_limit,optional"`
}

type includeBlock struct {
	URI  string  `hcl:"uri"`
	Name *string `hcl:"name,optional"`
}
