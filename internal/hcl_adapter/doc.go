// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl_adapter provides the HCL implementation of model.Loader. It is
// responsible for parsing description files written in HCL and translating
// the decoded blocks into the format-agnostic model.Document.
//
// A model file holds a single model block:
//
//	model "acrobot" {
//	  link "Link1" {}
//	  link "Link2" {}
//	  joint "ShoulderJoint" {
//	    type    = "revolute"
//	    parent  = "world"
//	    child   = "Link1"
//	    damping = 0.1
//	  }
//	  include {
//	    uri  = "model://gripper"
//	    name = "hand"
//	  }
//	}
//
// A world file holds several model and include blocks, optionally wrapped in
// a single world "name" { ... } block. Link bodies accept arbitrary extra
// attributes and blocks (visuals, collisions, inertia), which are ignored.
package hcl_adapter
