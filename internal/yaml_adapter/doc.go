// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package yaml_adapter provides the YAML implementation of model.Loader.
//
// A model file:
//
//	model:
//	  name: acrobot
//	  links:
//	    - name: Link1
//	  joints:
//	    - name: ShoulderJoint
//	      type: revolute
//	      parent: world
//	      child: Link1
//	      damping: 0.1
//	  includes:
//	    - uri: model://gripper
//	      name: hand
//
// A world file lists its entries in order:
//
//	world:
//	  name: default
//	  entries:
//	    - include: {uri: "model://simple_robot1", name: robot1}
//	    - model: {name: inline, links: [{name: base}]}
//
// Unknown keys are rejected everywhere. Links may also carry pose, visual(s),
// collision(s) and inertial data, and joints pose, axis and limit data; these
// are accepted and ignored.
package yaml_adapter
