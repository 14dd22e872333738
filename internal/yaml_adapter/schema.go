// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package yaml_adapter

type yamlFile struct {
	Model *yamlModel `yaml:"model"`
	World *yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	Name    string       `yaml:"name"`
	Entries []*yamlEntry `yaml:"entries"`
}

type yamlEntry struct {
	Model   *yamlModel   `yaml:"model"`
	Include *yamlInclude `yaml:"include"`
}

type yamlModel struct {
	Name      string          `yaml:"name"`
	Links     []*yamlLink     `yaml:"links"`
	Frames    []*yamlFrame    `yaml:"frames"`
	Joints    []*yamlJoint    `yaml:"joints"`
	Actuators []*yamlActuator `yaml:"actuators"`
	Includes  []*yamlInclude  `yaml:"includes"`
}

// yamlLink accepts the geometry and inertia keys of a link so documents
// written for richer tools load, but nothing reads them.
type yamlLink struct {
	Name       string `yaml:"name"`
	Pose       any    `yaml:"pose"`
	Visual     any    `yaml:"visual"`
	Visuals    any    `yaml:"visuals"`
	Collision  any    `yaml:"collision"`
	Collisions any    `yaml:"collisions"`
	Inertial   any    `yaml:"inertial"`
}

type yamlFrame struct {
	Name       string `yaml:"name"`
	AttachedTo string `yaml:"attached_to"`
}

type yamlJoint struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Parent      string  `yaml:"parent"`
	Child       string  `yaml:"child"`
	Damping     float64 `yaml:"damping"`
	EffortLimit float64 `yaml:"effort_limit"`
	// Ignored.
	Pose  any `yaml:"pose"`
	Axis  any `yaml:"axis"`
	Limit any `yaml:"limit"`
}

type yamlActuator struct {
	Name        string  `yaml:"name"`
	Joint       string  `yaml:"joint"`
	EffortLimit float64 `yaml:"effort_limit"`
}

type yamlInclude struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}
