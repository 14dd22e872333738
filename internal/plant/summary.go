// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import "github.com/specialistvlad/plantgo/internal/registry"

// InstanceSummary lists the names visible in one model instance.
type InstanceSummary struct {
	Index          registry.ModelInstanceIndex
	Name           string
	Bodies         []string
	Joints         []string
	Frames         []string
	JointActuators []string
}

// Summary describes every model instance in handle order. Names include
// aliases re-exposed from sub-models.
func (p *Plant) Summary() []InstanceSummary {
	out := make([]InstanceSummary, 0, p.instances.Len())
	for i, name := range p.instances.Names() {
		idx := registry.ModelInstanceIndex(i)
		out = append(out, InstanceSummary{
			Index:          idx,
			Name:           name,
			Bodies:         p.bodies.NamesIn(idx),
			Joints:         p.joints.NamesIn(idx),
			Frames:         p.frames.NamesIn(idx),
			JointActuators: p.actuators.NamesIn(idx),
		})
	}
	return out
}
