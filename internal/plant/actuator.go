// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"fmt"

	"github.com/specialistvlad/plantgo/internal/registry"
)

// JointActuatorSpec describes an actuator to add.
type JointActuatorSpec struct {
	Joint       JointIndex
	EffortLimit float64
}

// JointActuator is a read-only view of a joint actuator.
type JointActuator struct {
	Index         JointActuatorIndex
	Name          string
	ModelInstance registry.ModelInstanceIndex
	JointActuatorSpec
}

// AddJointActuator adds an actuator driving an existing joint.
func (p *Plant) AddJointActuator(name string, instance registry.ModelInstanceIndex, spec JointActuatorSpec) (JointActuatorIndex, error) {
	if err := p.checkMutable("add joint actuator '"+name+"'", instance); err != nil {
		return -1, err
	}
	if _, err := p.joints.Get(spec.Joint); err != nil {
		return -1, fmt.Errorf("joint actuator '%s': %w", name, err)
	}
	return p.actuators.Insert(name, instance, spec)
}

// JointActuator returns the actuator behind a handle.
func (p *Plant) JointActuator(index JointActuatorIndex) (JointActuator, error) {
	e, err := p.actuators.Get(index)
	if err != nil {
		return JointActuator{}, err
	}
	return JointActuator{Index: e.Index, Name: e.Name, ModelInstance: e.Instance, JointActuatorSpec: e.Value}, nil
}

// HasJointActuatorNamed reports whether exactly one model instance has an
// actuator named name. It fails if several do.
func (p *Plant) HasJointActuatorNamed(name string) (bool, error) {
	return p.actuators.Has(name)
}

// HasJointActuatorNamedIn reports whether instance has an actuator named name.
func (p *Plant) HasJointActuatorNamedIn(name string, instance registry.ModelInstanceIndex) bool {
	return p.actuators.HasIn(name, instance)
}

// GetJointActuatorByName resolves an actuator name across all model instances.
func (p *Plant) GetJointActuatorByName(name string) (JointActuatorIndex, error) {
	return p.actuators.GetByName(name)
}

// GetJointActuatorByNameIn resolves an actuator name within instance.
func (p *Plant) GetJointActuatorByNameIn(name string, instance registry.ModelInstanceIndex) (JointActuatorIndex, error) {
	return p.actuators.GetByNameIn(name, instance)
}

// JointActuatorsIn returns the actuators owned by instance.
func (p *Plant) JointActuatorsIn(instance registry.ModelInstanceIndex) []JointActuatorIndex {
	return p.actuators.IndicesIn(instance)
}
