// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"github.com/specialistvlad/plantgo/internal/entitystore"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/registry"
)

// Plant aggregates the model instance registry and the four entity tables.
type Plant struct {
	instances *registry.Registry
	bodies    *entitystore.Table[BodyIndex, bodyData]
	joints    *entitystore.Table[JointIndex, JointSpec]
	frames    *entitystore.Table[FrameIndex, frameData]
	actuators *entitystore.Table[JointActuatorIndex, JointActuatorSpec]
	finalized bool
}

// New creates an unfinalized plant holding the world and default instances
// and the world body.
func New() *Plant {
	instances := registry.New()
	p := &Plant{
		instances: instances,
		bodies:    entitystore.New[BodyIndex, bodyData](KindBody, instances),
		joints:    entitystore.New[JointIndex, JointSpec](KindJoint, instances),
		frames:    entitystore.New[FrameIndex, frameData](KindFrame, instances),
		actuators: entitystore.New[JointActuatorIndex, JointActuatorSpec](KindJointActuator, instances),
	}
	if _, err := p.AddBody(WorldBodyName, registry.WorldModelInstance); err != nil {
		panic("plant: cannot create world body: " + err.Error())
	}
	return p
}

// Finalize locks the structure. It fails if the plant is already finalized.
func (p *Plant) Finalize() error {
	if p.finalized {
		return errors.AlreadyFinalized()
	}
	p.finalized = true
	return nil
}

// IsFinalized reports whether Finalize has been called.
func (p *Plant) IsFinalized() bool {
	return p.finalized
}

// NumModelInstances returns the number of model instances, reserved ones included.
func (p *Plant) NumModelInstances() int { return p.instances.Len() }

// NumBodies returns the number of bodies, the world body included.
func (p *Plant) NumBodies() int { return p.bodies.Len() }

// NumJoints returns the number of joints.
func (p *Plant) NumJoints() int { return p.joints.Len() }

// NumFrames returns the number of frames, body frames included.
func (p *Plant) NumFrames() int { return p.frames.Len() }

// NumJointActuators returns the number of joint actuators.
func (p *Plant) NumJointActuators() int { return p.actuators.Len() }

// AddModelInstance registers a new, empty model instance.
func (p *Plant) AddModelInstance(name string) (registry.ModelInstanceIndex, error) {
	if p.finalized {
		return registry.InvalidModelInstance, errors.PlantFinalized("add model instance '" + name + "'")
	}
	return p.instances.AddInstance(name)
}

// HasModelInstanceNamed reports whether a model instance with the given name exists.
func (p *Plant) HasModelInstanceNamed(name string) bool {
	return p.instances.HasInstanceNamed(name)
}

// GetModelInstanceByName returns the handle of the named model instance.
func (p *Plant) GetModelInstanceByName(name string) (registry.ModelInstanceIndex, error) {
	return p.instances.GetInstanceByName(name)
}

// ModelInstanceName returns the name of a model instance.
func (p *Plant) ModelInstanceName(instance registry.ModelInstanceIndex) (string, error) {
	return p.instances.InstanceName(instance)
}

// Checkpoint records the current size of every table.
type Checkpoint struct {
	instances int
	bodies    entitystore.Mark
	joints    entitystore.Mark
	frames    entitystore.Mark
	actuators entitystore.Mark
}

// Checkpoint captures the current structure so a failed load can be undone.
func (p *Plant) Checkpoint() Checkpoint {
	return Checkpoint{
		instances: p.instances.Len(),
		bodies:    p.bodies.Mark(),
		joints:    p.joints.Mark(),
		frames:    p.frames.Mark(),
		actuators: p.actuators.Mark(),
	}
}

// Rollback drops every instance, entity and alias added since cp. Handles
// issued since cp become invalid; they were never returned from a committed
// load.
func (p *Plant) Rollback(cp Checkpoint) {
	p.actuators.Truncate(cp.actuators)
	p.joints.Truncate(cp.joints)
	p.frames.Truncate(cp.frames)
	p.bodies.Truncate(cp.bodies)
	p.instances.Truncate(cp.instances)
}

// InstancesAddedSince returns the instances added after cp, oldest first.
func (p *Plant) InstancesAddedSince(cp Checkpoint) []registry.ModelInstanceIndex {
	var added []registry.ModelInstanceIndex
	for i := cp.instances; i < p.instances.Len(); i++ {
		added = append(added, registry.ModelInstanceIndex(i))
	}
	return added
}

func (p *Plant) checkMutable(operation string, instance registry.ModelInstanceIndex) error {
	if p.finalized {
		return errors.PlantFinalized(operation)
	}
	if !p.instances.Contains(instance) {
		return errors.NotFound("Model instance", instance.String(), "")
	}
	return nil
}
