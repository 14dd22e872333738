// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/registry"
)

// JointType names the kinematic constraint of a joint.
type JointType string

const (
	JointFixed      JointType = "fixed"
	JointRevolute   JointType = "revolute"
	JointContinuous JointType = "continuous"
	JointPrismatic  JointType = "prismatic"
	JointBall       JointType = "ball"
	JointUniversal  JointType = "universal"
	JointPlanar     JointType = "planar"
)

var jointTypes = []JointType{
	JointFixed, JointRevolute, JointContinuous, JointPrismatic,
	JointBall, JointUniversal, JointPlanar,
}

// ParseJointType maps a document's joint type to a JointType. An empty
// string means fixed.
func ParseJointType(s string) (JointType, error) {
	if s == "" {
		return JointFixed, nil
	}
	t := JointType(strings.ToLower(s))
	if !slices.Contains(jointTypes, t) {
		return "", fmt.Errorf("unsupported joint type %q", s)
	}
	return t, nil
}

// JointSpec describes a joint to add.
type JointSpec struct {
	Type    JointType
	Parent  BodyIndex
	Child   BodyIndex
	Damping float64
	// EffortLimit is the maximum actuation effort; 0 means unactuated.
	EffortLimit float64
}

// Joint is a read-only view of a joint.
type Joint struct {
	Index         JointIndex
	Name          string
	ModelInstance registry.ModelInstanceIndex
	JointSpec
}

// AddJoint adds a joint to instance. Negative or NaN damping is rejected before
// anything is inserted. Parent and child must be NoBody or existing bodies.
func (p *Plant) AddJoint(name string, instance registry.ModelInstanceIndex, spec JointSpec) (JointIndex, error) {
	if err := p.checkMutable("add joint '"+name+"'", instance); err != nil {
		return -1, err
	}
	if !(spec.Damping >= 0) {
		return -1, errors.InvalidJointDamping(name, spec.Damping)
	}
	if spec.Type == "" {
		spec.Type = JointFixed
	}
	for _, b := range []BodyIndex{spec.Parent, spec.Child} {
		if b == NoBody {
			continue
		}
		if _, err := p.bodies.Get(b); err != nil {
			return -1, fmt.Errorf("joint '%s': %w", name, err)
		}
	}
	return p.joints.Insert(name, instance, spec)
}

// Joint returns the joint behind a handle.
func (p *Plant) Joint(index JointIndex) (Joint, error) {
	e, err := p.joints.Get(index)
	if err != nil {
		return Joint{}, err
	}
	return Joint{Index: e.Index, Name: e.Name, ModelInstance: e.Instance, JointSpec: e.Value}, nil
}

// HasJointNamed reports whether exactly one model instance has a joint named
// name. It fails if several do.
func (p *Plant) HasJointNamed(name string) (bool, error) {
	return p.joints.Has(name)
}

// HasJointNamedIn reports whether instance has a joint named name.
func (p *Plant) HasJointNamedIn(name string, instance registry.ModelInstanceIndex) bool {
	return p.joints.HasIn(name, instance)
}

// GetJointByName resolves a joint name across all model instances.
func (p *Plant) GetJointByName(name string) (JointIndex, error) {
	return p.joints.GetByName(name)
}

// GetJointByNameIn resolves a joint name within instance.
func (p *Plant) GetJointByNameIn(name string, instance registry.ModelInstanceIndex) (JointIndex, error) {
	return p.joints.GetByNameIn(name, instance)
}

// JointsIn returns the joints owned by instance.
func (p *Plant) JointsIn(instance registry.ModelInstanceIndex) []JointIndex {
	return p.joints.IndicesIn(instance)
}
