// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"github.com/specialistvlad/plantgo/internal/registry"
)

type bodyData struct {
	frame FrameIndex
}

// Body is a read-only view of a rigid body.
type Body struct {
	Index         BodyIndex
	Name          string
	ModelInstance registry.ModelInstanceIndex
	// BodyFrame is the frame carrying the body's own name.
	BodyFrame FrameIndex
}

// AddBody adds a body and its body frame to instance.
func (p *Plant) AddBody(name string, instance registry.ModelInstanceIndex) (BodyIndex, error) {
	if err := p.checkMutable("add body '"+name+"'", instance); err != nil {
		return NoBody, err
	}
	bodyMark, frameMark := p.bodies.Mark(), p.frames.Mark()

	index, err := p.bodies.Insert(name, instance, bodyData{})
	if err != nil {
		return NoBody, err
	}
	frame, err := p.frames.Insert(name, instance, frameData{body: index})
	if err != nil {
		p.bodies.Truncate(bodyMark)
		p.frames.Truncate(frameMark)
		return NoBody, err
	}
	entry, _ := p.bodies.Get(index)
	entry.Value.frame = frame
	return index, nil
}

// Body returns the body behind a handle.
func (p *Plant) Body(index BodyIndex) (Body, error) {
	e, err := p.bodies.Get(index)
	if err != nil {
		return Body{}, err
	}
	return Body{Index: e.Index, Name: e.Name, ModelInstance: e.Instance, BodyFrame: e.Value.frame}, nil
}

// HasBodyNamed reports whether exactly one model instance has a body named
// name. It fails if several do.
func (p *Plant) HasBodyNamed(name string) (bool, error) {
	return p.bodies.Has(name)
}

// HasBodyNamedIn reports whether instance has a body named name.
func (p *Plant) HasBodyNamedIn(name string, instance registry.ModelInstanceIndex) bool {
	return p.bodies.HasIn(name, instance)
}

// GetBodyByName resolves a body name across all model instances.
func (p *Plant) GetBodyByName(name string) (BodyIndex, error) {
	return p.bodies.GetByName(name)
}

// GetBodyByNameIn resolves a body name within instance.
func (p *Plant) GetBodyByNameIn(name string, instance registry.ModelInstanceIndex) (BodyIndex, error) {
	return p.bodies.GetByNameIn(name, instance)
}

// BodiesIn returns the bodies owned by instance. Aliases are not included.
func (p *Plant) BodiesIn(instance registry.ModelInstanceIndex) []BodyIndex {
	return p.bodies.IndicesIn(instance)
}
