// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"fmt"

	"github.com/specialistvlad/plantgo/internal/registry"
)

type frameData struct {
	body BodyIndex
}

// Frame is a read-only view of a frame.
type Frame struct {
	Index         FrameIndex
	Name          string
	ModelInstance registry.ModelInstanceIndex
	Body          BodyIndex
}

// AddFrame adds a frame attached to body.
func (p *Plant) AddFrame(name string, instance registry.ModelInstanceIndex, body BodyIndex) (FrameIndex, error) {
	if err := p.checkMutable("add frame '"+name+"'", instance); err != nil {
		return -1, err
	}
	if _, err := p.bodies.Get(body); err != nil {
		return -1, fmt.Errorf("frame '%s': %w", name, err)
	}
	return p.frames.Insert(name, instance, frameData{body: body})
}

// Frame returns the frame behind a handle.
func (p *Plant) Frame(index FrameIndex) (Frame, error) {
	e, err := p.frames.Get(index)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Index: e.Index, Name: e.Name, ModelInstance: e.Instance, Body: e.Value.body}, nil
}

// HasFrameNamed reports whether exactly one model instance has a frame named
// name. It fails if several do.
func (p *Plant) HasFrameNamed(name string) (bool, error) {
	return p.frames.Has(name)
}

// HasFrameNamedIn reports whether instance has a frame named name.
func (p *Plant) HasFrameNamedIn(name string, instance registry.ModelInstanceIndex) bool {
	return p.frames.HasIn(name, instance)
}

// GetFrameByName resolves a frame name across all model instances.
func (p *Plant) GetFrameByName(name string) (FrameIndex, error) {
	return p.frames.GetByName(name)
}

// GetFrameByNameIn resolves a frame name within instance.
func (p *Plant) GetFrameByNameIn(name string, instance registry.ModelInstanceIndex) (FrameIndex, error) {
	return p.frames.GetByNameIn(name, instance)
}

// FramesIn returns the frames owned by instance, body frames included.
func (p *Plant) FramesIn(instance registry.ModelInstanceIndex) []FrameIndex {
	return p.frames.IndicesIn(instance)
}
