// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Document and the elements it contains.
//
// Entries keep their declaration order. World files rely on it: the models
// and includes they list become model instances in the order written, which
// in turn fixes the order of instance handles.
package model

import "fmt"

// Document is one parsed description file.
type Document struct {
	// Name is the world name for world files, empty otherwise.
	Name          string
	Entries       []*Entry
	FSInformation *FSInfo
}

// Entry is a top-level element of a document. Exactly one field is set.
type Entry struct {
	Model   *Model
	Include *Include
}

// Model is a named collection of entities.
type Model struct {
	Name          string
	Links         []*Link
	Frames        []*Frame
	Joints        []*Joint
	Actuators     []*Actuator
	Includes      []*Include
	FSInformation *FSInfo
}

// Link declares a rigid body.
type Link struct {
	Name string
}

// Frame declares a frame fixed to a link of the same model.
type Frame struct {
	Name string
	// AttachedTo names the link; empty means the world body.
	AttachedTo string
}

// Joint declares a joint between two links. Parent and Child may be scoped
// names (robot1::base_link) of parts re-exposed from included models, or
// "world".
type Joint struct {
	Name        string
	Type        string
	Parent      string
	Child       string
	Damping     float64
	EffortLimit float64
}

// Actuator declares an actuator for a joint of the same model.
type Actuator struct {
	Name        string
	Joint       string
	EffortLimit float64
}

// Include references another document.
type Include struct {
	URI string
	// Name overrides the included model's own name.
	Name          string
	FSInformation *FSInfo
}

// NewModelDocument wraps a single model in a Document.
func NewModelDocument(m *Model) *Document {
	return &Document{
		Entries:       []*Entry{{Model: m}},
		FSInformation: m.FSInformation,
	}
}

// SingleModel returns the only model of a model file.
func (d *Document) SingleModel() (*Model, error) {
	if len(d.Entries) != 1 || d.Entries[0].Model == nil {
		return nil, fmt.Errorf("document %s must declare exactly one model, found %d top-level entries", d.FSInformation, len(d.Entries))
	}
	return d.Entries[0].Model, nil
}

// Models returns the inline models of a document in declaration order.
func (d *Document) Models() []*Model {
	var out []*Model
	for _, e := range d.Entries {
		if e.Model != nil {
			out = append(out, e.Model)
		}
	}
	return out
}
