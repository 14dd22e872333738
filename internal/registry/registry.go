// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package registry

import (
	"fmt"

	"github.com/specialistvlad/plantgo/internal/errors"
)

// ModelInstanceIndex is the stable handle of a model instance.
type ModelInstanceIndex int

// InvalidModelInstance is returned alongside errors.
const InvalidModelInstance ModelInstanceIndex = -1

// Reserved instances that exist before any document is loaded.
const (
	WorldModelInstance   ModelInstanceIndex = 0
	DefaultModelInstance ModelInstanceIndex = 1
)

// Names of the reserved instances.
const (
	WorldModelInstanceName   = "WorldModelInstance"
	DefaultModelInstanceName = "DefaultModelInstance"
)

// String renders the handle for logs.
func (i ModelInstanceIndex) String() string {
	return fmt.Sprintf("ModelInstance(%d)", int(i))
}

// Registry holds the model instances of a single plant.
type Registry struct {
	names  []string
	byName map[string]ModelInstanceIndex
}

// New creates a registry that already contains the world and default instances.
func New() *Registry {
	r := &Registry{
		byName: make(map[string]ModelInstanceIndex),
	}
	// Cannot fail on an empty registry.
	_, _ = r.AddInstance(WorldModelInstanceName)
	_, _ = r.AddInstance(DefaultModelInstanceName)
	return r
}

// AddInstance registers a new instance and returns its handle.
func (r *Registry) AddInstance(name string) (ModelInstanceIndex, error) {
	if name == "" {
		return InvalidModelInstance, errors.EmptyName("Model instance", "")
	}
	if _, exists := r.byName[name]; exists {
		return InvalidModelInstance, errors.DuplicateInstanceName(name)
	}
	index := ModelInstanceIndex(len(r.names))
	r.names = append(r.names, name)
	r.byName[name] = index
	return index, nil
}

// HasInstanceNamed reports whether an instance with the given name exists.
func (r *Registry) HasInstanceNamed(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// GetInstanceByName returns the handle of the named instance.
func (r *Registry) GetInstanceByName(name string) (ModelInstanceIndex, error) {
	index, ok := r.byName[name]
	if !ok {
		return InvalidModelInstance, errors.NotFound("Model instance", name, "")
	}
	return index, nil
}

// InstanceName returns the name of the instance behind a handle.
func (r *Registry) InstanceName(index ModelInstanceIndex) (string, error) {
	if !r.Contains(index) {
		return "", errors.NotFound("Model instance", index.String(), "")
	}
	return r.names[index], nil
}

// Name is InstanceName without the error, for messages. Unknown handles
// render as their String form.
func (r *Registry) Name(index ModelInstanceIndex) string {
	if !r.Contains(index) {
		return index.String()
	}
	return r.names[index]
}

// Contains reports whether the handle refers to a registered instance.
func (r *Registry) Contains(index ModelInstanceIndex) bool {
	return index >= 0 && int(index) < len(r.names)
}

// Len returns the number of registered instances, reserved ones included.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the instance names ordered by handle.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Truncate drops every instance with a handle >= n. The reserved instances
// are never dropped.
func (r *Registry) Truncate(n int) {
	if n < 2 {
		n = 2
	}
	for i := len(r.names) - 1; i >= n; i-- {
		delete(r.byName, r.names[i])
	}
	if n < len(r.names) {
		r.names = r.names[:n]
	}
}
