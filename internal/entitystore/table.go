// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package entitystore

import (
	"fmt"

	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/registry"
)

// Namer renders instance handles in error messages.
type Namer interface {
	Name(index registry.ModelInstanceIndex) string
}

// Entry is one row of a Table.
type Entry[I ~int, T any] struct {
	Index    I
	Name     string
	Instance registry.ModelInstanceIndex
	Value    T
}

// Table stores one entity kind.
type Table[I ~int, T any] struct {
	kind    string
	namer   Namer
	entries []*Entry[I, T]
	names   *NameIndex
}

// Mark is a table position that Truncate can roll back to.
type Mark struct {
	entries  int
	bindings int
}

// New creates an empty table. kind is the human readable entity kind used in
// error messages, e.g. "Body" or "Joint actuator".
func New[I ~int, T any](kind string, namer Namer) *Table[I, T] {
	return &Table[I, T]{
		kind:  kind,
		namer: namer,
		names: NewNameIndex(),
	}
}

// Kind returns the entity kind stored in the table.
func (t *Table[I, T]) Kind() string {
	return t.kind
}

// Insert appends a new entry owned by instance and returns its index.
func (t *Table[I, T]) Insert(name string, instance registry.ModelInstanceIndex, value T) (I, error) {
	if name == "" {
		return I(-1), errors.EmptyName(t.kind, t.namer.Name(instance))
	}
	index := len(t.entries)
	if !t.names.Bind(instance, name, index) {
		return I(-1), errors.DuplicateEntityName(t.kind, name, t.namer.Name(instance))
	}
	t.entries = append(t.entries, &Entry[I, T]{
		Index:    I(index),
		Name:     name,
		Instance: instance,
		Value:    value,
	})
	return I(index), nil
}

// Alias binds name in instance to an existing entry.
func (t *Table[I, T]) Alias(name string, instance registry.ModelInstanceIndex, index I) error {
	if _, err := t.Get(index); err != nil {
		return err
	}
	if name == "" {
		return errors.EmptyName(t.kind+" alias", t.namer.Name(instance))
	}
	if !t.names.Bind(instance, name, int(index)) {
		return errors.DuplicateEntityName(t.kind, name, t.namer.Name(instance))
	}
	return nil
}

// Has reports whether exactly one instance binds name. It fails with an
// ambiguous-name error when two or more do.
func (t *Table[I, T]) Has(name string) (bool, error) {
	switch t.names.OwnerCount(name) {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, t.ambiguous(name)
	}
}

// HasIn reports whether instance binds name.
func (t *Table[I, T]) HasIn(name string, instance registry.ModelInstanceIndex) bool {
	_, ok := t.names.Lookup(instance, name)
	return ok
}

// GetByName resolves name without an instance qualifier.
func (t *Table[I, T]) GetByName(name string) (I, error) {
	switch t.names.OwnerCount(name) {
	case 0:
		return I(-1), errors.NotFound(t.kind, name, "")
	case 1:
		owner := t.names.Owners(name)[0]
		index, _ := t.names.Lookup(owner, name)
		return I(index), nil
	default:
		return I(-1), t.ambiguous(name)
	}
}

// GetByNameIn resolves name within a single instance.
func (t *Table[I, T]) GetByNameIn(name string, instance registry.ModelInstanceIndex) (I, error) {
	index, ok := t.names.Lookup(instance, name)
	if !ok {
		return I(-1), errors.NotFound(t.kind, name, t.namer.Name(instance))
	}
	return I(index), nil
}

// Get dereferences a handle.
func (t *Table[I, T]) Get(index I) (*Entry[I, T], error) {
	if int(index) < 0 || int(index) >= len(t.entries) {
		return nil, errors.NotFound(t.kind, fmt.Sprintf("#%d", int(index)), "")
	}
	return t.entries[index], nil
}

// Len returns the number of entries. Aliases are not counted.
func (t *Table[I, T]) Len() int {
	return len(t.entries)
}

// IndicesIn returns the entries owned by instance, in index order.
func (t *Table[I, T]) IndicesIn(instance registry.ModelInstanceIndex) []I {
	var out []I
	for _, e := range t.entries {
		if e.Instance == instance {
			out = append(out, e.Index)
		}
	}
	return out
}

// NamesIn returns every name bound in instance, aliases included, in binding order.
func (t *Table[I, T]) NamesIn(instance registry.ModelInstanceIndex) []string {
	return t.names.NamesIn(instance)
}

// Mark captures the current table position.
func (t *Table[I, T]) Mark() Mark {
	return Mark{entries: len(t.entries), bindings: t.names.Len()}
}

// Truncate rolls the table back to m, dropping entries and bindings made since.
func (t *Table[I, T]) Truncate(m Mark) {
	t.names.Truncate(m.bindings)
	if m.entries < len(t.entries) {
		for i := m.entries; i < len(t.entries); i++ {
			t.entries[i] = nil
		}
		t.entries = t.entries[:m.entries]
	}
}

func (t *Table[I, T]) ambiguous(name string) error {
	owners := t.names.Owners(name)
	instances := make([]string, 0, len(owners))
	for _, o := range owners {
		instances = append(instances, t.namer.Name(o))
	}
	return errors.AmbiguousName(t.kind, name, instances)
}
