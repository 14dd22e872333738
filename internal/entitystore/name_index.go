// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package entitystore

import (
	"slices"

	"github.com/specialistvlad/plantgo/internal/registry"
)

type scopedKey struct {
	instance registry.ModelInstanceIndex
	name     string
}

// NameIndex is the secondary index of a Table.
type NameIndex struct {
	scoped map[scopedKey]int
	owners map[string]map[registry.ModelInstanceIndex]struct{}
	// journal records bindings in order so they can be undone.
	journal []scopedKey
}

// NewNameIndex creates an empty index.
func NewNameIndex() *NameIndex {
	return &NameIndex{
		scoped: make(map[scopedKey]int),
		owners: make(map[string]map[registry.ModelInstanceIndex]struct{}),
	}
}

// Bind maps (instance, name) to index. It returns false, and changes
// nothing, if the pair is already bound.
func (x *NameIndex) Bind(instance registry.ModelInstanceIndex, name string, index int) bool {
	key := scopedKey{instance: instance, name: name}
	if _, exists := x.scoped[key]; exists {
		return false
	}
	x.scoped[key] = index
	if x.owners[name] == nil {
		x.owners[name] = make(map[registry.ModelInstanceIndex]struct{})
	}
	x.owners[name][instance] = struct{}{}
	x.journal = append(x.journal, key)
	return true
}

// Lookup returns the index bound to (instance, name).
func (x *NameIndex) Lookup(instance registry.ModelInstanceIndex, name string) (int, bool) {
	index, ok := x.scoped[scopedKey{instance: instance, name: name}]
	return index, ok
}

// OwnerCount returns how many instances bind name.
func (x *NameIndex) OwnerCount(name string) int {
	return len(x.owners[name])
}

// Owners returns the instances binding name, sorted by handle.
func (x *NameIndex) Owners(name string) []registry.ModelInstanceIndex {
	set := x.owners[name]
	out := make([]registry.ModelInstanceIndex, 0, len(set))
	for instance := range set {
		out = append(out, instance)
	}
	slices.Sort(out)
	return out
}

// NamesIn returns every name bound in instance, in binding order.
func (x *NameIndex) NamesIn(instance registry.ModelInstanceIndex) []string {
	var out []string
	for _, key := range x.journal {
		if key.instance == instance {
			out = append(out, key.name)
		}
	}
	return out
}

// Len returns the number of bindings.
func (x *NameIndex) Len() int {
	return len(x.journal)
}

// Truncate undoes every binding made after the first n.
func (x *NameIndex) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for i := len(x.journal) - 1; i >= n; i-- {
		key := x.journal[i]
		delete(x.scoped, key)
		if set := x.owners[key.name]; set != nil {
			delete(set, key.instance)
			if len(set) == 0 {
				delete(x.owners, key.name)
			}
		}
	}
	if n < len(x.journal) {
		x.journal = x.journal[:n]
	}
}
